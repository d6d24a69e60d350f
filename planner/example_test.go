package planner_test

import (
	"fmt"
	"sort"

	"github.com/safepathshield/safepath/building"
	"github.com/safepathshield/safepath/planner"
)

// ExamplePlanner_SetHazards plans a two-room corridor, then marks the inner
// room hazardous and shows the whole corridor dropping into lockdown.
//
//	R1 ──D1── R2 ──D2── X
func ExamplePlanner_SetHazards() {
	g, err := building.New(building.Definition{
		Nodes: []building.Node{
			{ID: "R1", Type: building.NodeRoom},
			{ID: "R2", Type: building.NodeRoom},
			{ID: "X", Type: building.NodeExit},
		},
		Edges: []building.Edge{
			{From: "R1", To: "R2", DoorID: "D1"},
			{From: "R2", To: "X", DoorID: "D2"},
		},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	pl, err := planner.New(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	initial := pl.Plan()
	fmt.Printf("all clear: R1 %s via %v\n", initial.Rooms["R1"].Mode, initial.Rooms["R1"].PathEdges)

	plan, err := pl.SetHazards([]string{"R2"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("hazard R2: R1 %s\n", plan.Rooms["R1"].Mode)

	ids := make([]string, 0, len(plan.Doors))
	for id := range plan.Doors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Printf("door %s = %s\n", id, plan.Doors[id])
	}
	// Output:
	// all clear: R1 EVAC via [D1 D2]
	// hazard R2: R1 LOCKDOWN
	// door D1 = LOCK_BLOCK_THREAT
	// door D2 = LOCK_BLOCK_THREAT
}
