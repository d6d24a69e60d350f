package planner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/safepathshield/safepath/building"
	"github.com/safepathshield/safepath/planner"
)

// sharedDoorGraph builds a topology where door DW physically spans two
// connections (declared on two edges), only one of which lies on an
// evacuation path:
//
//	R1 ──DW── X1
//	R2 ──DW── C          (C is a dead-end corridor)
//	R2 ──D2── X1
func sharedDoorGraph(t *testing.T) *building.Graph {
	t.Helper()
	g, err := building.New(building.Definition{
		Nodes: []building.Node{
			{ID: "R1", Type: building.NodeRoom},
			{ID: "R2", Type: building.NodeRoom},
			{ID: "C", Type: building.NodePlain},
			{ID: "X1", Type: building.NodeExit},
		},
		Edges: []building.Edge{
			// The non-path DW edge is declared first on purpose: door-state
			// resolution must not depend on edge declaration order.
			{From: "R2", To: "C", DoorID: "DW"},
			{From: "R1", To: "X1", DoorID: "DW"},
			{From: "R2", To: "X1", DoorID: "D2"},
		},
	})
	require.NoError(t, err)
	return g
}

// TestDoorStates_SharedDoorKeepsUnlock verifies the precedence-ranked
// reduction: a door id used by any EVAC path stays UNLOCK even when another
// edge bearing the same id is idle, regardless of edge declaration order.
func TestDoorStates_SharedDoorKeepsUnlock(t *testing.T) {
	pl, err := planner.New(sharedDoorGraph(t))
	require.NoError(t, err)

	plan := pl.Plan()
	require.Equal(t, planner.DoorUnlock, plan.Doors["DW"])
	require.Equal(t, planner.DoorUnlock, plan.Doors["D2"])
}

// TestDoorStates_ThreatDominates verifies that one hazardous endpoint on any
// edge bearing a door id forces LOCK_BLOCK_THREAT for the whole door, even
// while another edge with the same id sits on a live evacuation path.
func TestDoorStates_ThreatDominates(t *testing.T) {
	pl, err := planner.New(sharedDoorGraph(t))
	require.NoError(t, err)

	// C is plain pass-through: hazard there touches only the R2–C edge.
	plan, err := pl.SetHazards([]string{"C"})
	require.NoError(t, err)

	// R1 still evacuates through its DW edge...
	require.Equal(t, planner.ModeEvac, plan.Rooms["R1"].Mode)
	require.Equal(t, []string{"DW"}, plan.Rooms["R1"].PathEdges)
	// ...but the door as a physical unit must hard-lock.
	require.Equal(t, planner.DoorLockBlockThreat, plan.Doors["DW"])
}

// TestDoorStates_ThreatIff spot-checks both directions of the invariant:
// LOCK_BLOCK_THREAT exactly when some edge bearing the id has a hazardous
// endpoint.
func TestDoorStates_ThreatIff(t *testing.T) {
	pl, err := planner.New(sharedDoorGraph(t))
	require.NoError(t, err)

	plan, err := pl.SetHazards([]string{"R1"})
	require.NoError(t, err)
	require.Equal(t, planner.DoorLockBlockThreat, plan.Doors["DW"], "R1 endpoint hazardous")
	require.NotEqual(t, planner.DoorLockBlockThreat, plan.Doors["D2"], "no hazardous endpoint on D2")

	plan, err = pl.SetHazards(nil)
	require.NoError(t, err)
	for id, st := range plan.Doors {
		require.NotEqual(t, planner.DoorLockBlockThreat, st, "door %s threat-locked with empty hazard set", id)
	}
}

// TestDoorStates_DoorlessEdgesExcluded verifies edges without a door id
// never appear in the door map.
func TestDoorStates_DoorlessEdgesExcluded(t *testing.T) {
	g, err := building.New(building.Definition{
		Nodes: []building.Node{
			{ID: "R1", Type: building.NodeRoom},
			{ID: "P", Type: building.NodePlain},
			{ID: "X1", Type: building.NodeExit},
		},
		Edges: []building.Edge{
			{From: "R1", To: "P"}, // open passage, no door
			{From: "P", To: "X1", DoorID: "D1"},
		},
	})
	require.NoError(t, err)
	pl, err := planner.New(g)
	require.NoError(t, err)

	plan := pl.Plan()
	require.Len(t, plan.Doors, 1)
	require.Equal(t, planner.DoorUnlock, plan.Doors["D1"])
	// The doorless hop also contributes nothing to path_edges.
	require.Equal(t, []string{"D1"}, plan.Rooms["R1"].PathEdges)
}
