package planner

import (
	"github.com/safepathshield/safepath/building"
	"github.com/safepathshield/safepath/search"
)

// searchLocked is the hazard-aware minimum-hop search from start to any
// exit node. It returns the ordered traversed edges and the reached exit
// id, or (nil, "") when no safe path exists. Caller holds mu (read or
// write).
//
// Rules:
//   - a hazardous start is never evacuable, even if a physical route from
//     it remains passable;
//   - neighbors expand in adjacency declaration order; unit step costs
//     plus the frontier's FIFO tie-break make this breadth-first order;
//   - a neighbor is skipped if hazardous, or reached through an edge
//     whose door id is in the locked-door override set;
//   - the first exit node dequeued terminates the search on a minimum-hop
//     safe path.
func (p *Planner) searchLocked(start string) ([]*building.Edge, string) {
	if _, hazardous := p.hazards[start]; hazardous {
		return nil, ""
	}
	res, ok := search.FindPath(search.Problem[string, *building.Edge]{
		Start:  start,
		Goal:   p.graph.IsExit,
		Expand: p.safeSteps,
	})
	if !ok {
		return nil, ""
	}
	return res.Via, res.Nodes[len(res.Nodes)-1]
}

// safeSteps expands a node into its currently traversable neighbors,
// carrying the connecting edge as the step payload.
func (p *Planner) safeSteps(node string) []search.Step[string, *building.Edge] {
	nbs := p.graph.Neighbors(node)
	out := make([]search.Step[string, *building.Edge], 0, len(nbs))
	for _, nb := range nbs {
		if _, hazardous := p.hazards[nb.ID]; hazardous {
			continue
		}
		if nb.Edge.DoorID != "" {
			if _, forced := p.locked[nb.Edge.DoorID]; forced {
				continue
			}
		}
		out = append(out, search.Step[string, *building.Edge]{
			To:   nb.ID,
			Cost: 1,
			Via:  nb.Edge,
		})
	}
	return out
}
