package region

import (
	"github.com/paulmach/orb/planar"

	"github.com/safepathshield/safepath/search"
)

// arc is one weighted adjacency entry of the centroid graph.
type arc struct {
	to     string
	weight float64
}

// PathsToExit returns, for every region that can reach an exit, the
// minimum-weight path to its nearest exit as an ordered list of region ids
// (the region itself first, the exit last). Edge weight is the Euclidean
// distance between region centroids. Regions with no route are absent from
// the map; no exits yields an empty map. Edges referencing undeclared
// regions are skipped.
//
// Ties between exits resolve to the earlier exit in declaration order, so
// output is deterministic for a fixed input.
//
// Complexity: O(X × (R + E) log R) for X exits, R regions, E edges.
func PathsToExit(regions []Region, edges []Edge) map[string][]string {
	byID := make(map[string]Region, len(regions))
	adj := make(map[string][]arc, len(regions))
	var exits []string
	for _, r := range regions {
		byID[r.ID] = r
		if r.Kind == KindExit {
			exits = append(exits, r.ID)
		}
	}
	for _, e := range edges {
		a, aOK := byID[e.From]
		b, bOK := byID[e.To]
		if !aOK || !bOK {
			continue
		}
		w := planar.Distance(a.Centroid(), b.Centroid())
		adj[e.From] = append(adj[e.From], arc{to: e.To, weight: w})
		adj[e.To] = append(adj[e.To], arc{to: e.From, weight: w})
	}

	paths := make(map[string][]string)
	if len(exits) == 0 {
		return paths
	}

	expand := func(id string) []search.Step[string, struct{}] {
		arcs := adj[id]
		out := make([]search.Step[string, struct{}], 0, len(arcs))
		for _, a := range arcs {
			out = append(out, search.Step[string, struct{}]{To: a.to, Cost: a.weight})
		}
		return out
	}

	// One sweep per exit; every region keeps its nearest one.
	best := make(map[string]float64, len(regions))
	for _, exit := range exits {
		dist, prev := search.Distances(exit, expand)
		for _, r := range regions {
			d, reached := dist[r.ID]
			if !reached {
				continue
			}
			if cur, seen := best[r.ID]; seen && d >= cur {
				continue
			}
			best[r.ID] = d
			paths[r.ID] = walk(prev, exit, r.ID)
		}
	}
	return paths
}

// walk rebuilds the region→exit path from predecessor links pointing back
// toward the exit the sweep started from.
func walk(prev map[string]string, exit, from string) []string {
	path := []string{from}
	for cur := from; cur != exit; {
		cur = prev[cur]
		path = append(path, cur)
	}
	return path
}
