package grid

import (
	"math"

	"github.com/safepathshield/safepath/search"
)

// AStar finds a shortest path from start to goal over free cells, moving
// between neighbors per the grid's connectivity at unit step cost (√2 for
// Conn8 diagonal steps), guided by the Euclidean-distance heuristic. It
// returns the ordered cells on the path including both endpoints, or nil
// when no path exists (blocked or out-of-bounds endpoints included); an
// unreachable goal is a normal outcome, not an error.
func (g *Grid) AStar(start, goal Cell) []Cell {
	if g.Blocked(start) || g.Blocked(goal) {
		return nil
	}
	res, ok := search.FindPath(search.Problem[Cell, struct{}]{
		Start:  start,
		Goal:   func(c Cell) bool { return c == goal },
		Expand: g.steps,
		Heuristic: func(c Cell) float64 {
			return math.Hypot(float64(c.X-goal.X), float64(c.Y-goal.Y))
		},
	})
	if !ok {
		return nil
	}
	return res.Nodes
}

// steps expands a cell into its passable neighbors. The diagonal step
// cost keeps the Euclidean heuristic admissible under Conn8.
func (g *Grid) steps(c Cell) []search.Step[Cell, struct{}] {
	out := make([]search.Step[Cell, struct{}], 0, len(g.neighborOffsets))
	for _, d := range g.neighborOffsets {
		next := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if g.Blocked(next) {
			continue
		}
		cost := 1.0
		if d[0] != 0 && d[1] != 0 {
			cost = math.Sqrt2
		}
		out = append(out, search.Step[Cell, struct{}]{To: next, Cost: cost})
	}
	return out
}
