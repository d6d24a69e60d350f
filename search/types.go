// Package search defines the problem and result records of the shared
// shortest-path core. See doc.go for the package overview.
package search

// Step is one outgoing move offered during node expansion: the node it
// leads to, its non-negative cost, and an opaque payload the caller wants
// back on the found path (an edge record, for instance).
type Step[N comparable, E any] struct {
	To   N
	Cost float64
	Via  E
}

// Problem is one search instance. Expand must be deterministic for a
// fixed input: the frontier's FIFO tie-break turns expansion order into
// path order wherever costs tie. A nil Heuristic means uniform-cost
// search; a non-nil one must be admissible for the result to be optimal.
type Problem[N comparable, E any] struct {
	Start     N
	Goal      func(N) bool
	Expand    func(N) []Step[N, E]
	Heuristic func(N) float64
}

// Result is a found path. Nodes runs start to goal inclusive; Via[i] is
// the payload of the step taken from Nodes[i] to Nodes[i+1], so its
// length is len(Nodes)-1. Cost is the summed step cost.
type Result[N comparable, E any] struct {
	Nodes []N
	Via   []E
	Cost  float64
}
