// Package search is the single shortest-path core shared by every
// pathfinding consumer in the module: the hazard-aware evacuation search
// (uniform cost, no heuristic), the pixel overlay search (unit/√2 cost,
// Euclidean heuristic), and the region display routing (centroid-distance
// sweep).
//
// The core is best-first search over a caller-supplied expansion function,
// parameterized by node type and by an opaque payload carried on each step
// (the evacuation search threads the traversed edge through it). With a
// nil heuristic it is Dijkstra; with unit costs that degenerates to
// breadth-first order, because the frontier breaks priority ties in
// insertion order (FIFO). A single tie-break rule for all consumers is
// the point: two searches over the same input expand in the same order.
//
// The frontier uses the lazy decrease-key pattern: an improved cost pushes
// a duplicate entry and stale entries are skipped at pop via the closed
// set.
//
// Complexity: O((V + E) log V) pushes/pops for V reachable nodes and E
// expanded steps.
package search
