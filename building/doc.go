// Package building loads and indexes the building topology used by the
// evacuation planner: typed nodes (room, exit, plain), undirected door-gated
// edges, and a symmetric adjacency structure.
//
// What
//
//   - Decode a building definition document (nodes + edges) into validated,
//     strongly-typed records.
//   - Build a node-id → record index, a symmetric adjacency mapping, and
//     derived exit/room id lists.
//   - Reject malformed input up front: duplicate or empty node ids, unknown
//     node types, edges referencing undeclared nodes, self-loops, and
//     non-positive weights all fail construction with sentinel errors.
//
// Determinism
//
//	Adjacency lists preserve edge declaration order: each edge appends a
//	neighbor entry to both endpoints in the order edges appear in the
//	definition. Downstream breadth-first search expands neighbors in exactly
//	this order, so plan output is reproducible for a fixed definition.
//
// A Graph is built once per map definition and is immutable afterward; all
// read methods are safe for concurrent use.
//
// Complexity: construction is O(V + E) time and memory.
package building
