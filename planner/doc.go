// Package planner computes hazard-aware evacuation plans over a building
// graph and derives per-door lock states from them.
//
// What
//
//   - Planner owns the mutable planning state: the current hazard set
//     (node ids considered unsafe) and the locked-door override set.
//     Both use replace-all semantics; callers always supply the complete
//     current picture.
//   - FindSafePath searches from a start node to any exit, skipping
//     hazardous nodes and overridden doors. It instantiates the shared
//     search core with unit step costs; the core's FIFO tie-break makes
//     that breadth-first order, so the returned path has minimum hop count
//     among safe paths and ties fall to edge declaration order in the
//     definition, keeping plans reproducible.
//   - ComputePlan classifies every room as EVAC (a safe route exists,
//     recording the reached exit and the ordered door ids along the route)
//     or LOCKDOWN, then derives each door's state:
//
//     LOCK_BLOCK_THREAT  an edge bearing the door id has a hazardous endpoint
//     UNLOCK             the door id is used by at least one EVAC path
//     LOCK_IDLE          neither condition holds
//
//     Resolution is a precedence-ranked reduction over all edges sharing a
//     door id (THREAT > UNLOCK > IDLE), independent of edge iteration order.
//
// Concurrency
//
//	Hazard updates arrive from one producer while plan reads come from
//	another, so hazard replacement and plan recomputation happen inside a
//	single critical section: a reader never observes a plan computed against
//	a hazard set that was overwritten mid-computation. The searches
//	themselves are synchronous and run to completion on the calling
//	goroutine; nothing here blocks on external I/O.
//
// A room that is itself hazardous is never evacuable, even if a physical
// route from it remains passable. Absence of a safe path is a normal
// planning outcome (LOCKDOWN), not an error.
//
// Complexity: ComputePlan is O(rooms × (V + E)).
package planner
