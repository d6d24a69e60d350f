// Package region computes coarse, display-only evacuation routes between
// labeled bounding areas of a floorplan.
//
// What
//
//   - Region is a labeled bounding box (orb.Bound) tagged ROOM or EXIT.
//   - PathsToExit builds a weighted graph over the declared conceptual
//     edges, using Euclidean distance between region centroids as edge
//     weight, and returns the minimum-weight path from every region to its
//     nearest exit (a uniform-cost sweep of the shared search core over
//     non-negative weights).
//   - Index is an R-tree over the region boxes answering which region
//     contains a given pixel, for UI hit-testing.
//
// The package is read-only relative to hazard state: it renders auxiliary
// textual route descriptions and is never authoritative for lock
// decisions. It tolerates partial input: edges referencing unknown regions
// are skipped, and regions with no route to an exit are simply absent from
// the result.
package region
