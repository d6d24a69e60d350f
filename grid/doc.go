// Package grid treats a binary occupancy raster (1 = blocked, 0 = free) as
// a search space and provides pixel-accurate shortest paths for
// visualization overlays.
//
// What
//
//   - Grid wraps a rectangular occupancy matrix, deep-copied on
//     construction so it is immutable afterward.
//   - AStar runs the shared search core between two cells with unit step
//     cost and a Euclidean-distance heuristic. The heuristic is
//     admissible, so the returned path is of optimal length regardless of
//     how equal-priority frontier entries tie-break.
//   - Connectivity defaults to 4-connected orthogonal moves (Conn4);
//     Conn8 adds diagonals for callers that want smoother overlays.
//
// The grid search never consults the hazard set: it answers "what is the
// nearest exit geometrically", used only for display. An unreachable goal
// yields an empty path, not an error. Worst-case work is bounded by the
// grid size; run it off the request-handling path for large rasters.
//
// Complexity: O(W×H log(W×H)) time, O(W×H) memory.
package grid
