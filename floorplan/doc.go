// Package floorplan turns a floorplan image into the display-map artifact
// the UI consumes: a binary occupancy grid, clickable regions around
// calibrated room points, coarse region routes, and pixel-accurate overlay
// paths to the exit.
//
// Ingestion thresholds the image at a fixed luminance cutoff: pixels at or
// above the cutoff are free floor, darker pixels are walls. Per-room pixel
// coordinates come from an external calibration document keyed by
// building — calibration is configuration data produced by map ingestion,
// never embedded in planning logic.
//
// Map building runs on map (re)construction, not on hazard changes, and
// none of its outputs feed lock decisions.
package floorplan
