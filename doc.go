// Package safepath is a building-evacuation planning engine: it models a
// building as a graph of rooms, corridors and exits, recomputes a safe
// evacuation plan whenever the hazard picture changes, and derives the
// physical lock state of every door from that plan.
//
// The module is organized by concern:
//
//	building/  — validated building topology graph loaded from JSON
//	search/    — shared shortest-path core (uniform-cost and heuristic)
//	planner/   — hazard-aware safe-path search, room modes, door states
//	grid/      — pixel occupancy grid with A* for floorplan overlays
//	region/    — coarse region routing for the display map
//	floorplan/ — image ingestion, calibration, map artifact assembly
//	hardware/  — serial door-lock controller and its line protocol
//	server/    — HTTP API, room-state store, static UI serving
//	config/    — environment configuration
//
// The cmd/safepathd binary wires these into the running service.
//
// Planning is deterministic: for a fixed building and hazard set, every
// recomputation yields the same plan, the same door states, and the same
// frame on the wire.
package safepath
