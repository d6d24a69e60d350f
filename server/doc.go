// Package server exposes the planning engine over HTTP: the live plan
// snapshot, hazard replacement, detector room states, the floorplan map
// artifact, and floorplan upload, plus static file serving for the UI.
//
// The hazard surface is replace-all: every POST carries the complete
// hazard set and the response is the plan computed against exactly that
// set. Room states are the vision collaborator's integration point — each
// non-clear room maps into the hazard set, so detectors never talk to the
// planner directly.
//
// Door actuation is fire-and-forget through a PlanSink; a slow or absent
// controller never delays an HTTP response.
package server
