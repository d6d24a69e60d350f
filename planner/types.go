// Package planner defines the plan value types and sentinel errors.
// See doc.go for the package overview.
package planner

import "errors"

// Sentinel errors for planner operations.
var (
	// ErrNilGraph is returned if a nil building graph is passed to New.
	ErrNilGraph = errors.New("planner: building graph is nil")

	// ErrStartNotFound is returned when a safe-path search starts from an
	// undeclared node id.
	ErrStartNotFound = errors.New("planner: start node not found")

	// ErrNoSafePath is returned when no hazard-respecting route to any exit
	// exists from the start node. For room classification this is the normal
	// LOCKDOWN outcome, not a failure.
	ErrNoSafePath = errors.New("planner: no safe path to an exit")

	// ErrUnknownHazardNode is returned when a hazard update references a
	// node id that matches no declared node. Admitting it would create a
	// hazard that can never match anything, so the update is rejected.
	ErrUnknownHazardNode = errors.New("planner: hazard references unknown node")

	// ErrUnknownDoor is returned when a locked-door override references a
	// door id carried by no edge.
	ErrUnknownDoor = errors.New("planner: override references unknown door")
)

// Mode is the per-room planning outcome.
type Mode string

const (
	// ModeEvac means a safe route to an exit exists.
	ModeEvac Mode = "EVAC"

	// ModeLockdown means no safe route exists and the room shelters in place.
	ModeLockdown Mode = "LOCKDOWN"
)

// DoorState is the derived physical lock state for one door id.
type DoorState string

const (
	// DoorUnlock opens a door used by at least one evacuation path.
	DoorUnlock DoorState = "UNLOCK"

	// DoorLockIdle is the default locked state when a door is neither
	// threatened nor on any evacuation path.
	DoorLockIdle DoorState = "LOCK_IDLE"

	// DoorLockBlockThreat hard-locks a door adjacent to a hazardous node.
	// It dominates every other classification for that door id.
	DoorLockBlockThreat DoorState = "LOCK_BLOCK_THREAT"
)

// rank orders door states for the precedence reduction:
// THREAT > UNLOCK > IDLE.
func (s DoorState) rank() int {
	switch s {
	case DoorLockBlockThreat:
		return 3
	case DoorUnlock:
		return 2
	case DoorLockIdle:
		return 1
	default:
		return 0
	}
}

// RoomPlan is the planning outcome for a single room. For EVAC rooms, Exit
// is the reached exit id and PathEdges the ordered door ids traversed
// (edges without a door id are excluded).
type RoomPlan struct {
	Mode      Mode     `json:"mode"`
	Exit      string   `json:"exit,omitempty"`
	PathEdges []string `json:"path_edges,omitempty"`
}

// Plan is a full planning snapshot: every room's outcome plus every door's
// derived state. Doors without a door id never appear in Doors.
type Plan struct {
	Rooms map[string]RoomPlan  `json:"rooms"`
	Doors map[string]DoorState `json:"doors"`
}

// clone deep-copies the plan so readers can hold it beyond the lock.
func (p Plan) clone() Plan {
	out := Plan{
		Rooms: make(map[string]RoomPlan, len(p.Rooms)),
		Doors: make(map[string]DoorState, len(p.Doors)),
	}
	for id, rp := range p.Rooms {
		cp := rp
		if rp.PathEdges != nil {
			cp.PathEdges = make([]string, len(rp.PathEdges))
			copy(cp.PathEdges, rp.PathEdges)
		}
		out.Rooms[id] = cp
	}
	for id, st := range p.Doors {
		out.Doors[id] = st
	}
	return out
}
