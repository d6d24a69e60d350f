package planner

import (
	"fmt"
	"sync"

	"github.com/safepathshield/safepath/building"
)

// Planner is the single mutation surface for planning state. One mutex
// serializes hazard/override replacement, plan recomputation, and plan
// reads, so a reader always observes a plan consistent with the hazard set
// it was computed against.
type Planner struct {
	mu      sync.RWMutex
	graph   *building.Graph
	hazards map[string]struct{}
	locked  map[string]struct{}
	plan    Plan
}

// New builds a Planner over g with an empty hazard set and computes the
// initial (all-clear) plan.
func New(g *building.Graph) (*Planner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	p := &Planner{
		graph:   g,
		hazards: make(map[string]struct{}),
		locked:  make(map[string]struct{}),
	}
	p.plan = p.recomputeLocked()
	return p, nil
}

// SetHazards replaces the hazard set wholesale and recomputes the plan in
// the same critical section. Unknown node ids are rejected before any state
// changes; the previous hazard set and plan stay in effect on error.
// The returned plan is a snapshot the caller may retain.
func (p *Planner) SetHazards(ids []string) (Plan, error) {
	next := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if !p.graph.HasNode(id) {
			return Plan{}, fmt.Errorf("%w: %q", ErrUnknownHazardNode, id)
		}
		next[id] = struct{}{}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.hazards = next
	p.plan = p.recomputeLocked()
	return p.plan.clone(), nil
}

// SetLockedDoors replaces the manually forced-locked door set, independent
// of hazards, and recomputes the plan. Unknown door ids are rejected.
func (p *Planner) SetLockedDoors(ids []string) (Plan, error) {
	doors := p.graph.DoorIDs()
	next := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := doors[id]; !ok {
			return Plan{}, fmt.Errorf("%w: %q", ErrUnknownDoor, id)
		}
		next[id] = struct{}{}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.locked = next
	p.plan = p.recomputeLocked()
	return p.plan.clone(), nil
}

// Hazards returns the current hazard set as a sorted-insensitive id slice.
func (p *Planner) Hazards() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]string, 0, len(p.hazards))
	for id := range p.hazards {
		out = append(out, id)
	}
	return out
}

// Plan returns the latest plan snapshot.
func (p *Planner) Plan() Plan {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.plan.clone()
}

// ComputePlan recomputes the plan from the current hazard and override sets
// and returns the fresh snapshot. The stored snapshot is replaced as well.
// Two calls with identical graph and hazard set produce identical output.
func (p *Planner) ComputePlan() Plan {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.plan = p.recomputeLocked()
	return p.plan.clone()
}

// FindSafePath runs the hazard-aware search from start to any exit and
// returns the ordered traversed edges. ErrStartNotFound flags an undeclared
// start id; ErrNoSafePath means the room is not evacuable right now.
func (p *Planner) FindSafePath(start string) ([]*building.Edge, error) {
	if !p.graph.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	edges, _ := p.searchLocked(start)
	if edges == nil {
		return nil, fmt.Errorf("%w: from %q", ErrNoSafePath, start)
	}
	return edges, nil
}

// recomputeLocked builds a full plan for the current state. Caller holds mu.
func (p *Planner) recomputeLocked() Plan {
	plan := Plan{
		Rooms: make(map[string]RoomPlan, len(p.graph.Rooms())),
		Doors: make(map[string]DoorState),
	}
	usedByAny := make(map[string]struct{})

	for _, room := range p.graph.Rooms() {
		edges, exit := p.searchLocked(room)
		if edges == nil {
			plan.Rooms[room] = RoomPlan{Mode: ModeLockdown}
			continue
		}
		doorIDs := make([]string, 0, len(edges))
		for _, e := range edges {
			if e.DoorID == "" {
				continue
			}
			doorIDs = append(doorIDs, e.DoorID)
			usedByAny[e.DoorID] = struct{}{}
		}
		plan.Rooms[room] = RoomPlan{Mode: ModeEvac, Exit: exit, PathEdges: doorIDs}
	}

	plan.Doors = p.deriveDoorStates(usedByAny)
	return plan
}
