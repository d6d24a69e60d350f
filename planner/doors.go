package planner

// deriveDoorStates classifies every door id from (a) hazard exposure of the
// edges bearing it and (b) membership in the used-by-any set of EVAC paths.
//
// Each edge contributes a candidate state; the door keeps the
// highest-ranked candidate (THREAT > UNLOCK > IDLE), so the outcome is
// independent of edge iteration order. In particular a door spanning
// several edges stays UNLOCK when any one of its edges lies on an
// evacuation path, and LOCK_BLOCK_THREAT dominates everything as soon as
// any of its edges touches a hazardous node.
//
// Caller holds mu.
func (p *Planner) deriveDoorStates(usedByAny map[string]struct{}) map[string]DoorState {
	states := make(map[string]DoorState)
	for _, e := range p.graph.Edges() {
		if e.DoorID == "" {
			continue
		}

		candidate := DoorLockIdle
		_, fromHazard := p.hazards[e.From]
		_, toHazard := p.hazards[e.To]
		switch {
		case fromHazard || toHazard:
			candidate = DoorLockBlockThreat
		default:
			if _, used := usedByAny[e.DoorID]; used {
				candidate = DoorUnlock
			}
		}

		if candidate.rank() > states[e.DoorID].rank() {
			states[e.DoorID] = candidate
		}
	}
	return states
}
