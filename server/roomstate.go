package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
)

// Sentinel errors for the room-state store.
var (
	// ErrUnknownRoom is returned when a state update names an undeclared room.
	ErrUnknownRoom = errors.New("server: unknown room")

	// ErrInvalidRoomState is returned for a state outside the detector
	// vocabulary.
	ErrInvalidRoomState = errors.New("server: invalid room state")
)

// RoomState is one detector verdict for a room.
type RoomState string

const (
	StateClear   RoomState = "clear"
	StateFire    RoomState = "fire"
	StateGun     RoomState = "gun"
	StateFireGun RoomState = "fire_gun"
)

func (s RoomState) valid() bool {
	switch s {
	case StateClear, StateFire, StateGun, StateFireGun:
		return true
	}
	return false
}

// RoomStateStore keeps the per-room detector states, backed by a JSON file
// so verdicts survive a restart. Rooms absent from the file default to
// clear. An empty path keeps the store in memory only.
type RoomStateStore struct {
	mu     sync.Mutex
	path   string
	states map[string]RoomState
}

// NewRoomStateStore builds a store for the declared rooms, loading any
// persisted states from path. A missing or unreadable file is treated as
// all-clear.
func NewRoomStateStore(path string, rooms []string) *RoomStateStore {
	st := &RoomStateStore{
		path:   path,
		states: make(map[string]RoomState, len(rooms)),
	}
	for _, r := range rooms {
		st.states[r] = StateClear
	}
	if path == "" {
		return st
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return st
	}
	var loaded map[string]RoomState
	if json.Unmarshal(data, &loaded) != nil {
		return st
	}
	for r, s := range loaded {
		if _, ok := st.states[r]; ok && s.valid() {
			st.states[r] = s
		}
	}
	return st
}

// States returns a copy of the current room-state map.
func (st *RoomStateStore) States() map[string]RoomState {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make(map[string]RoomState, len(st.states))
	for r, s := range st.states {
		out[r] = s
	}
	return out
}

// Set records a detector verdict for one room and persists the store.
func (st *RoomStateStore) Set(room string, state RoomState) error {
	if !state.valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRoomState, state)
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.states[room]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRoom, room)
	}
	st.states[room] = state
	return st.persistLocked()
}

// Hazardous returns the sorted ids of rooms in any non-clear state.
func (st *RoomStateStore) Hazardous() []string {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]string, 0, len(st.states))
	for r, s := range st.states {
		if s != StateClear {
			out = append(out, r)
		}
	}
	sort.Strings(out)
	return out
}

func (st *RoomStateStore) persistLocked() error {
	if st.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(st.states, "", "  ")
	if err != nil {
		return fmt.Errorf("server: encode room states: %w", err)
	}
	if err := os.WriteFile(st.path, data, 0o644); err != nil {
		return fmt.Errorf("server: persist room states: %w", err)
	}
	return nil
}
