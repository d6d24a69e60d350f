package grid_test

import (
	"errors"
	"testing"

	"github.com/safepathshield/safepath/grid"
)

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		values [][]int
		err    error
	}{
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{0, 0}, {0}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := grid.New(tc.values, grid.DefaultOptions()); !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.values, err, tc.err)
			}
		})
	}
}

// TestNew_Immutable verifies the input slice is deep-copied.
func TestNew_Immutable(t *testing.T) {
	values := [][]int{{0, 0}, {0, 0}}
	g, err := grid.New(values, grid.DefaultOptions())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	values[1][1] = 1
	if g.Blocked(grid.Cell{X: 1, Y: 1}) {
		t.Error("mutating the input slice leaked into the grid")
	}
}

// TestConnectivity verifies the grid keeps its configured connectivity.
func TestConnectivity(t *testing.T) {
	g, err := grid.New([][]int{{0}}, grid.DefaultOptions())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got := g.Connectivity(); got != grid.Conn4 {
		t.Errorf("Connectivity() = %v; want Conn4", got)
	}
	g, err = grid.New([][]int{{0}}, grid.Options{Conn: grid.Conn8})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got := g.Connectivity(); got != grid.Conn8 {
		t.Errorf("Connectivity() = %v; want Conn8", got)
	}
}

// TestBlocked covers bounds and wall cells.
func TestBlocked(t *testing.T) {
	g, err := grid.New([][]int{
		{0, 1},
		{0, 0},
	}, grid.DefaultOptions())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if g.Blocked(grid.Cell{X: 0, Y: 0}) {
		t.Error("free cell reported blocked")
	}
	if !g.Blocked(grid.Cell{X: 1, Y: 0}) {
		t.Error("wall cell reported free")
	}
	for _, c := range []grid.Cell{{X: -1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}} {
		if !g.Blocked(c) {
			t.Errorf("out-of-bounds %v reported free", c)
		}
	}
}
