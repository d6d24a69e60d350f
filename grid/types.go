// Package grid defines the occupancy-grid types, options, and sentinel
// errors. See doc.go for the package overview.
package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell addresses one grid cell by column (X) and row (Y).
type Cell struct {
	X, Y int
}

// Options contains tunable parameters for grid search.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns Options with Conn4, the connectivity the
// floorplan overlays use.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}
