// Package region defines the region records used by the display-path
// variant. See doc.go for the package overview.
package region

import "github.com/paulmach/orb"

// Kind tags a region's role on the floorplan.
type Kind string

const (
	// KindRoom is a clickable room area.
	KindRoom Kind = "ROOM"
	// KindExit is an exit area; nearest-exit routing targets these.
	KindExit Kind = "EXIT"
)

// Region is a labeled bounding area of the floorplan.
type Region struct {
	ID   string
	Kind Kind
	Box  orb.Bound
}

// Centroid returns the center point of the region's bounding box.
func (r Region) Centroid() orb.Point {
	return r.Box.Center()
}

// Edge declares a conceptual connection between two regions. Direction is
// irrelevant; the routing graph is undirected.
type Edge struct {
	From string
	To   string
}
