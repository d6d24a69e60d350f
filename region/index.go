package region

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// entry wraps a Region for R-tree storage.
type entry struct {
	region Region
	rect   rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect {
	return e.rect
}

// Index answers point-in-region queries over the floorplan, backed by an
// R-tree over the region bounding boxes.
type Index struct {
	tree *rtreego.Rtree
}

// NewIndex builds the spatial index. Regions whose box degenerates to a
// point or line are skipped; they cannot be hit-tested.
func NewIndex(regions []Region) *Index {
	tree := rtreego.NewTree(2, 25, 50)
	for _, r := range regions {
		w := r.Box.Max.X() - r.Box.Min.X()
		h := r.Box.Max.Y() - r.Box.Min.Y()
		if w <= 0 || h <= 0 {
			continue
		}
		rect, err := rtreego.NewRect(
			rtreego.Point{r.Box.Min.X(), r.Box.Min.Y()},
			[]float64{w, h},
		)
		if err != nil {
			continue
		}
		tree.Insert(&entry{region: r, rect: rect})
	}
	return &Index{tree: tree}
}

// Locate returns the region containing pixel (x, y), or nil when the point
// falls outside every region. When boxes overlap, the region whose centroid
// is closest to the point wins, which keeps hit-testing stable at shared
// borders.
func (ix *Index) Locate(x, y float64) *Region {
	probe, err := rtreego.NewRect(rtreego.Point{x, y}, []float64{1e-9, 1e-9})
	if err != nil {
		return nil
	}
	p := orb.Point{x, y}

	var found *Region
	bestDist := 0.0
	for _, item := range ix.tree.SearchIntersect(probe) {
		e := item.(*entry)
		if !e.region.Box.Contains(p) {
			continue
		}
		c := e.region.Centroid()
		dx, dy := c.X()-x, c.Y()-y
		d := dx*dx + dy*dy
		if found == nil || d < bestDist {
			r := e.region
			found = &r
			bestDist = d
		}
	}
	return found
}
