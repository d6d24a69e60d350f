package floorplan

import (
	"fmt"
	"os"
	"sort"

	"github.com/paulmach/orb"

	"github.com/safepathshield/safepath/grid"
	"github.com/safepathshield/safepath/region"
)

// Clickable-region half extents around each calibrated point, in pixels.
const (
	roomHalfW = 80
	roomHalfH = 60
	exitHalfW = 40
	exitHalfH = 30
)

// RegionBox is one clickable region of the map artifact, serialized as the
// four corners of its box.
type RegionBox struct {
	ID     string       `json:"id"`
	Type   region.Kind  `json:"type"`
	Points [][2]float64 `json:"points"`
}

// ConceptualEdge is one declared room→exit connection of the artifact.
type ConceptualEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// MapArtifact is the display-map document served to the UI: clickable
// regions, conceptual edges, coarse textual routes, pixel overlay paths,
// and the source image size.
type MapArtifact struct {
	Regions     []RegionBox         `json:"regions"`
	Edges       []ConceptualEdge    `json:"edges"`
	PathsToExit map[string][]string `json:"paths_to_exit"`
	PathsXY     map[string][][2]int `json:"paths_xy"`
	ImageSize   [2]int              `json:"image_size"`
}

// BuildMap assembles the full artifact from an occupancy grid and a
// calibration table. Rooms whose pixel path to the exit is unreachable get
// an empty overlay path; that is a normal outcome, not an error.
//
// Regions and edges are emitted in sorted id order so the artifact is
// deterministic for a fixed input.
func BuildMap(g *grid.Grid, calib Calibration) (*MapArtifact, error) {
	if err := calib.Validate(g.Width(), g.Height()); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(calib.Points))
	for id := range calib.Points {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	art := &MapArtifact{
		PathsXY:   make(map[string][][2]int, len(ids)-1),
		ImageSize: [2]int{g.Width(), g.Height()},
	}
	regions := make([]region.Region, 0, len(ids))

	for _, id := range ids {
		p := calib.Points[id]
		kind, hw, hh := region.KindRoom, float64(roomHalfW), float64(roomHalfH)
		if id == calib.Exit {
			kind, hw, hh = region.KindExit, exitHalfW, exitHalfH
		}
		box := orb.Bound{
			Min: orb.Point{float64(p[0]) - hw, float64(p[1]) - hh},
			Max: orb.Point{float64(p[0]) + hw, float64(p[1]) + hh},
		}
		regions = append(regions, region.Region{ID: id, Kind: kind, Box: box})
		art.Regions = append(art.Regions, RegionBox{
			ID:   id,
			Type: kind,
			Points: [][2]float64{
				{box.Min.X(), box.Min.Y()},
				{box.Max.X(), box.Min.Y()},
				{box.Max.X(), box.Max.Y()},
				{box.Min.X(), box.Max.Y()},
			},
		})
		if id != calib.Exit {
			art.Edges = append(art.Edges, ConceptualEdge{From: id, To: calib.Exit})
		}
	}

	edges := make([]region.Edge, len(art.Edges))
	for i, e := range art.Edges {
		edges[i] = region.Edge{From: e.From, To: e.To}
	}
	art.PathsToExit = region.PathsToExit(regions, edges)

	exit := calib.Points[calib.Exit]
	goal := grid.Cell{X: exit[0], Y: exit[1]}
	for _, id := range ids {
		if id == calib.Exit {
			continue
		}
		p := calib.Points[id]
		cells := g.AStar(grid.Cell{X: p[0], Y: p[1]}, goal)
		xy := make([][2]int, len(cells))
		for i, c := range cells {
			xy[i] = [2]int{c.X, c.Y}
		}
		art.PathsXY[id] = xy
	}

	return art, nil
}

// Builder rebuilds the map artifact from its two on-disk inputs. The
// server's upload surface re-runs it whenever the floorplan changes.
type Builder struct {
	ImagePath   string
	Calibration Calibration
}

// Build loads the floorplan image, thresholds it, and assembles the
// artifact.
func (b *Builder) Build() (*MapArtifact, error) {
	f, err := os.Open(b.ImagePath)
	if err != nil {
		return nil, fmt.Errorf("floorplan: open image: %w", err)
	}
	defer f.Close()

	g, err := LoadOccupancy(f)
	if err != nil {
		return nil, err
	}
	return BuildMap(g, b.Calibration)
}
