package floorplan

import (
	"fmt"
	"image"
	"image/color"
	"io"

	// Register decoders for the two floorplan formats the upload surface
	// accepts.
	_ "image/jpeg"
	_ "image/png"

	"github.com/safepathshield/safepath/grid"
)

// freeLuminance is the fixed cutoff separating floor from walls: a pixel
// with gray value >= freeLuminance is free, anything darker is a wall.
const freeLuminance = 240

// Occupancy thresholds img into a binary occupancy grid (1 = blocked,
// 0 = free) with the package's 4-connected default.
func Occupancy(img image.Image) (*grid.Grid, error) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, grid.ErrEmptyGrid
	}
	values := make([][]int, b.Dy())
	for y := 0; y < b.Dy(); y++ {
		row := make([]int, b.Dx())
		for x := 0; x < b.Dx(); x++ {
			g := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			if g.Y < freeLuminance {
				row[x] = 1
			}
		}
		values[y] = row
	}
	return grid.New(values, grid.DefaultOptions())
}

// LoadOccupancy decodes a PNG or JPEG floorplan from r and thresholds it.
func LoadOccupancy(r io.Reader) (*grid.Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("floorplan: decode image: %w", err)
	}
	return Occupancy(img)
}
