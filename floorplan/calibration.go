package floorplan

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Sentinel errors for calibration documents.
var (
	// ErrNoPoints indicates a calibration with no room points at all.
	ErrNoPoints = errors.New("floorplan: calibration has no points")

	// ErrNoExit indicates the calibration names no exit, or names one
	// without a pixel coordinate.
	ErrNoExit = errors.New("floorplan: calibration exit point missing")

	// ErrPointOutOfBounds indicates a calibrated point outside the image.
	ErrPointOutOfBounds = errors.New("floorplan: calibrated point outside image bounds")
)

// Calibration maps logical node ids to pixel coordinates on one specific
// floorplan raster, plus the id of the true exit. It is supplied per
// building as external configuration.
type Calibration struct {
	Exit   string            `json:"exit"`
	Points map[string][2]int `json:"points"`
}

// LoadCalibration decodes a calibration document from r.
func LoadCalibration(r io.Reader) (Calibration, error) {
	var c Calibration
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return Calibration{}, fmt.Errorf("floorplan: decode calibration: %w", err)
	}
	return c, nil
}

// LoadCalibrationFile reads and decodes the calibration at path.
func LoadCalibrationFile(path string) (Calibration, error) {
	f, err := os.Open(path)
	if err != nil {
		return Calibration{}, fmt.Errorf("floorplan: open calibration: %w", err)
	}
	defer f.Close()
	return LoadCalibration(f)
}

// Validate checks the calibration against an image of the given size.
func (c Calibration) Validate(width, height int) error {
	if len(c.Points) == 0 {
		return ErrNoPoints
	}
	if c.Exit == "" {
		return ErrNoExit
	}
	if _, ok := c.Points[c.Exit]; !ok {
		return fmt.Errorf("%w: %q", ErrNoExit, c.Exit)
	}
	for id, p := range c.Points {
		if p[0] < 0 || p[0] >= width || p[1] < 0 || p[1] >= height {
			return fmt.Errorf("%w: %q at (%d,%d) on %d×%d image",
				ErrPointOutOfBounds, id, p[0], p[1], width, height)
		}
	}
	return nil
}
