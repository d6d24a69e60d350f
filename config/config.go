// Package config loads the service configuration from the environment,
// with an optional .env file for development setups. Every knob has a
// default that matches a single-building deployment on local hardware.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the full runtime configuration of the planning service.
type Config struct {
	// HTTPAddr is the listen address of the API server.
	HTTPAddr string

	// StaticDir holds the UI files and the uploaded floorplan image.
	StaticDir string

	// BuildingPath is the building definition document. It has no default
	// on purpose: the service cannot plan without a building.
	BuildingPath string

	// CalibrationPath maps building nodes to floorplan pixels. Empty
	// disables the map surface.
	CalibrationPath string

	// FloorplanPath is where the floorplan image lives (and where uploads
	// are stored).
	FloorplanPath string

	// RoomStatesPath persists detector verdicts across restarts.
	RoomStatesPath string

	// SerialPort, SerialBaud and SerialEnabled configure the door-lock
	// controller line.
	SerialPort    string
	SerialBaud    int
	SerialEnabled bool
}

// Load reads .env if present, then the environment, and returns the
// resolved configuration.
func Load() (Config, error) {
	// A missing .env is the normal production case.
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:        getenv("SAFEPATH_HTTP_ADDR", ":8000"),
		StaticDir:       getenv("SAFEPATH_STATIC_DIR", "static"),
		BuildingPath:    getenv("SAFEPATH_BUILDING", "building.json"),
		CalibrationPath: os.Getenv("SAFEPATH_CALIBRATION"),
		FloorplanPath:   getenv("SAFEPATH_FLOORPLAN", "static/floorplan.png"),
		RoomStatesPath:  getenv("SAFEPATH_ROOM_STATES", "room_states.json"),
		SerialPort:      getenv("SAFEPATH_SERIAL_PORT", "/dev/ttyACM0"),
	}

	baud, err := intenv("SAFEPATH_SERIAL_BAUD", 115200)
	if err != nil {
		return Config{}, err
	}
	cfg.SerialBaud = baud

	enabled, err := boolenv("SAFEPATH_SERIAL_ENABLED", false)
	if err != nil {
		return Config{}, err
	}
	cfg.SerialEnabled = enabled

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intenv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

func boolenv(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", key, err)
	}
	return b, nil
}
