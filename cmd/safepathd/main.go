// Command safepathd runs the evacuation planning service: it loads the
// building definition, computes the initial plan, optionally builds the
// floorplan map and connects the door-lock controller, then serves the
// HTTP API.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/safepathshield/safepath/building"
	"github.com/safepathshield/safepath/config"
	"github.com/safepathshield/safepath/floorplan"
	"github.com/safepathshield/safepath/hardware"
	"github.com/safepathshield/safepath/planner"
	"github.com/safepathshield/safepath/server"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(log)

	if err := run(log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires the service together. A bad building definition is fatal:
// serving plans against a broken topology would lock people in.
func run(log *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	graph, err := building.LoadFile(cfg.BuildingPath)
	if err != nil {
		return fmt.Errorf("load building %s: %w", cfg.BuildingPath, err)
	}
	log.Info("building loaded", "path", cfg.BuildingPath,
		"nodes", graph.NodeCount(), "edges", graph.EdgeCount(),
		"rooms", len(graph.Rooms()), "exits", len(graph.Exits()))

	p, err := planner.New(graph)
	if err != nil {
		return err
	}

	opts := server.Options{
		Log:       log,
		Planner:   p,
		Rooms:     server.NewRoomStateStore(cfg.RoomStatesPath, graph.Rooms()),
		StaticDir: cfg.StaticDir,
	}

	if cfg.CalibrationPath != "" {
		calib, err := floorplan.LoadCalibrationFile(cfg.CalibrationPath)
		if err != nil {
			return fmt.Errorf("load calibration %s: %w", cfg.CalibrationPath, err)
		}
		builder := &floorplan.Builder{
			ImagePath:   cfg.FloorplanPath,
			Calibration: calib,
		}
		opts.Builder = builder

		// A missing or stale floorplan image is not fatal; the map comes
		// back once one is uploaded.
		art, err := builder.Build()
		if err != nil {
			log.Warn("floorplan map not built", "error", err)
		} else {
			opts.Artifact = art
			log.Info("floorplan map built", "size", art.ImageSize,
				"regions", len(art.Regions))
		}
	}

	if cfg.SerialEnabled {
		doors := hardware.Open(cfg.SerialPort, cfg.SerialBaud, log)
		defer doors.Close()
		doors.Apply(p.Plan().Doors)
		opts.Doors = doors
	}

	srv, err := server.New(opts)
	if err != nil {
		return err
	}
	return srv.Run(cfg.HTTPAddr)
}
