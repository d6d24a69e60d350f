package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/safepathshield/safepath/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SAFEPATH_HTTP_ADDR", "SAFEPATH_STATIC_DIR", "SAFEPATH_BUILDING",
		"SAFEPATH_CALIBRATION", "SAFEPATH_FLOORPLAN", "SAFEPATH_ROOM_STATES",
		"SAFEPATH_SERIAL_PORT", "SAFEPATH_SERIAL_BAUD", "SAFEPATH_SERIAL_ENABLED",
	} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, ":8000", cfg.HTTPAddr)
	require.Equal(t, "static", cfg.StaticDir)
	require.Equal(t, "building.json", cfg.BuildingPath)
	require.Empty(t, cfg.CalibrationPath)
	require.Equal(t, "static/floorplan.png", cfg.FloorplanPath)
	require.Equal(t, "room_states.json", cfg.RoomStatesPath)
	require.Equal(t, "/dev/ttyACM0", cfg.SerialPort)
	require.Equal(t, 115200, cfg.SerialBaud)
	require.False(t, cfg.SerialEnabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SAFEPATH_HTTP_ADDR", "127.0.0.1:9090")
	t.Setenv("SAFEPATH_BUILDING", "/etc/safepath/building.json")
	t.Setenv("SAFEPATH_CALIBRATION", "/etc/safepath/calibration.json")
	t.Setenv("SAFEPATH_SERIAL_BAUD", "9600")
	t.Setenv("SAFEPATH_SERIAL_ENABLED", "true")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9090", cfg.HTTPAddr)
	require.Equal(t, "/etc/safepath/building.json", cfg.BuildingPath)
	require.Equal(t, "/etc/safepath/calibration.json", cfg.CalibrationPath)
	require.Equal(t, 9600, cfg.SerialBaud)
	require.True(t, cfg.SerialEnabled)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("SAFEPATH_SERIAL_BAUD", "fast")
	_, err := config.Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "SAFEPATH_SERIAL_BAUD")
}
