package hardware_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/safepathshield/safepath/hardware"
	"github.com/safepathshield/safepath/planner"
)

func TestEncodeFrame(t *testing.T) {
	var buf bytes.Buffer
	err := hardware.Encode(&buf, map[string]planner.DoorState{
		"D3": planner.DoorLockBlockThreat,
		"D1": planner.DoorUnlock,
		"D2": planner.DoorLockIdle,
	})
	require.NoError(t, err)
	require.Equal(t,
		"DOOR D1 UNLOCK\n"+
			"DOOR D2 LOCK_IDLE\n"+
			"DOOR D3 LOCK_BLOCK_THREAT\n"+
			"END\n",
		buf.String())
}

func TestEncodeEmptyFrame(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, hardware.Encode(&buf, nil))
	require.Equal(t, "END\n", buf.String())
}

type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

func TestEncodeWriteError(t *testing.T) {
	cause := errors.New("line gone")
	err := hardware.Encode(failWriter{err: cause}, map[string]planner.DoorState{
		"D1": planner.DoorUnlock,
	})
	require.ErrorIs(t, err, cause)
}
