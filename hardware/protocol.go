package hardware

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/safepathshield/safepath/planner"
)

// Encode writes one complete door-state frame to w: a line per door id in
// sorted order, then the END terminator. The frame is buffered and written
// in a single call so a partial frame never reaches the line.
func Encode(w io.Writer, doors map[string]planner.DoorState) error {
	ids := make([]string, 0, len(doors))
	for id := range doors {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var buf bytes.Buffer
	for _, id := range ids {
		fmt.Fprintf(&buf, "DOOR %s %s\n", id, doors[id])
	}
	buf.WriteString("END\n")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("hardware: write door frame: %w", err)
	}
	return nil
}
