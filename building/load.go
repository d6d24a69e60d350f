package building

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Load decodes a building definition document from r and builds the graph.
// A decode failure or a validation failure is a configuration error: the
// caller must abort before serving any plan.
func Load(r io.Reader) (*Graph, error) {
	var def Definition
	if err := json.NewDecoder(r).Decode(&def); err != nil {
		return nil, fmt.Errorf("building: decode definition: %w", err)
	}
	return New(def)
}

// LoadFile reads and decodes the building definition at path.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("building: open definition: %w", err)
	}
	defer f.Close()
	return Load(f)
}
