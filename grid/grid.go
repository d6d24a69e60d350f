package grid

// Grid is an immutable binary occupancy raster: cells[y][x] == 1 is a
// blocked cell (wall), 0 is free floor.
type Grid struct {
	width, height   int
	cells           [][]int
	conn            Connectivity
	neighborOffsets [][2]int
}

// New constructs a Grid from a non-empty, rectangular 2D slice. The input
// is deep-copied to ensure immutability. Returns ErrEmptyGrid if values has
// no rows or no columns, ErrNonRectangular if any row length differs.
//
// Complexity: O(W×H) time and memory.
func New(values [][]int, opts Options) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &Grid{
		width:           w,
		height:          h,
		cells:           cells,
		conn:            opts.Conn,
		neighborOffsets: offsets,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Connectivity returns the neighbor connectivity the grid searches with.
func (g *Grid) Connectivity() Connectivity { return g.conn }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within the grid boundaries.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Blocked reports whether c is a wall cell. Out-of-bounds cells count as
// blocked.
func (g *Grid) Blocked(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.cells[c.Y][c.X] != 0
}
