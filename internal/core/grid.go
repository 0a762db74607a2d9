package core

// Cell addresses a lattice site by row and column.
type Cell struct {
	Row, Col int
}

// Less orders cells row-major.
func (c Cell) Less(o Cell) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// CompareCells is a row-major comparison usable with slices.SortFunc.
func CompareCells(a, b Cell) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	}
	return 0
}

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// W is the column count and H the row count.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid. There is no wrapping.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	clear(g.data)
}

// moore lists the eight neighbour offsets as (drow, dcol).
var moore = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors calls fn for every Moore neighbour of (row, col) that lies inside
// a rows x cols lattice. Cells off the edge do not exist.
func Neighbors(row, col, rows, cols int, fn func(r, c int)) {
	for _, d := range moore {
		r, c := row+d[0], col+d[1]
		if r < 0 || r >= rows || c < 0 || c >= cols {
			continue
		}
		fn(r, c)
	}
}
