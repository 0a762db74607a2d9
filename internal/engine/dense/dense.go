// Package dense implements the stochastic life engine on a double-buffered
// byte grid. It suits crowded boards where the sparse set would hold most of
// the lattice anyway.
package dense

import "stochlife/internal/core"

// Life holds the current and next generation as 0/1 bytes.
type Life struct {
	scale float64
	cur   *core.ByteGrid
	nxt   *core.ByteGrid
	n     int
	rng   core.Rand
}

// New returns an empty Life. Non-positive dimensions are clamped to 1 and a
// nil rng selects a time-seeded RNG.
func New(rows, cols int, scale float64, rng core.Rand) *Life {
	if rng == nil {
		rng = core.NewRNG(0)
	}
	return &Life{
		scale: scale,
		cur:   core.NewByteGrid(cols, rows),
		nxt:   core.NewByteGrid(cols, rows),
		rng:   rng,
	}
}

// Name returns the engine identifier.
func (l *Life) Name() string { return "dense" }

// Rows returns the row count.
func (l *Life) Rows() int { return l.cur.H }

// Cols returns the column count.
func (l *Life) Cols() int { return l.cur.W }

// Scale returns the pixel size of a cell.
func (l *Life) Scale() float64 { return l.scale }

// Len returns the number of live cells.
func (l *Life) Len() int { return l.n }

// Alive reports whether (row, col) is live.
func (l *Life) Alive(row, col int) bool {
	if !l.cur.InBounds(col, row) {
		return false
	}
	return l.cur.Cells()[l.cur.Index(col, row)] == 1
}

// LiveCells calls fn for each live cell in row-major order until fn returns
// false.
func (l *Life) LiveCells(fn func(core.Cell) bool) {
	w := l.cur.W
	for i, v := range l.cur.Cells() {
		if v == 0 {
			continue
		}
		if !fn(core.Cell{Row: i / w, Col: i % w}) {
			return
		}
	}
}

// Toggle flips (row, col). Out-of-range coordinates are ignored.
func (l *Life) Toggle(row, col int) {
	if !l.cur.InBounds(col, row) {
		return
	}
	idx := l.cur.Index(col, row)
	cells := l.cur.Cells()
	if cells[idx] == 1 {
		cells[idx] = 0
		l.n--
		return
	}
	cells[idx] = 1
	l.n++
}

// Advance computes the next generation and then applies the seeding
// perturbation along the left edge.
func (l *Life) Advance() {
	w, h := l.cur.W, l.cur.H
	cur, nxt := l.cur.Cells(), l.nxt.Cells()
	l.n = 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			core.Neighbors(y, x, h, w, func(r, c int) {
				neighbors += int(cur[r*w+c])
			})
			idx := y*w + x
			nxt[idx] = 0
			if neighbors == 3 || (neighbors == 2 && l.rng.Survives()) {
				nxt[idx] = 1
				l.n++
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur

	width := min(core.SeedColumns, w)
	for k := l.rng.Perturbations(); k > 0; k-- {
		row := l.rng.IntN(h)
		col := l.rng.IntN(width)
		l.Toggle(row, col)
	}
}

func init() {
	core.RegisterEngine("dense", func(rows, cols int, scale float64, rng core.Rand) core.Engine {
		return New(rows, cols, scale, rng)
	})
}
