// Package sparse implements the stochastic life engine over a sparse set of
// live coordinates. Work per generation scales with the number of live cells.
package sparse

import (
	"slices"

	"stochlife/internal/core"
)

// Grid holds the live set of a rows x cols lattice.
type Grid struct {
	rows, cols int
	scale      float64
	live       map[core.Cell]struct{}
	rng        core.Rand

	// counts is neighbour-count scratch indexed like a ByteGrid; only the
	// entries listed in touched are non-zero between generations.
	counts  *core.ByteGrid
	touched []core.Cell
}

// New returns an empty Grid. Non-positive dimensions are clamped to 1 and a
// nil rng selects a time-seeded RNG.
func New(rows, cols int, scale float64, rng core.Rand) *Grid {
	counts := core.NewByteGrid(cols, rows)
	if rng == nil {
		rng = core.NewRNG(0)
	}
	return &Grid{
		rows:   counts.H,
		cols:   counts.W,
		scale:  scale,
		live:   make(map[core.Cell]struct{}),
		rng:    rng,
		counts: counts,
	}
}

// Name returns the engine identifier.
func (g *Grid) Name() string { return "sparse" }

// Rows returns the row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.cols }

// Scale returns the pixel size of a cell.
func (g *Grid) Scale() float64 { return g.scale }

// Len returns the number of live cells.
func (g *Grid) Len() int { return len(g.live) }

// Alive reports whether (row, col) is live.
func (g *Grid) Alive(row, col int) bool {
	_, ok := g.live[core.Cell{Row: row, Col: col}]
	return ok
}

// LiveCells calls fn for each live cell until fn returns false.
func (g *Grid) LiveCells(fn func(core.Cell) bool) {
	for c := range g.live {
		if !fn(c) {
			return
		}
	}
}

// Toggle flips (row, col). Out-of-range coordinates are ignored.
func (g *Grid) Toggle(row, col int) {
	if !g.counts.InBounds(col, row) {
		return
	}
	c := core.Cell{Row: row, Col: col}
	if _, ok := g.live[c]; ok {
		delete(g.live, c)
		return
	}
	g.live[c] = struct{}{}
}

// Advance computes the next generation and then applies the seeding
// perturbation along the left edge.
func (g *Grid) Advance() {
	cells := g.counts.Cells()
	g.touched = g.touched[:0]
	for c := range g.live {
		core.Neighbors(c.Row, c.Col, g.rows, g.cols, func(r, col int) {
			idx := g.counts.Index(col, r)
			if cells[idx] == 0 {
				g.touched = append(g.touched, core.Cell{Row: r, Col: col})
			}
			cells[idx]++
		})
	}

	clear(g.live)

	// Row-major order keeps the random stream independent of map iteration.
	slices.SortFunc(g.touched, core.CompareCells)
	for _, c := range g.touched {
		idx := g.counts.Index(c.Col, c.Row)
		n := cells[idx]
		cells[idx] = 0
		if n == 3 || (n == 2 && g.rng.Survives()) {
			g.live[c] = struct{}{}
		}
	}

	g.perturb()
}

func (g *Grid) perturb() {
	width := min(core.SeedColumns, g.cols)
	for k := g.rng.Perturbations(); k > 0; k-- {
		row := g.rng.IntN(g.rows)
		col := g.rng.IntN(width)
		g.Toggle(row, col)
	}
}

func init() {
	core.RegisterEngine("sparse", func(rows, cols int, scale float64, rng core.Rand) core.Engine {
		return New(rows, cols, scale, rng)
	})
}
