package core

import (
	"slices"
	"sort"
)

// Engine is the evolving state of a bounded, non-wrapping cellular automaton.
// Implementations are not safe for concurrent use.
type Engine interface {
	Name() string
	Rows() int
	Cols() int
	// Scale is the pixel size of one cell. It is presentation metadata only.
	Scale() float64

	// Toggle flips (row, col). Out-of-range coordinates are ignored.
	Toggle(row, col int)
	// Advance replaces the live set with the next generation.
	Advance()
	// LiveCells calls fn for each live cell until fn returns false. The
	// order is unspecified. fn must not mutate the engine.
	LiveCells(fn func(Cell) bool)
	// Alive reports whether (row, col) is live.
	Alive(row, col int) bool
	// Len returns the number of live cells.
	Len() int
}

// Factory constructs an Engine. A nil rng selects a time-seeded RNG.
type Factory func(rows, cols int, scale float64, rng Rand) Engine

var engines = map[string]Factory{}

// RegisterEngine adds an engine factory under the provided name.
func RegisterEngine(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	engines[name] = f
}

// Engines exposes the registry of available engine factories.
func Engines() map[string]Factory {
	return engines
}

// EngineNames returns the registered engine names sorted.
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot copies the live set of e into a row-major sorted slice.
func Snapshot(e Engine) []Cell {
	out := make([]Cell, 0, e.Len())
	e.LiveCells(func(c Cell) bool {
		out = append(out, c)
		return true
	})
	sortCells(out)
	return out
}

func sortCells(cells []Cell) {
	slices.SortFunc(cells, CompareCells)
}
