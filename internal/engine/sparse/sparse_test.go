package sparse

import (
	"math"
	"slices"
	"testing"

	"stochlife/internal/core"
	"stochlife/internal/core/coretest"
)

func cells(pairs ...[2]int) []core.Cell {
	out := make([]core.Cell, len(pairs))
	for i, p := range pairs {
		out[i] = core.Cell{Row: p[0], Col: p[1]}
	}
	slices.SortFunc(out, core.CompareCells)
	return out
}

func seed(g *Grid, live []core.Cell) {
	for _, c := range live {
		g.Toggle(c.Row, c.Col)
	}
}

func expectLive(t *testing.T, g *Grid, want []core.Cell) {
	t.Helper()
	got := core.Snapshot(g)
	if !slices.Equal(got, want) {
		t.Fatalf("live set = %v, expected %v", got, want)
	}
}

// The blinker centre has two neighbours, so it only stays live when the
// survive draw succeeds.
func TestBlinkerCentreNeedsDraw(t *testing.T) {
	g := New(10, 10, 1, coretest.Never())
	seed(g, cells([2]int{5, 4}, [2]int{5, 5}, [2]int{5, 6}))

	g.Advance()
	expectLive(t, g, cells([2]int{4, 5}, [2]int{6, 5}))

	// (4,5) and (6,5) leave every cell with at most two neighbours.
	g.Advance()
	expectLive(t, g, cells())
}

func TestBlinkerUnderAlwaysSurvive(t *testing.T) {
	g := New(10, 10, 1, coretest.Always())
	seed(g, cells([2]int{5, 4}, [2]int{5, 5}, [2]int{5, 6}))

	g.Advance()
	expectLive(t, g, cells(
		[2]int{4, 4}, [2]int{4, 5}, [2]int{4, 6},
		[2]int{5, 5},
		[2]int{6, 4}, [2]int{6, 5}, [2]int{6, 6},
	))
}

func TestBlockPersists(t *testing.T) {
	block := cells([2]int{2, 2}, [2]int{2, 3}, [2]int{3, 2}, [2]int{3, 3})
	g := New(10, 10, 1, coretest.Never())
	seed(g, block)

	for i := 0; i < 5; i++ {
		g.Advance()
		expectLive(t, g, block)
	}
}

func TestLoneCellDies(t *testing.T) {
	g := New(10, 10, 1, coretest.Never())
	g.Toggle(0, 0)
	g.Advance()
	if g.Len() != 0 {
		t.Fatalf("lone cell should die, live=%v", core.Snapshot(g))
	}
}

func TestToggleOutOfRangeIsNoop(t *testing.T) {
	g := New(10, 10, 1, coretest.Never())
	for _, c := range [][2]int{{10, 0}, {0, 10}, {-1, 0}, {0, -1}, {10, 10}} {
		g.Toggle(c[0], c[1])
	}
	if g.Len() != 0 {
		t.Fatalf("out-of-range toggles changed the live set: %v", core.Snapshot(g))
	}
	if g.Alive(10, 0) {
		t.Fatal("out-of-range cell reported live")
	}
}

func TestToggleInvolution(t *testing.T) {
	g := New(6, 8, 1, core.NewRNG(3))
	seed(g, cells([2]int{1, 1}, [2]int{4, 7}))
	before := core.Snapshot(g)

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			g.Toggle(r, c)
			if g.Alive(r, c) == slices.Contains(before, core.Cell{Row: r, Col: c}) {
				t.Fatalf("toggle (%d,%d) did not flip the cell", r, c)
			}
			g.Toggle(r, c)
			expectLive(t, g, before)
		}
	}
}

func TestRuleMatchesOracle(t *testing.T) {
	const rows, cols = 17, 23
	for _, survive := range []bool{false, true} {
		rng := core.NewRNG(11)
		for trial := 0; trial < 20; trial++ {
			stub := &coretest.Rand{Survive: survive}
			g := New(rows, cols, 1, stub)
			for r := 0; r < rows; r++ {
				for c := 0; c < cols; c++ {
					if rng.IntN(3) == 0 {
						g.Toggle(r, c)
					}
				}
			}
			want := coretest.Oracle(rows, cols, core.Snapshot(g), survive)
			g.Advance()
			got := core.Snapshot(g)
			if !slices.Equal(got, want) {
				t.Fatalf("survive=%v trial %d: got %v, expected %v", survive, trial, got, want)
			}
		}
	}
}

func TestBoundaryNeighbourhoods(t *testing.T) {
	// A full 4x4 board: corners see 3 neighbours, edges 5, interior 8.
	g := New(4, 4, 1, coretest.Always())
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			g.Toggle(r, c)
		}
	}
	g.Advance()
	expectLive(t, g, cells([2]int{0, 0}, [2]int{0, 3}, [2]int{3, 0}, [2]int{3, 3}))
}

func TestSurviveDrawnOnlyForTwoNeighbours(t *testing.T) {
	stub := coretest.Never()
	g := New(10, 10, 1, stub)
	// Two cells side by side: (4,4),(4,5) give n=2 to the four cells above
	// and below the pair, and n=1 to the rest of the ring.
	seed(g, cells([2]int{4, 4}, [2]int{4, 5}))
	g.Advance()
	if stub.SurviveCalls != 4 {
		t.Fatalf("Survives called %d times, expected 4", stub.SurviveCalls)
	}
}

func TestAdvanceDeterministicForSeed(t *testing.T) {
	a := New(32, 32, 1, core.NewRNG(99))
	b := New(32, 32, 1, core.NewRNG(99))
	glider := cells([2]int{1, 2}, [2]int{2, 3}, [2]int{3, 1}, [2]int{3, 2}, [2]int{3, 3})
	seed(a, glider)
	seed(b, glider)

	for i := 0; i < 100; i++ {
		a.Advance()
		b.Advance()
		if !slices.Equal(core.Snapshot(a), core.Snapshot(b)) {
			t.Fatalf("generation %d diverged", i+1)
		}
	}
}

func TestContainmentUnderRandomEvolution(t *testing.T) {
	g := New(5, 7, 1, core.NewRNG(5))
	for i := 0; i < 300; i++ {
		g.Advance()
		seen := map[core.Cell]bool{}
		g.LiveCells(func(c core.Cell) bool {
			if c.Row < 0 || c.Row >= 5 || c.Col < 0 || c.Col >= 7 {
				t.Fatalf("generation %d: cell %v outside the grid", i+1, c)
			}
			if seen[c] {
				t.Fatalf("generation %d: duplicate cell %v", i+1, c)
			}
			seen[c] = true
			return true
		})
		if len(seen) != g.Len() {
			t.Fatalf("Len()=%d but enumerated %d cells", g.Len(), len(seen))
		}
	}
}

func TestPerturbationConfinedToLeftColumns(t *testing.T) {
	stub := &coretest.Rand{Perturb: 5, Inner: core.NewRNG(21)}
	tally := [core.SeedColumns]int{}
	total := 0

	for i := 0; i < 3000; i++ {
		g := New(10, 10, 1, stub)
		g.Advance()
		g.LiveCells(func(c core.Cell) bool {
			if c.Col < 0 || c.Col >= core.SeedColumns {
				t.Fatalf("perturbation added %v outside the seeding strip", c)
			}
			tally[c.Col]++
			total++
			return true
		})
	}

	if total == 0 {
		t.Fatal("perturbation never added a cell")
	}
	for col, n := range tally {
		share := float64(n) / float64(total)
		if math.Abs(share-1.0/3) > 0.03 {
			t.Fatalf("column %d share %.3f, expected about 1/3 (tally %v)", col, share, tally)
		}
	}
}

func TestPerturbationOnNarrowGrid(t *testing.T) {
	stub := &coretest.Rand{Perturb: 50, Inner: core.NewRNG(8)}
	g := New(4, 2, 1, stub)
	for i := 0; i < 20; i++ {
		g.Advance()
		g.LiveCells(func(c core.Cell) bool {
			if c.Col >= 2 {
				t.Fatalf("cell %v outside a two-column grid", c)
			}
			return true
		})
	}
}

func TestLiveCellsStopsEarly(t *testing.T) {
	g := New(3, 3, 1, coretest.Never())
	seed(g, cells([2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2}))
	visited := 0
	g.LiveCells(func(core.Cell) bool {
		visited++
		return false
	})
	if visited != 1 {
		t.Fatalf("visited %d cells after returning false, expected 1", visited)
	}
}

func TestNewClampsDimensions(t *testing.T) {
	g := New(0, -3, 4, nil)
	if g.Rows() != 1 || g.Cols() != 1 {
		t.Fatalf("dims = %dx%d, expected 1x1", g.Rows(), g.Cols())
	}
	if g.Scale() != 4 {
		t.Fatalf("scale = %v, expected 4", g.Scale())
	}
}
