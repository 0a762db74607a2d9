package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"stochlife/internal/core"
	_ "stochlife/internal/engine/dense"
	_ "stochlife/internal/engine/sparse"
)

type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return err
		}
		if v < 0 || v > 1 {
			return fmt.Errorf("density %v outside [0,1]", v)
		}
		*l = append(*l, v)
	}
	return nil
}

type scenario struct {
	engine  string
	rows    int
	cols    int
	density float64
	seed    int64
	steps   int
}

type scenarioResult struct {
	scenario
	initial   int
	final     int
	peak      int
	trough    int
	mean      float64
	toggles   [core.SeedColumns]int // perturbation toggles per seeding column
}

func main() {
	rows := flag.Int("rows", 64, "grid rows")
	cols := flag.Int("cols", 64, "grid columns")
	steps := flag.Int("steps", 500, "generations per run")
	runs := flag.Int("runs", 8, "seeds per density")
	seed := flag.Int64("seed", 1, "first seed; run i uses seed+i")
	engine := flag.String("engine", "sparse", "grid engine: sparse or dense")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	var densities floatList
	flag.Var(&densities, "density", "initial live fraction, comma separated or repeated (default 0.1,0.3,0.5)")
	flag.Parse()

	log.SetFlags(0)
	if _, ok := core.Engines()[*engine]; !ok {
		log.Fatalf("unknown engine %q (available: %s)", *engine, strings.Join(core.EngineNames(), ", "))
	}
	if *rows <= 0 || *cols <= 0 || *steps <= 0 || *runs <= 0 || *workers <= 0 {
		log.Fatal("rows, cols, steps, runs and workers must be positive")
	}
	if len(densities) == 0 {
		densities = floatList{0.1, 0.3, 0.5}
	}

	var sets []scenario
	for _, d := range densities {
		for i := 0; i < *runs; i++ {
			sets = append(sets, scenario{
				engine:  *engine,
				rows:    *rows,
				cols:    *cols,
				density: d,
				seed:    *seed + int64(i),
				steps:   *steps,
			})
		}
	}

	fmt.Printf("Running %d scenarios (%d workers, %d steps, %dx%d %s)\n", len(sets), *workers, *steps, *rows, *cols, *engine)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(sc)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].density != all[j].density {
			return all[i].density < all[j].density
		}
		return all[i].seed < all[j].seed
	})

	fmt.Printf("\n%-8s %-6s %8s %8s %8s %8s %10s %18s\n", "density", "seed", "initial", "final", "peak", "trough", "mean", "toggles/col")
	for _, res := range all {
		fmt.Printf("%-8.3f %-6d %8d %8d %8d %8d %10.1f %18s\n",
			res.density, res.seed, res.initial, res.final, res.peak, res.trough, res.mean, formatInts(res.toggles[:]))
	}

	fmt.Printf("\nPer density (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, s := range summarize(all) {
		fmt.Printf("density=%.3f runs=%d final=%.1f[%d,%d] meanPop=%.1f minTrough=%d maxPeak=%d colShare=%s\n",
			s.density, s.runs, s.meanFinal, s.minFinal, s.maxFinal, s.meanPop, s.minTrough, s.maxPeak, formatShares(s.colShare[:]))
	}
}

// runScenario seeds a board at the scenario's density and evolves it,
// tracking population after every generation.
func runScenario(sc scenario) scenarioResult {
	rng := &tallyRand{Rand: core.NewRNG(sc.seed)}
	e := core.Engines()[sc.engine](sc.rows, sc.cols, 1, rng)

	// The initial pattern draws from its own stream so that the density
	// does not shift the evolution stream.
	pattern := core.NewRNG(sc.seed ^ 0x5eed)
	for r := 0; r < sc.rows; r++ {
		for c := 0; c < sc.cols; c++ {
			if pattern.Float64() < sc.density {
				e.Toggle(r, c)
			}
		}
	}

	res := scenarioResult{scenario: sc, initial: e.Len(), trough: e.Len(), peak: e.Len()}
	total := 0
	for step := 0; step < sc.steps; step++ {
		e.Advance()
		n := e.Len()
		total += n
		res.peak = max(res.peak, n)
		res.trough = min(res.trough, n)
	}
	res.final = e.Len()
	res.mean = float64(total) / float64(sc.steps)
	res.toggles = rng.columns
	return res
}

type densitySummary struct {
	density   float64
	runs      int
	meanFinal float64
	minFinal  int
	maxFinal  int
	meanPop   float64
	minTrough int
	maxPeak   int
	colShare  [core.SeedColumns]float64
}

// summarize groups results, which must be sorted by density.
func summarize(all []scenarioResult) []densitySummary {
	var out []densitySummary
	for i := 0; i < len(all); {
		j := i
		s := densitySummary{
			density:   all[i].density,
			minFinal:  all[i].final,
			maxFinal:  all[i].final,
			minTrough: all[i].trough,
		}
		var toggles [core.SeedColumns]int
		total := 0
		for ; j < len(all) && all[j].density == s.density; j++ {
			s.runs++
			s.meanFinal += float64(all[j].final)
			s.minFinal = min(s.minFinal, all[j].final)
			s.maxFinal = max(s.maxFinal, all[j].final)
			s.meanPop += all[j].mean
			s.minTrough = min(s.minTrough, all[j].trough)
			s.maxPeak = max(s.maxPeak, all[j].peak)
			for c, n := range all[j].toggles {
				toggles[c] += n
				total += n
			}
		}
		s.meanFinal /= float64(s.runs)
		s.meanPop /= float64(s.runs)
		if total > 0 {
			for c, n := range toggles {
				s.colShare[c] = float64(n) / float64(total)
			}
		}
		out = append(out, s)
		i = j
	}
	return out
}

func formatInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, "/")
}

func formatShares(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'f', 3, 64)
	}
	return strings.Join(parts, "/")
}
