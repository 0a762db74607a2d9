// Package coretest provides scripted randomness for engine tests.
package coretest

import "stochlife/internal/core"

// Rand answers Survives and Perturbations with fixed values and forwards
// IntN to Inner. With a nil Inner, IntN always returns 0.
type Rand struct {
	Survive bool
	Perturb int
	Inner   core.Rand

	SurviveCalls int
}

// Survives returns r.Survive.
func (r *Rand) Survives() bool {
	r.SurviveCalls++
	return r.Survive
}

// Perturbations returns r.Perturb.
func (r *Rand) Perturbations() int { return r.Perturb }

// IntN forwards to Inner.
func (r *Rand) IntN(n int) int {
	if r.Inner == nil {
		return 0
	}
	return r.Inner.IntN(n)
}

// Never returns a Rand under which two-neighbour cells never survive and no
// seeding toggles happen.
func Never() *Rand { return &Rand{} }

// Always returns a Rand under which two-neighbour cells always survive and no
// seeding toggles happen.
func Always() *Rand { return &Rand{Survive: true} }

// Oracle computes the next live set by brute force over every cell, given the
// current live set and whether two-neighbour cells survive. It ignores the
// seeding step.
func Oracle(rows, cols int, live []core.Cell, survive bool) []core.Cell {
	set := make(map[core.Cell]bool, len(live))
	for _, c := range live {
		set[c] = true
	}
	var out []core.Cell
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			n := 0
			core.Neighbors(r, c, rows, cols, func(nr, nc int) {
				if set[core.Cell{Row: nr, Col: nc}] {
					n++
				}
			})
			if n == 3 || (n == 2 && survive) {
				out = append(out, core.Cell{Row: r, Col: c})
			}
		}
	}
	return out
}
