package main

import "stochlife/internal/core"

// tallyRand counts the column of every perturbation toggle. Engines draw a
// perturbation as IntN(rows) then IntN(width), k times after Perturbations
// returns k, so every second IntN in that window is a column.
type tallyRand struct {
	core.Rand
	pending int
	columns [core.SeedColumns]int
}

func (t *tallyRand) Perturbations() int {
	k := t.Rand.Perturbations()
	t.pending = 2 * k
	return k
}

func (t *tallyRand) IntN(n int) int {
	v := t.Rand.IntN(n)
	if t.pending > 0 {
		if t.pending%2 == 1 {
			t.columns[v]++
		}
		t.pending--
	}
	return v
}

// total returns the number of toggles counted so far.
func (t *tallyRand) total() int {
	n := 0
	for _, c := range t.columns {
		n += c
	}
	return n
}
