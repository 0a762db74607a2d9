package core

import (
	"math/rand/v2"
	"time"
)

const (
	// SurviveNumerator and SurviveDenominator give the chance that a cell
	// with exactly two live neighbours is live in the next generation.
	SurviveNumerator   = 3
	SurviveDenominator = 10

	// MaxPerturbations bounds the number of seeding toggles per generation.
	MaxPerturbations = 256

	// SeedColumns is the width of the strip at the left edge that receives
	// the seeding toggles.
	SeedColumns = 3
)

// Rand supplies every random decision an engine makes during Advance.
// Tests substitute scripted implementations.
type Rand interface {
	// Survives reports whether a two-neighbour cell is live next generation.
	Survives() bool
	// Perturbations returns how many seeding toggles to apply, in [0, 256).
	Perturbations() int
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed. A zero seed
// selects one from the wall clock.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Survives returns true with probability 3/10.
func (r *RNG) Survives() bool {
	return r.r.IntN(SurviveDenominator) < SurviveNumerator
}

// Perturbations returns a uniform count in [0, MaxPerturbations).
func (r *RNG) Perturbations() int {
	return r.r.IntN(MaxPerturbations)
}

// IntN returns a uniform int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}
