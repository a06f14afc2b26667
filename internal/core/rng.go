package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// Seeder returns a SeedFunc that makes each cell alive with the given
// probability, independently of every other cell.
func (r *RNG) Seeder(density float64) SeedFunc {
	return func() Cell {
		if r.Chance(density) {
			return Alive
		}
		return Dead
	}
}

// Fill returns a SeedFunc that always yields state.
func Fill(state Cell) SeedFunc {
	return func() Cell { return state }
}
