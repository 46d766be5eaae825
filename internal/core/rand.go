package core

import "math/rand"

// Rand wraps a seeded source with the range helpers the simulation needs.
type Rand struct {
	*rand.Rand
}

// NewRand creates a deterministic generator for the given seed.
func NewRand(seed int64) *Rand {
	return &Rand{Rand: rand.New(rand.NewSource(seed))}
}

// Range returns a uniform value in [min, max).
func (r *Rand) Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.Float64()*(max-min)
}
