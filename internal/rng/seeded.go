package rng

import (
	"math/rand"
)

// Seeded wraps math/rand with an explicit seed for repeatable shuffles
type Seeded struct {
	rnd *rand.Rand
}

// NewSeeded returns a new seeded generator
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		rnd: rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn will return a random number up to but not including n
func (s *Seeded) Intn(n int) int {
	return s.rnd.Intn(n)
}
