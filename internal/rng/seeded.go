package rng

import (
	"math/rand"
)

// Seeded is a reproducible Generator, the same seed produces the same sequence
type Seeded struct {
	rand *rand.Rand
}

// NewSeeded returns a Generator seeded with seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		rand: rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn returns a random number from 0 <= x < n
func (s *Seeded) Intn(n int) int {
	return s.rand.Intn(n)
}
