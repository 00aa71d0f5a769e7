// Package rng provides the single seedable random stream consumed by the
// population engine and loot resolution.
package rng

import (
	"math/rand/v2"
)

// Source yields uniform integers in [0, n). Implementations panic when n <= 0,
// matching math/rand.
type Source interface {
	IntN(n int) int
}

// Seeded is a deterministic Source backed by PCG.
type Seeded struct {
	r *rand.Rand
}

// New returns a Source that replays the same sequence for the same seed.
func New(seed uint64) *Seeded {
	return &Seeded{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))} //nolint:gosec // Game logic randomness, not security critical
}

// IntN returns a value in [0, n).
func (s *Seeded) IntN(n int) int {
	return s.r.IntN(n)
}

// Between returns a value in [lo, hi] (inclusive). lo is returned when hi < lo.
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}

// Sequence replays fixed values, wrapping each into [0, n). It is meant for
// tests that need to pin individual draws.
type Sequence struct {
	values []int
	next   int
}

// NewSequence returns a Source that yields values in order, cycling.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// IntN returns the next value modulo n.
func (s *Sequence) IntN(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Consumed reports how many draws have been taken.
func (s *Sequence) Consumed() int {
	return s.next
}
