// Package randutil centralises how the game obtains randomness.
//
// Everything that rolls dice or makes a random choice takes a Source, so
// production code can use a seeded PCG generator while tests script the exact
// values they need.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// Source produces non-negative pseudo-random ints in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both 64-bit PCG seeds are derived from the one value so that every call site
// gets a reproducible sequence for the same seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewTimeSeeded returns a generator seeded from the wall clock along with the
// seed used, so callers can log it and replay the session.
func NewTimeSeeded() (*rand.Rand, int64) {
	seed := time.Now().UnixNano()
	return New(seed), seed
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Sequence is a Source that replays a fixed list of values, wrapping around
// when exhausted. Each value is reduced modulo n.
type Sequence struct {
	values []int
	pos    int
}

// NewSequence returns a Sequence over values. It panics on an empty list.
func NewSequence(values ...int) *Sequence {
	if len(values) == 0 {
		panic("randutil: sequence needs at least one value")
	}
	return &Sequence{values: append([]int(nil), values...)}
}

// IntN implements Source.
func (s *Sequence) IntN(n int) int {
	if n <= 0 {
		panic("randutil: invalid argument to IntN")
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Calls reports how many values have been drawn so far.
func (s *Sequence) Calls() int {
	return s.pos
}
