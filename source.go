package midsquare

import "math/rand"

// Source adapts the mid-square generator to math/rand.
type Source struct {
	gen Generator
}

var _ rand.Source64 = (*Source)(nil)

// NewSource returns a rand.Source seeded with the given value, for use as
// rand.New(NewSource(seed)). The returned source implements rand.Source64.
func NewSource(seed uint64) rand.Source {
	return &Source{gen: Generator{state: seed % seedMod}}
}

// Uint64 returns a random 64-bit value. A single mid-square step carries
// only log2(1e10) ~ 33 bits, so two consecutive seeds are folded into one
// word as hi*1e10 + lo, wrapping mod 2^64.
func (s *Source) Uint64() uint64 {
	hi := s.gen.Next()
	lo := s.gen.Next()
	return hi*seedMod + lo
}

// Int63 returns a non-negative 63-bit value.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed resets the source state.
func (s *Source) Seed(seed int64) {
	s.gen.state = uint64(seed) % seedMod
}
