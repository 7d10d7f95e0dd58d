package midsquare

// Generator carries a mid-square seed between steps. One Generator per
// goroutine; it is not safe for concurrent use.
type Generator struct {
	state uint64
}

// New creates a generator starting from the given seed.
// The seed is reduced into [0, 1e10) so the state is always in-domain.
func New(seed uint64) *Generator {
	return &Generator{state: seed % seedMod}
}

// Next advances the generator and returns the next seed.
func (g *Generator) Next() uint64 {
	g.state = Next(g.state)
	return g.state
}

// Float64 returns the next value scaled into [0, 1).
func (g *Generator) Float64() float64 {
	return float64(g.Next()) / float64(seedMod)
}

// Fill overwrites dst with consecutive Float64 values.
func (g *Generator) Fill(dst []float64) {
	for i := range dst {
		dst[i] = g.Float64()
	}
}

// Uint64N returns a value in [0, n). Returns 0 when n is 0.
func (g *Generator) Uint64N(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return g.Next() % n
}

// Shuffle performs an in-place Fisher-Yates shuffle.
func (g *Generator) Shuffle(slice []int) {
	for i := len(slice) - 1; i > 0; i-- {
		j := int(g.Uint64N(uint64(i + 1)))
		slice[i], slice[j] = slice[j], slice[i]
	}
}
