package midsquare

const (
	halfMod = 100_000        // 1e5, splits a seed into two 5-digit halves
	seedMod = 10_000_000_000 // 1e10, the seed domain [0, 1e10)
)

// Next returns the seed following x: the middle 10 digits of x squared.
//
// x is expected in [0, 1e10). The square is never formed in full; with
// x = a*1e5 + b, the window (x*x / 1e5) % 1e10 equals
//
//	((a*a*1e5) % 1e10 + 2*a*b + (b*b)/1e5) % 1e10
//
// and each term is below 2e15, so the computation cannot wrap for any
// in-range x. Inputs outside [0, 1e10) are not rejected; they go through
// the same arithmetic (wrapping for very large x) and the result has no
// mid-square meaning.
func Next(x uint64) uint64 {
	a := x / halfMod
	b := x % halfMod
	t1 := (a * a * halfMod) % seedMod
	t2 := 2 * a * b
	t3 := b * b / halfMod
	return (t1 + t2 + t3) % seedMod
}
