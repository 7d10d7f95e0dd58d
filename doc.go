// Package midsquare implements the mid-square pseudo-random number
// generator in Hammer's 10-digit decimal variant.
//
// The mid-square method squares the current seed and takes the middle
// digits of the square as the next seed. For a 10-digit seed the square
// has up to 20 digits, which does not fit in 64 bits, so Next splits the
// seed into two 5-digit halves and reassembles the middle window from
// partial products. Every intermediate stays below 2e15 and the result is
// identical to ((x*x) / 1e5) % 1e10 computed in arbitrary precision.
//
// This is a historical generator with a short, seed-dependent period. It
// is deterministic and reproducible across platforms, which is what it is
// for; it is not suitable for statistics or cryptography.
package midsquare
