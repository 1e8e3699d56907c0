package quiz

import "math/rand/v2"

// Shuffle returns a uniformly random permutation of s, leaving s
// unmodified. Fisher-Yates over a defensive copy, O(n).
func Shuffle[T any](rng *rand.Rand, s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// NewRand returns a non-deterministically seeded rand for production use.
// Tests inject their own seeded source instead.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
