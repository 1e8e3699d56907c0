package quiz

import (
	"math/rand/v2"
	"testing"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestShufflePermutation(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	orig := append([]int(nil), in...)

	out := Shuffle(testRand(1), in)

	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	counts := map[int]int{}
	for _, v := range out {
		counts[v]++
	}
	for _, v := range in {
		counts[v]--
	}
	for v, n := range counts {
		if n != 0 {
			t.Errorf("element %d count off by %d", v, n)
		}
	}
	for i := range in {
		if in[i] != orig[i] {
			t.Fatalf("input mutated at %d: %d != %d", i, in[i], orig[i])
		}
	}
}

func TestShuffleDeterministicPerSeed(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e"}
	a := Shuffle(testRand(42), in)
	b := Shuffle(testRand(42), in)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at %d: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestShuffleSmallInputs(t *testing.T) {
	if out := Shuffle(testRand(1), []int{}); len(out) != 0 {
		t.Errorf("empty slice: got %v", out)
	}
	if out := Shuffle(testRand(1), []int{9}); len(out) != 1 || out[0] != 9 {
		t.Errorf("single element: got %v", out)
	}
}
