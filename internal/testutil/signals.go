package testutil

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// DeterministicInputs returns n uniformly distributed float32 values in
// [lo, hi) drawn from a fixed seed, for reproducible property tests.
func DeterministicInputs(seed int64, lo, hi float32, n int) []float32 {
	out := make([]float32, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = lo + float32(rng.Float64())*(hi-lo)
	}
	return out
}

// Span returns n evenly spaced float32 values from lo to hi inclusive.
func Span(lo, hi float32, n int) []float32 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float32{lo}
	}
	grid := floats.Span(make([]float64, n), float64(lo), float64(hi))
	out := make([]float32, n)
	for i, v := range grid {
		out[i] = float32(v)
	}
	return out
}
