package testutil

import (
	"fmt"
	"math"
	"testing"
)

// Deviation returns |got-want| when |want| < 0.1 and the relative error
// |(got-want)/want| otherwise.
func Deviation(got, want float32) float64 {
	g, w := float64(got), float64(want)
	if math.Abs(w) < 0.1 {
		return math.Abs(g - w)
	}
	return math.Abs((g - w) / w)
}

// RequireWithin fails t if Deviation(got, want) is not below tol.
func RequireWithin(t *testing.T, label string, got, want float32, tol float64) {
	t.Helper()
	if d := Deviation(got, want); !(d < tol) {
		t.Fatalf("%s: got %v, want %v (deviation %v >= %v)", label, got, want, d, tol)
	}
}

// RequireBitsEqual fails t if got and want differ in any bit.
func RequireBitsEqual(t *testing.T, label string, got, want float32) {
	t.Helper()
	if math.Float32bits(got) != math.Float32bits(want) {
		t.Fatalf("%s: got %v (%#08x), want %v (%#08x)",
			label, got, math.Float32bits(got), want, math.Float32bits(want))
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, label string, data []float32) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("%s: index %d: non-finite value %v", label, i, v)
		}
	}
}

// MaxDeviation returns the largest Deviation between paired elements.
// Returns an error if the slices differ in length.
func MaxDeviation(got, want []float32) (float64, error) {
	if len(got) != len(want) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(got), len(want))
	}
	maxDev := 0.0
	for i := range got {
		d := Deviation(got[i], want[i])
		if d > maxDev || math.IsNaN(d) {
			maxDev = d
		}
	}
	return maxDev, nil
}
