package faster

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fastapprox/internal/testutil"
)

func TestErfPlusErfcIsOne(t *testing.T) {
	for _, x := range []float32{-5, -0.25, 0, 0.05, 1, 10} {
		testutil.RequireBitsEqual(t, "Erf+Erfc", Erf(x)+Erfc(x), 1)
	}
}

func TestErfcLimits(t *testing.T) {
	if got := Erfc(-10); math.Abs(float64(got)-2) > 1e-6 {
		t.Fatalf("Erfc(-10) = %v, want 2", got)
	}
	if got := Erfc(10); got > 1e-6 {
		t.Fatalf("Erfc(10) = %v, want ~0", got)
	}
}

func TestLambertWSatisfiesDefinition(t *testing.T) {
	for _, x := range []float32{0.1, 0.5, 1, 2.26, 2.27, 5, 50, 1000} {
		w := float64(LambertW(x))
		back := float32(w * math.Exp(w))
		testutil.RequireWithin(t, "W(x)e^W(x)", back, x, tolerance)
	}
}

func TestLambertWExpXLargeArgument(t *testing.T) {
	for _, x := range []float32{50, 100, 500} {
		w := float64(LambertWExpX(x))
		testutil.RequireWithin(t, "w+ln(w)", float32(w+math.Log(w)), x, 0.01)
	}
}
