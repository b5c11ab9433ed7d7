package reference

import (
	"math"
	"testing"
)

func TestLambertWKnownValues(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{0, 0},
		{1, 0.5671432904097838},
		{math.E, 1},
		{-0.25, -0.3574029561813889},
		{100, 3.38563014029005},
		{-1 / math.E, -1},
	}
	for _, tt := range tests {
		got := lambertW(tt.x)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("lambertW(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
	if !math.IsNaN(lambertW(-1)) {
		t.Fatal("lambertW below -1/e should be NaN")
	}
}

func TestLambertWSatisfiesDefinition(t *testing.T) {
	for _, x := range []float64{-0.3, -0.05, 0.01, 0.6, 2.1, 3.5, 1e4} {
		w := lambertW(x)
		if r := w*math.Exp(w) - x; math.Abs(r) > 1e-9*math.Max(1, math.Abs(x)) {
			t.Fatalf("lambertW(%v) = %v leaves residual %v", x, w, r)
		}
	}
}

func TestLambertWExpMatchesDirect(t *testing.T) {
	for _, x := range []float64{-5, -0.25, 0, 1, 2, 3, 10} {
		got := lambertWExp(x)
		want := lambertW(math.Exp(x))
		if math.Abs(got-want) > 1e-12*math.Max(1, want) {
			t.Fatalf("lambertWExp(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestLambertWExpLargeArgument(t *testing.T) {
	// e**1000 overflows float64; the log-space solve does not.
	w := lambertWExp(1000)
	if math.IsInf(w, 0) || math.IsNaN(w) {
		t.Fatalf("lambertWExp(1000) = %v", w)
	}
	if r := w + math.Log(w) - 1000; math.Abs(r) > 1e-9 {
		t.Fatalf("lambertWExp(1000) = %v leaves residual %v", w, r)
	}
}

func TestKnownValues(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float32) float32
		x    float32
		want float64
	}{
		{"log2", Log2, 8, 3},
		{"pow2", Pow2, 3, 8},
		{"sigmoid", Sigmoid, 0, 0.5},
		{"digamma", Digamma, 1, -0.5772156649015329},
		{"ln_gamma", Lgamma, 5, math.Log(24)},
		{"erf_inv", Erfinv, 0.5, 0.4769362762044699},
		{"lambertwexpx", LambertWExpX, 1, 1},
	}
	for _, tt := range tests {
		got := float64(tt.fn(tt.x))
		if math.Abs(got-tt.want) > 1e-6*math.Max(1, math.Abs(tt.want)) {
			t.Fatalf("%s(%v) = %v, want %v", tt.name, tt.x, got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		fn, ok := Lookup(name)
		if !ok || fn == nil {
			t.Fatalf("Lookup(%q) failed", name)
		}
	}
	if fn, ok := Lookup("  SINFULL "); !ok || fn(0) != 0 {
		t.Fatal("Lookup should normalize case and whitespace")
	}
	if _, ok := Lookup("gamma"); ok {
		t.Fatal("Lookup(gamma) should fail")
	}
	if n := len(Names()); n != 21 {
		t.Fatalf("Names() has %d entries, want 21", n)
	}
}
