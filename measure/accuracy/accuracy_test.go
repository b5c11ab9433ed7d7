package accuracy

import (
	"errors"
	"math"
	"testing"

	fastapprox "github.com/cwbudde/algo-fastapprox"
)

func TestDeviationSwitchesMetric(t *testing.T) {
	if got := Deviation(0.06, 0.05); math.Abs(got-0.01) > 1e-7 {
		t.Fatalf("absolute branch: got %v", got)
	}
	if got := Deviation(2.2, 2); math.Abs(got-0.1) > 1e-6 {
		t.Fatalf("relative branch: got %v", got)
	}
}

func TestCompareValuesStatistics(t *testing.T) {
	got := []float32{1.01, 2, 0.02, 4.4}
	want := []float32{1, 2, 0, 4}

	r, err := CompareValues(got, want)
	if err != nil {
		t.Fatal(err)
	}
	if r.Count != 4 || r.NonFinite != 0 {
		t.Fatalf("counts: %+v", r)
	}
	if r.WorstIndex != 3 {
		t.Fatalf("WorstIndex = %d, want 3", r.WorstIndex)
	}
	if math.Abs(r.Max-0.1) > 1e-6 {
		t.Fatalf("Max = %v, want 0.1", r.Max)
	}
	wantMean := (0.01 + 0 + 0.02 + 0.1) / 4
	if math.Abs(r.Mean-wantMean) > 1e-6 {
		t.Fatalf("Mean = %v, want %v", r.Mean, wantMean)
	}
	wantRMS := math.Sqrt((0.01*0.01 + 0.02*0.02 + 0.1*0.1) / 4)
	if math.Abs(r.RMS-wantRMS) > 1e-6 {
		t.Fatalf("RMS = %v, want %v", r.RMS, wantRMS)
	}
	if r.StdDev <= 0 {
		t.Fatalf("StdDev = %v", r.StdDev)
	}
	if !r.Within(0.11) || r.Within(0.1) {
		t.Fatalf("Within mismatch for Max %v", r.Max)
	}
}

func TestCompareValuesNonFinite(t *testing.T) {
	nan := float32(math.NaN())
	r, err := CompareValues([]float32{1, nan, 3}, []float32{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if r.NonFinite != 1 {
		t.Fatalf("NonFinite = %d, want 1", r.NonFinite)
	}
	if r.Max != 0 {
		t.Fatalf("Max = %v, want 0", r.Max)
	}
	if r.Within(1) {
		t.Fatal("report with non-finite deviation must not be within tolerance")
	}
}

func TestCompareValuesErrors(t *testing.T) {
	if _, err := CompareValues(nil, nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("empty: err = %v", err)
	}
	if _, err := CompareValues([]float32{1}, []float32{1, 2}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("mismatch: err = %v", err)
	}
	if _, err := Compare(func(x float32) float32 { return x }, func(x float32) float32 { return x }, nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Compare empty: err = %v", err)
	}
}

func TestCompareReportsWorstInput(t *testing.T) {
	fn := func(x float32) float32 {
		if x == 3 {
			return x * 1.05
		}
		return x
	}
	r, err := Compare(fn, func(x float32) float32 { return x }, []float32{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	if r.Worst != 3 {
		t.Fatalf("Worst = %v, want 3", r.Worst)
	}
}

func TestEvaluateEveryFunctionWithinTolerance(t *testing.T) {
	names := append(fastapprox.Names(), "pow")
	for _, tier := range fastapprox.Tiers() {
		tol := ToleranceFor(tier)
		for _, name := range names {
			r, err := Evaluate(tier, name)
			if err != nil {
				t.Fatalf("Evaluate(%v, %q): %v", tier, name, err)
			}
			if !r.Within(tol) {
				t.Fatalf("%v %s: max deviation %v at %v exceeds %v", tier, name, r.Max, r.Worst, tol)
			}
		}
	}
}

func TestFastTierIsMoreAccurate(t *testing.T) {
	names := append(fastapprox.Names(), "pow")
	for _, name := range names {
		fastR, err := Evaluate(fastapprox.TierFast, name)
		if err != nil {
			t.Fatal(err)
		}
		fasterR, err := Evaluate(fastapprox.TierFaster, name)
		if err != nil {
			t.Fatal(err)
		}
		if fastR.Max > fasterR.Max {
			t.Fatalf("%s: fast max %v > faster max %v", name, fastR.Max, fasterR.Max)
		}
	}
}

func TestEvaluateErrors(t *testing.T) {
	if _, err := Evaluate(fastapprox.TierFast, "sqrt"); !errors.Is(err, fastapprox.ErrUnknownFunction) {
		t.Fatalf("unknown function: err = %v", err)
	}
	if _, err := Evaluate(fastapprox.Tier(9), "sin"); !errors.Is(err, fastapprox.ErrUnknownTier) {
		t.Fatalf("unknown tier: err = %v", err)
	}
	if _, err := Evaluate(fastapprox.Tier(9), "pow"); !errors.Is(err, fastapprox.ErrUnknownTier) {
		t.Fatalf("unknown tier pow: err = %v", err)
	}
}

func TestInputsCoverRegistry(t *testing.T) {
	for _, name := range fastapprox.Names() {
		if len(Inputs(name)) == 0 {
			t.Fatalf("no fixture for %q", name)
		}
	}
	if Inputs("nope") != nil {
		t.Fatal("unknown name returned a fixture")
	}
}

func TestInputsReturnsCopy(t *testing.T) {
	in := Inputs("sin")
	in[0] = 42
	if BetweenPis[0] == 42 {
		t.Fatal("Inputs aliased the fixture")
	}
}

func TestSweep(t *testing.T) {
	s := Sweep(-1, 1, 5)
	want := []float32{-1, -0.5, 0, 0.5, 1}
	if len(s) != len(want) {
		t.Fatalf("len = %d", len(s))
	}
	for i := range want {
		if s[i] != want[i] {
			t.Fatalf("Sweep[%d] = %v, want %v", i, s[i], want[i])
		}
	}
	if Sweep(0, 1, 0) != nil {
		t.Fatal("n=0 must return nil")
	}
	if got := Sweep(3, 5, 1); len(got) != 1 || got[0] != 3 {
		t.Fatalf("n=1: %v", got)
	}
}

func TestToleranceFor(t *testing.T) {
	if ToleranceFor(fastapprox.TierFast) != 0.01 || ToleranceFor(fastapprox.TierFaster) != 0.15 {
		t.Fatal("unexpected tier tolerances")
	}
}
