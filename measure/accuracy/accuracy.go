// Package accuracy compares approximation kernels against reference
// implementations and summarizes the error.
//
// The error metric is absolute where the reference magnitude is below 0.1
// and relative elsewhere, so results near a zero crossing are not inflated.
package accuracy

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	fastapprox "github.com/cwbudde/algo-fastapprox"
	"github.com/cwbudde/algo-fastapprox/reference"
)

// Tier tolerances on the maximum deviation.
const (
	ToleranceFast   = 0.01
	ToleranceFaster = 0.15

	absoluteBelow = 0.1
)

var (
	// ErrEmptyInput is returned when there is nothing to compare.
	ErrEmptyInput = errors.New("accuracy: empty input")
	// ErrNoReference is returned when a function has no reference.
	ErrNoReference = errors.New("accuracy: no reference implementation")
	// ErrLengthMismatch is returned when paired slices differ in length.
	ErrLengthMismatch = errors.New("accuracy: length mismatch")
)

// ToleranceFor returns the maximum deviation allowed for tier t.
func ToleranceFor(t fastapprox.Tier) float64 {
	if t == fastapprox.TierFaster {
		return ToleranceFaster
	}
	return ToleranceFast
}

// Deviation returns |got-want| when |want| < 0.1 and |(got-want)/want|
// otherwise.
func Deviation(got, want float32) float64 {
	g, w := float64(got), float64(want)
	if math.Abs(w) < absoluteBelow {
		return math.Abs(g - w)
	}
	return math.Abs((g - w) / w)
}

// Report summarizes the deviations of one comparison.
type Report struct {
	// Deviations holds one entry per input, NaN or Inf included.
	Deviations []float64
	// Count is the number of compared inputs.
	Count int
	// NonFinite counts inputs whose deviation is NaN or Inf. They are
	// excluded from the statistics below.
	NonFinite int

	Max    float64
	Mean   float64
	RMS    float64
	StdDev float64

	// WorstIndex is the index of the largest finite deviation, Worst the
	// input at that index (the base for pow).
	WorstIndex int
	Worst      float32
}

// Within reports whether every deviation is finite and below tol.
func (r Report) Within(tol float64) bool {
	return r.Count > 0 && r.NonFinite == 0 && r.Max < tol
}

// CompareValues summarizes the deviations of got from want.
func CompareValues(got, want []float32) (Report, error) {
	if len(got) != len(want) {
		return Report{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(got), len(want))
	}
	if len(got) == 0 {
		return Report{}, ErrEmptyInput
	}

	r := Report{
		Deviations: make([]float64, len(got)),
		Count:      len(got),
	}
	finite := make([]float64, 0, len(got))
	index := make([]int, 0, len(got))
	for i := range got {
		d := Deviation(got[i], want[i])
		r.Deviations[i] = d
		if math.IsNaN(d) || math.IsInf(d, 0) {
			r.NonFinite++
			continue
		}
		finite = append(finite, d)
		index = append(index, i)
	}
	if len(finite) == 0 {
		return r, nil
	}

	n := float64(len(finite))
	r.Max = vecmath.MaxAbs(finite)
	r.WorstIndex = index[floats.MaxIdx(finite)]
	r.Mean = vecmath.Sum(finite) / n
	r.RMS = math.Sqrt(vecmath.DotProduct(finite, finite) / n)
	if len(finite) > 1 {
		r.StdDev = stat.StdDev(finite, nil)
	}
	return r, nil
}

// Compare evaluates fn and ref on every input and summarizes the deviations.
func Compare(fn, ref fastapprox.Func, inputs []float32) (Report, error) {
	if len(inputs) == 0 {
		return Report{}, ErrEmptyInput
	}
	got := make([]float32, len(inputs))
	want := make([]float32, len(inputs))
	for i, x := range inputs {
		got[i] = fn(x)
		want[i] = ref(x)
	}
	r, err := CompareValues(got, want)
	if err != nil {
		return r, err
	}
	r.Worst = inputs[r.WorstIndex]
	return r, nil
}

// ComparePow evaluates fn and ref on (base, exponent) pairs.
func ComparePow(fn, ref fastapprox.Func2, pairs [][2]float32) (Report, error) {
	if len(pairs) == 0 {
		return Report{}, ErrEmptyInput
	}
	got := make([]float32, len(pairs))
	want := make([]float32, len(pairs))
	for i, p := range pairs {
		got[i] = fn(p[0], p[1])
		want[i] = ref(p[0], p[1])
	}
	r, err := CompareValues(got, want)
	if err != nil {
		return r, err
	}
	r.Worst = pairs[r.WorstIndex][0]
	return r, nil
}

// Sweep returns n evenly spaced inputs from lo to hi inclusive.
func Sweep(lo, hi float32, n int) []float32 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float32{lo}
	}
	span := floats.Span(make([]float64, n), float64(lo), float64(hi))
	out := make([]float32, n)
	for i, v := range span {
		out[i] = float32(v)
	}
	return out
}

// Evaluate compares the named function of tier t against its reference on
// the function's fixture. The name "pow" evaluates the binary power on
// PowPairs.
func Evaluate(t fastapprox.Tier, name string) (Report, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "pow" {
		fn, err := fastapprox.LookupPow(t)
		if err != nil {
			return Report{}, err
		}
		return ComparePow(fn, reference.Pow, PowPairs)
	}

	fn, err := fastapprox.Lookup(t, name)
	if err != nil {
		return Report{}, err
	}
	ref, ok := reference.Lookup(name)
	if !ok {
		return Report{}, fmt.Errorf("%w: %q", ErrNoReference, name)
	}
	return Compare(fn, ref, Inputs(name))
}
