// Package throughput times approximation kernels in a tight loop.
//
// Each loop evaluates a function on 0, 1, ..., iterations-1 and folds the
// results into a sum so the calls cannot be elided.
package throughput

import (
	"testing"

	fastapprox "github.com/cwbudde/algo-fastapprox"
)

// DefaultIterations is the loop length used when none is given.
const DefaultIterations = 1000

// Result holds one throughput measurement.
type Result struct {
	// Iterations is the number of calls per loop.
	Iterations int
	// Loops is the number of loops the benchmark ran.
	Loops          int
	NsPerCall      float64
	CallsPerSecond float64
}

var sink float32

// Run evaluates fn on 0..iterations-1 and returns the sum of the results.
func Run(fn fastapprox.Func, iterations int) float32 {
	var acc float32
	for i := range iterations {
		acc += fn(float32(i))
	}
	return acc
}

// RunPow evaluates fn(i, 0.5) on 0..iterations-1 and returns the sum.
func RunPow(fn fastapprox.Func2, iterations int) float32 {
	var acc float32
	for i := range iterations {
		acc += fn(float32(i), 0.5)
	}
	return acc
}

// Measure times Run(fn, iterations) with testing.Benchmark.
// A non-positive iteration count selects DefaultIterations.
func Measure(fn fastapprox.Func, iterations int) Result {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return measure(iterations, func() float32 { return Run(fn, iterations) })
}

// MeasurePow times RunPow(fn, iterations) with testing.Benchmark.
func MeasurePow(fn fastapprox.Func2, iterations int) Result {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return measure(iterations, func() float32 { return RunPow(fn, iterations) })
}

func measure(iterations int, loop func() float32) Result {
	br := testing.Benchmark(func(b *testing.B) {
		for range b.N {
			sink = loop()
		}
	})

	res := Result{Iterations: iterations, Loops: br.N}
	if br.N == 0 {
		return res
	}
	res.NsPerCall = float64(br.T.Nanoseconds()) / float64(br.N) / float64(iterations)
	if res.NsPerCall > 0 {
		res.CallsPerSecond = 1e9 / res.NsPerCall
	}
	return res
}
