package fast

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
)

const benchIterations = 1000

var sink float32

func benchUnary(b *testing.B, fn func(float32) float32, scale float32) {
	b.Helper()
	b.ReportAllocs()
	for range b.N {
		var acc float32
		for i := range benchIterations {
			acc += fn(float32(i) * scale)
		}
		sink = acc
	}
}

func BenchmarkUnary(b *testing.B) {
	benchmarks := []struct {
		name  string
		fast  func(float32) float32
		std   func(float32) float32
		scale float32
	}{
		{"log2", Log2, math32.Log2, 1},
		{"ln", Log, math32.Log, 1},
		{"pow2", Pow2, math32.Exp2, 0.01},
		{"exp", Exp, math32.Exp, 0.01},
		{"sigmoid", Sigmoid, func(x float32) float32 { return 1 / (1 + math32.Exp(-x)) }, 0.01},
		{"ln_gamma", Lgamma, func(x float32) float32 { v, _ := math32.Lgamma(x); return v }, 0.1},
		{"erf", Erf, math32.Erf, 0.001},
		{"erfc", Erfc, math32.Erfc, 0.001},
		{"erf_inv", Erfinv, func(x float32) float32 { return float32(math.Erfinv(float64(x))) }, 0.0009},
		{"sinh", Sinh, math32.Sinh, 0.003},
		{"cosh", Cosh, math32.Cosh, 0.003},
		{"tanh", Tanh, math32.Tanh, 0.003},
		{"sin", Sin, math32.Sin, 0.003},
		{"cos", Cos, math32.Cos, 0.003},
		{"tan", Tan, math32.Tan, 0.0015},
		{"sinfull", SinFull, math32.Sin, 1},
		{"cosfull", CosFull, math32.Cos, 1},
		{"tanfull", TanFull, math32.Tan, 1},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name+"/fast", func(b *testing.B) { benchUnary(b, bm.fast, bm.scale) })
		b.Run(bm.name+"/std", func(b *testing.B) { benchUnary(b, bm.std, bm.scale) })
	}
}

func BenchmarkDigamma(b *testing.B) {
	benchUnary(b, Digamma, 0.1)
}

func BenchmarkLambertW(b *testing.B) {
	benchUnary(b, LambertW, 0.1)
}

func BenchmarkLambertWExpX(b *testing.B) {
	benchUnary(b, LambertWExpX, 0.1)
}

func BenchmarkPow(b *testing.B) {
	b.Run("fast", func(b *testing.B) {
		b.ReportAllocs()
		for range b.N {
			var acc float32
			for i := range benchIterations {
				acc += Pow(float32(i), 0.5)
			}
			sink = acc
		}
	})
	b.Run("std", func(b *testing.B) {
		b.ReportAllocs()
		for range b.N {
			var acc float32
			for i := range benchIterations {
				acc += math32.Pow(float32(i), 0.5)
			}
			sink = acc
		}
	})
}
