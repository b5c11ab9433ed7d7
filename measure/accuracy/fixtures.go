package accuracy

// Literal inputs the harness compares each function on. Each covers the
// documented domain of the functions that use it.
var (
	// Floats spans both signs and several magnitudes.
	Floats = []float32{-5, -0.25, -0.05, 0, 0.05, 1, 2, 3, 10}
	// PosFloats is strictly positive, for logarithms and the gamma family.
	PosFloats = []float32{0.01, 0.05, 1, 2.1, 3.5, 100}
	// BetweenOnes lies inside (-1, 1), the domain of Erfinv.
	BetweenOnes = []float32{-0.9, -0.5, -0.1, -0.01, 0, 0.01, 0.1, 0.5, 0.9}
	// BetweenPis lies inside [-π, π].
	BetweenPis = []float32{-3.14, -1.5, -1, -0.5, -0.1, -0.01, 0, 0.01, 0.1, 0.5, 1, 1.5, 3.14}
	// BetweenHalfPis lies inside (-π/2, π/2), the domain of Tan.
	BetweenHalfPis = []float32{-1.56, -1.5, -1, -0.5, -0.1, -0.01, 0, 0.01, 0.1, 0.5, 1, 1.5, 1.56}
	// PowPairs holds (base, exponent) pairs with positive bases.
	PowPairs = [][2]float32{{2, 3}, {10, 0.5}, {0.5, -2}, {3.5, 1.7}, {100, 0.25}}
)

var fixtureByName = map[string][]float32{
	"log2":         PosFloats,
	"pow2":         Floats,
	"ln":           PosFloats,
	"exp":          Floats,
	"sigmoid":      Floats,
	"ln_gamma":     PosFloats,
	"digamma":      PosFloats,
	"erf":          PosFloats,
	"erfc":         PosFloats,
	"erf_inv":      BetweenOnes,
	"sinh":         BetweenPis,
	"cosh":         BetweenPis,
	"tanh":         Floats,
	"sin":          BetweenPis,
	"cos":          BetweenPis,
	"tan":          BetweenHalfPis,
	"sinfull":      Floats,
	"cosfull":      Floats,
	"tanfull":      Floats,
	"lambertw":     PosFloats,
	"lambertwexpx": Floats,
}

// Inputs returns a copy of the fixture used for the named unary function,
// or nil for an unknown name.
func Inputs(name string) []float32 {
	src, ok := fixtureByName[name]
	if !ok {
		return nil
	}
	out := make([]float32, len(src))
	copy(out, src)
	return out
}
