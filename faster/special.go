package faster

const (
	erfcK         float32 = 3.3509633149424609
	erfinvInvK    float32 = 0.30004578719350504
	lambertThresh float32 = 2.26445
	lambertExpK   float32 = 1.1765631309
	lambertExpA   float32 = 0.94537622168
)

// Lgamma returns an approximation of ln(Γ(x)) for x > 0.
func Lgamma(x float32) float32 {
	return -0.0810614667 - x - Log(x) + float32((0.5+x)*Log(1+x))
}

// Digamma returns an approximation of ψ(x) for x > 0.
func Digamma(x float32) float32 {
	onepx := 1 + x
	return -1/x - 1/(2*onepx) + Log(onepx)
}

// Erfc returns an approximation of the complementary error function,
// using erfc(x) ≈ 2/(1+2**(K·x)).
func Erfc(x float32) float32 {
	return 2 / (1 + Pow2(float32(erfcK*x)))
}

// Erf returns an approximation of the error function, defined as 1-Erfc(x).
func Erf(x float32) float32 {
	return 1 - Erfc(x)
}

// Erfinv returns an approximation of the inverse error function for
// x in (-1, 1).
func Erfinv(x float32) float32 {
	return erfinvInvK * Log2((1+x)/(1-x))
}

// LambertW returns an approximation of the principal branch of the Lambert W
// function, the w satisfying w·e**w = x.
//
// The initial guess switches linearization at x = 2.26445 and is refined by
// one first-order correction step.
func LambertW(x float32) float32 {
	var c, d, a float32 = 1, 0, 0
	if x < lambertThresh {
		c, d, a = 1.546865557, 2.250366841, -0.737769969
	}

	logterm := Log(float32(c*x) + d)
	loglogterm := Log(logterm)

	w := a + logterm - loglogterm + loglogterm/logterm
	expw := Exp(-w)

	return (float32(w*w) + float32(expw*x)) / (1 + w)
}

// LambertWExpX returns an approximation of W(e**x) without forming e**x,
// so large x does not overflow.
func LambertWExpX(x float32) float32 {
	logarg := lambertExpK
	if x > lambertExpK {
		logarg = x
	}

	var powarg float32
	if x < lambertExpK {
		powarg = float32(lambertExpA * (x - lambertExpK))
	}

	logterm := Log(logarg)
	powterm := Pow2(powarg)

	w := powterm * (logarg - logterm + logterm/logarg)
	logw := Log(w)

	return w * (1 + x - logw) / (1 + w)
}
