package fast

import (
	"github.com/cwbudde/algo-fastapprox/faster"
	"github.com/cwbudde/algo-fastapprox/internal/ieee754"
)

// Lgamma returns an approximation of ln(Γ(x)) for x > 0.
//
// It shifts the argument by three and applies a Stirling-type series,
// removing ln(x(x+1)(x+2)) afterwards.
func Lgamma(x float32) float32 {
	logterm := Log(float32(x * (1 + x) * (2 + x)))
	xp3 := 3 + x

	return ieee754.FMA(2.5+x, Log(xp3), -2.081061466-x+0.0833333/xp3-logterm)
}

// Digamma returns an approximation of ψ(x) for x > 0.
func Digamma(x float32) float32 {
	twopx := 2 + x
	logterm := Log(twopx)

	num := ieee754.FMA(x, ieee754.FMA(x, ieee754.FMA(x, -30, -127), -157), -48)

	return num/(12*x*(1+x)*twopx*twopx) + logterm
}

// Erfc returns an approximation of the complementary error function.
//
// The coarse form 2/(1+2**(K·x)) is corrected by a Gaussian-shaped term
// x(Bx⁴-1)·2**(-|Cx|).
func Erfc(x float32) float32 {
	const (
		k float32 = 3.3509633149424609
		a float32 = 0.07219054755431126
		b float32 = 15.418191568719577
		c float32 = 5.609846028328545
	)

	v := ieee754.ToBits(c * x)
	xsq := x * x
	xquad := xsq * xsq

	v |= ieee754.SignMask

	return ieee754.FMA(-a*x*ieee754.FMA(b, xquad, -1), faster.Pow2(ieee754.FromBits(v)), 2/(1+Pow2(float32(k*x))))
}

// Erf returns an approximation of the error function, defined as 1-Erfc(x).
func Erf(x float32) float32 {
	return 1 - Erfc(x)
}

// Erfinv returns an approximation of the inverse error function for
// x in (-1, 1).
func Erfinv(x float32) float32 {
	const (
		invk float32 = 0.30004578719350504
		a    float32 = 0.020287853348211326
		b    float32 = 0.07236892874789555
		c    float32 = 0.9913030456864257
		d    float32 = 0.8059775923760193
	)

	xsq := x * x

	return ieee754.FMA(invk, Log2((1+x)/(1-x)), x*ieee754.FMA(-b, xsq, a)/ieee754.FMA(-d, xsq, c))
}

// LambertW returns an approximation of the principal branch of the Lambert W
// function, the w satisfying w·e**w = x.
//
// The initial guess switches linearization at x = 2.26445 and is refined by
// one second-order correction step written out algebraically.
func LambertW(x float32) float32 {
	const threshold float32 = 2.26445

	var c, d, a float32 = 1, 0, 0
	if x < threshold {
		c, d, a = 1.546865557, 2.250366841, -0.737769969
	}

	logterm := Log(ieee754.FMA(c, x, d))
	loglogterm := Log(logterm)

	minusw := -a - logterm + loglogterm - loglogterm/logterm
	expminusw := Exp(minusw)
	xexpminusw := float32(x * expminusw)
	pexpminusw := xexpminusw - minusw

	num := ieee754.FMA(2, xexpminusw, -minusw*ieee754.FMA(4, xexpminusw, -minusw*pexpminusw))

	return num / ieee754.FMA(pexpminusw, 2-minusw, 2)
}

// LambertWExpX returns an approximation of W(e**x) without forming e**x,
// so large x does not overflow.
func LambertWExpX(x float32) float32 {
	const (
		k float32 = 1.1765631309
		a float32 = 0.94537622168
	)

	logarg := k
	if x > k {
		logarg = x
	}

	var powarg float32
	if x < k {
		powarg = float32(a * (x - k))
	}

	logterm := Log(logarg)
	powterm := faster.Pow2(powarg)

	w := powterm * (logarg - logterm + logterm/logarg)
	logw := Log(w)
	p := x - logw

	return w * ieee754.FMA(w, ieee754.FMA(p, 2, 3), 2+p) / ieee754.FMA(w, ieee754.FMA(w, 2, 5), 2-p)
}
