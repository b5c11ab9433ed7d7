package fast

import "github.com/cwbudde/algo-fastapprox/internal/ieee754"

const (
	ln2     float32 = 0.69314718
	invLn2  float32 = 1.442695040
	twoTo23 float32 = 1 << 23
)

// Log2 returns an approximation of the base-2 logarithm of x > 0.
func Log2(x float32) float32 {
	vx := ieee754.ToBits(x)
	mx := ieee754.FromBits(vx&ieee754.MantissaMask | 0x3f000000)
	y := float32(vx)

	return ieee754.FMA(y, 1.1920928955078125e-7, -124.22551499) +
		ieee754.FMA(mx, -1.498030302, -1.72587999/(0.3520887068+mx))
}

// Log returns an approximation of the natural logarithm of x > 0.
func Log(x float32) float32 {
	return float32(ln2 * Log2(x))
}

// Pow2 returns an approximation of 2**p.
// Arguments below -126 saturate to 2**-126.
func Pow2(p float32) float32 {
	var offset float32
	if p < 0 {
		offset = 1
	}

	clipp := p
	if p < -126 {
		clipp = -126
	}

	w := ieee754.Int32(clipp)
	z := clipp - float32(w) + offset

	t := ieee754.FMA(z, -1.49012907, clipp+121.2740575+27.7280233/(4.84252568-z))

	return ieee754.FromBits(ieee754.Uint32(twoTo23 * t))
}

// Pow returns an approximation of x**p for x > 0.
func Pow(x, p float32) float32 {
	return Pow2(float32(p * Log2(x)))
}

// Exp returns an approximation of e**p.
func Exp(p float32) float32 {
	return Pow2(float32(invLn2 * p))
}

// Sigmoid returns an approximation of 1/(1+e**-x). Sigmoid(0) is exactly 0.5.
func Sigmoid(x float32) float32 {
	return 1 / (1 + Exp(-x))
}
