package faster

import "github.com/cwbudde/algo-fastapprox/internal/ieee754"

const (
	log2Scale  float32 = 1.1920928955078125e-7 // 2^-23
	log2Offset float32 = 126.94269504
	lnScale    float32 = 8.2629582881927490e-8 // ln(2) * 2^-23
	lnOffset   float32 = 87.989971088
	twoTo23    float32 = 1 << 23
	invLn2     float32 = 1.442695040
)

// Log2 returns an approximation of the base-2 logarithm of x > 0.
func Log2(x float32) float32 {
	y := float32(ieee754.ToBits(x))
	return float32(y*log2Scale) - log2Offset
}

// Log returns an approximation of the natural logarithm of x > 0.
func Log(x float32) float32 {
	y := float32(ieee754.ToBits(x))
	return float32(y*lnScale) - lnOffset
}

// Pow2 returns an approximation of 2**p.
// Arguments below -126 saturate to 2**-126.
func Pow2(p float32) float32 {
	clipp := p
	if p < -126 {
		clipp = -126
	}
	return ieee754.FromBits(ieee754.Uint32(twoTo23 * (clipp + log2Offset)))
}

// Pow returns an approximation of x**p for x > 0.
func Pow(x, p float32) float32 {
	return Pow2(float32(p * Log2(x)))
}

// Exp returns an approximation of e**p.
func Exp(p float32) float32 {
	return Pow2(float32(invLn2 * p))
}

// Sigmoid returns an approximation of 1/(1+e**-x).
func Sigmoid(x float32) float32 {
	return 1 / (1 + Exp(-x))
}
