package faster

import "github.com/cwbudde/algo-fastapprox/internal/ieee754"

const (
	fourOverPi   float32 = 1.2732395447351627
	fourOverPiSq float32 = 0.40528473456935109
	twoOverPi    float32 = 0.63661977236758134
	halfPi       float32 = 1.5707963267948966
	twoPi        float32 = 6.2831853071795865
	invTwoPi     float32 = 0.15915494309189534

	sinQ float32 = 0.77633023248007499
	sinP float32 = 0.22308510060189463
	cosP float32 = 0.54641335845679634
)

// Sin returns an approximation of sin(x) for x in [-π, π].
//
// A parabola through the zeros and extrema of sine is corrected by one
// quadratic term whose sign is taken from x's sign bit.
func Sin(x float32) float32 {
	v := ieee754.ToBits(x)
	sign := v & ieee754.SignMask
	v &= ieee754.AbsMask

	qpprox := float32(fourOverPi*x) - float32(fourOverPiSq*x*ieee754.FromBits(v))

	p := ieee754.ToBits(sinP) | sign

	return qpprox * (sinQ + float32(ieee754.FromBits(p)*qpprox))
}

// Cos returns an approximation of cos(x) for x in [-π, π]. It evaluates its
// own polynomial in |x| rather than shifting Sin.
func Cos(x float32) float32 {
	ax := ieee754.FromBits(ieee754.ToBits(x) & ieee754.AbsMask)

	qpprox := 1 - float32(twoOverPi*ax)

	return qpprox + float32(cosP*qpprox*(1-float32(qpprox*qpprox)))
}

// Tan returns an approximation of tan(x) for x in [-π/2, π/2].
func Tan(x float32) float32 {
	return Sin(x) / Cos(x)
}

// reduce maps x onto the nearest-period offset used by the full-range
// variants: (k±0.5)·2π where k = trunc(x/2π) and the half takes x's sign.
func reduce(x float32) float32 {
	k := ieee754.Int32(x * invTwoPi)
	half := float32(0.5)
	if x < 0 {
		half = -0.5
	}
	return float32((half + float32(k)) * twoPi)
}

// SinFull returns an approximation of sin(x) for any x.
//
// The range reduction loses accuracy as |x| grows and is hopeless for
// |x| >> 1000.
func SinFull(x float32) float32 {
	return Sin(reduce(x) - x)
}

// CosFull returns an approximation of cos(x) for any x.
// Accuracy degrades like SinFull's.
func CosFull(x float32) float32 {
	return SinFull(x + halfPi)
}

// TanFull returns an approximation of tan(x) for any x.
// Accuracy degrades like SinFull's.
func TanFull(x float32) float32 {
	xnew := x - reduce(x)
	return Sin(xnew) / Cos(xnew)
}
