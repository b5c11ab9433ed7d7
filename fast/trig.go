package fast

import "github.com/cwbudde/algo-fastapprox/internal/ieee754"

const (
	fourOverPi       float32 = 1.2732395447351627
	fourOverPiSq     float32 = 0.40528473456935109
	halfPi           float32 = 1.5707963267948966
	halfPiMinusTwoPi float32 = -4.7123889803846899
	twoPi            float32 = 6.2831853071795865
	invTwoPi         float32 = 0.15915494309189534

	sinQ float32 = 0.78444488374548933
	sinP float32 = 0.20363937680730309
	sinR float32 = 0.015124940802184233
	sinS float32 = -0.0032225901625579573
)

// Sin returns an approximation of sin(x) for x in [-π, π].
//
// The parabola (4/π)x - (4/π²)x|x| matches sine at 0, ±π/2 and ±π. A quartic
// correction in that parabola follows, with the coefficient signs flipped by
// OR/XOR with x's sign bit instead of a negation.
func Sin(x float32) float32 {
	v := ieee754.ToBits(x)
	sign := v & ieee754.SignMask
	v &= ieee754.AbsMask

	qpprox := ieee754.FMA(fourOverPi, x, -fourOverPiSq*x*ieee754.FromBits(v))
	qpproxsq := qpprox * qpprox

	p := ieee754.FromBits(ieee754.ToBits(sinP) | sign)
	r := ieee754.FromBits(ieee754.ToBits(sinR) | sign)
	s := ieee754.FromBits(ieee754.ToBits(sinS) ^ sign)

	return ieee754.FMA(sinQ, qpprox, qpproxsq*ieee754.FMA(qpproxsq, ieee754.FMA(qpproxsq, s, r), p))
}

// Cos returns an approximation of cos(x) for x in [-π, π], as Sin shifted by
// π/2 (or π/2-2π above π/2, to stay inside Sin's domain).
//
//	Cos(1) = 0.54029506 (math.Cos gives 0.5403023)
func Cos(x float32) float32 {
	offset := halfPi
	if x > halfPi {
		offset = halfPiMinusTwoPi
	}
	return Sin(x + offset)
}

// Tan returns an approximation of tan(x) for x in [-π/2, π/2].
func Tan(x float32) float32 {
	return Sin(x) / Sin(x+halfPi)
}

// period returns k±0.5 where k = trunc(x/2π) and the half takes x's sign.
// Multiplied by 2π it is the period offset the full-range variants subtract.
func period(x float32) float32 {
	k := ieee754.Int32(x * invTwoPi)
	if x < 0 {
		return -0.5 + float32(k)
	}
	return 0.5 + float32(k)
}

// SinFull returns an approximation of sin(x) for any x.
//
// The range reduction loses accuracy as |x| grows and is hopeless for
// |x| >> 1000.
func SinFull(x float32) float32 {
	return Sin(ieee754.FMA(period(x), twoPi, -x))
}

// CosFull returns an approximation of cos(x) for any x.
// Accuracy degrades like SinFull's.
//
//	CosFull(10) = -0.83908 (math.Cos gives -0.8390715)
func CosFull(x float32) float32 {
	return SinFull(x + halfPi)
}

// TanFull returns an approximation of tan(x) for any x.
// Accuracy degrades like SinFull's.
func TanFull(x float32) float32 {
	xnew := ieee754.FMA(period(x), -twoPi, x)
	return Sin(xnew) / Cos(xnew)
}
