// Package ieee754 reinterprets binary32 floats as their raw bit patterns and
// provides the few float32 helpers the approximation kernels share.
//
// Every function here is total: no input panics and no input allocates.
package ieee754

import "math"

// Bit masks over the binary32 layout (1 sign, 8 exponent, 23 mantissa bits).
const (
	SignMask     uint32 = 0x80000000
	AbsMask      uint32 = 0x7FFFFFFF
	MantissaMask uint32 = 0x007FFFFF
)

// ToBits returns the IEEE 754 bit pattern of f. It is a reinterpretation,
// not a numeric conversion.
func ToBits(f float32) uint32 {
	return math.Float32bits(f)
}

// FromBits returns the float32 whose IEEE 754 bit pattern is u.
// FromBits(ToBits(f)) is bit-identical to f for every f, NaN payloads included.
func FromBits(u uint32) float32 {
	return math.Float32frombits(u)
}

// FMA returns x*y + z rounded once to float32.
//
// The float32 product is exact in float64. The float64 sum may round onto a
// float32 halfway point, so the sum is rounded to odd (its low bit set
// whenever it is inexact) before the final conversion, which then rounds
// exactly as a single float32 rounding would.
func FMA(x, y, z float32) float32 {
	p := float64(x) * float64(y)
	zz := float64(z)
	s := p + zz
	if s == 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		return float32(s)
	}

	// TwoSum: e is the exact rounding error of s.
	bp := s - zz
	e := (p - bp) + (zz - (s - bp))
	if e != 0 && math.Float64bits(s)&1 == 0 {
		s = math.Nextafter(s, math.Copysign(math.Inf(1), e))
	}
	return float32(s)
}

// Uint32 truncates f toward zero and saturates to the uint32 range.
// NaN and negative inputs give 0.
func Uint32(f float32) uint32 {
	switch {
	case !(f > 0):
		return 0
	case f >= 4294967296:
		return math.MaxUint32
	default:
		return uint32(f)
	}
}

// Int32 truncates f toward zero and saturates to the int32 range.
// NaN gives 0.
func Int32(f float32) int32 {
	switch {
	case math.IsNaN(float64(f)):
		return 0
	case f <= math.MinInt32:
		return math.MinInt32
	case f >= 2147483648:
		return math.MaxInt32
	default:
		return int32(f)
	}
}
