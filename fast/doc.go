// Package fast provides the precise tier of the float32 approximations.
//
// The base primitives reinterpret the IEEE 754 bit pattern of a float as an
// integer, which is an affine function of log2 of its value, and add a
// rational correction fitted over the mantissa range. Every other function is
// a closed-form composition of Log2 and Pow2 with fitted constants; nothing
// iterates.
//
// Relative error stays below about 1% on the documented domains (absolute
// error where the true value is below 0.1). Package faster trades that
// accuracy for fewer operations.
//
// Inputs are never validated: non-positive arguments to Log2, Log, Pow,
// Lgamma and Digamma, Erfinv outside (-1, 1), or trig arguments outside the
// bounded domain return whatever the bit arithmetic produces.
//
// The fitted coefficients are reproduced to full literal precision; do not
// round them. Fused multiply-adds go through an explicit FMA helper and all
// other products are kept unfused, so results are bit-identical across
// architectures.
//
// All functions are pure and safe for concurrent use.
package fast
