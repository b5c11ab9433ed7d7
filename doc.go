// Package fastapprox selects between the two tiers of float32 function
// approximations by name.
//
// The kernels live in the tier packages: package fast keeps relative error
// around 1% or better, package faster trades accuracy (around 15%) for
// fewer operations. Call them directly when the tier is known at compile
// time; use Lookup and LookupPow when it is a runtime parameter.
//
//	fn, err := fastapprox.Lookup(fastapprox.TierFast, "erf")
//	if err != nil {
//		return err
//	}
//	y := fn(0.5)
//
// Function names follow the registry table (log2, pow2, ln, exp, pow,
// sigmoid, ln_gamma, digamma, erf, erfc, erf_inv, sinh, cosh, tanh, sin,
// cos, tan, sinfull, cosfull, tanfull, lambertw, lambertwexpx).
package fastapprox
