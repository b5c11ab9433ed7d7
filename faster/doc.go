// Package faster provides the coarse tier of the float32 approximations:
// the bit-level log2/pow2 primitive with little or no correction.
//
// Expect relative errors up to roughly 15% on the documented domains, in
// exchange for the cheapest possible evaluation (no divisions in the base
// primitives). Use package fast when roughly 1% is required.
//
// # Domains
//
// Inputs are never validated. Log2, Log, Pow, Lgamma and Digamma expect
// positive arguments, Erfinv expects (-1, 1), Sin, Cos and Tan expect
// [-π, π] (Tan: [-π/2, π/2]). Outside those domains the functions return
// whatever the bit arithmetic yields, possibly NaN or Inf.
//
// # Reproducibility
//
// Products that feed a sum are wrapped in explicit float32 conversions so the
// compiler cannot fuse them into FMA instructions. Results are bit-identical
// across architectures.
//
// All functions are pure and safe for concurrent use.
package faster
