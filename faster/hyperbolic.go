package faster

// Sinh returns an approximation of the hyperbolic sine of p.
func Sinh(p float32) float32 {
	return 0.5 * (Exp(p) - Exp(-p))
}

// Cosh returns an approximation of the hyperbolic cosine of p.
func Cosh(p float32) float32 {
	return 0.5 * (Exp(p) + Exp(-p))
}

// Tanh returns an approximation of the hyperbolic tangent of p.
func Tanh(p float32) float32 {
	return -1 + 2/(1+Exp(float32(-2*p)))
}
