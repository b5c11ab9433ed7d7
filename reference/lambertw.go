package reference

import "math"

const maxIterations = 64

// lambertW solves w·e**w = x on the principal branch with Halley's method.
func lambertW(x float64) float64 {
	switch {
	case math.IsNaN(x) || x < -1/math.E:
		return math.NaN()
	case x == 0:
		return 0
	case math.IsInf(x, 1):
		return x
	case x == -1/math.E:
		return -1
	}

	var w float64
	if x < 3 {
		// Series about the branch point keeps the start above -1.
		p := math.Sqrt(2 * (math.E*x + 1))
		w = -1 + p - p*p/3 + 11*p*p*p/72
		if x > 0.5 {
			w = math.Log1p(x) * 0.75
		}
	} else {
		l1 := math.Log(x)
		l2 := math.Log(l1)
		w = l1 - l2 + l2/l1
	}

	for range maxIterations {
		ew := math.Exp(w)
		f := w*ew - x
		wp1 := w + 1
		if wp1 == 0 {
			break
		}
		dw := f / (ew*wp1 - (w+2)*f/(2*wp1))
		w -= dw
		if math.Abs(dw) <= 1e-15*(1+math.Abs(w)) {
			break
		}
	}
	return w
}

// lambertWExp solves w + ln(w) = x, which is W(e**x), with Newton's method.
func lambertWExp(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case math.IsInf(x, 1):
		return x
	case math.IsInf(x, -1):
		return 0
	case x < 1:
		return lambertW(math.Exp(x))
	}

	w := x - math.Log(x)
	if w < 1 {
		w = 1
	}
	for range maxIterations {
		dw := (w + math.Log(w) - x) / (1 + 1/w)
		w -= dw
		if math.Abs(dw) <= 1e-15*w {
			break
		}
	}
	return w
}
