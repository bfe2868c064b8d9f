package flip

import "math"

// Easing maps linear progress t in [0,1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 {
	return clamp01(t)
}

// EaseOut is the default transition curve, cubic-bezier(.2,.8,.2,1).
var EaseOut = CubicBezier(0.2, 0.8, 0.2, 1)

// CubicBezier returns the easing described by a CSS-style cubic-bezier with
// control points (x1,y1) and (x2,y2). x1 and x2 are clamped to [0,1] so the
// curve stays a function of time.
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	x1 = clamp01(x1)
	x2 = clamp01(x2)
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return bezier(solveX(t, x1, x2), y1, y2)
	}
}

// bezier evaluates one axis of a cubic Bezier with endpoints 0 and 1.
func bezier(s, p1, p2 float64) float64 {
	inv := 1 - s
	return 3*inv*inv*s*p1 + 3*inv*s*s*p2 + s*s*s
}

func bezierSlope(s, p1, p2 float64) float64 {
	inv := 1 - s
	return 3*inv*inv*p1 + 6*inv*s*(p2-p1) + 3*s*s*(1-p2)
}

// solveX finds the curve parameter whose x equals t. Newton's method
// converges in a few steps for most curves; bisection covers flat slopes.
func solveX(t, x1, x2 float64) float64 {
	const epsilon = 1e-7

	s := t
	for range 8 {
		x := bezier(s, x1, x2) - t
		if math.Abs(x) < epsilon {
			return s
		}
		d := bezierSlope(s, x1, x2)
		if math.Abs(d) < 1e-6 {
			break
		}
		s -= x / d
	}

	lo, hi := 0.0, 1.0
	s = t
	for range 60 {
		x := bezier(s, x1, x2)
		if math.Abs(x-t) < epsilon {
			return s
		}
		if x < t {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return s
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
