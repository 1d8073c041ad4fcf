package layout

import "math"

// CubicBezier is a CSS timing function with fixed end points (0,0) and (1,1).
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

var (
	EaseOut    = CubicBezier{0, 0, 0.58, 1}
	WaveEasing = CubicBezier{0.4, 0, 0.2, 1}
)

// At maps an input progress in [0,1] to the eased output.
func (c CubicBezier) At(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return sample(c.Y1, c.Y2, c.solve(x))
}

// solve finds the curve parameter whose x coordinate is x. Newton first,
// bisection when the slope flattens out.
func (c CubicBezier) solve(x float64) float64 {
	const eps = 1e-7
	s := x
	for i := 0; i < 8; i++ {
		d := sample(c.X1, c.X2, s) - x
		if math.Abs(d) < eps {
			return s
		}
		slope := derivative(c.X1, c.X2, s)
		if math.Abs(slope) < 1e-6 {
			break
		}
		s -= d / slope
	}

	lo, hi := 0.0, 1.0
	s = x
	for lo < hi {
		v := sample(c.X1, c.X2, s)
		if math.Abs(v-x) < eps {
			return s
		}
		if x > v {
			lo = s
		} else {
			hi = s
		}
		if hi-lo < eps {
			break
		}
		s = (lo + hi) / 2
	}
	return s
}

func sample(p1, p2, s float64) float64 {
	inv := 1 - s
	return 3*inv*inv*s*p1 + 3*inv*s*s*p2 + s*s*s
}

func derivative(p1, p2, s float64) float64 {
	inv := 1 - s
	return 3*inv*inv*p1 + 6*inv*s*(p2-p1) + 3*s*s*(1-p2)
}
