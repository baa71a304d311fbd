package letsberational

import "math"

// Shape-preserving piecewise rational cubic interpolation after
// Delbourgo and Gregory, "Shape preserving piecewise rational
// interpolation", SIAM J. Sci. Stat. Comput., 1985. Supplies the
// initial-guess transforms for the implied volatility solver.

var (
	minimumRationalCubicControlParameterValue = -(1.0 - math.Sqrt(dblEpsilon))
	maximumRationalCubicControlParameterValue = 2.0 / (dblEpsilon * dblEpsilon)
)

func isZero(x float64) bool {
	return math.Abs(x) < dblMin
}

// rationalCubicControlParameterToFitSecondDerivativeAtLeftSide solves
// for the control parameter r that reproduces a prescribed second
// derivative at the left node.
func rationalCubicControlParameterToFitSecondDerivativeAtLeftSide(xL, xR, yL, yR, dL, dR, secondDerivativeL float64) float64 {
	h := xR - xL
	numerator := 0.5*h*secondDerivativeL + (dR - dL)
	if isZero(numerator) {
		return 0.0
	}

	denominator := (yR-yL)/h - dL
	if isZero(denominator) {
		if numerator > 0 {
			return maximumRationalCubicControlParameterValue
		}
		return minimumRationalCubicControlParameterValue
	}

	return numerator / denominator
}

// rationalCubicControlParameterToFitSecondDerivativeAtRightSide is the
// right-node counterpart.
func rationalCubicControlParameterToFitSecondDerivativeAtRightSide(xL, xR, yL, yR, dL, dR, secondDerivativeR float64) float64 {
	h := xR - xL
	numerator := 0.5*h*secondDerivativeR + (dR - dL)
	if isZero(numerator) {
		return 0.0
	}

	denominator := dR - (yR-yL)/h
	if isZero(denominator) {
		if numerator > 0 {
			return maximumRationalCubicControlParameterValue
		}
		return minimumRationalCubicControlParameterValue
	}

	return numerator / denominator
}

// minimumRationalCubicControlParameter returns the smallest r that
// keeps the interpolant monotone and convex/concave when the data is;
// outside those shape classes it reverts to a standard cubic.
func minimumRationalCubicControlParameter(dL, dR, s float64, preferShapePreservationOverSmoothness bool) float64 {
	monotonic := dL*s >= 0 && dR*s >= 0
	convex := dL <= s && s <= dR
	concave := dL >= s && s >= dR

	if !monotonic && !convex && !concave {
		return minimumRationalCubicControlParameterValue
	}

	dRmDL := dR - dL
	dRmS := dR - s
	smDL := s - dL

	r1 := -dblMax
	r2 := -dblMax

	// Monotonicity condition (3.8)
	if monotonic {
		if !isZero(s) {
			r1 = (dR + dL) / s
		} else if preferShapePreservationOverSmoothness {
			r1 = maximumRationalCubicControlParameterValue
		}
	}

	// Convexity/concavity condition (3.18)
	if convex || concave {
		if !(isZero(smDL) || isZero(dRmS)) {
			r2 = math.Max(math.Abs(dRmDL/dRmS), math.Abs(dRmDL/smDL))
		} else if preferShapePreservationOverSmoothness {
			r2 = maximumRationalCubicControlParameterValue
		}
	} else if monotonic && preferShapePreservationOverSmoothness {
		r2 = maximumRationalCubicControlParameterValue
	}

	return math.Max(minimumRationalCubicControlParameterValue, math.Max(r1, r2))
}

func convexRationalCubicControlParameterToFitSecondDerivativeAtLeftSide(xL, xR, yL, yR, dL, dR, secondDerivativeL float64, preferShapePreservationOverSmoothness bool) float64 {
	r := rationalCubicControlParameterToFitSecondDerivativeAtLeftSide(xL, xR, yL, yR, dL, dR, secondDerivativeL)
	rMin := minimumRationalCubicControlParameter(dL, dR, (yR-yL)/(xR-xL), preferShapePreservationOverSmoothness)
	return math.Max(r, rMin)
}

func convexRationalCubicControlParameterToFitSecondDerivativeAtRightSide(xL, xR, yL, yR, dL, dR, secondDerivativeR float64, preferShapePreservationOverSmoothness bool) float64 {
	r := rationalCubicControlParameterToFitSecondDerivativeAtRightSide(xL, xR, yL, yR, dL, dR, secondDerivativeR)
	rMin := minimumRationalCubicControlParameter(dL, dR, (yR-yL)/(xR-xL), preferShapePreservationOverSmoothness)
	return math.Max(r, rMin)
}

// rationalCubicInterpolation evaluates the rational cubic through
// (xL, yL) and (xR, yR) with end slopes dL, dR and control parameter r.
// Values of r beyond the maximum control value degenerate to linear
// interpolation.
func rationalCubicInterpolation(x, xL, xR, yL, yR, dL, dR, r float64) float64 {
	h := xR - xL
	if math.Abs(h) <= 0 {
		return 0.5 * (yL + yR)
	}

	if !(r < maximumRationalCubicControlParameterValue) {
		t := (x - xL) / h
		return yR*t + yL*(1.0-t)
	}

	// Formula (2.4)/(2.5) of Delbourgo-Gregory
	t := (x - xL) / h
	omt := 1.0 - t
	t2 := t * t
	omt2 := omt * omt

	return (yR*t2*t + (r*yR-h*dR)*t2*omt + (r*yL+h*dL)*t*omt2 + yL*omt2*omt) /
		(1.0 + (r-3.0)*t*omt)
}
