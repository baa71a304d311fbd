package letsberational

import (
	"math"
	"testing"
)

func TestRationalCubicInterpolationEndpoints(t *testing.T) {
	for _, r := range []float64{0.5, 1.0, 3.0, 10.0} {
		yl := rationalCubicInterpolation(1.0, 1.0, 2.0, 3.0, 7.0, 0.5, 2.0, r)
		yr := rationalCubicInterpolation(2.0, 1.0, 2.0, 3.0, 7.0, 0.5, 2.0, r)
		if math.Abs(yl-3.0) > 1e-14 || math.Abs(yr-7.0) > 1e-14 {
			t.Errorf("r=%v: endpoints (%g, %g), want (3, 7)", r, yl, yr)
		}
	}
}

func TestRationalCubicInterpolationEndSlopes(t *testing.T) {
	// The interpolant must reproduce the prescribed end derivatives
	const xL, xR, yL, yR, dL, dR, r = 0.0, 1.0, 0.0, 1.0, 0.25, 3.0, 4.0
	h := 1e-7
	slopeL := (rationalCubicInterpolation(xL+h, xL, xR, yL, yR, dL, dR, r) - yL) / h
	slopeR := (yR - rationalCubicInterpolation(xR-h, xL, xR, yL, yR, dL, dR, r)) / h
	if math.Abs(slopeL-dL) > 1e-5 {
		t.Errorf("left slope %g, want %g", slopeL, dL)
	}
	if math.Abs(slopeR-dR) > 1e-5 {
		t.Errorf("right slope %g, want %g", slopeR, dR)
	}
}

func TestRationalCubicInterpolationLinearDegeneration(t *testing.T) {
	// r beyond the maximum control value falls back to the chord
	r := 2.0 * maximumRationalCubicControlParameterValue
	mid := rationalCubicInterpolation(0.5, 0.0, 1.0, 2.0, 4.0, 100.0, -100.0, r)
	if math.Abs(mid-3.0) > 1e-14 {
		t.Errorf("degenerate interpolation at midpoint = %g, want 3", mid)
	}
}

func TestRationalCubicInterpolationDegenerateInterval(t *testing.T) {
	got := rationalCubicInterpolation(1.0, 1.0, 1.0, 2.0, 6.0, 0.0, 0.0, 1.0)
	if got != 4.0 {
		t.Errorf("zero-width interval = %g, want midpoint value 4", got)
	}
}

func TestMinimumControlParameterPreservesMonotonicity(t *testing.T) {
	// Monotone increasing data with positive end slopes: interpolant
	// using the shape-preserving minimum r must be monotone.
	const xL, xR, yL, yR = 0.0, 1.0, 0.0, 1.0
	const dL, dR = 0.1, 4.0
	s := (yR - yL) / (xR - xL)
	r := minimumRationalCubicControlParameter(dL, dR, s, true)

	prev := yL
	for x := 0.0; x <= 1.0+1e-12; x += 1.0 / 256.0 {
		y := rationalCubicInterpolation(x, xL, xR, yL, yR, dL, dR, r)
		if y+1e-13 < prev {
			t.Fatalf("interpolant not monotone at x=%v: %g < %g (r=%g)", x, y, prev, r)
		}
		prev = y
	}
}

func TestControlParameterSecondDerivativeFit(t *testing.T) {
	// Fitting a zero second derivative on one side must return a usable
	// finite control parameter.
	r := rationalCubicControlParameterToFitSecondDerivativeAtRightSide(0.0, 1.0, 0.0, 1.0, 0.5, 2.0, 0.0)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		t.Errorf("control parameter = %g, want finite", r)
	}
	rc := convexRationalCubicControlParameterToFitSecondDerivativeAtLeftSide(0.0, 1.0, 0.0, 1.0, 0.5, 2.0, 0.0, false)
	if rc < minimumRationalCubicControlParameterValue {
		t.Errorf("convex control parameter %g below minimum %g", rc, minimumRationalCubicControlParameterValue)
	}
}
