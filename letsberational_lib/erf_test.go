package letsberational

import (
	"math"
	"testing"
)

// Grid spanning all three Cody regions plus the edge thresholds.
var erfTestArguments = []float64{
	0.0, 1e-17, 1e-10, 0.1, 0.25, 0.46875, 0.47, 0.75, 1.0, 1.5, 2.0,
	3.0, 3.99, 4.0, 4.01, 5.0, 6.5, 10.0, 15.0, 20.0, 26.0, 26.5,
}

func TestErfKnownValues(t *testing.T) {
	cases := []struct {
		x    float64
		want float64
	}{
		{1.0, 0.8427007929497148},
		{2.0, 0.9953222650189527},
		{0.0, 0.0},
	}

	for _, c := range cases {
		got := Erf(c.x)
		if math.Abs(got-c.want) > 1e-15 {
			t.Errorf("Erf(%v) = %.17g, want %.17g", c.x, got, c.want)
		}
	}
}

func TestErfTinyArgument(t *testing.T) {
	// Below XSMALL erf(x) reduces to x*2/sqrt(pi)
	x := 1e-17
	want := x * 2.0 / math.Sqrt(math.Pi)
	got := Erf(x)
	if math.Abs(got-want) > 1e-15*math.Abs(want) {
		t.Errorf("Erf(%v) = %g, want %g", x, got, want)
	}
}

func TestErfOddSymmetry(t *testing.T) {
	// erf(-x) must be the exact negation, bit for bit
	for _, x := range erfTestArguments {
		if Erf(-x) != -Erf(x) {
			t.Errorf("Erf(-%v) = %.17g, -Erf(%v) = %.17g; not bit-exact", x, Erf(-x), x, -Erf(x))
		}
	}
}

func TestErfcReflection(t *testing.T) {
	// erfc(x) + erfc(-x) = 2, allow one rounding of the internal 2-erfc
	for _, x := range erfTestArguments {
		sum := Erfc(x) + Erfc(-x)
		if math.Abs(sum-2.0) > 5e-16 {
			t.Errorf("Erfc(%v) + Erfc(-%v) = %.17g, want 2", x, x, sum)
		}
	}
}

func TestErfcxMatchesScaledErfc(t *testing.T) {
	// erfcx(x) = exp(x^2)*erfc(x) wherever exp(x^2) is representable
	for _, x := range []float64{-3.0, -1.0, -0.5, -0.25, 0.0, 0.25, 0.46875, 1.0, 2.0, 4.0, 5.0, 10.0, 20.0} {
		want := math.Exp(x*x) * Erfc(x)
		got := Erfcx(x)
		if want == 0 {
			continue
		}
		if math.Abs(got-want) > 1e-13*math.Abs(want) {
			t.Errorf("Erfcx(%v) = %.17g, exp(x^2)*Erfc(x) = %.17g", x, got, want)
		}
	}
}

func TestErfcEdgeBounds(t *testing.T) {
	if got := Erfc(27.0); got != 0 {
		t.Errorf("Erfc(27) = %g, want 0", got)
	}
	if got := Erfc(-27.0); got != 2.0 {
		t.Errorf("Erfc(-27) = %g, want 2", got)
	}
	if got := Erfcx(-27.0); !math.IsInf(got, 1) && got < 1e300 {
		t.Errorf("Erfcx(-27) = %g, want overflow", got)
	}
	if got := Erfcx(2.6e307); got != 0 {
		t.Errorf("Erfcx(2.6e307) = %g, want 0", got)
	}
	// Above XHUGE the correction term underflows to the leading term
	if got := Erfcx(1e8); math.Abs(got-erfOneOverSqrtPi/1e8) > 1e-22 {
		t.Errorf("Erfcx(1e8) = %g, want %g", got, erfOneOverSqrtPi/1e8)
	}
}

func TestErfAgainstStdlib(t *testing.T) {
	// The Go standard library erf is accurate to a couple of ulps; the
	// Cody tables should agree to well under 1e-14 everywhere.
	for _, x := range erfTestArguments {
		if x > 6 {
			continue
		}
		if diff := math.Abs(Erf(x) - math.Erf(x)); diff > 1e-14 {
			t.Errorf("Erf(%v) differs from math.Erf by %g", x, diff)
		}
		ref := math.Erfc(x)
		if ref > 0 {
			if rel := math.Abs(Erfc(x)-ref) / ref; rel > 1e-12 {
				t.Errorf("Erfc(%v) relative difference from math.Erfc: %g", x, rel)
			}
		}
	}
}
