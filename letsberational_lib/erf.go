package letsberational

import "math"

// W. J. Cody's rational Chebyshev approximations for the error function,
// "Rational Chebyshev approximations for the error function",
// Math. Comp., 1969, pp. 631-638.
//
// Three related functions share one kernel:
//
//	Erf(x)   error function
//	Erfc(x)  complementary error function
//	Erfcx(x) scaled complementary error function exp(x*x)*erfc(x)

// Machine-dependent thresholds for IEEE 754 double precision
const (
	erfXInf   = 1.79e308 // largest positive finite double
	erfXNeg   = -26.628  // largest negative argument for erfcx
	erfXSmall = 1.11e-16 // below this erf(x) ~ 2x/sqrt(pi)
	erfXBig   = 26.543   // largest argument for erfc
	erfXHuge  = 6.71e7   // above this 1 - 1/(2x^2) == 1
	erfXMax   = 2.53e307 // largest acceptable argument for erfcx
)

const (
	erfOneOverSqrtPi = 0.56418958354775628695 // 1/sqrt(pi)
	erfThreshold     = 0.46875                // 15/32
)

// Region 1 coefficients, |x| <= 0.46875: erf(x) = x * P(x^2) / Q(x^2)
var erfA = [5]float64{
	3.16112374387056560,
	113.864154151050156,
	377.485237685302021,
	3209.37758913846947,
	0.185777706184603153,
}

var erfB = [4]float64{
	23.6012909523441209,
	244.024637934444173,
	1282.61652607737228,
	2844.23683343917062,
}

// Region 2 coefficients, 0.46875 < |x| <= 4.0: erfc(x) = exp(-x^2) * R(x)
var erfC = [9]float64{
	0.564188496988670089,
	8.88314979438837594,
	66.1191906371416295,
	298.635138197400131,
	881.95222124176909,
	1712.04761263407058,
	2051.07837782607147,
	1230.33935479799725,
	2.15311535474403846e-8,
}

var erfD = [8]float64{
	15.7449261107098347,
	117.693950891312499,
	537.181101862009858,
	1621.38957456669019,
	3290.79923573345963,
	4362.61909014324716,
	3439.36767414372164,
	1230.33935480374942,
}

// Region 3 coefficients, |x| > 4.0: R(x) = (1/x^2) * P(1/x^2) / Q(1/x^2)
var erfP = [6]float64{
	0.305326634961232344,
	0.360344899949804439,
	0.125781726111229246,
	0.0160837851487422766,
	6.58749161529837803e-4,
	0.0163153871373020978,
}

var erfQ = [5]float64{
	2.56852019228982242,
	1.87295284992346047,
	0.527905102951428412,
	0.0605183413124413191,
	0.00233520497626869185,
}

// selector values for the shared kernel
const (
	erfKindErf = iota
	erfKindErfc
	erfKindErfcx
)

// expNegSquared computes exp(-y*y) without losing precision for large y.
// Splits y^2 = y0^2 + del with y0 = floor(16y)/16 so del is exact.
func expNegSquared(y float64) float64 {
	y0 := math.Floor(y*16.0) / 16.0
	del := (y - y0) * (y + y0)
	return math.Exp(-y0*y0) * math.Exp(-del)
}

// calerf is the shared kernel behind Erf, Erfc and Erfcx.
func calerf(x float64, kind int) float64 {
	y := math.Abs(x)
	var result float64

	// Region 1: |x| <= 0.46875
	if y <= erfThreshold {
		ysq := 0.0
		if y > erfXSmall {
			ysq = y * y
		}

		xnum := erfA[4] * ysq
		xden := ysq
		for i := 0; i < 3; i++ {
			xnum = (xnum + erfA[i]) * ysq
			xden = (xden + erfB[i]) * ysq
		}
		result = x * (xnum + erfA[3]) / (xden + erfB[3])

		if kind != erfKindErf {
			result = 1.0 - result
		}
		if kind == erfKindErfcx {
			result = math.Exp(ysq) * result
		}
		return result
	}

	// Region 2: 0.46875 < |x| <= 4.0
	if y <= 4.0 {
		xnum := erfC[8] * y
		xden := y
		for i := 0; i < 7; i++ {
			xnum = (xnum + erfC[i]) * y
			xden = (xden + erfD[i]) * y
		}
		result = (xnum + erfC[7]) / (xden + erfD[7])

		if kind != erfKindErfcx {
			result = expNegSquared(y) * result
		}
	} else {
		// Region 3: |x| > 4.0
		result = 0.0

		if y >= erfXBig && (kind != erfKindErfcx || y >= erfXMax) {
			// erfc underflows; erfcx is below the smallest double
		} else if y >= erfXHuge {
			// 1/(2x^2) underflows; erfcx(x) ~ 1/(x*sqrt(pi))
			result = erfOneOverSqrtPi / y
		} else {
			ysq := 1.0 / (y * y)
			xnum := erfP[5] * ysq
			xden := ysq
			for i := 0; i < 4; i++ {
				xnum = (xnum + erfP[i]) * ysq
				xden = (xden + erfQ[i]) * ysq
			}
			result = ysq * (xnum + erfP[4]) / (xden + erfQ[4])
			result = (erfOneOverSqrtPi - result) / y

			if kind != erfKindErfcx {
				result = expNegSquared(y) * result
			}
		}
	}

	// Regions 2 and 3 computed erfc(|x|); convert and fix signs.
	switch kind {
	case erfKindErf:
		result = 1.0 - result
		if x < 0 {
			result = -result
		}
	case erfKindErfc:
		if x < 0 {
			result = 2.0 - result
		}
	case erfKindErfcx:
		if x < 0 {
			// erfcx(-x) = 2*exp(x^2) - erfcx(x)
			if x < erfXNeg {
				result = erfXInf
			} else {
				y0 := math.Floor(x*16.0) / 16.0
				del := (x - y0) * (x + y0)
				e := math.Exp(y0*y0) * math.Exp(del)
				result = (e + e) - result
			}
		}
	}

	return result
}

// Erf returns the error function of x.
//
//	erf(x) = (2/sqrt(pi)) * integral from 0 to x of exp(-t*t) dt
func Erf(x float64) float64 {
	return calerf(x, erfKindErf)
}

// Erfc returns the complementary error function 1 - erf(x). For large
// positive x this retains full relative accuracy where 1-Erf(x) would
// cancel to zero.
func Erfc(x float64) float64 {
	return calerf(x, erfKindErfc)
}

// Erfcx returns the scaled complementary error function
// exp(x*x) * erfc(x). The scaling removes the underflow of erfc for
// large positive x; for x < -26.628 the result overflows and is
// returned as 1.79e308.
func Erfcx(x float64) float64 {
	return calerf(x, erfKindErfcx)
}
