package letsberational

import "math"

// Standard normal distribution built on Cody's error functions:
// density, cumulative distribution with an asymptotic tail expansion,
// and the AS241 quantile.

// Thresholds for the lower-tail asymptotic expansion of the CDF
const normCdfAsymptoticExpansionFirstThreshold = -10.0

var normCdfAsymptoticExpansionSecondThreshold = -1.0 / math.Sqrt(dblEpsilon)

// ALGORITHM AS241, Appl. Statist. (1988) Vol. 37, No. 3.
// Wichura's rational approximations for the normal quantile.
const (
	as241Split1 = 0.425
	as241Split2 = 5.0
	as241Const1 = 0.180625
	as241Const2 = 1.6
)

// Coefficients for |u - 0.5| <= 0.425
const (
	as241A0 = 3.3871328727963666080e0
	as241A1 = 1.3314166789178437745e+2
	as241A2 = 1.9715909503065514427e+3
	as241A3 = 1.3731693765509461125e+4
	as241A4 = 4.5921953931549871457e+4
	as241A5 = 6.7265770927008700853e+4
	as241A6 = 3.3430575583588128105e+4
	as241A7 = 2.5090809287301226727e+3

	as241B1 = 4.2313330701600911252e+1
	as241B2 = 6.8718700749205790830e+2
	as241B3 = 5.3941960214247511077e+3
	as241B4 = 2.1213794301586595867e+4
	as241B5 = 3.9307895800092710610e+4
	as241B6 = 2.8729085735721942674e+4
	as241B7 = 5.2264952788528545610e+3
)

// Coefficients for the outer region, sqrt(-ln(tail)) < 5
const (
	as241C0 = 1.42343711074968357734e0
	as241C1 = 4.63033784615654529590e0
	as241C2 = 5.76949722146069140550e0
	as241C3 = 3.64784832476320460504e0
	as241C4 = 1.27045825245236838258e0
	as241C5 = 2.41780725177450611770e-1
	as241C6 = 2.27238449892691845833e-2
	as241C7 = 7.74545014278341407640e-4

	as241D1 = 2.05319162663775882187e0
	as241D2 = 1.67638483018380384940e0
	as241D3 = 6.89767334985100004550e-1
	as241D4 = 1.48103976427480074590e-1
	as241D5 = 1.51986665636164571966e-2
	as241D6 = 5.47593808499534494600e-4
	as241D7 = 1.05075007164441684324e-9
)

// Coefficients for the far tail
const (
	as241E0 = 6.65790464350110377720e0
	as241E1 = 5.46378491116411436990e0
	as241E2 = 1.78482653991729133580e0
	as241E3 = 2.96560571828504891230e-1
	as241E4 = 2.65321895265761230930e-2
	as241E5 = 1.24266094738807843860e-3
	as241E6 = 2.71155556874348757815e-5
	as241E7 = 2.01033439929228813265e-7

	as241F1 = 5.99832206555887937690e-1
	as241F2 = 1.36929880922735805310e-1
	as241F3 = 1.48753612908506148525e-2
	as241F4 = 7.86869131145613259100e-4
	as241F5 = 1.84631831751005468180e-5
	as241F6 = 1.42151175831644588870e-7
	as241F7 = 2.04426310338993978564e-15
)

// NormPdf returns the standard normal density
// phi(x) = exp(-x*x/2) / sqrt(2*pi).
func NormPdf(x float64) float64 {
	return oneOverSqrtTwoPi * math.Exp(-0.5*x*x)
}

// NormCdf returns the standard normal cumulative distribution Phi(z).
//
// For z <= -10 it sums the asymptotic expansion (26.2.12) in
// Abramowitz & Stegun, truncating once the terms stop shrinking or drop
// below the required relative tolerance; elsewhere it evaluates
// Phi(z) = erfc(-z/sqrt(2))/2 so the lower tail keeps full relative
// accuracy.
func NormCdf(z float64) float64 {
	if z <= normCdfAsymptoticExpansionFirstThreshold {
		sum := 1.0

		if z >= normCdfAsymptoticExpansionSecondThreshold {
			zsqr := z * z
			i := 1
			g := 1.0
			a := dblMax
			for {
				lasta := a
				x := (4.0*float64(i) - 3.0) / zsqr
				y := x * ((4.0*float64(i) - 1.0) / zsqr)
				a = g * (x - y)
				sum -= a
				g *= y
				i++
				a = math.Abs(a)
				if !(lasta > a && a >= math.Abs(sum*dblEpsilon)) {
					break
				}
			}
		}

		return -NormPdf(z) * sum / z
	}

	return 0.5 * Erfc(-z*oneOverSqrtTwo)
}

// InverseNormCdf returns z such that NormCdf(z) = u.
//
// ALGORITHM AS241, accurate to about 1 part in 1e16. Out-of-range
// probabilities degenerate through the logarithm (u = 0 maps to -Inf).
func InverseNormCdf(u float64) float64 {
	if u <= 0.0 {
		return math.Log(u)
	}
	if u >= 1.0 {
		return math.Log(1.0 - u)
	}

	q := u - 0.5

	// Central region: |u - 0.5| <= 0.425
	if math.Abs(q) <= as241Split1 {
		r := as241Const1 - q*q
		return q * (((((((as241A7*r+as241A6)*r+as241A5)*r+as241A4)*r+as241A3)*r+as241A2)*r+as241A1)*r + as241A0) /
			(((((((as241B7*r+as241B6)*r+as241B5)*r+as241B4)*r+as241B3)*r+as241B2)*r+as241B1)*r + 1.0)
	}

	// Tail regions
	r := u
	if q >= 0.0 {
		r = 1.0 - u
	}
	r = math.Sqrt(-math.Log(r))

	var ret float64
	if r < as241Split2 {
		r -= as241Const2
		ret = (((((((as241C7*r+as241C6)*r+as241C5)*r+as241C4)*r+as241C3)*r+as241C2)*r+as241C1)*r + as241C0) /
			(((((((as241D7*r+as241D6)*r+as241D5)*r+as241D4)*r+as241D3)*r+as241D2)*r+as241D1)*r + 1.0)
	} else {
		r -= as241Split2
		ret = (((((((as241E7*r+as241E6)*r+as241E5)*r+as241E4)*r+as241E3)*r+as241E2)*r+as241E1)*r + as241E0) /
			(((((((as241F7*r+as241F6)*r+as241F5)*r+as241F4)*r+as241F3)*r+as241F2)*r+as241F1)*r + 1.0)
	}

	if q < 0.0 {
		return -ret
	}
	return ret
}
