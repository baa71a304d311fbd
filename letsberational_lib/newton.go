package letsberational

import "math"

// Plain Newton-Raphson implied volatility, kept as the benchmark
// baseline for the rational solver. Variable iteration count (typically
// 5-20), flat initial guess, no transformed objective.

const (
	newtonMaxIterations  = 100
	newtonPriceTolerance = 1e-8
	newtonVolTolerance   = 1e-8
	newtonMinVega        = 1e-10
	newtonInitialGuess   = 0.2
)

// newtonBlackPrice is the textbook Black evaluation the baseline
// iterates on. Deliberately not routed through the normalized kernel.
func newtonBlackPrice(F, K, T, sigma float64, isCall bool) float64 {
	if T <= 0 || sigma <= 0 {
		if isCall {
			return math.Max(F-K, 0.0)
		}
		return math.Max(K-F, 0.0)
	}

	sqrtT := math.Sqrt(T)
	d1 := (math.Log(F/K) + 0.5*sigma*sigma*T) / (sigma * sqrtT)
	d2 := d1 - sigma*sqrtT

	if isCall {
		return F*NormCdf(d1) - K*NormCdf(d2)
	}
	return K*NormCdf(-d2) - F*NormCdf(-d1)
}

func newtonBlackVega(F, K, T, sigma float64) float64 {
	if T <= 0 || sigma <= 0 {
		return 0.0
	}

	sqrtT := math.Sqrt(T)
	d1 := (math.Log(F/K) + 0.5*sigma*sigma*T) / (sigma * sqrtT)
	return F * sqrtT * NormPdf(d1)
}

// NewtonImpliedVolatility computes Black's implied volatility with
// standard Newton-Raphson iteration. It exists only for benchmark
// comparison against ImpliedVolatility and can fail to converge
// (ErrNotConverged) where the rational solver cannot.
func NewtonImpliedVolatility(price, F, K, T float64, q int) (float64, error) {
	isCall := q > 0

	diff := K - F
	if isCall {
		diff = F - K
	}
	intrinsic := math.Max(diff, 0.0)
	if price < intrinsic-newtonPriceTolerance {
		return VolatilityValueToSignalPriceIsBelowIntrinsic, ErrBelowIntrinsic
	}

	maxPrice := K
	if isCall {
		maxPrice = F
	}
	if price >= maxPrice {
		return VolatilityValueToSignalPriceIsAboveMaximum, ErrAboveMaximum
	}

	if price <= intrinsic+newtonPriceTolerance {
		return 0.0, nil
	}

	sigma := newtonInitialGuess

	for i := 0; i < newtonMaxIterations; i++ {
		bsPrice := newtonBlackPrice(F, K, T, sigma, isCall)
		priceDiff := bsPrice - price

		if math.Abs(priceDiff) < newtonPriceTolerance {
			return sigma, nil
		}

		vega := newtonBlackVega(F, K, T, sigma)
		if math.Abs(vega) < newtonMinVega {
			return 0.0, ErrNotConverged
		}

		sigmaNew := sigma - priceDiff/vega
		if sigmaNew <= 0 {
			sigmaNew = sigma * 0.5
		}

		if math.Abs(sigmaNew-sigma) < newtonVolTolerance {
			return sigmaNew, nil
		}

		sigma = sigmaNew
	}

	return 0.0, ErrNotConverged
}
