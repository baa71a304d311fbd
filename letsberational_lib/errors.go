package letsberational

import "errors"

// Domain errors surfaced by the implied volatility solvers. These are the
// only two error conditions reported to callers; every other numerical
// anomaly (underflow, bracket collapse, oscillation) is recovered
// internally and never surfaces.
var (
	// ErrBelowIntrinsic signals a price strictly below the option's
	// intrinsic value. This is an arbitrage violation or bad input.
	ErrBelowIntrinsic = errors.New("price is below intrinsic value")

	// ErrAboveMaximum signals a price at or above the asymptotic upper
	// bound (the forward for calls, the strike for puts).
	ErrAboveMaximum = errors.New("price is above maximum attainable value")

	// ErrNotConverged is reported only by the Newton-Raphson benchmark
	// solver when it exhausts its iteration budget. The rational solver
	// never returns it.
	ErrNotConverged = errors.New("iteration failed to converge")
)
