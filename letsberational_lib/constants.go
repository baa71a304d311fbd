package letsberational

import "math"

// Machine precision constants for IEEE 754 double precision
const (
	dblEpsilon = 2.220446049250313e-16   // 2^-52
	dblMin     = 2.2250738585072014e-308 // smallest positive normal
	dblMax     = math.MaxFloat64
)

// Derived precision constants, computed once at load
var (
	sqrtDblEpsilon          = math.Sqrt(dblEpsilon)
	fourthRootDblEpsilon    = math.Sqrt(sqrtDblEpsilon)
	eighthRootDblEpsilon    = math.Sqrt(fourthRootDblEpsilon)
	sixteenthRootDblEpsilon = math.Sqrt(eighthRootDblEpsilon)
	sqrtDblMin              = math.Sqrt(dblMin)
	sqrtDblMax              = math.Sqrt(dblMax)
)

// Denormalization cutoff: values below this are treated as zero.
// Full machine accuracy cannot be achieved from denormalized inputs.
const denormalizationCutoff = 0.0

// Sentinel volatility values for callers that prefer total functions
// over error returns. Distinguishable from any valid volatility.
const (
	VolatilityValueToSignalPriceIsBelowIntrinsic = -dblMax
	VolatilityValueToSignalPriceIsAboveMaximum   = dblMax
)

// Mathematical constants with full double precision
const (
	oneOverSqrtTwo           = 0.7071067811865475244008443621048490392848359376887
	oneOverSqrtTwoPi         = 0.3989422804014326779399460599343818684758586311649
	sqrtTwoPi                = 2.506628274631000502415765284811045253006986740610
	twoPi                    = 6.283185307179586476925286766559005768394338798750
	sqrtPiOverTwo            = 1.253314137315500251207882642405522626503493370305
	sqrtThree                = 1.732050807568877293527446341505872366942805253810
	sqrtOneOverThree         = 0.577350269189625764509148780501957455647601751270
	twoPiOverSqrtTwentySeven = 1.209199576156145233729385505094770488189377498728
	piOverSix                = 0.523598775598298873077107230546583814032861566563
)

// Algorithm thresholds
const (
	impliedVolatilityMaximumIterations   = 2
	asymptoticExpansionAccuracyThreshold = -10.0
)

// Small-t expansion threshold: 2*eps^(1/16), about 0.21
var smallTExpansionOfNormalizedBlackThreshold = 2.0 * sixteenthRootDblEpsilon
