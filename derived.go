package opcalc

import "math"

// secondsPerYear converts a timestamp difference to a year fraction,
// using a flat 365-day year.
const secondsPerYear = 31_536_000.0

// timeToMaturity returns the year fraction between two second-based
// timestamps. Builder validation guarantees maturity >= current, so the
// result is never negative.
func timeToMaturity(current, maturity int64) float64 {
	return float64(maturity-current) / secondsPerYear
}

// terms holds the quantities derived once at construction time: the time to
// maturity and the standardized log-moneyness terms d1/d2 that feed every
// formula in the engine.
//
// When sigma or T is zero the d1/d2 formula divides by zero, so the terms are
// tagged degenerate instead of being computed. The engine branches on the tag
// and never evaluates the general formula with a zero divisor.
type terms struct {
	ttm float64
	d1  float64
	d2  float64
	ok  bool // false when volatility or time to maturity is zero
}

// deriveTerms computes the terms for a validated parameter set.
func deriveTerms(assetPrice, strike, interest, payoutRate, volatility float64, current, maturity int64) terms {
	ttm := timeToMaturity(current, maturity)
	if volatility == 0 || ttm == 0 {
		return terms{ttm: ttm}
	}

	sqrtT := math.Sqrt(ttm)
	d1 := (math.Log(assetPrice/strike) + (interest-payoutRate+0.5*volatility*volatility)*ttm) / (volatility * sqrtT)
	d2 := d1 - volatility*sqrtT

	return terms{ttm: ttm, d1: d1, d2: d2, ok: true}
}
