package opcalc

import "math"

// Valuation formulas for the call and put side. Standard Black-Scholes under
// continuous compounding with a flat continuous payout rate q.
//
// Two degenerate cases never reach the general formulas:
//
//   - At or past maturity (T = 0) the value collapses to intrinsic value and
//     every greek is 0, except delta which is +1 (call) or -1 (put) when in
//     the money. Delta exactly at S = K is a discontinuity; the engine
//     returns 0 there. This is a deliberate, documented choice.
//
//   - With zero volatility and T > 0 the underlying's future value is the
//     deterministic forward S*e^((r-q)T), so the option is worth the
//     discounted payoff of that outcome. Gamma and vega are 0; delta and
//     theta follow from differentiating the deterministic value, with the
//     same 0-at-the-boundary convention when the forward equals the strike.

// CallValue returns the option's call value.
func (o *Option) CallValue() float64 {
	switch {
	case o.derived.ttm == 0:
		return math.Max(o.assetPrice-o.strike, 0)
	case o.volatility == 0:
		return math.Max(o.discountedAsset()-o.discountedStrike(), 0)
	}
	return o.discountedAsset()*normCDF(o.derived.d1) - o.discountedStrike()*normCDF(o.derived.d2)
}

// PutValue returns the option's put value.
func (o *Option) PutValue() float64 {
	switch {
	case o.derived.ttm == 0:
		return math.Max(o.strike-o.assetPrice, 0)
	case o.volatility == 0:
		return math.Max(o.discountedStrike()-o.discountedAsset(), 0)
	}
	return o.discountedStrike()*normCDF(-o.derived.d2) - o.discountedAsset()*normCDF(-o.derived.d1)
}

// CallDelta returns the sensitivity of the call value to the asset price.
func (o *Option) CallDelta() float64 {
	switch {
	case o.derived.ttm == 0:
		if o.assetPrice > o.strike {
			return 1
		}
		return 0
	case o.volatility == 0:
		if o.forward() > o.strike {
			return o.payoutFactor()
		}
		return 0
	}
	return o.payoutFactor() * normCDF(o.derived.d1)
}

// PutDelta returns the sensitivity of the put value to the asset price.
func (o *Option) PutDelta() float64 {
	switch {
	case o.derived.ttm == 0:
		if o.assetPrice < o.strike {
			return -1
		}
		return 0
	case o.volatility == 0:
		if o.forward() < o.strike {
			return -o.payoutFactor()
		}
		return 0
	}
	return o.payoutFactor() * (normCDF(o.derived.d1) - 1)
}

// CallGamma returns the sensitivity of the call delta to the asset price.
// Gamma is identical for the call and the put.
func (o *Option) CallGamma() float64 {
	if !o.derived.ok {
		return 0
	}
	return o.payoutFactor() * normPDF(o.derived.d1) /
		(o.assetPrice * o.volatility * math.Sqrt(o.derived.ttm))
}

// PutGamma returns the sensitivity of the put delta to the asset price.
func (o *Option) PutGamma() float64 { return o.CallGamma() }

// CallVega returns the sensitivity of the call value to volatility, per unit
// of volatility. Scaling to a 1% vol move is left to the caller.
// Vega is identical for the call and the put.
func (o *Option) CallVega() float64 {
	if !o.derived.ok {
		return 0
	}
	return o.discountedAsset() * normPDF(o.derived.d1) * math.Sqrt(o.derived.ttm)
}

// PutVega returns the sensitivity of the put value to volatility.
func (o *Option) PutVega() float64 { return o.CallVega() }

// CallTheta returns the sensitivity of the call value to the passage of
// time, per year.
func (o *Option) CallTheta() float64 {
	switch {
	case o.derived.ttm == 0:
		return 0
	case o.volatility == 0:
		if o.forward() > o.strike {
			return o.payoutRate*o.discountedAsset() - o.interest*o.discountedStrike()
		}
		return 0
	}
	return -o.discountedAsset()*normPDF(o.derived.d1)*o.volatility/(2*math.Sqrt(o.derived.ttm)) -
		o.interest*o.discountedStrike()*normCDF(o.derived.d2) +
		o.payoutRate*o.discountedAsset()*normCDF(o.derived.d1)
}

// PutTheta returns the sensitivity of the put value to the passage of time,
// per year.
func (o *Option) PutTheta() float64 {
	switch {
	case o.derived.ttm == 0:
		return 0
	case o.volatility == 0:
		if o.forward() < o.strike {
			return o.interest*o.discountedStrike() - o.payoutRate*o.discountedAsset()
		}
		return 0
	}
	return -o.discountedAsset()*normPDF(o.derived.d1)*o.volatility/(2*math.Sqrt(o.derived.ttm)) +
		o.interest*o.discountedStrike()*normCDF(-o.derived.d2) -
		o.payoutRate*o.discountedAsset()*normCDF(-o.derived.d1)
}

// payoutFactor is e^(-qT), the payout discount applied to the asset leg.
func (o *Option) payoutFactor() float64 {
	return math.Exp(-o.payoutRate * o.derived.ttm)
}

// discountedAsset is S*e^(-qT).
func (o *Option) discountedAsset() float64 {
	return o.assetPrice * o.payoutFactor()
}

// discountedStrike is K*e^(-rT).
func (o *Option) discountedStrike() float64 {
	return o.strike * math.Exp(-o.interest*o.derived.ttm)
}

// forward is the deterministic future value S*e^((r-q)T) the underlying
// grows to when volatility is zero.
func (o *Option) forward() float64 {
	return o.assetPrice * math.Exp((o.interest-o.payoutRate)*o.derived.ttm)
}
