// Package opcalc prices European options with the Black-Scholes model.
//
// An Option is constructed through the Builder, which collects the six
// required market parameters (asset price, strike, volatility, interest
// rate and the two timestamps) plus an optional flat payout rate, validates
// them, and produces an immutable record. The record exposes the option
// value and the standard greeks for both the call and the put side.
//
// All computations are pure functions of the record's state. A finalized
// Option never fails: the zero-volatility and at-expiry cases are handled by
// explicit degenerate branches rather than errors or NaN propagation.
package opcalc

// Option is an immutable Black-Scholes option record.
//
// It owns a copy of the validated parameters and the derived quantities
// computed once at Finalize time. Accessors are idempotent and side-effect
// free, so a single record is safe for any number of concurrent readers.
type Option struct {
	assetPrice  float64
	strike      float64
	volatility  float64
	interest    float64
	payoutRate  float64
	currentTime int64
	maturity    int64

	derived terms
}

// AssetPrice returns the underlying's price the option was built with.
func (o *Option) AssetPrice() float64 { return o.assetPrice }

// Strike returns the option's strike price.
func (o *Option) Strike() float64 { return o.strike }

// Volatility returns the annualized volatility, as a decimal.
func (o *Option) Volatility() float64 { return o.volatility }

// Interest returns the continuously-compounded risk-free rate.
func (o *Option) Interest() float64 { return o.interest }

// PayoutRate returns the flat continuous payout rate (0 unless set).
func (o *Option) PayoutRate() float64 { return o.payoutRate }

// CurrentTime returns the valuation timestamp, in seconds.
func (o *Option) CurrentTime() int64 { return o.currentTime }

// MaturityTime returns the maturity timestamp, in seconds.
func (o *Option) MaturityTime() int64 { return o.maturity }

// TimeToMaturity returns the time to maturity as a fraction of a 365-day
// year. For instance, 45 days to maturity yields roughly 0.12329.
func (o *Option) TimeToMaturity() float64 { return o.derived.ttm }
