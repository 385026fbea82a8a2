package opcalc

// Builder accumulates option parameters before constructing an Option.
//
// Each With setter overwrites any previously supplied value and returns the
// builder for chaining; the order of the setter calls does not matter.
// A builder is a single-owner staging object: it is not safe for concurrent
// mutation, but independent builders impose no cross-instance constraints
// and may be used in parallel.
//
//	option, err := opcalc.NewBuilder().
//		WithAssetPrice(100).
//		WithStrike(105).
//		WithInterest(0.005).
//		WithVolatility(0.23).
//		WithCurrentTime(1606780800).  // 2020/12/01 00:00:00
//		WithMaturityTime(1610668800). // 2021/01/15 00:00:00
//		Finalize()
type Builder struct {
	assetPrice  *float64
	strike      *float64
	volatility  *float64
	interest    *float64
	currentTime *int64
	maturity    *int64
	payoutRate  float64
}

// NewBuilder returns an empty Builder. The payout rate defaults to 0 and is
// the only optional parameter.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithAssetPrice sets the underlying's current price.
func (b *Builder) WithAssetPrice(assetPrice float64) *Builder {
	b.assetPrice = &assetPrice
	return b
}

// WithStrike sets the option's strike price.
func (b *Builder) WithStrike(strike float64) *Builder {
	b.strike = &strike
	return b
}

// WithVolatility sets the annualized volatility, as a decimal
// (e.g. 0.2398 for 23.98%).
func (b *Builder) WithVolatility(volatility float64) *Builder {
	b.volatility = &volatility
	return b
}

// WithInterest sets the continuously-compounded risk-free rate, as a decimal
// (e.g. 0.006 for 0.6%). Negative rates are accepted.
func (b *Builder) WithInterest(interest float64) *Builder {
	b.interest = &interest
	return b
}

// WithCurrentTime sets the timestamp, in seconds, that valuation is based on.
func (b *Builder) WithCurrentTime(currentTime int64) *Builder {
	b.currentTime = &currentTime
	return b
}

// WithMaturityTime sets the option's maturity timestamp, in seconds.
func (b *Builder) WithMaturityTime(maturity int64) *Builder {
	b.maturity = &maturity
	return b
}

// WithPayoutRate sets a flat continuous payout rate used in pricing.
// Optional; defaults to 0.
func (b *Builder) WithPayoutRate(payoutRate float64) *Builder {
	b.payoutRate = payoutRate
	return b
}

// Finalize validates the accumulated parameters and constructs an immutable
// Option.
//
// It fails with a *MissingParameterError naming every unset required
// parameter, or with an *InvalidParameterError for the first value that
// violates a domain constraint. Both are recoverable: the caller can correct
// the builder and call Finalize again. Validation happens only here; a
// returned Option never fails.
func (b *Builder) Finalize() (*Option, error) {
	var missing []string
	if b.assetPrice == nil {
		missing = append(missing, "asset_price")
	}
	if b.strike == nil {
		missing = append(missing, "strike")
	}
	if b.volatility == nil {
		missing = append(missing, "volatility")
	}
	if b.interest == nil {
		missing = append(missing, "interest")
	}
	if b.currentTime == nil {
		missing = append(missing, "current_time")
	}
	if b.maturity == nil {
		missing = append(missing, "maturity_time")
	}
	if len(missing) > 0 {
		return nil, &MissingParameterError{Fields: missing}
	}

	switch {
	case *b.assetPrice <= 0:
		return nil, &InvalidParameterError{Field: "asset_price", Constraint: "asset_price > 0", Value: *b.assetPrice}
	case *b.strike <= 0:
		return nil, &InvalidParameterError{Field: "strike", Constraint: "strike > 0", Value: *b.strike}
	case *b.volatility < 0:
		return nil, &InvalidParameterError{Field: "volatility", Constraint: "volatility >= 0", Value: *b.volatility}
	case b.payoutRate < 0:
		return nil, &InvalidParameterError{Field: "payout_rate", Constraint: "payout_rate >= 0", Value: b.payoutRate}
	case *b.maturity < *b.currentTime:
		return nil, &InvalidParameterError{Field: "maturity_time", Constraint: "maturity_time >= current_time", Value: float64(*b.maturity)}
	}

	return &Option{
		assetPrice:  *b.assetPrice,
		strike:      *b.strike,
		volatility:  *b.volatility,
		interest:    *b.interest,
		payoutRate:  b.payoutRate,
		currentTime: *b.currentTime,
		maturity:    *b.maturity,
		derived: deriveTerms(
			*b.assetPrice, *b.strike, *b.interest, b.payoutRate, *b.volatility,
			*b.currentTime, *b.maturity,
		),
	}, nil
}
