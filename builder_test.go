package opcalc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBuilder returns a fully populated builder for the reference scenario
// used throughout the original test vectors:
// S=100, K=105, r=0.5%, vol=23%, 2020/12/01 -> 2021/01/15.
func testBuilder() *Builder {
	return NewBuilder().
		WithAssetPrice(100).
		WithStrike(105).
		WithInterest(0.005).
		WithVolatility(0.23).
		WithCurrentTime(1606780800).
		WithMaturityTime(1610668800)
}

func TestFinalize(t *testing.T) {
	opt, err := testBuilder().Finalize()
	require.NoError(t, err)

	assert.Equal(t, 100.0, opt.AssetPrice())
	assert.Equal(t, 105.0, opt.Strike())
	assert.Equal(t, 0.23, opt.Volatility())
	assert.Equal(t, 0.005, opt.Interest())
	assert.Equal(t, 0.0, opt.PayoutRate())
	assert.Equal(t, int64(1606780800), opt.CurrentTime())
	assert.Equal(t, int64(1610668800), opt.MaturityTime())
	assert.InDelta(t, 45.0/365.0, opt.TimeToMaturity(), 1e-12)
}

func TestFinalizeMissingSingleParameter(t *testing.T) {
	cases := []struct {
		field string
		build func() *Builder
	}{
		{"asset_price", func() *Builder {
			return NewBuilder().WithStrike(105).WithInterest(0.005).WithVolatility(0.23).
				WithCurrentTime(1606780800).WithMaturityTime(1610668800)
		}},
		{"strike", func() *Builder {
			return NewBuilder().WithAssetPrice(100).WithInterest(0.005).WithVolatility(0.23).
				WithCurrentTime(1606780800).WithMaturityTime(1610668800)
		}},
		{"volatility", func() *Builder {
			return NewBuilder().WithAssetPrice(100).WithStrike(105).WithInterest(0.005).
				WithCurrentTime(1606780800).WithMaturityTime(1610668800)
		}},
		{"interest", func() *Builder {
			return NewBuilder().WithAssetPrice(100).WithStrike(105).WithVolatility(0.23).
				WithCurrentTime(1606780800).WithMaturityTime(1610668800)
		}},
		{"current_time", func() *Builder {
			return NewBuilder().WithAssetPrice(100).WithStrike(105).WithInterest(0.005).
				WithVolatility(0.23).WithMaturityTime(1610668800)
		}},
		{"maturity_time", func() *Builder {
			return NewBuilder().WithAssetPrice(100).WithStrike(105).WithInterest(0.005).
				WithVolatility(0.23).WithCurrentTime(1606780800)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			opt, err := tc.build().Finalize()
			assert.Nil(t, opt)

			var missing *MissingParameterError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, []string{tc.field}, missing.Fields)
		})
	}
}

func TestFinalizeEmptyBuilderListsAllFields(t *testing.T) {
	_, err := NewBuilder().Finalize()

	var missing *MissingParameterError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t,
		[]string{"asset_price", "strike", "volatility", "interest", "current_time", "maturity_time"},
		missing.Fields)
}

func TestFinalizeInvalidParameter(t *testing.T) {
	cases := []struct {
		name  string
		field string
		build func() *Builder
	}{
		{"negative strike", "strike", func() *Builder { return testBuilder().WithStrike(-5) }},
		{"zero strike", "strike", func() *Builder { return testBuilder().WithStrike(0) }},
		{"zero asset price", "asset_price", func() *Builder { return testBuilder().WithAssetPrice(0) }},
		{"negative volatility", "volatility", func() *Builder { return testBuilder().WithVolatility(-0.1) }},
		{"negative payout rate", "payout_rate", func() *Builder { return testBuilder().WithPayoutRate(-0.01) }},
		{"maturity before current", "maturity_time", func() *Builder { return testBuilder().WithMaturityTime(1606780799) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opt, err := tc.build().Finalize()
			assert.Nil(t, opt)

			var invalid *InvalidParameterError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tc.field, invalid.Field)
			assert.NotEmpty(t, invalid.Constraint)
		})
	}
}

func TestFinalizeMissingReportedBeforeInvalid(t *testing.T) {
	// An unset field wins over an invalid one.
	_, err := NewBuilder().
		WithAssetPrice(100).
		WithStrike(-5).
		WithInterest(0.005).
		WithVolatility(0.23).
		WithCurrentTime(1606780800).
		Finalize()

	var missing *MissingParameterError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"maturity_time"}, missing.Fields)
}

func TestSettersOverwrite(t *testing.T) {
	opt, err := testBuilder().
		WithStrike(90).
		WithStrike(110).
		Finalize()
	require.NoError(t, err)
	assert.Equal(t, 110.0, opt.Strike())
}

func TestBuilderIsReusable(t *testing.T) {
	b := NewBuilder().WithAssetPrice(100).WithInterest(0).WithVolatility(0.2).
		WithCurrentTime(0).WithMaturityTime(31536000)

	_, err := b.Finalize()
	var missing *MissingParameterError
	require.ErrorAs(t, err, &missing)

	first, err := b.WithStrike(100).Finalize()
	require.NoError(t, err)

	second, err := b.Finalize()
	require.NoError(t, err)

	assert.Equal(t, first.CallValue(), second.CallValue())

	// Mutating the builder afterwards must not affect finalized records.
	b.WithStrike(120)
	assert.Equal(t, 100.0, first.Strike())
}

func TestNegativeInterestAccepted(t *testing.T) {
	opt, err := testBuilder().WithInterest(-0.01).Finalize()
	require.NoError(t, err)
	assert.Equal(t, -0.01, opt.Interest())
	assert.Greater(t, opt.CallValue(), 0.0)
}

func TestMaturityEqualsCurrentIsValid(t *testing.T) {
	opt, err := testBuilder().WithMaturityTime(1606780800).Finalize()
	require.NoError(t, err)
	assert.Equal(t, 0.0, opt.TimeToMaturity())
}
