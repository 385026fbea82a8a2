package scenario

import (
	"sync"

	"github.com/contactkeval/opcalc"
	"github.com/contactkeval/opcalc/internal/logger"
)

// Result holds the valuation output for one scenario. Gamma and vega are
// reported once since they are identical for the call and the put.
// A scenario that fails builder validation carries the message in Error and
// zero values elsewhere.
type Result struct {
	Scenario Scenario `json:"scenario"`

	TimeToMaturity float64 `json:"time_to_maturity"`
	CallValue      float64 `json:"call_value"`
	PutValue       float64 `json:"put_value"`
	CallDelta      float64 `json:"call_delta"`
	PutDelta       float64 `json:"put_delta"`
	Gamma          float64 `json:"gamma"`
	Vega           float64 `json:"vega"`
	CallTheta      float64 `json:"call_theta"`
	PutTheta       float64 `json:"put_theta"`

	Error string `json:"error,omitempty"`
}

// price values a single scenario through the builder.
func price(sc Scenario) Result {
	opt, err := opcalc.NewBuilder().
		WithAssetPrice(sc.AssetPrice).
		WithStrike(sc.Strike).
		WithVolatility(sc.Volatility).
		WithInterest(sc.Interest).
		WithPayoutRate(sc.PayoutRate).
		WithCurrentTime(sc.CurrentTime).
		WithMaturityTime(sc.MaturityTime).
		Finalize()
	if err != nil {
		logger.Debugf("scenario %q rejected: %v", sc.Name, err)
		return Result{Scenario: sc, Error: err.Error()}
	}

	return Result{
		Scenario:       sc,
		TimeToMaturity: opt.TimeToMaturity(),
		CallValue:      opt.CallValue(),
		PutValue:       opt.PutValue(),
		CallDelta:      opt.CallDelta(),
		PutDelta:       opt.PutDelta(),
		Gamma:          opt.CallGamma(),
		Vega:           opt.CallVega(),
		CallTheta:      opt.CallTheta(),
		PutTheta:       opt.PutTheta(),
	}
}

// Run prices all scenarios over a bounded pool of workers and returns the
// results in input order. Valuation is a pure function per scenario, so the
// only coordination needed is handing out indices.
//
// workers <= 1 runs sequentially.
func Run(scenarios []Scenario, workers int) []Result {
	results := make([]Result, len(scenarios))

	if workers <= 1 {
		for i, sc := range scenarios {
			results[i] = price(sc)
		}
		return results
	}
	if workers > len(scenarios) {
		workers = len(scenarios)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = price(scenarios[i])
			}
		}()
	}
	for i := range scenarios {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
