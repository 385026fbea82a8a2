package scenario

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/contactkeval/opcalc"
)

// syntheticSource generates seeded random scenarios around a base spot.
// Strikes are backed out from a target call delta, so the batch covers the
// whole moneyness range instead of clustering at the money.
type syntheticSource struct {
	n    int
	seed int64
}

// NewSyntheticSource returns a Source producing n random scenarios.
// The same seed always yields the same batch.
func NewSyntheticSource(n int, seed int64) Source {
	return &syntheticSource{n: n, seed: seed}
}

func (s *syntheticSource) Scenarios() ([]Scenario, error) {
	if s.n <= 0 {
		return nil, fmt.Errorf("synthetic source: n must be positive, got %d", s.n)
	}

	rng := rand.New(rand.NewSource(s.seed))

	const (
		baseTime = int64(1_606_780_800) // 2020/12/01 00:00:00
		day      = int64(86_400)
	)

	out := make([]Scenario, 0, s.n)
	for i := 0; i < s.n; i++ {
		spot := 100.0 + float64(rng.Intn(200)) + rng.Float64()
		vol := 0.08 + rng.Float64()*0.5
		interest := -0.005 + rng.Float64()*0.06
		days := 7 + rng.Intn(360)
		ttm := float64(days) / 365.0

		// Pick a target call delta in (0.1, 0.9) and solve for the strike:
		// K = S * exp((r + vol^2/2)*T - d1*vol*sqrt(T)), d1 = NormInv(delta).
		delta := 0.1 + rng.Float64()*0.8
		d1 := opcalc.NormInv(delta)
		strike := spot * math.Exp((interest+0.5*vol*vol)*ttm-d1*vol*math.Sqrt(ttm))

		out = append(out, Scenario{
			Name:         fmt.Sprintf("synthetic-%03d", i+1),
			AssetPrice:   spot,
			Strike:       strike,
			Volatility:   vol,
			Interest:     interest,
			CurrentTime:  baseTime,
			MaturityTime: baseTime + int64(days)*day,
		})
	}
	return out, nil
}
