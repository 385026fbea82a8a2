// Package scenario supplies batches of option parameter sets and prices them
// through the opcalc builder.
//
// A Source abstracts where scenarios come from: a JSON file, a CSV file, or
// a seeded synthetic generator. Sources only collect parameters; all
// validation stays behind Builder.Finalize.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Scenario is a single named parameter set to value. Fields mirror the
// builder's setters; PayoutRate is optional and defaults to 0.
type Scenario struct {
	Name         string  `json:"name"`
	AssetPrice   float64 `json:"asset_price"`
	Strike       float64 `json:"strike"`
	Volatility   float64 `json:"volatility"`
	Interest     float64 `json:"interest"`
	PayoutRate   float64 `json:"payout_rate,omitempty"`
	CurrentTime  int64   `json:"current_time"`
	MaturityTime int64   `json:"maturity_time"`
}

// Source supplies scenarios to price.
type Source interface {
	Scenarios() ([]Scenario, error)
}

// jsonFileSource reads scenarios from a JSON file of the form
// {"scenarios": [...]}.
type jsonFileSource struct {
	path string
}

// NewJSONFileSource returns a Source backed by a JSON scenario file.
func NewJSONFileSource(path string) Source {
	return &jsonFileSource{path: path}
}

func (s *jsonFileSource) Scenarios() ([]Scenario, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var body struct {
		Scenarios []Scenario `json:"scenarios"`
	}
	if err := json.Unmarshal(b, &body); err != nil {
		return nil, fmt.Errorf("invalid scenario file %s: %w", s.path, err)
	}
	if len(body.Scenarios) == 0 {
		return nil, fmt.Errorf("scenario file %s contains no scenarios", s.path)
	}
	return body.Scenarios, nil
}

// FromFile picks a Source by file extension: .csv for CSV, anything else is
// treated as JSON.
func FromFile(path string) Source {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return NewCSVFileSource(path)
	}
	return NewJSONFileSource(path)
}
