// Package report writes valuation results as JSON and CSV files.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/contactkeval/opcalc/internal/scenario"
)

// displayPlaces is the fixed precision used for CSV output. JSON keeps full
// float precision; the CSV is the human-facing artifact.
const displayPlaces = 6

// WriteJSON writes all results to valuations.json in outdir.
func WriteJSON(results []scenario.Result, outdir string) error {
	b, err := json.MarshalIndent(struct {
		Results []scenario.Result `json:"results"`
	}{results}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outdir, "valuations.json"), b, 0644)
}

// WriteCSV writes all results to valuations.csv in outdir, one row per
// scenario, values rounded to a fixed number of decimal places.
func WriteCSV(results []scenario.Result, outdir string) error {
	f, err := os.Create(filepath.Join(outdir, "valuations.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	headers := []string{"name", "asset_price", "strike", "volatility", "interest", "payout_rate", "time_to_maturity", "call_value", "put_value", "call_delta", "put_delta", "gamma", "vega", "call_theta", "put_theta", "error"}
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			r.Scenario.Name,
			round(r.Scenario.AssetPrice),
			round(r.Scenario.Strike),
			round(r.Scenario.Volatility),
			round(r.Scenario.Interest),
			round(r.Scenario.PayoutRate),
			round(r.TimeToMaturity),
			round(r.CallValue),
			round(r.PutValue),
			round(r.CallDelta),
			round(r.PutDelta),
			round(r.Gamma),
			round(r.Vega),
			round(r.CallTheta),
			round(r.PutTheta),
			r.Error,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Write writes both report formats, creating outdir if needed.
func Write(results []scenario.Result, outdir string) error {
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return fmt.Errorf("creating output dir %s: %w", outdir, err)
	}
	if err := WriteJSON(results, outdir); err != nil {
		return err
	}
	return WriteCSV(results, outdir)
}

func round(v float64) string {
	return decimal.NewFromFloat(v).Round(displayPlaces).String()
}
