package scenario

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/contactkeval/opcalc/internal/logger"
)

// csvFileSource reads scenarios from a CSV file with a header row:
//
//	name,asset_price,strike,volatility,interest,payout_rate,current_time,maturity_time
//
// The payout_rate column may be left empty. Malformed rows are logged and
// skipped rather than failing the whole file.
type csvFileSource struct {
	path string
}

// NewCSVFileSource returns a Source backed by a CSV scenario file.
func NewCSVFileSource(path string) Source {
	return &csvFileSource{path: path}
}

func (s *csvFileSource) Scenarios() ([]Scenario, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening scenario file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv %s: %w", s.path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("scenario file %s contains no scenarios", s.path)
	}

	col := indexHeader(records[0])
	required := []string{"name", "asset_price", "strike", "volatility", "interest", "current_time", "maturity_time"}
	for _, h := range required {
		if _, ok := col[h]; !ok {
			return nil, fmt.Errorf("scenario file %s: missing column %q", s.path, h)
		}
	}

	var out []Scenario
	for i, row := range records[1:] {
		sc, err := parseRow(row, col)
		if err != nil {
			logger.Errorf("skipping row %d of %s: %v", i+2, s.path, err)
			continue
		}
		out = append(out, sc)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("scenario file %s: no parsable rows", s.path)
	}
	return out, nil
}

func indexHeader(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return col
}

func parseRow(row []string, col map[string]int) (Scenario, error) {
	cell := func(name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	parseF := func(name string) (float64, error) {
		v, err := strconv.ParseFloat(cell(name), 64)
		if err != nil {
			return 0, fmt.Errorf("column %s: %w", name, err)
		}
		return v, nil
	}
	parseI := func(name string) (int64, error) {
		v, err := strconv.ParseInt(cell(name), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("column %s: %w", name, err)
		}
		return v, nil
	}

	var sc Scenario
	var err error
	sc.Name = cell("name")
	if sc.AssetPrice, err = parseF("asset_price"); err != nil {
		return sc, err
	}
	if sc.Strike, err = parseF("strike"); err != nil {
		return sc, err
	}
	if sc.Volatility, err = parseF("volatility"); err != nil {
		return sc, err
	}
	if sc.Interest, err = parseF("interest"); err != nil {
		return sc, err
	}
	if sc.CurrentTime, err = parseI("current_time"); err != nil {
		return sc, err
	}
	if sc.MaturityTime, err = parseI("maturity_time"); err != nil {
		return sc, err
	}
	if raw := cell("payout_rate"); raw != "" {
		if sc.PayoutRate, err = parseF("payout_rate"); err != nil {
			return sc, err
		}
	}
	return sc, nil
}
