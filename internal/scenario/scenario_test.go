package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestJSONFileSource(t *testing.T) {
	path := writeTemp(t, "scenarios.json", `{
  "scenarios": [
    {
      "name": "dec-call",
      "asset_price": 100,
      "strike": 105,
      "volatility": 0.23,
      "interest": 0.005,
      "current_time": 1606780800,
      "maturity_time": 1610668800
    },
    {
      "name": "div-paying",
      "asset_price": 120,
      "strike": 110,
      "volatility": 0.3,
      "interest": 0.02,
      "payout_rate": 0.015,
      "current_time": 0,
      "maturity_time": 31536000
    }
  ]
}`)

	scenarios, err := NewJSONFileSource(path).Scenarios()
	require.NoError(t, err)
	require.Len(t, scenarios, 2)

	assert.Equal(t, "dec-call", scenarios[0].Name)
	assert.Equal(t, 105.0, scenarios[0].Strike)
	assert.Equal(t, 0.0, scenarios[0].PayoutRate)
	assert.Equal(t, 0.015, scenarios[1].PayoutRate)
	assert.Equal(t, int64(31536000), scenarios[1].MaturityTime)
}

func TestJSONFileSourceEmpty(t *testing.T) {
	path := writeTemp(t, "empty.json", `{"scenarios": []}`)
	_, err := NewJSONFileSource(path).Scenarios()
	assert.Error(t, err)
}

func TestCSVFileSource(t *testing.T) {
	path := writeTemp(t, "scenarios.csv",
		"name,asset_price,strike,volatility,interest,payout_rate,current_time,maturity_time\n"+
			"atm,100,100,0.2,0.05,,0,31536000\n"+
			"bad-row,not-a-number,100,0.2,0.05,,0,31536000\n"+
			"div,100,95,0.25,0.03,0.01,0,15768000\n")

	scenarios, err := NewCSVFileSource(path).Scenarios()
	require.NoError(t, err)

	// The malformed row is skipped, not fatal.
	require.Len(t, scenarios, 2)
	assert.Equal(t, "atm", scenarios[0].Name)
	assert.Equal(t, 100.0, scenarios[0].AssetPrice)
	assert.Equal(t, 0.0, scenarios[0].PayoutRate)
	assert.Equal(t, "div", scenarios[1].Name)
	assert.Equal(t, 0.01, scenarios[1].PayoutRate)
	assert.Equal(t, int64(15768000), scenarios[1].MaturityTime)
}

func TestCSVFileSourceMissingColumn(t *testing.T) {
	path := writeTemp(t, "scenarios.csv",
		"name,asset_price,strike,volatility,interest\natm,100,100,0.2,0.05\n")

	_, err := NewCSVFileSource(path).Scenarios()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "current_time")
}

func TestFromFilePicksByExtension(t *testing.T) {
	assert.IsType(t, &csvFileSource{}, FromFile("scenarios.CSV"))
	assert.IsType(t, &jsonFileSource{}, FromFile("scenarios.json"))
}

func TestSyntheticSourceIsDeterministic(t *testing.T) {
	a, err := NewSyntheticSource(25, 7).Scenarios()
	require.NoError(t, err)
	b, err := NewSyntheticSource(25, 7).Scenarios()
	require.NoError(t, err)

	assert.Equal(t, a, b)
	require.Len(t, a, 25)

	for _, sc := range a {
		assert.Greater(t, sc.AssetPrice, 0.0)
		assert.Greater(t, sc.Strike, 0.0)
		assert.Greater(t, sc.Volatility, 0.0)
		assert.Greater(t, sc.MaturityTime, sc.CurrentTime)
	}

	other, err := NewSyntheticSource(25, 8).Scenarios()
	require.NoError(t, err)
	assert.NotEqual(t, a, other)
}

func TestSyntheticSourceRejectsNonPositiveCount(t *testing.T) {
	_, err := NewSyntheticSource(0, 1).Scenarios()
	assert.Error(t, err)
}
