package output

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opcvmsim/fund-simulator/internal/domain"
)

func sampleDeterministicResult() *domain.DeterministicResult {
	return &domain.DeterministicResult{
		FundName:            "ATTIJARI ACTIONS",
		Category:            domain.CategoryEquity,
		AssumedAnnualReturn: 0.1341,
		AnnualFee:           0.018,
		TaxRate:             0.15,
		Years:               5,
		InitialAmount:       100000,
		MonthlyContribution: 3000,
		TotalContributed:    280000,
		GrossFinalValue:     379123.45,
		GainsBeforeTax:      99123.45,
		TaxPaid:             14868.52,
		NetFinalValue:       364254.93,
		NetProfitAfterTax:   84254.93,
		MonthlyTrajectory:   []float64{101000, 102500, 104200},
	}
}

func sampleMonteCarloResult() *domain.MonteCarloResult {
	return &domain.MonteCarloResult{
		FundName:            "ATTIJARI ACTIONS",
		Category:            domain.CategoryEquity,
		Years:               5,
		AssumedAnnualReturn: 0.1341,
		AssumedAnnualVol:    0.20,
		AnnualFee:           0.018,
		TaxRate:             0.15,
		TotalContributed:    280000,
		PathCount:           5000,
		P5:                  250000.10,
		P50:                 355000.55,
		P95:                 520000.99,
		ProbabilityOfLoss:   0.0832,
		Risk: domain.RiskMetrics{
			AnnualizedVol:   0.20,
			Sharpe:          0.6705,
			Sortino:         0.6705,
			MeanMaxDrawdown: 0,
			Calmar:          0.6705,
		},
	}
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"console", "console"},
		{"text", "console"},
		{"pretty", "console"},
		{"JSON", "json"},
		{"json-pretty", "json"},
		{"csv", "csv"},
		{"trajectory", "csv"},
		{"  Console  ", "console"},
	}

	for _, tt := range tests {
		f := GetFormatterByName(tt.input)
		require.NotNil(t, f, "formatter for %q", tt.input)
		assert.Equal(t, tt.expected, f.Name())
	}

	assert.Nil(t, GetFormatterByName("xml"))
}

func TestConsoleFormatterDeterministic(t *testing.T) {
	out, err := ConsoleFormatter{}.FormatDeterministic(sampleDeterministicResult())
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "Fund: ATTIJARI ACTIONS (Actions)")
	assert.Contains(t, text, "Assumed annual return: 13.41%")
	assert.Contains(t, text, "Total contributed: 280,000.00 MAD")
	assert.Contains(t, text, "Gross final value: 379,123.45 MAD")
	assert.Contains(t, text, "Net profit after tax: 84,254.93 MAD")
}

func TestConsoleFormatterMonteCarlo(t *testing.T) {
	out, err := ConsoleFormatter{}.FormatMonteCarlo(sampleMonteCarloResult())
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "Monte Carlo: 5000 paths over 5.00 years")
	assert.Contains(t, text, "Terminal balance p50: 355,000.55 MAD")
	assert.Contains(t, text, "Probability of loss: 8.32%")
	assert.Contains(t, text, "Sharpe: 0.67")
}

func TestJSONFormatterDeterministic(t *testing.T) {
	out, err := JSONFormatter{}.FormatDeterministic(sampleDeterministicResult())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "ATTIJARI ACTIONS", decoded["fund_name"])
	assert.Equal(t, 280000.0, decoded["total_contributed"])
	assert.Len(t, decoded["monthly_trajectory"], 3)
}

func TestJSONFormatterMonteCarlo(t *testing.T) {
	out, err := JSONFormatter{}.FormatMonteCarlo(sampleMonteCarloResult())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, 5000.0, decoded["n_paths"])
	assert.Equal(t, 0.0832, decoded["prob_loss"])

	risk, ok := decoded["risk_metrics"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 0.6705, risk["sharpe"])
}

func TestCSVTrajectoryExporterDeterministic(t *testing.T) {
	out, err := CSVTrajectoryExporter{}.FormatDeterministic(sampleDeterministicResult())
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4) // header plus one row per month
	assert.Equal(t, []string{"month", "balance"}, rows[0])
	assert.Equal(t, []string{"1", "101000.00"}, rows[1])
	assert.Equal(t, []string{"3", "104200.00"}, rows[3])
}

func TestCSVTrajectoryExporterMonteCarlo(t *testing.T) {
	out, err := CSVTrajectoryExporter{}.FormatMonteCarlo(sampleMonteCarloResult())
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 12)
	assert.Equal(t, []string{"metric", "value"}, rows[0])

	byMetric := make(map[string]string, len(rows)-1)
	for _, row := range rows[1:] {
		byMetric[row[0]] = row[1]
	}
	assert.Equal(t, "5000", byMetric["n_paths"])
	assert.Equal(t, "355000.55", byMetric["p50"])
	assert.Equal(t, "0.0832", byMetric["prob_loss"])
}

func TestFormatMAD(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{0, "0.00 MAD"},
		{999.5, "999.50 MAD"},
		{1000, "1,000.00 MAD"},
		{100000, "100,000.00 MAD"},
		{1234567.89, "1,234,567.89 MAD"},
		{-1234.5, "-1,234.50 MAD"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatMAD(tt.amount))
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "1.50%", FormatPercent(0.015))
	assert.Equal(t, "13.41%", FormatPercent(0.1341))
	assert.Equal(t, "0.00%", FormatPercent(0))
	assert.Equal(t, "-11.62%", FormatPercent(-0.1162))
}
