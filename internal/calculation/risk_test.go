package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opcvmsim/fund-simulator/internal/domain"
)

func TestPercentileInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5}

	tests := []struct {
		name     string
		p        float64
		expected float64
	}{
		{"p5 interpolates toward the minimum", 0.05, 1.2},
		{"p50 is the middle order statistic", 0.50, 3.0},
		{"p95 interpolates toward the maximum", 0.95, 4.8},
		{"p0 is the minimum", 0.0, 1.0},
		{"p100 is the maximum", 1.0, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, percentile(sorted, tt.p), 1e-9)
		})
	}
}

func TestPercentileDegenerateSamples(t *testing.T) {
	assert.Equal(t, 0.0, percentile(nil, 0.5))
	assert.Equal(t, 42.0, percentile([]float64{42}, 0.05))
	assert.Equal(t, 42.0, percentile([]float64{42}, 0.95))
}

func TestSummarizeLossProbability(t *testing.T) {
	// Two of five paths finish strictly below the contributions.
	result := Summarize([]float64{1, 2, 3, 4, 5}, 3, 0.10, 0.20, domain.CategoryEquity)
	assert.InDelta(t, 0.4, result.ProbabilityOfLoss, 1e-9)
	assert.Equal(t, 5, result.PathCount)
}

func TestSummarizeRiskMetrics(t *testing.T) {
	balances := []float64{90, 100, 110}

	equity := Summarize(balances, 100, 0.12, 0.20, domain.CategoryEquity)
	assert.Equal(t, 0.20, equity.Risk.AnnualizedVol)
	assert.InDelta(t, 0.6, equity.Risk.Sharpe, 1e-9)
	assert.Equal(t, equity.Risk.Sharpe, equity.Risk.Sortino)
	assert.Zero(t, equity.Risk.MeanMaxDrawdown)
	assert.InDelta(t, 0.12/0.20, equity.Risk.Calmar, 1e-9)

	bonds := Summarize(balances, 100, 0.04, 0.06, domain.CategoryBonds)
	assert.InDelta(t, 0.04/0.10, bonds.Risk.Calmar, 1e-9)
}

func TestSummarizeZeroVolatilityRatios(t *testing.T) {
	result := Summarize([]float64{100, 100}, 100, 0.08, 0.0, domain.CategoryMoneyMarket)
	assert.Zero(t, result.Risk.Sharpe)
	assert.Zero(t, result.Risk.Sortino)
	assert.Zero(t, result.ProbabilityOfLoss)
}

func TestSummarizeDoesNotMutateInput(t *testing.T) {
	balances := []float64{5, 1, 3}
	Summarize(balances, 2, 0.1, 0.2, domain.CategoryEquity)
	assert.Equal(t, []float64{5, 1, 3}, balances)
}

func TestSummarizeEmptyEnsemble(t *testing.T) {
	result := Summarize(nil, 0, 0.1, 0.2, domain.CategoryEquity)
	assert.Zero(t, result.ProbabilityOfLoss)
	assert.Zero(t, result.P50)
	assert.Zero(t, result.PathCount)
}
