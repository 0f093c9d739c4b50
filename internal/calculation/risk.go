package calculation

import (
	"sort"

	"github.com/opcvmsim/fund-simulator/internal/domain"
)

// Summarize reduces a terminal-balance ensemble to percentiles, loss
// probability and risk metrics. The annualized volatility is the input sigma
// verbatim (never re-estimated from the ensemble), Sharpe and Sortino are
// both mu/sigma with no risk-free rate or downside-deviation distinction,
// mean max drawdown is fixed at zero, and Calmar divides mu by a flat 20%
// drawdown assumption for equity funds and 10% otherwise. These
// simplifications are intentional and part of the model's contract.
func Summarize(terminalBalances []float64, totalContributed, mu, sigma float64, category domain.Category) domain.MonteCarloResult {
	sorted := append([]float64(nil), terminalBalances...)
	sort.Float64s(sorted)

	lossCount := 0
	for _, b := range terminalBalances {
		if b < totalContributed {
			lossCount++
		}
	}
	probLoss := 0.0
	if len(terminalBalances) > 0 {
		probLoss = float64(lossCount) / float64(len(terminalBalances))
	}

	ratio := 0.0
	if sigma > 0 {
		ratio = mu / sigma
	}

	calmar := mu / 0.10
	if category == domain.CategoryEquity {
		calmar = mu / 0.20
	}

	return domain.MonteCarloResult{
		Category:            category,
		AssumedAnnualReturn: mu,
		AssumedAnnualVol:    sigma,
		TotalContributed:    totalContributed,
		PathCount:           len(terminalBalances),
		P5:                  percentile(sorted, 0.05),
		P50:                 percentile(sorted, 0.50),
		P95:                 percentile(sorted, 0.95),
		ProbabilityOfLoss:   probLoss,
		Risk: domain.RiskMetrics{
			AnnualizedVol:   sigma,
			Sharpe:          ratio,
			Sortino:         ratio,
			MeanMaxDrawdown: 0.0,
			Calmar:          calmar,
		},
	}
}

// percentile computes the p-quantile of a sorted sample using rank
// interpolation: the value at fractional index p*(n-1), linearly
// interpolated between the neighboring order statistics.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}

	rank := p * float64(n-1)
	lo := int(rank)
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
