package output

import (
	"bytes"
	"fmt"

	"github.com/opcvmsim/fund-simulator/internal/domain"
)

// ConsoleFormatter renders the human-readable summary block for a result.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) FormatDeterministic(r *domain.DeterministicResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Fund: %s (%s)\n", r.FundName, r.Category)
	fmt.Fprintf(&buf, "Assumed annual return: %s\n", FormatPercent(r.AssumedAnnualReturn))
	fmt.Fprintf(&buf, "Annual fee: %s | Tax rate: %s\n", FormatPercent(r.AnnualFee), FormatPercent(r.TaxRate))
	fmt.Fprintf(&buf, "Horizon: %.2f years\n", r.Years)
	fmt.Fprintf(&buf, "Initial: %s | Monthly: %s\n", FormatMAD(r.InitialAmount), FormatMAD(r.MonthlyContribution))
	fmt.Fprintf(&buf, "Total contributed: %s\n", FormatMAD(r.TotalContributed))
	fmt.Fprintf(&buf, "Gross final value: %s\n", FormatMAD(r.GrossFinalValue))
	fmt.Fprintf(&buf, "Gains before tax: %s | Tax paid: %s\n", FormatMAD(r.GainsBeforeTax), FormatMAD(r.TaxPaid))
	fmt.Fprintf(&buf, "Net final value: %s\n", FormatMAD(r.NetFinalValue))
	fmt.Fprintf(&buf, "Net profit after tax: %s\n", FormatMAD(r.NetProfitAfterTax))
	return buf.Bytes(), nil
}

func (c ConsoleFormatter) FormatMonteCarlo(r *domain.MonteCarloResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Fund: %s (%s)\n", r.FundName, r.Category)
	fmt.Fprintf(&buf, "Monte Carlo: %d paths over %.2f years\n", r.PathCount, r.Years)
	fmt.Fprintf(&buf, "Assumed annual return: %s | Assumed annual vol: %s\n",
		FormatPercent(r.AssumedAnnualReturn), FormatPercent(r.AssumedAnnualVol))
	fmt.Fprintf(&buf, "Annual fee: %s | Tax rate: %s\n", FormatPercent(r.AnnualFee), FormatPercent(r.TaxRate))
	fmt.Fprintf(&buf, "Total contributed: %s\n", FormatMAD(r.TotalContributed))
	fmt.Fprintf(&buf, "Terminal balance p5:  %s\n", FormatMAD(r.P5))
	fmt.Fprintf(&buf, "Terminal balance p50: %s\n", FormatMAD(r.P50))
	fmt.Fprintf(&buf, "Terminal balance p95: %s\n", FormatMAD(r.P95))
	fmt.Fprintf(&buf, "Probability of loss: %s\n", FormatPercent(r.ProbabilityOfLoss))
	fmt.Fprintf(&buf, "Annualized vol: %s | Sharpe: %.2f | Sortino: %.2f\n",
		FormatPercent(r.Risk.AnnualizedVol), r.Risk.Sharpe, r.Risk.Sortino)
	fmt.Fprintf(&buf, "Mean max drawdown: %s | Calmar: %.2f\n",
		FormatPercent(r.Risk.MeanMaxDrawdown), r.Risk.Calmar)
	return buf.Bytes(), nil
}
