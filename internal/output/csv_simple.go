package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/opcvmsim/fund-simulator/internal/domain"
)

// CSVTrajectoryExporter emits results in CSV form for scripting: the full
// month-by-month trajectory for a deterministic run, one metric per row for
// a Monte Carlo summary.
type CSVTrajectoryExporter struct{}

func (c CSVTrajectoryExporter) Name() string { return "csv" }

func (c CSVTrajectoryExporter) FormatDeterministic(r *domain.DeterministicResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"month", "balance"}); err != nil {
		return nil, err
	}
	for i, balance := range r.MonthlyTrajectory {
		row := []string{strconv.Itoa(i + 1), strconv.FormatFloat(balance, 'f', 2, 64)}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func (c CSVTrajectoryExporter) FormatMonteCarlo(r *domain.MonteCarloResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	rows := [][]string{
		{"metric", "value"},
		{"n_paths", strconv.Itoa(r.PathCount)},
		{"total_contributed", strconv.FormatFloat(r.TotalContributed, 'f', 2, 64)},
		{"p5", strconv.FormatFloat(r.P5, 'f', 2, 64)},
		{"p50", strconv.FormatFloat(r.P50, 'f', 2, 64)},
		{"p95", strconv.FormatFloat(r.P95, 'f', 2, 64)},
		{"prob_loss", strconv.FormatFloat(r.ProbabilityOfLoss, 'f', 4, 64)},
		{"annualized_vol", strconv.FormatFloat(r.Risk.AnnualizedVol, 'f', 4, 64)},
		{"sharpe", strconv.FormatFloat(r.Risk.Sharpe, 'f', 4, 64)},
		{"sortino", strconv.FormatFloat(r.Risk.Sortino, 'f', 4, 64)},
		{"max_drawdown_mean", strconv.FormatFloat(r.Risk.MeanMaxDrawdown, 'f', 4, 64)},
		{"calmar", strconv.FormatFloat(r.Risk.Calmar, 'f', 4, 64)},
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
