package output

import (
	"encoding/json"

	"github.com/opcvmsim/fund-simulator/internal/domain"
)

// JSONFormatter serializes results as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) FormatDeterministic(result *domain.DeterministicResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

func (j JSONFormatter) FormatMonteCarlo(result *domain.MonteCarloResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
