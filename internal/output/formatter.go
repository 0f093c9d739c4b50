package output

import (
	"strings"

	"github.com/opcvmsim/fund-simulator/internal/domain"
)

// Formatter defines a pluggable output formatter for simulation results.
// Implementations should be pure (no side effects besides deterministic
// formatting).
type Formatter interface {
	FormatDeterministic(result *domain.DeterministicResult) ([]byte, error)
	FormatMonteCarlo(result *domain.MonteCarloResult) ([]byte, error)
	// Name returns a short identifier for logging / flag matching.
	Name() string
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVTrajectoryExporter{},
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"pretty":      "console",
	"json-pretty": "json",
	"trajectory":  "csv",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if resolved, ok := aliasMap[n]; ok {
		return resolved
	}
	return n
}

// GetFormatterByName fetches a registered formatter, or nil if unknown.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}
