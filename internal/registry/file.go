package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/opcvmsim/fund-simulator/internal/domain"
)

// fileSchema is the on-disk shape of a registry data file. The tax and
// volatility tables are optional; entries present in the file override the
// built-in defaults category by category.
type fileSchema struct {
	Instruments  []domain.InstrumentProfile  `yaml:"instruments"`
	TaxRates     map[domain.Category]float64 `yaml:"tax_rates"`
	Volatilities map[domain.Category]float64 `yaml:"volatilities"`
}

// LoadFile reads a YAML registry file and returns the registry plus the
// category defaults (built-in tables merged with any file overrides).
func LoadFile(path string) (*MemoryRegistry, CategoryDefaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, CategoryDefaults{}, fmt.Errorf("failed to read registry file %s: %w", path, err)
	}

	var f fileSchema
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, CategoryDefaults{}, fmt.Errorf("failed to parse registry file %s: %w", path, err)
	}

	if len(f.Instruments) == 0 {
		return nil, CategoryDefaults{}, fmt.Errorf("registry file %s: no instruments defined", path)
	}
	for i, p := range f.Instruments {
		if err := validateProfile(&p); err != nil {
			return nil, CategoryDefaults{}, fmt.Errorf("registry file %s: instrument %d: %w", path, i, err)
		}
	}

	defaults := BuiltinDefaults()
	for cat, rate := range f.TaxRates {
		if rate < 0 || rate > 1 {
			return nil, CategoryDefaults{}, fmt.Errorf("registry file %s: tax rate for %s must be between 0 and 1", path, cat)
		}
		defaults.TaxRates[cat] = rate
	}
	for cat, vol := range f.Volatilities {
		if vol <= 0 {
			return nil, CategoryDefaults{}, fmt.Errorf("registry file %s: volatility for %s must be positive", path, cat)
		}
		defaults.Volatilities[cat] = vol
	}

	return NewMemoryRegistry(f.Instruments...), defaults, nil
}

func validateProfile(p *domain.InstrumentProfile) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Category == "" {
		return fmt.Errorf("category is required")
	}
	if p.HorizonYears <= 0 {
		return fmt.Errorf("horizon_years must be positive")
	}
	if p.CumulativeReturn <= -1 {
		return fmt.Errorf("cumulative_return cannot be -100%% or lower")
	}
	return nil
}
