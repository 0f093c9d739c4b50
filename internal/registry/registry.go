// Package registry owns the fund reference data: the instrument profiles the
// simulation engine projects from, and the category-indexed default tax and
// volatility tables. The engine only ever sees the Registry interface and a
// CategoryDefaults value; it never touches a data source directly.
package registry

import (
	"errors"

	"github.com/opcvmsim/fund-simulator/internal/domain"
)

// ErrNotFound is returned when a requested instrument is absent from the
// registry. The lookup is static, so retrying cannot change the outcome.
var ErrNotFound = errors.New("instrument not found")

// Registry resolves instrument identifiers to their profiles.
type Registry interface {
	// Lookup returns the profile for the named instrument, or an error
	// wrapping ErrNotFound.
	Lookup(name string) (domain.InstrumentProfile, error)
	// List returns all profiles sorted by name.
	List() []domain.InstrumentProfile
}

// CategoryDefaults carries the per-category default tax rates and annual
// volatilities. The tables are read-only once constructed and are passed to
// the projectors explicitly rather than referenced as globals.
type CategoryDefaults struct {
	TaxRates     map[domain.Category]float64
	Volatilities map[domain.Category]float64
}

// Fallbacks for categories missing from the tables. The tax fallback matches
// the non-equity rate; the volatility fallback is a middle-of-the-road 15%.
const (
	fallbackTaxRate    = 0.20
	fallbackVolatility = 0.15
)

// TaxRate returns the default capital-gains tax rate for a category.
func (d CategoryDefaults) TaxRate(c domain.Category) float64 {
	if rate, ok := d.TaxRates[c]; ok {
		return rate
	}
	return fallbackTaxRate
}

// Volatility returns the default annualized volatility for a category.
func (d CategoryDefaults) Volatility(c domain.Category) float64 {
	if vol, ok := d.Volatilities[c]; ok {
		return vol
	}
	return fallbackVolatility
}
