package calculation

import (
	"fmt"

	"github.com/opcvmsim/fund-simulator/internal/domain"
	"github.com/opcvmsim/fund-simulator/internal/registry"
)

// SimulationEngine orchestrates the two projection models over a fund
// registry. Each call is a pure function of its inputs plus a read-only
// registry lookup; no state is shared between calls.
type SimulationEngine struct {
	Registry  registry.Registry
	Projector *DeterministicProjector
	Simulator *StochasticPathSimulator
	Logger    Logger
}

// NewSimulationEngine creates an engine over the given registry and category
// default tables.
func NewSimulationEngine(reg registry.Registry, defaults registry.CategoryDefaults) *SimulationEngine {
	return &SimulationEngine{
		Registry:  reg,
		Projector: NewDeterministicProjector(defaults),
		Simulator: NewStochasticPathSimulator(defaults),
		Logger:    NopLogger{},
	}
}

// SetLogger sets the logger for the engine and both projectors. If nil is
// provided, a no-op logger is used.
func (e *SimulationEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
	e.Projector.Logger = l
	e.Simulator.Logger = l
}

// ComputeDeterministicProjection looks up the instrument and runs the
// deterministic compounding projection.
func (e *SimulationEngine) ComputeDeterministicProjection(instrument string, params domain.SimulationParameters) (*domain.DeterministicResult, error) {
	profile, err := e.Registry.Lookup(instrument)
	if err != nil {
		return nil, err
	}
	if err := validateCommon(params); err != nil {
		return nil, err
	}
	return e.Projector.Project(profile, params)
}

// ComputeMonteCarloProjection looks up the instrument and runs the
// stochastic path simulation.
func (e *SimulationEngine) ComputeMonteCarloProjection(instrument string, params domain.SimulationParameters) (*domain.MonteCarloResult, error) {
	profile, err := e.Registry.Lookup(instrument)
	if err != nil {
		return nil, err
	}
	if err := validateCommon(params); err != nil {
		return nil, err
	}
	if params.PathCount <= 0 {
		return nil, fmt.Errorf("%w: n_paths must be positive, got %d", ErrInvalidConfig, params.PathCount)
	}
	if params.VolatilityOverride != nil && *params.VolatilityOverride <= 0 {
		return nil, fmt.Errorf("%w: annual_vol_override must be positive, got %g", ErrInvalidConfig, *params.VolatilityOverride)
	}
	return e.Simulator.Simulate(profile, params)
}

// FundListing is one row of the fund enumeration: the fund, its category and
// the annualized return derived from its profile.
type FundListing struct {
	Name         string          `json:"name"`
	Category     domain.Category `json:"category"`
	AnnualReturn float64         `json:"assumed_annual_return"`
}

// ListFunds enumerates the registry with derived annualized returns, sorted
// by fund name.
func (e *SimulationEngine) ListFunds() ([]FundListing, error) {
	profiles := e.Registry.List()
	listings := make([]FundListing, 0, len(profiles))
	for _, p := range profiles {
		cagr, err := AnnualizedReturn(p.CumulativeReturn, p.HorizonYears)
		if err != nil {
			return nil, fmt.Errorf("fund %s: %w", p.Name, err)
		}
		listings = append(listings, FundListing{Name: p.Name, Category: p.Category, AnnualReturn: cagr})
	}
	return listings, nil
}

// validateCommon fails fast on parameters outside their valid range, before
// any simulation work begins. Degenerate numeric inputs (zero volatility,
// zero contribution, zero fee) are valid and not rejected here.
func validateCommon(params domain.SimulationParameters) error {
	if params.Years <= 0 {
		return fmt.Errorf("%w: years must be positive, got %g", ErrInvalidConfig, params.Years)
	}
	if params.InitialAmount < 0 {
		return fmt.Errorf("%w: initial_amount cannot be negative, got %g", ErrInvalidConfig, params.InitialAmount)
	}
	if params.AnnualFeeRate < 0 || params.AnnualFeeRate >= 1 {
		return fmt.Errorf("%w: annual_fee must be in [0,1), got %g", ErrInvalidConfig, params.AnnualFeeRate)
	}
	if params.TaxRateOverride != nil && (*params.TaxRateOverride < 0 || *params.TaxRateOverride > 1) {
		return fmt.Errorf("%w: tax_rate must be in [0,1], got %g", ErrInvalidConfig, *params.TaxRateOverride)
	}
	return nil
}
