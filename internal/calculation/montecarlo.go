package calculation

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/opcvmsim/fund-simulator/internal/domain"
	"github.com/opcvmsim/fund-simulator/internal/registry"
)

// StochasticPathSimulator generates an ensemble of independent monthly
// geometric-Brownian-motion paths, applies the fee/contribution mechanics to
// each, and reduces the terminal balances through the risk summarizer.
//
// The Monte Carlo model is deliberately narrower than the deterministic one:
// contributions are flat, end-of-period only, and the tax rate always comes
// from the category default.
type StochasticPathSimulator struct {
	Defaults registry.CategoryDefaults
	Logger   Logger
}

// NewStochasticPathSimulator creates a simulator using the given category
// default tables.
func NewStochasticPathSimulator(defaults registry.CategoryDefaults) *StochasticPathSimulator {
	return &StochasticPathSimulator{Defaults: defaults, Logger: NopLogger{}}
}

// Simulate runs the Monte Carlo projection for one instrument profile.
//
// Draw order is fixed: paths are stepped in index order and each path
// consumes one standard-normal draw per month, so a given seed reproduces
// the ensemble bit for bit for identical (seed, pathCount, months).
func (sps *StochasticPathSimulator) Simulate(profile domain.InstrumentProfile, params domain.SimulationParameters) (*domain.MonteCarloResult, error) {
	var mu float64
	if params.ExpectedReturnOverride != nil {
		mu = *params.ExpectedReturnOverride
	} else {
		derived, err := AnnualizedReturn(profile.CumulativeReturn, profile.HorizonYears)
		if err != nil {
			return nil, err
		}
		mu = derived
	}

	sigma := sps.Defaults.Volatility(profile.Category)
	if params.VolatilityOverride != nil {
		sigma = *params.VolatilityOverride
	}
	taxRate := sps.Defaults.TaxRate(profile.Category)

	months := int(params.Years * 12)
	const dt = 1.0 / 12.0
	drift := (mu - 0.5*sigma*sigma) * dt
	volStep := sigma * math.Sqrt(dt)
	monthlyFee := params.AnnualFeeRate / 12.0

	seed := seedFunc()
	if params.RandomSeed != nil {
		seed = *params.RandomSeed
	}
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(uint64(seed))}

	totalContributed := params.InitialAmount + params.MonthlyContribution*float64(months)

	terminal := make([]float64, params.PathCount)
	for i := range terminal {
		balance := params.InitialAmount
		for m := 0; m < months; m++ {
			monthlyReturn := math.Exp(drift+volStep*normal.Rand()) - 1.0
			balance *= 1.0 + monthlyReturn
			balance -= balance * monthlyFee
			balance += params.MonthlyContribution
		}

		gain := balance - totalContributed
		if gain > 0 {
			balance -= gain * taxRate
		}
		terminal[i] = balance
	}

	sps.Logger.Debugf("monte carlo for %s: %d paths x %d months, mu %.4f, sigma %.4f",
		profile.Name, params.PathCount, months, mu, sigma)

	result := Summarize(terminal, totalContributed, mu, sigma, profile.Category)
	result.FundName = profile.Name
	result.Years = params.Years
	result.AnnualFee = params.AnnualFeeRate
	result.TaxRate = taxRate
	return &result, nil
}
