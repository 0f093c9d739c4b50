package calculation

import (
	"math"

	"github.com/opcvmsim/fund-simulator/internal/domain"
	"github.com/opcvmsim/fund-simulator/internal/registry"
)

// DeterministicProjector simulates a single fixed trajectory month by month
// under compounding growth, proportional fees, contributions and an
// end-of-horizon capital-gains tax.
type DeterministicProjector struct {
	Defaults registry.CategoryDefaults
	Logger   Logger
}

// NewDeterministicProjector creates a projector using the given category
// default tables.
func NewDeterministicProjector(defaults registry.CategoryDefaults) *DeterministicProjector {
	return &DeterministicProjector{Defaults: defaults, Logger: NopLogger{}}
}

// Project runs the deterministic projection for one instrument profile.
//
// The monthly order of operations is fixed: optional start-of-period
// contribution, growth at the compounded monthly rate, fee on the post-growth
// balance, end-of-period contribution, trajectory snapshot, contribution
// escalation. The fee never applies to the month's own end-of-period
// contribution. Tax is applied once, on positive gains only, after the loop.
func (dp *DeterministicProjector) Project(profile domain.InstrumentProfile, params domain.SimulationParameters) (*domain.DeterministicResult, error) {
	annualReturn, err := dp.resolveAnnualReturn(profile, params)
	if err != nil {
		return nil, err
	}

	taxRate := dp.Defaults.TaxRate(profile.Category)
	if params.TaxRateOverride != nil {
		taxRate = *params.TaxRateOverride
	}

	months := int(math.Round(params.Years * 12))
	rMonth := MonthlyRate(annualReturn)
	feeMonth := params.AnnualFeeRate / 12.0

	balance := params.InitialAmount
	totalContributed := params.InitialAmount
	trajectory := make([]float64, 0, months)

	contribution := params.MonthlyContribution
	monthlyIncrease := 0.0
	if params.ContributionGrowthRate != 0 {
		monthlyIncrease = math.Pow(1.0+params.ContributionGrowthRate, 1.0/12.0) - 1.0
	}

	for m := 0; m < months; m++ {
		if params.ContributeAtPeriodStart && contribution > 0 {
			balance += contribution
			totalContributed += contribution
		}

		balance *= 1.0 + rMonth

		// Fee is charged on assets under management after growth.
		balance -= balance * feeMonth

		if !params.ContributeAtPeriodStart && contribution > 0 {
			balance += contribution
			totalContributed += contribution
		}

		trajectory = append(trajectory, balance)

		if monthlyIncrease != 0 && contribution > 0 {
			contribution *= 1.0 + monthlyIncrease
		}
	}

	grossFinalValue := balance
	gainsBeforeTax := grossFinalValue - totalContributed
	taxPaid := math.Max(0, gainsBeforeTax) * taxRate
	netFinalValue := grossFinalValue - taxPaid

	dp.Logger.Debugf("deterministic projection for %s: %d months, gross %.2f, net %.2f",
		profile.Name, months, grossFinalValue, netFinalValue)

	return &domain.DeterministicResult{
		FundName:            profile.Name,
		Category:            profile.Category,
		AssumedAnnualReturn: annualReturn,
		AnnualFee:           params.AnnualFeeRate,
		TaxRate:             taxRate,
		Years:               params.Years,
		InitialAmount:       params.InitialAmount,
		MonthlyContribution: params.MonthlyContribution,
		TotalContributed:    totalContributed,
		GrossFinalValue:     grossFinalValue,
		GainsBeforeTax:      gainsBeforeTax,
		TaxPaid:             taxPaid,
		NetFinalValue:       netFinalValue,
		NetProfitAfterTax:   netFinalValue - totalContributed,
		MonthlyTrajectory:   trajectory,
	}, nil
}

// resolveAnnualReturn applies the override-wins precedence: an explicit
// expected-return override beats the CAGR derived from the profile.
func (dp *DeterministicProjector) resolveAnnualReturn(profile domain.InstrumentProfile, params domain.SimulationParameters) (float64, error) {
	if params.ExpectedReturnOverride != nil {
		return *params.ExpectedReturnOverride, nil
	}
	return AnnualizedReturn(profile.CumulativeReturn, profile.HorizonYears)
}
