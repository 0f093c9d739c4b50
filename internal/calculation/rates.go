package calculation

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig marks inputs rejected before any simulation work begins:
// non-positive horizons or years, parameters outside their valid range. A
// failed call never returns a partially computed result.
var ErrInvalidConfig = errors.New("invalid configuration")

// AnnualizedReturn converts a cumulative return observed over horizonYears
// into the constant yearly growth rate (CAGR) that reproduces it:
// (1+cum)^(1/h) - 1. The cumulative return may be negative.
func AnnualizedReturn(cumulativeReturn, horizonYears float64) (float64, error) {
	if horizonYears <= 0 {
		return 0, fmt.Errorf("%w: horizon_years must be positive, got %g", ErrInvalidConfig, horizonYears)
	}
	return math.Pow(1.0+cumulativeReturn, 1.0/horizonYears) - 1.0, nil
}

// MonthlyRate converts an annual rate into the equivalent compounded monthly
// rate: (1+annual)^(1/12) - 1.
func MonthlyRate(annualRate float64) float64 {
	return math.Pow(1.0+annualRate, 1.0/12.0) - 1.0
}
