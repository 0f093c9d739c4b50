package output

import (
	"fmt"

	"github.com/opcvmsim/fund-simulator/pkg/money"
)

// FormatMAD formats an amount as dirhams with thousands separators.
// Kept here so it can be reused by multiple formatters and unit tested in
// isolation.
func FormatMAD(amount float64) string { return money.NewMoney(amount).Format() }

// FormatPercent formats a fraction as a percentage with 2 decimals.
func FormatPercent(fraction float64) string { return fmt.Sprintf("%.2f%%", fraction*100) }
