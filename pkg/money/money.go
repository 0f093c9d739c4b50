// Package money provides decimal-backed formatting for MAD amounts. The
// simulation core works in float64; amounts are converted here only at the
// presentation boundary, where cent rounding matters.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount in Moroccan dirhams.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a Money instance from a float64.
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// Round rounds the amount to centimes using banker's rounding.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Add adds another amount.
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another amount.
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// String returns the amount with two decimal places and no separators.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format returns the amount with thousands separators and the MAD suffix,
// e.g. "100,000.00 MAD".
func (m Money) Format() string {
	s := m.Decimal.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	b.WriteString(" MAD")
	return b.String()
}
