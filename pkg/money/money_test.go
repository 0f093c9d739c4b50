package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"zero", 0, "0.00 MAD"},
		{"under a thousand", 999.99, "999.99 MAD"},
		{"exactly a thousand", 1000, "1,000.00 MAD"},
		{"hundreds of thousands", 280000, "280,000.00 MAD"},
		{"millions", 1234567.89, "1,234,567.89 MAD"},
		{"negative", -45678.9, "-45,678.90 MAD"},
		{"sub-centime rounds", 0.005, "0.01 MAD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewMoney(tt.value).Format())
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "1234.50", NewMoney(1234.5).String())
	assert.Equal(t, "-0.10", NewMoney(-0.1).String())
}

func TestRound(t *testing.T) {
	assert.Equal(t, "12.35", NewMoney(12.345).Round().String())
	assert.Equal(t, "12.34", NewMoney(12.344).Round().String())
}

func TestArithmetic(t *testing.T) {
	a := NewMoney(100.10)
	b := NewMoney(0.20)

	assert.Equal(t, "100.30", a.Add(b).String())
	assert.Equal(t, "99.90", a.Sub(b).String())
	assert.False(t, a.IsNegative())
	assert.True(t, b.Sub(a).IsNegative())
}
