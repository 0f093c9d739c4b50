package registry

import "github.com/opcvmsim/fund-simulator/internal/domain"

// Built-in fund table, transcribed from the Wafa Gestion weekly report of
// Aug 15, 2025. Each entry records the rightmost cumulative performance shown
// for the fund and the horizon it covers; the engine annualizes it at
// simulation time. Funds whose snapshot figures could not be annualized
// safely (YTD-style or missing long-horizon numbers) are omitted.
var builtinProfiles = []domain.InstrumentProfile{
	{Name: "ATTIJARI ACTIONS", Category: domain.CategoryEquity, HorizonYears: 5.0, CumulativeReturn: 0.8782},
	{Name: "ATTIJARI AL MOUCHARAKA", Category: domain.CategoryEquity, HorizonYears: 5.0, CumulativeReturn: 0.9080},
	{Name: "ATTIJARI DIVIDEND FUND", Category: domain.CategoryEquity, HorizonYears: 5.0, CumulativeReturn: 0.3015},
	{Name: "ATTIJARI PATRIMOINE VALEURS", Category: domain.CategoryEquity, HorizonYears: 5.0, CumulativeReturn: 0.8183},
	{Name: "FCP ATTIJARI GOLD", Category: domain.CategoryEquity, HorizonYears: 5.0, CumulativeReturn: 0.6279},
	{Name: "ATTIJARI DIVERSIFIE", Category: domain.CategoryDiversified, HorizonYears: 4.0, CumulativeReturn: 0.4583},
	{Name: "ATTIJARI PATRIMOINE DIVERSIFIE", Category: domain.CategoryDiversified, HorizonYears: 4.0, CumulativeReturn: 0.5248},
	{Name: "WG OBLIGATIONS", Category: domain.CategoryBonds, HorizonYears: 2.0, CumulativeReturn: -0.2190},
	{Name: "ATTIJARI PATRIMOINE TAUX", Category: domain.CategoryRates, HorizonYears: 2.0, CumulativeReturn: 0.0980},
	{Name: "PATRIMOINE OBLIGATIONS", Category: domain.CategoryBonds, HorizonYears: 2.0, CumulativeReturn: 0.1613},
	{Name: "ATTIJARI MONETAIRE PLUS", Category: domain.CategoryMoneyMarket, HorizonYears: 0.5, CumulativeReturn: 0.1139},
	{Name: "OBLIDYNAMIC", Category: domain.CategoryMoneyMarket, HorizonYears: 0.5, CumulativeReturn: 0.1232},
	{Name: "FCP CAP INSTITUTIONS", Category: domain.CategoryMoneyMarket, HorizonYears: 0.25, CumulativeReturn: 0.1354},
	{Name: "ATTIJARI TRESORERIE", Category: domain.CategoryTreasury, HorizonYears: 1.0 / 12.0, CumulativeReturn: 0.0991},
	{Name: "CAP MONETAIRE PREMIERE", Category: domain.CategoryMoneyMarket, HorizonYears: 1.0 / 12.0, CumulativeReturn: 0.1252},
}

// Builtin returns the embedded Wafa Gestion fund table.
func Builtin() *MemoryRegistry {
	return NewMemoryRegistry(builtinProfiles...)
}

// BuiltinDefaults returns the AMMC-guided default tables: 15% capital-gains
// tax for equity funds, 20% for everything else, and per-category volatility
// assumptions.
func BuiltinDefaults() CategoryDefaults {
	return CategoryDefaults{
		TaxRates: map[domain.Category]float64{
			domain.CategoryEquity:      0.15,
			domain.CategoryDiversified: 0.20,
			domain.CategoryBonds:       0.20,
			domain.CategoryRates:       0.20,
			domain.CategoryMoneyMarket: 0.20,
			domain.CategoryTreasury:    0.20,
		},
		Volatilities: map[domain.Category]float64{
			domain.CategoryEquity:      0.20,
			domain.CategoryDiversified: 0.12,
			domain.CategoryBonds:       0.06,
			domain.CategoryRates:       0.05,
			domain.CategoryMoneyMarket: 0.015,
			domain.CategoryTreasury:    0.02,
		},
	}
}
