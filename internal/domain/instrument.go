package domain

// Category classifies an OPCVM fund. The labels follow the AMMC fund
// classification used in the Wafa Gestion weekly reports.
type Category string

const (
	CategoryEquity      Category = "Actions"
	CategoryDiversified Category = "Diversifié"
	CategoryBonds       Category = "Obligations"
	CategoryRates       Category = "Taux"
	CategoryMoneyMarket Category = "Monétaire"
	CategoryTreasury    Category = "Trésorerie"
)

// InstrumentProfile is the reference data for a single fund: the fund category
// plus one historical observation (a cumulative return over a horizon) from
// which an expected annual return is derived. Profiles are immutable; the
// registry owns them and the simulation engine only reads them.
type InstrumentProfile struct {
	Name             string   `yaml:"name" json:"name"`
	Category         Category `yaml:"category" json:"category"`
	HorizonYears     float64  `yaml:"horizon_years" json:"horizon_years"`
	CumulativeReturn float64  `yaml:"cumulative_return" json:"cumulative_return"`
}
