package domain

// SimulationParameters holds the caller-supplied inputs for one simulation
// call. A fresh value is constructed per call; nothing here is shared between
// calls. Optional overrides are pointers: nil means "derive from the profile
// or the category defaults", non-nil always wins.
type SimulationParameters struct {
	InitialAmount       float64 `yaml:"initial_amount" json:"initial_amount"`
	MonthlyContribution float64 `yaml:"monthly_contribution" json:"monthly_contribution"`
	Years               float64 `yaml:"years" json:"years"`
	AnnualFeeRate       float64 `yaml:"annual_fee" json:"annual_fee"`

	TaxRateOverride        *float64 `yaml:"tax_rate,omitempty" json:"tax_rate,omitempty"`
	ExpectedReturnOverride *float64 `yaml:"expected_return_override,omitempty" json:"expected_return_override,omitempty"`

	// Deterministic projection only.
	ContributionGrowthRate  float64 `yaml:"contribution_growth_rate,omitempty" json:"contribution_growth_rate,omitempty"`
	ContributeAtPeriodStart bool    `yaml:"contributions_at_beginning,omitempty" json:"contributions_at_beginning,omitempty"`

	// Monte Carlo only.
	VolatilityOverride *float64 `yaml:"annual_vol_override,omitempty" json:"annual_vol_override,omitempty"`
	PathCount          int      `yaml:"n_paths,omitempty" json:"n_paths,omitempty"`
	RandomSeed         *int64   `yaml:"random_seed,omitempty" json:"random_seed,omitempty"`
}

// DeterministicResult is the outcome of one deterministic projection.
// MonthlyTrajectory holds one month-end balance per elapsed month, before the
// end-of-horizon tax.
type DeterministicResult struct {
	FundName            string    `json:"fund_name"`
	Category            Category  `json:"category"`
	AssumedAnnualReturn float64   `json:"assumed_annual_return"`
	AnnualFee           float64   `json:"annual_fee"`
	TaxRate             float64   `json:"tax_rate"`
	Years               float64   `json:"years"`
	InitialAmount       float64   `json:"initial_amount"`
	MonthlyContribution float64   `json:"monthly_contribution"`
	TotalContributed    float64   `json:"total_contributed"`
	GrossFinalValue     float64   `json:"gross_final_value"`
	GainsBeforeTax      float64   `json:"gains_before_tax"`
	TaxPaid             float64   `json:"tax_paid"`
	NetFinalValue       float64   `json:"net_final_value"`
	NetProfitAfterTax   float64   `json:"net_profit_after_tax"`
	MonthlyTrajectory   []float64 `json:"monthly_trajectory"`
}

// RiskMetrics summarizes the risk profile of a Monte Carlo ensemble.
//
// Sharpe and Sortino are both mu/sigma with no risk-free rate or downside
// deviation, MeanMaxDrawdown is always zero, and Calmar is a category
// heuristic. These simplifications are part of the model's contract.
type RiskMetrics struct {
	AnnualizedVol   float64 `json:"annualized_vol"`
	Sharpe          float64 `json:"sharpe"`
	Sortino         float64 `json:"sortino"`
	MeanMaxDrawdown float64 `json:"max_drawdown_mean"`
	Calmar          float64 `json:"calmar"`
}

// MonteCarloResult is the reduced summary of one Monte Carlo ensemble:
// terminal-balance percentiles, loss probability and risk metrics, plus the
// scalar assumptions the ensemble was generated under.
type MonteCarloResult struct {
	FundName            string      `json:"fund_name"`
	Category            Category    `json:"category"`
	Years               float64     `json:"years"`
	AssumedAnnualReturn float64     `json:"assumed_annual_return"`
	AssumedAnnualVol    float64     `json:"assumed_annual_vol"`
	AnnualFee           float64     `json:"annual_fee"`
	TaxRate             float64     `json:"tax_rate"`
	TotalContributed    float64     `json:"total_contributed"`
	PathCount           int         `json:"n_paths"`
	P5                  float64     `json:"p5"`
	P50                 float64     `json:"p50"`
	P95                 float64     `json:"p95"`
	ProbabilityOfLoss   float64     `json:"prob_loss"`
	Risk                RiskMetrics `json:"risk_metrics"`
}
