package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/opcvmsim/fund-simulator/internal/calculation"
	"github.com/opcvmsim/fund-simulator/internal/domain"
	"github.com/opcvmsim/fund-simulator/internal/registry"
)

// Conventional defaults for fields a request may omit.
const (
	defaultAnnualFee = 0.015
	defaultPathCount = 5000
)

type deterministicRequest struct {
	FundName                 string   `json:"fund_name"`
	InitialAmount            float64  `json:"initial_amount"`
	MonthlyContribution      float64  `json:"monthly_contribution"`
	Years                    float64  `json:"years"`
	AnnualFee                *float64 `json:"annual_fee"`
	TaxRate                  *float64 `json:"tax_rate"`
	ExpectedReturnOverride   *float64 `json:"expected_return_override"`
	ContributionGrowthRate   float64  `json:"contribution_growth_rate"`
	ContributionsAtBeginning bool     `json:"contributions_at_beginning"`
}

type monteCarloRequest struct {
	FundName               string   `json:"fund_name"`
	InitialAmount          float64  `json:"initial_amount"`
	MonthlyContribution    float64  `json:"monthly_contribution"`
	Years                  float64  `json:"years"`
	AnnualFee              *float64 `json:"annual_fee"`
	PathCount              int      `json:"n_paths"`
	ExpectedReturnOverride *float64 `json:"expected_return_override"`
	AnnualVolOverride      *float64 `json:"annual_vol_override"`
	RandomSeed             *int64   `json:"random_seed"`
}

type trajectoryPoint struct {
	Month int     `json:"month"`
	Value float64 `json:"value"`
}

type deterministicResponse struct {
	FundName            string            `json:"fund_name"`
	Category            domain.Category   `json:"category"`
	AssumedAnnualReturn float64           `json:"assumed_annual_return"`
	AnnualFee           float64           `json:"annual_fee"`
	TaxRate             float64           `json:"tax_rate"`
	Years               float64           `json:"years"`
	TotalContributed    float64           `json:"total_contributed"`
	GrossFinalValue     float64           `json:"gross_final_value"`
	GainsBeforeTax      float64           `json:"gains_before_tax"`
	TaxPaid             float64           `json:"tax_paid"`
	NetFinalValue       float64           `json:"net_final_value"`
	NetProfitAfterTax   float64           `json:"net_profit_after_tax"`
	Trajectory          []trajectoryPoint `json:"trajectory"`
}

type percentiles struct {
	P5  float64 `json:"p5"`
	P50 float64 `json:"p50"`
	P95 float64 `json:"p95"`
}

type monteCarloResponse struct {
	FundName            string             `json:"fund_name"`
	Category            domain.Category    `json:"category"`
	Years               float64            `json:"years"`
	AssumedAnnualReturn float64            `json:"assumed_annual_return"`
	AssumedAnnualVol    float64            `json:"assumed_annual_vol"`
	AnnualFee           float64            `json:"annual_fee"`
	TaxRate             float64            `json:"tax_rate"`
	TotalContributed    float64            `json:"total_contributed"`
	PathCount           int                `json:"n_paths"`
	Percentiles         percentiles        `json:"percentiles"`
	ProbLoss            float64            `json:"prob_loss"`
	RiskMetrics         domain.RiskMetrics `json:"risk_metrics"`
}

func (s *Server) handleDeterministic(w http.ResponseWriter, r *http.Request) {
	var req deterministicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fee := defaultAnnualFee
	if req.AnnualFee != nil {
		fee = *req.AnnualFee
	}
	params := domain.SimulationParameters{
		InitialAmount:           req.InitialAmount,
		MonthlyContribution:     req.MonthlyContribution,
		Years:                   req.Years,
		AnnualFeeRate:           fee,
		TaxRateOverride:         req.TaxRate,
		ExpectedReturnOverride:  req.ExpectedReturnOverride,
		ContributionGrowthRate:  req.ContributionGrowthRate,
		ContributeAtPeriodStart: req.ContributionsAtBeginning,
	}

	result, err := s.engine.ComputeDeterministicProjection(req.FundName, params)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	trajectory := make([]trajectoryPoint, len(result.MonthlyTrajectory))
	for i, v := range result.MonthlyTrajectory {
		trajectory[i] = trajectoryPoint{Month: i + 1, Value: v}
	}
	writeJSON(w, http.StatusOK, deterministicResponse{
		FundName:            result.FundName,
		Category:            result.Category,
		AssumedAnnualReturn: result.AssumedAnnualReturn,
		AnnualFee:           result.AnnualFee,
		TaxRate:             result.TaxRate,
		Years:               result.Years,
		TotalContributed:    result.TotalContributed,
		GrossFinalValue:     result.GrossFinalValue,
		GainsBeforeTax:      result.GainsBeforeTax,
		TaxPaid:             result.TaxPaid,
		NetFinalValue:       result.NetFinalValue,
		NetProfitAfterTax:   result.NetProfitAfterTax,
		Trajectory:          trajectory,
	})
}

func (s *Server) handleMonteCarlo(w http.ResponseWriter, r *http.Request) {
	var req monteCarloRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fee := defaultAnnualFee
	if req.AnnualFee != nil {
		fee = *req.AnnualFee
	}
	paths := req.PathCount
	if paths == 0 {
		paths = defaultPathCount
	}
	params := domain.SimulationParameters{
		InitialAmount:          req.InitialAmount,
		MonthlyContribution:    req.MonthlyContribution,
		Years:                  req.Years,
		AnnualFeeRate:          fee,
		ExpectedReturnOverride: req.ExpectedReturnOverride,
		VolatilityOverride:     req.AnnualVolOverride,
		PathCount:              paths,
		RandomSeed:             req.RandomSeed,
	}

	result, err := s.engine.ComputeMonteCarloProjection(req.FundName, params)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, monteCarloResponse{
		FundName:            result.FundName,
		Category:            result.Category,
		Years:               result.Years,
		AssumedAnnualReturn: result.AssumedAnnualReturn,
		AssumedAnnualVol:    result.AssumedAnnualVol,
		AnnualFee:           result.AnnualFee,
		TaxRate:             result.TaxRate,
		TotalContributed:    result.TotalContributed,
		PathCount:           result.PathCount,
		Percentiles:         percentiles{P5: result.P5, P50: result.P50, P95: result.P95},
		ProbLoss:            result.ProbabilityOfLoss,
		RiskMetrics:         result.Risk,
	})
}

func (s *Server) handleListFunds(w http.ResponseWriter, r *http.Request) {
	listings, err := s.engine.ListFunds()
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]calculation.FundListing{"funds": listings})
}

// writeEngineError maps engine failures onto HTTP status codes: unknown
// instrument to 404, rejected parameters to 400, anything else to 500.
func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registry.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, calculation.ErrInvalidConfig):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.log.Error().Err(err).Msg("simulation failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
