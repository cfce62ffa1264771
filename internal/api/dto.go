package api

import (
	"github.com/shopspring/decimal"

	"github.com/finplan/projection-engine/internal/domain"
)

// ProjectionRequest asks for an accumulation of one or more capital sources.
type ProjectionRequest struct {
	Sources      []domain.CapitalSource `json:"sources"`
	HorizonYears decimal.Decimal        `json:"horizon_years"`
}

// ProjectionResponse carries the consolidated and per-source results.
type ProjectionResponse struct {
	RunID   string                    `json:"run_id"`
	Total   domain.AccumulationResult `json:"total"`
	Sources []domain.SourceResult     `json:"sources"`
}

// DrawdownRequest mirrors calculation.DrawdownInput on the wire.
type DrawdownRequest struct {
	StartingCapital      decimal.Decimal `json:"starting_capital"`
	CurrentAge           decimal.Decimal `json:"current_age"`
	RetirementAge        decimal.Decimal `json:"retirement_age"`
	PlanEndAge           decimal.Decimal `json:"plan_end_age"`
	PostRetirementReturn decimal.Decimal `json:"post_retirement_return"`
	InflationRate        decimal.Decimal `json:"inflation_rate"`
	MonthlyIncomeToday   decimal.Decimal `json:"monthly_income_today"`
	OnceOffCapitalNeed   decimal.Decimal `json:"once_off_capital_need"`
}

// DrawdownResponse wraps the simulated series.
type DrawdownResponse struct {
	RunID  string                `json:"run_id"`
	Result domain.DrawdownResult `json:"result"`
}

// SolveRequest asks for the minimal extra monthly contribution that lets the
// described plan survive to its end age.
type SolveRequest struct {
	Plan domain.Plan `json:"plan"`
}

// SolveResponse reports the solved contribution. Feasible is false when the
// solver could not bracket a solution; the value is then a best estimate.
type SolveResponse struct {
	RunID                string          `json:"run_id"`
	RequiredExtraMonthly decimal.Decimal `json:"required_extra_monthly"`
	Feasible             bool            `json:"feasible"`
}

// FundingRequest asks for a funding assessment in today's terms.
type FundingRequest struct {
	ProjectedCapital        decimal.Decimal `json:"projected_capital"`
	TargetAnnualIncomeToday decimal.Decimal `json:"target_annual_income_today"`
	RealDiscountRate        decimal.Decimal `json:"real_discount_rate"`
	PeriodsInRetirement     int             `json:"periods_in_retirement"`
}

// FundingResponse wraps the assessment.
type FundingResponse struct {
	RunID      string                   `json:"run_id"`
	Assessment domain.FundingAssessment `json:"assessment"`
}

// PlanResponse wraps a full plan run.
type PlanResponse struct {
	RunID   string              `json:"run_id"`
	Summary *domain.PlanSummary `json:"summary"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
