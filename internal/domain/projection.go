package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccumulationResult is the outcome of growing one or more capital sources to
// a horizon. YearlySeries holds the balance at each completed year boundary.
type AccumulationResult struct {
	FinalValue   decimal.Decimal   `json:"final_value"`
	YearlySeries []decimal.Decimal `json:"yearly_series"`
}

// SourceResult pairs a named capital source with its accumulation outcome so
// reports can show a per-product breakdown alongside the consolidated total.
type SourceResult struct {
	Name   string             `json:"name"`
	Kind   SourceKind         `json:"kind"`
	Result AccumulationResult `json:"result"`
}

// DrawdownPoint is one month of the drawdown phase. Age is in fractional
// years at the end of the month.
type DrawdownPoint struct {
	Month   int             `json:"month"`
	Age     decimal.Decimal `json:"age"`
	Balance decimal.Decimal `json:"balance"`
}

// DrawdownResult is the outcome of consuming a capital pool against an
// inflation-escalating income need. ExhaustionMonth is nil when the capital
// survives to the horizon; otherwise it is the 1-based month in which the
// balance first reached zero. The series always spans the full horizon so
// charts can show the flat tail after exhaustion.
type DrawdownResult struct {
	MonthlySeries     []DrawdownPoint `json:"monthly_series"`
	EndingBalance     decimal.Decimal `json:"ending_balance"`
	EndingBalanceReal decimal.Decimal `json:"ending_balance_real"`
	ExhaustionMonth   *int            `json:"exhaustion_month,omitempty"`
}

// Exhausted reports whether the capital ran out before the horizon.
func (dr *DrawdownResult) Exhausted() bool {
	return dr.ExhaustionMonth != nil
}

// FundingStatus classifies a funded ratio against policy thresholds.
type FundingStatus string

const (
	FundingStatusFullyFunded     FundingStatus = "fully_funded"
	FundingStatusPartiallyFunded FundingStatus = "partially_funded"
	FundingStatusUnderfunded     FundingStatus = "underfunded"
)

// FundingAssessment compares projected capital against the capital required to
// fund a target income, both in today's terms.
type FundingAssessment struct {
	RequiredCapital  decimal.Decimal `json:"required_capital"`
	ProjectedCapital decimal.Decimal `json:"projected_capital"`
	FundedRatio      decimal.Decimal `json:"funded_ratio"`
	Shortfall        decimal.Decimal `json:"shortfall"`
	Status           FundingStatus   `json:"status"`
}

// PlanSummary is the consolidated output of a full plan run: accumulation of
// every source, the funding assessment, the drawdown of the aggregate pool,
// and the solved top-up contribution when the plan falls short.
type PlanSummary struct {
	PersonName        string          `json:"person_name"`
	AsOf              time.Time       `json:"as_of"`
	CurrentAge        decimal.Decimal `json:"current_age"`
	RetirementAge     int             `json:"retirement_age"`
	PlanEndAge        int             `json:"plan_end_age"`
	YearsToRetirement decimal.Decimal `json:"years_to_retirement"`

	Sources               []SourceResult     `json:"sources"`
	Total                 AccumulationResult `json:"total"`
	ProjectedCapitalToday decimal.Decimal    `json:"projected_capital_today"`

	Funding  FundingAssessment `json:"funding"`
	Drawdown DrawdownResult    `json:"drawdown"`

	// RequiredExtraMonthly is the additional monthly contribution that would
	// carry the drawdown to the plan end age. Zero when the plan already
	// survives. ExtraContributionFeasible is false when the solver could not
	// bracket a feasible amount.
	RequiredExtraMonthly      decimal.Decimal `json:"required_extra_monthly"`
	ExtraContributionFeasible bool            `json:"extra_contribution_feasible"`
}
