package domain

import (
	"github.com/shopspring/decimal"
)

// SourceKind distinguishes capital sources the user entered from sources the
// engine derived (e.g. an employer-match stream computed from salary).
type SourceKind string

const (
	SourceKindUserEntered SourceKind = "user_entered"
	SourceKindDerived     SourceKind = "derived"
)

// RateFloor is the lowest annual rate the engine will simulate with. Rates at
// or below -100% are meaningless; clamping keeps the math stable instead of
// failing.
var RateFloor = decimal.NewFromFloat(-0.99)

// CapitalSource is an immutable snapshot of one savings product or account
// feeding the accumulation phase. The engine never mutates a source; it works
// on sanitized copies.
type CapitalSource struct {
	Name                   string          `yaml:"name" json:"name"`
	Kind                   SourceKind      `yaml:"kind,omitempty" json:"kind"`
	StartingBalance        decimal.Decimal `yaml:"starting_balance" json:"starting_balance"`
	MonthlyContribution    decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	ContributionEscalation decimal.Decimal `yaml:"contribution_escalation" json:"contribution_escalation"`
	GrowthRate             decimal.Decimal `yaml:"growth_rate" json:"growth_rate"`
	FeeRate                decimal.Decimal `yaml:"fee_rate" json:"fee_rate"`
	EmployerMatchPercent   decimal.Decimal `yaml:"employer_match_percent,omitempty" json:"employer_match_percent"`
}

// NetGrowthRate returns the growth rate net of fees, floored at RateFloor.
func (cs CapitalSource) NetGrowthRate() decimal.Decimal {
	net := cs.GrowthRate.Sub(cs.FeeRate)
	if net.LessThan(RateFloor) {
		return RateFloor
	}
	return net
}

// Sanitized returns a copy with negative money amounts clamped to zero and
// rates floored. Upstream validation rejects bad input; the simulators still
// must not crash or produce negative flows when handed garbage.
func (cs CapitalSource) Sanitized() CapitalSource {
	out := cs
	if out.Kind == "" {
		out.Kind = SourceKindUserEntered
	}
	if out.StartingBalance.IsNegative() {
		out.StartingBalance = decimal.Zero
	}
	if out.MonthlyContribution.IsNegative() {
		out.MonthlyContribution = decimal.Zero
	}
	if out.EmployerMatchPercent.IsNegative() {
		out.EmployerMatchPercent = decimal.Zero
	}
	if out.FeeRate.IsNegative() {
		out.FeeRate = decimal.Zero
	}
	if out.ContributionEscalation.LessThan(RateFloor) {
		out.ContributionEscalation = RateFloor
	}
	if out.GrowthRate.LessThan(RateFloor) {
		out.GrowthRate = RateFloor
	}
	return out
}
