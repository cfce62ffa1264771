package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/finplan/projection-engine/internal/domain"
)

// FundingThresholds are the policy cut-offs for classifying a funded ratio.
// They are product policy, not mathematical necessity, so they travel as
// configuration rather than literals in the classification logic.
type FundingThresholds struct {
	FullyFunded     decimal.Decimal
	PartiallyFunded decimal.Decimal
}

// DefaultFundingThresholds returns the standard policy: fully funded at a
// ratio of 1.0, partially funded down to 0.7, underfunded below that.
func DefaultFundingThresholds() FundingThresholds {
	return FundingThresholds{
		FullyFunded:     decimal.NewFromInt(1),
		PartiallyFunded: decimal.NewFromFloat(0.7),
	}
}

// AssessFunding compares projected capital against the capital required to
// fund a target annual income over the retirement period, all in today's
// currency. The required capital is the target income times the real annuity
// factor. A non-positive requirement is defined as fully funded with a ratio
// of zero.
func AssessFunding(projectedCapital, targetAnnualIncomeToday, realDiscountRate decimal.Decimal, periods int, thresholds FundingThresholds) domain.FundingAssessment {
	required := targetAnnualIncomeToday.Mul(RealAnnuityFactor(realDiscountRate, periods))

	assessment := domain.FundingAssessment{
		RequiredCapital:  required,
		ProjectedCapital: projectedCapital,
		Shortfall:        decimal.Zero,
		FundedRatio:      decimal.Zero,
	}

	if !required.IsPositive() {
		assessment.Status = domain.FundingStatusFullyFunded
		return assessment
	}

	assessment.FundedRatio = projectedCapital.Div(required)
	if shortfall := required.Sub(projectedCapital); shortfall.IsPositive() {
		assessment.Shortfall = shortfall
	}
	assessment.Status = classifyFunding(assessment.FundedRatio, thresholds)
	return assessment
}

func classifyFunding(ratio decimal.Decimal, thresholds FundingThresholds) domain.FundingStatus {
	switch {
	case ratio.GreaterThanOrEqual(thresholds.FullyFunded):
		return domain.FundingStatusFullyFunded
	case ratio.GreaterThanOrEqual(thresholds.PartiallyFunded):
		return domain.FundingStatusPartiallyFunded
	default:
		return domain.FundingStatusUnderfunded
	}
}
