package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/finplan/projection-engine/internal/domain"
)

// Time-value-of-money primitives. All functions are pure and degrade to zero
// (or the identity) on degenerate inputs instead of returning errors. Rate
// differences smaller than rateEpsilon are handled by closed-form limits
// because direct evaluation would divide by ~0.

const rateEpsilon = 1e-8

var (
	one    = decimal.NewFromInt(1)
	two    = decimal.NewFromInt(2)
	twelve = decimal.NewFromInt(12)

	epsilon = decimal.NewFromFloat(rateEpsilon)
)

// AnnuityTiming selects whether payments land at the start or end of each period.
type AnnuityTiming int

const (
	// TimingEnd is an ordinary annuity: payments at the end of each period.
	TimingEnd AnnuityTiming = iota
	// TimingBegin is an annuity-due: payments at the start of each period.
	TimingBegin
)

// ClampRate floors an annual rate at domain.RateFloor (-99%). Rates at or
// below -100% are meaningless and would destabilize the compounding math.
func ClampRate(rate decimal.Decimal) decimal.Decimal {
	if rate.LessThan(domain.RateFloor) {
		return domain.RateFloor
	}
	return rate
}

// HorizonMonths converts a possibly fractional year count to whole months,
// rounding half away from zero. Negative horizons resolve to zero.
func HorizonMonths(years decimal.Decimal) int {
	if years.IsNegative() {
		return 0
	}
	return int(years.Mul(twelve).Round(0).IntPart())
}

// monthlyRate converts an annual rate to its monthly equivalent, annualRate/12.
func monthlyRate(annualRate decimal.Decimal) decimal.Decimal {
	return ClampRate(annualRate).Div(twelve)
}

// compound returns (1+rate)^periods for non-negative integer periods.
func compound(rate decimal.Decimal, periods int) decimal.Decimal {
	if periods <= 0 {
		return one
	}
	return one.Add(rate).Pow(decimal.NewFromInt(int64(periods)))
}

// FutureValueLumpSum compounds a present value monthly at annualRate/12 for
// the given number of months.
func FutureValueLumpSum(presentValue, annualRate decimal.Decimal, months int) decimal.Decimal {
	if months <= 0 {
		return presentValue
	}
	return presentValue.Mul(compound(monthlyRate(annualRate), months))
}

// FutureValueAnnuity returns the future value of a level monthly payment over
// the horizon. TimingBegin scales the ordinary result by (1 + monthlyRate).
// Returns zero when the payment or horizon is non-positive.
func FutureValueAnnuity(monthlyPayment, annualRate, years decimal.Decimal, timing AnnuityTiming) decimal.Decimal {
	if !monthlyPayment.IsPositive() || !years.IsPositive() {
		return decimal.Zero
	}
	months := HorizonMonths(years)
	if months == 0 {
		return decimal.Zero
	}

	i := monthlyRate(annualRate)
	var fv decimal.Decimal
	if i.Abs().LessThan(epsilon) {
		fv = monthlyPayment.Mul(decimal.NewFromInt(int64(months)))
	} else {
		fv = monthlyPayment.Mul(compound(i, months).Sub(one)).Div(i)
	}
	if timing == TimingBegin {
		fv = fv.Mul(one.Add(i))
	}
	return fv
}

// FutureValueEscalatingAnnuity values contributions that stay flat within a
// year and jump by (1+escalation) at each anniversary, with each year's total
// compounding forward annually to the horizon. When growth and escalation are
// within rateEpsilon of each other the growing-annuity limit
// payment*12*n*(1+r)^n applies.
func FutureValueEscalatingAnnuity(initialMonthlyPayment, annualRate, annualEscalation decimal.Decimal, years int) decimal.Decimal {
	if !initialMonthlyPayment.IsPositive() || years <= 0 {
		return decimal.Zero
	}
	r := ClampRate(annualRate)
	g := ClampRate(annualEscalation)
	annual := initialMonthlyPayment.Mul(twelve)
	n := decimal.NewFromInt(int64(years))

	if r.Sub(g).Abs().LessThan(epsilon) {
		return annual.Mul(n).Mul(compound(r, years))
	}
	// 12P(1+r)((1+r)^n - (1+g)^n)/(r-g)
	return annual.Mul(one.Add(r)).
		Mul(compound(r, years).Sub(compound(g, years))).
		Div(r.Sub(g))
}

// PresentValue discounts a nominal future amount to today at an annual rate.
func PresentValue(nominalValue decimal.Decimal, years int, discountRate decimal.Decimal) decimal.Decimal {
	if years <= 0 {
		return nominalValue
	}
	return nominalValue.Div(compound(ClampRate(discountRate), years))
}

// presentValueMonths discounts over whole months at a monthly rate.
func presentValueMonths(nominalValue, monthlyDiscountRate decimal.Decimal, months int) decimal.Decimal {
	if months <= 0 {
		return nominalValue
	}
	return nominalValue.Div(compound(monthlyDiscountRate, months))
}

// RealAnnuityFactor is the present-value-of-annuity factor used to turn a
// target annual income into required capital: (1 - (1+d)^-L)/d, or simply L
// periods when the real discount rate is effectively zero.
func RealAnnuityFactor(realDiscountRate decimal.Decimal, periods int) decimal.Decimal {
	if periods <= 0 {
		return decimal.Zero
	}
	d := ClampRate(realDiscountRate)
	if d.Abs().LessThan(epsilon) {
		return decimal.NewFromInt(int64(periods))
	}
	discount := one.Div(compound(d, periods))
	return one.Sub(discount).Div(d)
}

// RealRate converts a nominal annual rate to a real rate given inflation:
// (1+nominal)/(1+inflation) - 1.
func RealRate(nominalRate, inflationRate decimal.Decimal) decimal.Decimal {
	return one.Add(ClampRate(nominalRate)).
		Div(one.Add(ClampRate(inflationRate))).
		Sub(one)
}
