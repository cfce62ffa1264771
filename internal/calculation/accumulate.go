package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/finplan/projection-engine/internal/domain"
)

// AccumulateSource walks one capital source month by month to the horizon.
// Each month the contribution (plus any employer match) is added and the
// balance then grows at the net monthly rate, so contributions earn growth in
// the month they land. The contribution escalates at each 12-month boundary
// and the balance is recorded at each completed year.
func AccumulateSource(source domain.CapitalSource, horizonYears decimal.Decimal) domain.AccumulationResult {
	src := source.Sanitized()
	months := HorizonMonths(horizonYears)
	result := domain.AccumulationResult{FinalValue: src.StartingBalance}
	if months == 0 {
		return result
	}

	growth := one.Add(monthlyRate(src.NetGrowthRate()))
	escalation := one.Add(ClampRate(src.ContributionEscalation))
	matchFactor := one.Add(src.EmployerMatchPercent)

	balance := src.StartingBalance
	contribution := src.MonthlyContribution
	result.YearlySeries = make([]decimal.Decimal, 0, months/12)

	for m := 1; m <= months; m++ {
		if m > 1 && (m-1)%12 == 0 {
			contribution = contribution.Mul(escalation)
		}
		balance = balance.Add(contribution.Mul(matchFactor)).Mul(growth)
		if m%12 == 0 {
			result.YearlySeries = append(result.YearlySeries, balance)
		}
	}

	result.FinalValue = balance
	return result
}

// AccumulateSourceClosedForm computes the same final value as AccumulateSource
// by composing time-value primitives: lump-sum growth of the starting balance
// plus, for each contribution year, an annuity-due compounded within the year
// and then carried forward to the horizon. The two paths must agree to
// floating-point tolerance.
func AccumulateSourceClosedForm(source domain.CapitalSource, horizonYears decimal.Decimal) decimal.Decimal {
	src := source.Sanitized()
	months := HorizonMonths(horizonYears)
	if months == 0 {
		return src.StartingBalance
	}

	net := src.NetGrowthRate()
	escalation := one.Add(ClampRate(src.ContributionEscalation))
	fv := FutureValueLumpSum(src.StartingBalance, net, months)

	contribution := src.MonthlyContribution.Mul(one.Add(src.EmployerMatchPercent))
	if !contribution.IsPositive() {
		return fv
	}

	fullYears := months / 12
	for y := 0; y < fullYears; y++ {
		yearEnd := FutureValueAnnuity(contribution, net, one, TimingBegin)
		fv = fv.Add(FutureValueLumpSum(yearEnd, net, months-12*(y+1)))
		contribution = contribution.Mul(escalation)
	}
	if rem := months % 12; rem > 0 {
		partial := decimal.NewFromInt(int64(rem)).Div(twelve)
		fv = fv.Add(FutureValueAnnuity(contribution, net, partial, TimingBegin))
	}
	return fv
}

// Accumulate runs every source to the horizon and sums the outcomes. Sources
// are combined by adding final values and aligned yearly series entries, never
// by compounding the combination as one pool, which would double-count growth.
func Accumulate(sources []domain.CapitalSource, horizonYears decimal.Decimal) domain.AccumulationResult {
	var total domain.AccumulationResult
	for _, src := range sources {
		total = SumResults(total, AccumulateSource(src, horizonYears))
	}
	return total
}

// AccumulatePerSource runs every source individually, preserving the
// per-product breakdown for reporting.
func AccumulatePerSource(sources []domain.CapitalSource, horizonYears decimal.Decimal) []domain.SourceResult {
	results := make([]domain.SourceResult, len(sources))
	for i, src := range sources {
		sanitized := src.Sanitized()
		results[i] = domain.SourceResult{
			Name:   sanitized.Name,
			Kind:   sanitized.Kind,
			Result: AccumulateSource(src, horizonYears),
		}
	}
	return results
}

// SumResults adds two accumulation results, aligning yearly series by index.
// A shorter series is treated as zero-padded.
func SumResults(a, b domain.AccumulationResult) domain.AccumulationResult {
	out := domain.AccumulationResult{FinalValue: a.FinalValue.Add(b.FinalValue)}
	n := len(a.YearlySeries)
	if len(b.YearlySeries) > n {
		n = len(b.YearlySeries)
	}
	if n == 0 {
		return out
	}
	out.YearlySeries = make([]decimal.Decimal, n)
	for i := 0; i < n; i++ {
		v := decimal.Zero
		if i < len(a.YearlySeries) {
			v = v.Add(a.YearlySeries[i])
		}
		if i < len(b.YearlySeries) {
			v = v.Add(b.YearlySeries[i])
		}
		out.YearlySeries[i] = v
	}
	return out
}
