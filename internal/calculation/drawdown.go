package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/finplan/projection-engine/internal/domain"
)

// DrawdownInput describes a drawdown simulation. Ages are in years and may be
// fractional; rates are annual decimal fractions. MonthlyIncomeToday is the
// income need stated in today's currency; the simulator escalates it by
// inflation counted from the reference date ("today"), so pre-retirement
// inflation is already baked in when withdrawals begin.
type DrawdownInput struct {
	StartingCapital      decimal.Decimal
	CurrentAge           decimal.Decimal
	RetirementAge        decimal.Decimal
	PlanEndAge           decimal.Decimal
	PostRetirementReturn decimal.Decimal
	InflationRate        decimal.Decimal
	MonthlyIncomeToday   decimal.Decimal
	OnceOffCapitalNeed   decimal.Decimal
}

// SimulateDrawdown consumes a capital pool month by month from retirement to
// the plan end age. Each month the balance grows at the post-retirement
// monthly rate, then the inflation-escalated income need is withdrawn, capped
// at the available balance. The first month the balance reaches zero is the
// exhaustion point; the simulation continues with the balance pinned at zero
// so the series spans the full horizon.
func SimulateDrawdown(in DrawdownInput) domain.DrawdownResult {
	capital := in.StartingCapital
	if capital.IsNegative() {
		capital = decimal.Zero
	}
	onceOff := in.OnceOffCapitalNeed
	if onceOff.IsPositive() {
		capital = capital.Sub(onceOff)
		if capital.IsNegative() {
			capital = decimal.Zero
		}
	}

	monthsToRetirement := HorizonMonths(in.RetirementAge.Sub(in.CurrentAge))
	drawdownMonths := HorizonMonths(in.PlanEndAge.Sub(in.RetirementAge))

	growth := one.Add(monthlyRate(in.PostRetirementReturn))
	cpi := monthlyRate(in.InflationRate)
	inflate := one.Add(cpi)

	income := in.MonthlyIncomeToday
	if income.IsNegative() {
		income = decimal.Zero
	}
	// Escalate the need to its nominal value at retirement.
	income = income.Mul(compound(cpi, monthsToRetirement))

	result := domain.DrawdownResult{
		MonthlySeries: make([]domain.DrawdownPoint, 0, drawdownMonths),
	}

	balance := capital
	for m := 1; m <= drawdownMonths; m++ {
		if m > 1 {
			income = income.Mul(inflate)
		}
		balance = balance.Mul(growth)

		withdrawal := income
		if withdrawal.GreaterThan(balance) {
			withdrawal = balance
		}
		balance = balance.Sub(withdrawal)

		if !balance.IsPositive() {
			balance = decimal.Zero
			if result.ExhaustionMonth == nil {
				month := m
				result.ExhaustionMonth = &month
			}
		}

		age := in.RetirementAge.Add(decimal.NewFromInt(int64(m)).Div(twelve))
		result.MonthlySeries = append(result.MonthlySeries, domain.DrawdownPoint{
			Month:   m,
			Age:     age,
			Balance: balance,
		})
	}

	result.EndingBalance = balance
	// Surplus in today's purchasing power, discounted at CPI over the full
	// span from the reference date to the plan end age.
	result.EndingBalanceReal = presentValueMonths(balance, cpi, monthsToRetirement+drawdownMonths)
	return result
}
