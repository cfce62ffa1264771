package calculation

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finplan/projection-engine/internal/domain"
	"github.com/finplan/projection-engine/pkg/dateutil"
	money "github.com/finplan/projection-engine/pkg/decimal"
)

// Engine is the functional facade over the projection components. It holds no
// mutable state across calls; every run allocates its own working data, so
// concurrent invocations are independent.
type Engine struct {
	Thresholds FundingThresholds
	Logger     Logger
}

// NewEngine creates an engine with default funding thresholds and a no-op logger.
func NewEngine() *Engine {
	return &Engine{
		Thresholds: DefaultFundingThresholds(),
		Logger:     NopLogger{},
	}
}

// SetLogger sets the logger for the engine. A nil logger restores the no-op.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Accumulate grows the sources to the horizon and returns the consolidated result.
func (e *Engine) Accumulate(sources []domain.CapitalSource, horizonYears decimal.Decimal) domain.AccumulationResult {
	return Accumulate(sources, horizonYears)
}

// SimulateDrawdown runs the month-stepped drawdown of a capital pool.
func (e *Engine) SimulateDrawdown(in DrawdownInput) domain.DrawdownResult {
	return SimulateDrawdown(in)
}

// SolveForContribution finds the minimal amount for which the outcome is acceptable.
func (e *Engine) SolveForContribution(f OutcomeFunc, lo, hi decimal.Decimal) (decimal.Decimal, error) {
	return SolveMinimum(f, lo, hi)
}

// AssessFunding computes the funded ratio of projected capital against the
// capital required for a target annual income, using the engine's thresholds.
func (e *Engine) AssessFunding(projectedCapital, targetAnnualIncomeToday, realDiscountRate decimal.Decimal, periods int) domain.FundingAssessment {
	return AssessFunding(projectedCapital, targetAnnualIncomeToday, realDiscountRate, periods, e.Thresholds)
}

// DeriveEmployerSource turns a salary and employer match percentage into an
// explicit derived capital source. The contribution is a computed value, not a
// mutable pseudo-entry in the user's source list.
func DeriveEmployerSource(person domain.Person, assumptions domain.Assumptions) (domain.CapitalSource, bool) {
	if !person.MonthlySalary.IsPositive() || !person.EmployerMatchPercent.IsPositive() {
		return domain.CapitalSource{}, false
	}
	return domain.CapitalSource{
		Name:                   "employer match",
		Kind:                   domain.SourceKindDerived,
		MonthlyContribution:    person.MonthlySalary.Mul(person.EmployerMatchPercent),
		ContributionEscalation: assumptions.SalaryGrowthRate,
		GrowthRate:             assumptions.PreRetirementReturn,
	}, true
}

// RunPlan executes a full projection: accumulate every source (user-entered
// plus the derived employer source), assess funding against the income target,
// draw the aggregate pool down to the plan end age, and when the pool does not
// survive, solve for the additional monthly contribution that carries it
// there. Re-running with identical inputs yields identical outputs.
func (e *Engine) RunPlan(plan *domain.Plan) (*domain.PlanSummary, error) {
	if plan == nil {
		return nil, errors.New("plan is required")
	}

	asOf := plan.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}

	currentAge := decimal.NewFromFloat(dateutil.AgeYears(plan.Person.BirthDate, asOf))
	retirementAge := decimal.NewFromInt(int64(plan.Assumptions.RetirementAge))
	horizonYears := retirementAge.Sub(currentAge)
	if horizonYears.IsNegative() {
		horizonYears = decimal.Zero
	}

	sources := make([]domain.CapitalSource, 0, len(plan.Sources)+1)
	sources = append(sources, plan.Sources...)
	if derived, ok := DeriveEmployerSource(plan.Person, plan.Assumptions); ok {
		sources = append(sources, derived)
	}

	perSource := AccumulatePerSource(sources, horizonYears)
	total := domain.AccumulationResult{}
	for _, sr := range perSource {
		total = SumResults(total, sr.Result)
	}

	yearsToRetirement := HorizonMonths(horizonYears) / 12
	projectedToday := PresentValue(total.FinalValue, yearsToRetirement, plan.Assumptions.InflationRate)

	periodsInRetirement := plan.Assumptions.PlanEndAge - plan.Assumptions.RetirementAge
	realRate := RealRate(plan.Assumptions.PostRetirementReturn, plan.Assumptions.InflationRate)
	targetAnnual := money.NewMoneyFromDecimal(plan.Target.MonthlyIncomeToday).Annual()
	funding := e.AssessFunding(projectedToday, targetAnnual.Decimal, realRate, periodsInRetirement)

	drawdownFor := func(extraMonthly decimal.Decimal) domain.DrawdownResult {
		runSources := sources
		if extraMonthly.IsPositive() {
			topUp := domain.CapitalSource{
				Name:                "top-up",
				Kind:                domain.SourceKindDerived,
				MonthlyContribution: extraMonthly,
				GrowthRate:          plan.Assumptions.PreRetirementReturn,
			}
			runSources = append(append([]domain.CapitalSource{}, sources...), topUp)
		}
		capital := Accumulate(runSources, horizonYears).FinalValue
		return SimulateDrawdown(DrawdownInput{
			StartingCapital:      capital,
			CurrentAge:           currentAge,
			RetirementAge:        retirementAge,
			PlanEndAge:           decimal.NewFromInt(int64(plan.Assumptions.PlanEndAge)),
			PostRetirementReturn: plan.Assumptions.PostRetirementReturn,
			InflationRate:        plan.Assumptions.InflationRate,
			MonthlyIncomeToday:   plan.Target.MonthlyIncomeToday,
			OnceOffCapitalNeed:   plan.Target.OnceOffCapitalNeed,
		})
	}

	drawdown := drawdownFor(decimal.Zero)

	summary := &domain.PlanSummary{
		PersonName:                plan.Person.Name,
		AsOf:                      asOf,
		CurrentAge:                currentAge.Round(2),
		RetirementAge:             plan.Assumptions.RetirementAge,
		PlanEndAge:                plan.Assumptions.PlanEndAge,
		YearsToRetirement:         horizonYears.Round(2),
		Sources:                   perSource,
		Total:                     total,
		ProjectedCapitalToday:     projectedToday,
		Funding:                   funding,
		Drawdown:                  drawdown,
		RequiredExtraMonthly:      decimal.Zero,
		ExtraContributionFeasible: true,
	}

	if drawdown.Exhausted() {
		extra, err := SolveMinimum(func(candidate decimal.Decimal) Outcome {
			res := drawdownFor(candidate)
			return Outcome{Survived: !res.Exhausted(), EndingBalance: res.EndingBalance}
		}, decimal.Zero, decimal.Zero)
		if err != nil {
			if !errors.Is(err, ErrNoFeasibleSolution) {
				return nil, err
			}
			e.Logger.Warnf("no feasible top-up contribution found for plan %q; estimate may be unreliable", plan.Person.Name)
			summary.ExtraContributionFeasible = false
		}
		summary.RequiredExtraMonthly = extra
	}

	return summary, nil
}
