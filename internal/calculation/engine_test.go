package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finplan/projection-engine/internal/domain"
)

func testPlan() *domain.Plan {
	birthDate := time.Date(1985, 4, 12, 0, 0, 0, 0, time.UTC)
	asOf := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	return &domain.Plan{
		AsOf: asOf,
		Person: domain.Person{
			Name:                 "Thandi",
			BirthDate:            birthDate,
			MonthlySalary:        decimal.NewFromInt(60000),
			EmployerMatchPercent: decimal.NewFromFloat(0.05),
		},
		Sources: []domain.CapitalSource{
			{
				Name:                   "pension fund",
				StartingBalance:        decimal.NewFromInt(500000),
				MonthlyContribution:    decimal.NewFromInt(9000),
				ContributionEscalation: decimal.NewFromFloat(0.06),
				GrowthRate:             decimal.NewFromFloat(0.085),
				FeeRate:                decimal.NewFromFloat(0.005),
			},
		},
		Assumptions: domain.Assumptions{
			InflationRate:        decimal.NewFromFloat(0.05),
			PreRetirementReturn:  decimal.NewFromFloat(0.08),
			PostRetirementReturn: decimal.NewFromFloat(0.065),
			SalaryGrowthRate:     decimal.NewFromFloat(0.055),
			RetirementAge:        65,
			PlanEndAge:           90,
		},
		Target: domain.Target{
			MonthlyIncomeToday: decimal.NewFromInt(35000),
			OnceOffCapitalNeed: decimal.NewFromInt(150000),
		},
	}
}

func TestRunPlanIncludesDerivedEmployerSource(t *testing.T) {
	summary, err := NewEngine().RunPlan(testPlan())
	require.NoError(t, err)

	require.Len(t, summary.Sources, 2)
	assert.Equal(t, domain.SourceKindUserEntered, summary.Sources[0].Kind)
	assert.Equal(t, domain.SourceKindDerived, summary.Sources[1].Kind)
	assert.Equal(t, "employer match", summary.Sources[1].Name)
	assert.True(t, summary.Sources[1].Result.FinalValue.IsPositive())
}

func TestRunPlanTotalsMatchSourceSum(t *testing.T) {
	summary, err := NewEngine().RunPlan(testPlan())
	require.NoError(t, err)

	sum := decimal.Zero
	for _, sr := range summary.Sources {
		sum = sum.Add(sr.Result.FinalValue)
	}
	assert.True(t, summary.Total.FinalValue.Equal(sum))
	assert.True(t, summary.ProjectedCapitalToday.LessThan(summary.Total.FinalValue),
		"today's value must be below the nominal value under positive inflation")
}

func TestRunPlanDeterministic(t *testing.T) {
	engine := NewEngine()
	first, err := engine.RunPlan(testPlan())
	require.NoError(t, err)
	second, err := engine.RunPlan(testPlan())
	require.NoError(t, err)

	assert.True(t, first.Total.FinalValue.Equal(second.Total.FinalValue))
	assert.True(t, first.Funding.FundedRatio.Equal(second.Funding.FundedRatio))
	assert.True(t, first.RequiredExtraMonthly.Equal(second.RequiredExtraMonthly))
	assert.Equal(t, first.Drawdown.ExhaustionMonth, second.Drawdown.ExhaustionMonth)
}

func TestRunPlanSolvesTopUpWhenExhausted(t *testing.T) {
	plan := testPlan()
	// An aggressive income target guarantees the pool runs dry.
	plan.Target.MonthlyIncomeToday = decimal.NewFromInt(150000)

	summary, err := NewEngine().RunPlan(plan)
	require.NoError(t, err)
	require.True(t, summary.Drawdown.Exhausted())
	require.True(t, summary.ExtraContributionFeasible)
	assert.True(t, summary.RequiredExtraMonthly.IsPositive())

	// Adding the solved top-up as a real source must carry the plan through.
	plan.Sources = append(plan.Sources, domain.CapitalSource{
		Name:                "top-up",
		MonthlyContribution: summary.RequiredExtraMonthly,
		GrowthRate:          plan.Assumptions.PreRetirementReturn,
	})
	fixed, err := NewEngine().RunPlan(plan)
	require.NoError(t, err)
	assert.False(t, fixed.Drawdown.Exhausted(),
		"solved contribution should prevent exhaustion, ran out at month %v", fixed.Drawdown.ExhaustionMonth)
}

func TestRunPlanNoTopUpWhenPlanSurvives(t *testing.T) {
	plan := testPlan()
	plan.Target.MonthlyIncomeToday = decimal.NewFromInt(1000)

	summary, err := NewEngine().RunPlan(plan)
	require.NoError(t, err)
	assert.False(t, summary.Drawdown.Exhausted())
	assert.True(t, summary.RequiredExtraMonthly.IsZero())
	assert.True(t, summary.ExtraContributionFeasible)
}

func TestRunPlanRetirementAgeInThePast(t *testing.T) {
	plan := testPlan()
	plan.Assumptions.RetirementAge = 30

	summary, err := NewEngine().RunPlan(plan)
	require.NoError(t, err)
	// Horizon clamps to zero: capital at retirement is just today's balances.
	assert.True(t, summary.YearsToRetirement.IsZero())
	assert.True(t, summary.Total.FinalValue.Equal(plan.Sources[0].StartingBalance))
}

func TestRunPlanNilPlan(t *testing.T) {
	_, err := NewEngine().RunPlan(nil)
	assert.Error(t, err)
}

func TestDeriveEmployerSource(t *testing.T) {
	assumptions := domain.Assumptions{
		PreRetirementReturn: decimal.NewFromFloat(0.08),
		SalaryGrowthRate:    decimal.NewFromFloat(0.055),
	}

	t.Run("derives from salary and match", func(t *testing.T) {
		source, ok := DeriveEmployerSource(domain.Person{
			MonthlySalary:        decimal.NewFromInt(60000),
			EmployerMatchPercent: decimal.NewFromFloat(0.05),
		}, assumptions)
		require.True(t, ok)
		assert.Equal(t, domain.SourceKindDerived, source.Kind)
		assertDecimalWithin(t, decimal.NewFromInt(3000), source.MonthlyContribution, 0.001)
		assert.True(t, source.ContributionEscalation.Equal(assumptions.SalaryGrowthRate))
	})

	t.Run("no source without a match", func(t *testing.T) {
		_, ok := DeriveEmployerSource(domain.Person{
			MonthlySalary: decimal.NewFromInt(60000),
		}, assumptions)
		assert.False(t, ok)
	})

	t.Run("no source without a salary", func(t *testing.T) {
		_, ok := DeriveEmployerSource(domain.Person{
			EmployerMatchPercent: decimal.NewFromFloat(0.05),
		}, assumptions)
		assert.False(t, ok)
	})
}
