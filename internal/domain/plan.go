package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Person carries the identity and salary details a plan needs. Salary only
// matters when an employer match is in play; the engine turns it into a
// derived capital source rather than a mutable pseudo-product.
type Person struct {
	Name                 string          `yaml:"name" json:"name"`
	BirthDate            time.Time       `yaml:"birth_date" json:"birth_date"`
	MonthlySalary        decimal.Decimal `yaml:"monthly_salary" json:"monthly_salary"`
	EmployerMatchPercent decimal.Decimal `yaml:"employer_match_percent" json:"employer_match_percent"`
}

// Assumptions are the economic inputs shared by every source in a plan.
// All rates are annual decimal fractions (0.065 = 6.5%).
type Assumptions struct {
	InflationRate        decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	PreRetirementReturn  decimal.Decimal `yaml:"pre_retirement_return" json:"pre_retirement_return"`
	PostRetirementReturn decimal.Decimal `yaml:"post_retirement_return" json:"post_retirement_return"`
	SalaryGrowthRate     decimal.Decimal `yaml:"salary_growth_rate" json:"salary_growth_rate"`
	RetirementAge        int             `yaml:"retirement_age" json:"retirement_age"`
	PlanEndAge           int             `yaml:"plan_end_age" json:"plan_end_age"`
}

// Target states the retirement income goal in today's currency.
type Target struct {
	MonthlyIncomeToday decimal.Decimal `yaml:"monthly_income_today" json:"monthly_income_today"`
	OnceOffCapitalNeed decimal.Decimal `yaml:"once_off_capital_need" json:"once_off_capital_need"`
}

// Plan is a complete projection request: who, what they have, what they
// assume, and what they are aiming for. AsOf fixes the reference date so runs
// are reproducible; when zero the engine uses the current date.
type Plan struct {
	AsOf        time.Time       `yaml:"as_of,omitempty" json:"as_of"`
	Person      Person          `yaml:"person" json:"person"`
	Sources     []CapitalSource `yaml:"capital_sources" json:"capital_sources"`
	Assumptions Assumptions     `yaml:"assumptions" json:"assumptions"`
	Target      Target          `yaml:"target" json:"target"`
}
