package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/finplan/projection-engine/internal/domain"
)

// InputParser handles parsing of plan input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &plan, nil
}

// ValidatePlan validates the loaded plan
func (ip *InputParser) ValidatePlan(plan *domain.Plan) error {
	if err := ip.validatePerson(&plan.Person); err != nil {
		return fmt.Errorf("person validation failed: %w", err)
	}

	if len(plan.Sources) == 0 {
		return fmt.Errorf("no capital sources provided")
	}
	for i, source := range plan.Sources {
		if err := ip.validateSource(&source); err != nil {
			return fmt.Errorf("capital source %d (%s) validation failed: %w", i, source.Name, err)
		}
	}

	if err := ip.validateAssumptions(&plan.Assumptions); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}

	if err := ip.validateTarget(&plan.Target); err != nil {
		return fmt.Errorf("target validation failed: %w", err)
	}

	return nil
}

// validatePerson validates the plan's person block
func (ip *InputParser) validatePerson(person *domain.Person) error {
	if person.Name == "" {
		return fmt.Errorf("name is required")
	}
	if person.BirthDate.IsZero() {
		return fmt.Errorf("birth date is required")
	}
	if person.MonthlySalary.IsNegative() {
		return fmt.Errorf("monthly salary cannot be negative")
	}
	if person.EmployerMatchPercent.IsNegative() || person.EmployerMatchPercent.GreaterThan(decimal.NewFromFloat(1.0)) {
		return fmt.Errorf("employer match percent must be between 0 and 1")
	}
	return nil
}

// validateSource validates a single capital source
func (ip *InputParser) validateSource(source *domain.CapitalSource) error {
	if source.Name == "" {
		return fmt.Errorf("source name is required")
	}
	if source.Kind != "" && source.Kind != domain.SourceKindUserEntered && source.Kind != domain.SourceKindDerived {
		return fmt.Errorf("source kind must be %q or %q", domain.SourceKindUserEntered, domain.SourceKindDerived)
	}
	if source.StartingBalance.IsNegative() {
		return fmt.Errorf("starting balance cannot be negative")
	}
	if source.MonthlyContribution.IsNegative() {
		return fmt.Errorf("monthly contribution cannot be negative")
	}
	if source.FeeRate.IsNegative() {
		return fmt.Errorf("fee rate cannot be negative")
	}
	if source.GrowthRate.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return fmt.Errorf("growth rate cannot be -100%% or lower")
	}
	if source.ContributionEscalation.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return fmt.Errorf("contribution escalation cannot be -100%% or lower")
	}
	return nil
}

// validateAssumptions validates the plan's economic assumptions
func (ip *InputParser) validateAssumptions(assumptions *domain.Assumptions) error {
	if assumptions.InflationRate.LessThan(decimal.NewFromFloat(-0.10)) || assumptions.InflationRate.GreaterThan(decimal.NewFromFloat(0.20)) {
		return fmt.Errorf("inflation rate must be between -10%% and 20%%")
	}
	if assumptions.PreRetirementReturn.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return fmt.Errorf("pre-retirement return cannot be -100%% or lower")
	}
	if assumptions.PostRetirementReturn.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return fmt.Errorf("post-retirement return cannot be -100%% or lower")
	}
	if assumptions.RetirementAge <= 0 || assumptions.RetirementAge > 100 {
		return fmt.Errorf("retirement age must be between 1 and 100")
	}
	if assumptions.PlanEndAge <= assumptions.RetirementAge {
		return fmt.Errorf("plan end age must be after retirement age")
	}
	if assumptions.PlanEndAge > 120 {
		return fmt.Errorf("plan end age must be 120 or lower")
	}
	return nil
}

// validateTarget validates the income target
func (ip *InputParser) validateTarget(target *domain.Target) error {
	if target.MonthlyIncomeToday.IsNegative() {
		return fmt.Errorf("monthly income target cannot be negative")
	}
	if target.OnceOffCapitalNeed.IsNegative() {
		return fmt.Errorf("once-off capital need cannot be negative")
	}
	return nil
}

// CreateExamplePlan creates an example plan suitable for `finplan example-config`
func (ip *InputParser) CreateExamplePlan() *domain.Plan {
	birthDate, _ := time.Parse("2006-01-02", "1985-04-12")
	asOf, _ := time.Parse("2006-01-02", "2026-01-01")

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
				Kind:                   domain.SourceKindUserEntered,
				StartingBalance:        decimal.NewFromInt(500000),
				MonthlyContribution:    decimal.NewFromInt(9000),
				ContributionEscalation: decimal.NewFromFloat(0.06),
				GrowthRate:             decimal.NewFromFloat(0.085),
				FeeRate:                decimal.NewFromFloat(0.005),
			},
			{
				Name:                   "tax-free savings",
				Kind:                   domain.SourceKindUserEntered,
				StartingBalance:        decimal.NewFromInt(120000),
				MonthlyContribution:    decimal.NewFromInt(3000),
				ContributionEscalation: decimal.Zero,
				GrowthRate:             decimal.NewFromFloat(0.07),
				FeeRate:                decimal.NewFromFloat(0.0025),
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
