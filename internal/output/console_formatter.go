package output

import (
	"bytes"
	"fmt"

	"github.com/finplan/projection-engine/internal/domain"
)

// ConsoleFormatter renders a concise plan summary for terminal display.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(summary *domain.PlanSummary) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "PROJECTION SUMMARY: %s\n", summary.PersonName)
	fmt.Fprintln(&buf, "========================================")
	fmt.Fprintf(&buf, "As of:              %s\n", summary.AsOf.Format("2006-01-02"))
	fmt.Fprintf(&buf, "Current age:        %s\n", summary.CurrentAge.StringFixed(1))
	fmt.Fprintf(&buf, "Retirement age:     %d (in %s years)\n", summary.RetirementAge, summary.YearsToRetirement.StringFixed(1))
	fmt.Fprintf(&buf, "Plan end age:       %d\n", summary.PlanEndAge)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "CAPITAL AT RETIREMENT")
	for _, sr := range summary.Sources {
		label := sr.Name
		if sr.Kind == domain.SourceKindDerived {
			label += " (derived)"
		}
		fmt.Fprintf(&buf, "  %-28s %s\n", label, FormatCurrency(sr.Result.FinalValue))
	}
	fmt.Fprintf(&buf, "  %-28s %s\n", "TOTAL", FormatCurrency(summary.Total.FinalValue))
	fmt.Fprintf(&buf, "  %-28s %s\n", "in today's money", FormatCurrency(summary.ProjectedCapitalToday))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "FUNDING")
	fmt.Fprintf(&buf, "  Required capital:   %s\n", FormatCurrency(summary.Funding.RequiredCapital))
	fmt.Fprintf(&buf, "  Projected capital:  %s\n", FormatCurrency(summary.Funding.ProjectedCapital))
	fmt.Fprintf(&buf, "  Funded ratio:       %s (%s)\n", FormatPercentage(summary.Funding.FundedRatio), summary.Funding.Status)
	if summary.Funding.Shortfall.IsPositive() {
		fmt.Fprintf(&buf, "  Shortfall:          %s\n", FormatCurrency(summary.Funding.Shortfall))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "DRAWDOWN")
	if summary.Drawdown.Exhausted() {
		point := summary.Drawdown.MonthlySeries[*summary.Drawdown.ExhaustionMonth-1]
		fmt.Fprintf(&buf, "  Capital runs out at age %s (month %d)\n", point.Age.StringFixed(1), point.Month)
		if summary.ExtraContributionFeasible {
			fmt.Fprintf(&buf, "  Extra monthly contribution needed: %s\n", FormatCurrency(summary.RequiredExtraMonthly))
		} else {
			fmt.Fprintln(&buf, "  No feasible top-up contribution found; outcome may be unreliable")
		}
	} else {
		fmt.Fprintf(&buf, "  Capital lasts to age %d\n", summary.PlanEndAge)
		fmt.Fprintf(&buf, "  Ending balance:     %s (%s in today's money)\n",
			FormatCurrency(summary.Drawdown.EndingBalance), FormatCurrency(summary.Drawdown.EndingBalanceReal))
	}

	return buf.Bytes(), nil
}
