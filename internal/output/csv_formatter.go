package output

import (
	"bytes"
	"encoding/csv"

	"github.com/finplan/projection-engine/internal/domain"
)

// CSVFormatter exports the accumulation trajectory and drawdown series as CSV
// (one section per phase, one row per period).
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(summary *domain.PlanSummary) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write([]string{"Phase", "Period", "Age", "Balance"}); err != nil {
		return nil, err
	}

	retirementStartYear := summary.RetirementAge - int(summary.YearsToRetirement.Round(0).IntPart())
	for i, balance := range summary.Total.YearlySeries {
		row := []string{
			"accumulation",
			intToString(i + 1),
			intToString(retirementStartYear + i + 1),
			balance.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	for _, point := range summary.Drawdown.MonthlySeries {
		row := []string{
			"drawdown",
			intToString(point.Month),
			point.Age.StringFixed(2),
			point.Balance.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
