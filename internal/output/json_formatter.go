package output

import (
	json "github.com/goccy/go-json"

	"github.com/finplan/projection-engine/internal/domain"
)

// JSONFormatter serializes the plan summary as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(summary *domain.PlanSummary) ([]byte, error) {
	return json.MarshalIndent(summary, "", "  ")
}
