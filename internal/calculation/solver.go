package calculation

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Outcome is what the solver inspects after evaluating a candidate
// contribution or capital amount against a simulation.
type Outcome struct {
	Survived      bool
	EndingBalance decimal.Decimal
}

// Acceptable reports whether the outcome meets the goal: the capital survived
// to the horizon and nothing is owed at the end.
func (o Outcome) Acceptable() bool {
	return o.Survived && !o.EndingBalance.IsNegative()
}

// OutcomeFunc evaluates a candidate amount. Implementations must be
// monotonically non-decreasing in the candidate: more money never makes the
// outcome worse. The solver still terminates on non-monotonic functions, but
// the answer is only a best estimate.
type OutcomeFunc func(candidate decimal.Decimal) Outcome

// ErrNoFeasibleSolution is returned when no candidate within the bracket
// budget produced an acceptable outcome. The accompanying value is the
// solver's best estimate and may be unreliable.
var ErrNoFeasibleSolution = errors.New("no feasible solution found within bracket budget")

const (
	// maxBracketAttempts bounds the geometric expansion of the upper bracket.
	maxBracketAttempts = 28
	// bisectIterations gives sub-cent precision on realistic ranges.
	bisectIterations = 48
)

var (
	defaultUpperBound = decimal.NewFromInt(1_000_000)
	bracketGrowth     = decimal.NewFromFloat(1.5)
)

// SolveMinimum finds the smallest non-negative candidate for which f is
// acceptable, by bracketing and bisecting. lo defaults to zero and hi to a
// generous upper bound when the caller passes non-positive bounds; hi is
// expanded geometrically until it brackets a solution. The result is rounded
// to cents.
func SolveMinimum(f OutcomeFunc, lo, hi decimal.Decimal) (decimal.Decimal, error) {
	if lo.IsNegative() {
		lo = decimal.Zero
	}
	if hi.LessThanOrEqual(lo) {
		hi = defaultUpperBound
	}

	if f(lo).Acceptable() {
		return lo.Round(2), nil
	}

	attempts := 0
	for !f(hi).Acceptable() {
		attempts++
		if attempts > maxBracketAttempts {
			return hi.Round(2), ErrNoFeasibleSolution
		}
		hi = hi.Mul(bracketGrowth)
	}

	for i := 0; i < bisectIterations; i++ {
		mid := lo.Add(hi).Div(two)
		if f(mid).Acceptable() {
			hi = mid
		} else {
			lo = mid
		}
	}

	// Round toward the acceptable side so the returned amount still
	// satisfies the goal when fed back into the simulation.
	return lo.Add(hi).Div(two).RoundCeil(2), nil
}
