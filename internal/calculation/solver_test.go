package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveMinimumRoundTrip(t *testing.T) {
	// Known closed-form scenario: the monthly contribution that reaches
	// exactly 1,000,000 in 10 years at 8%/year with monthly compounding.
	target := decimal.NewFromInt(1000000)
	rate := decimal.NewFromFloat(0.08)
	years := decimal.NewFromInt(10)

	f := func(candidate decimal.Decimal) Outcome {
		fv := FutureValueAnnuity(candidate, rate, years, TimingEnd)
		return Outcome{
			Survived:      fv.GreaterThanOrEqual(target),
			EndingBalance: fv.Sub(target),
		}
	}

	contribution, err := SolveMinimum(f, decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	// Feeding the solved contribution back must land within 1 currency unit.
	achieved := FutureValueAnnuity(contribution, rate, years, TimingEnd)
	diff := achieved.Sub(target).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.NewFromInt(1)),
		"contribution %s achieves %s, off target by %s", contribution, achieved.StringFixed(2), diff.StringFixed(2))
}

func TestSolveMinimumReturnsLowerBoundWhenAlreadyAcceptable(t *testing.T) {
	f := func(candidate decimal.Decimal) Outcome {
		return Outcome{Survived: true, EndingBalance: candidate}
	}
	result, err := SolveMinimum(f, decimal.Zero, decimal.NewFromInt(1000))
	require.NoError(t, err)
	assert.True(t, result.IsZero(), "zero already satisfies the goal, got %s", result)
}

func TestSolveMinimumExpandsBracket(t *testing.T) {
	// Needs more than the default upper bound; the bracket must stretch.
	threshold := decimal.NewFromInt(3000000)
	f := func(candidate decimal.Decimal) Outcome {
		return Outcome{
			Survived:      candidate.GreaterThanOrEqual(threshold),
			EndingBalance: candidate.Sub(threshold),
		}
	}
	result, err := SolveMinimum(f, decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assertDecimalWithin(t, threshold, result, 1)
}

func TestSolveMinimumInfeasible(t *testing.T) {
	f := func(candidate decimal.Decimal) Outcome {
		return Outcome{Survived: false, EndingBalance: decimal.NewFromInt(-1)}
	}
	result, err := SolveMinimum(f, decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, ErrNoFeasibleSolution)
	// A best estimate is still returned rather than a panic or a hang.
	assert.False(t, result.IsNegative())
}

func TestSolveMinimumTerminatesOnNonMonotonicFunction(t *testing.T) {
	// Pathological oscillating outcome. The answer is only a best estimate,
	// but the solver must finish within its fixed iteration budget.
	calls := 0
	f := func(candidate decimal.Decimal) Outcome {
		calls++
		even := candidate.Round(0).IntPart()%2 == 0
		return Outcome{Survived: even, EndingBalance: candidate}
	}
	_, err := SolveMinimum(f, decimal.Zero, decimal.NewFromInt(1000))
	require.NoError(t, err)
	assert.LessOrEqual(t, calls, maxBracketAttempts+bisectIterations+3)
}

func TestOutcomeAcceptable(t *testing.T) {
	assert.True(t, Outcome{Survived: true, EndingBalance: decimal.Zero}.Acceptable())
	assert.True(t, Outcome{Survived: true, EndingBalance: decimal.NewFromInt(5)}.Acceptable())
	assert.False(t, Outcome{Survived: true, EndingBalance: decimal.NewFromInt(-5)}.Acceptable())
	assert.False(t, Outcome{Survived: false, EndingBalance: decimal.NewFromInt(5)}.Acceptable())
}
