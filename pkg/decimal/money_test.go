package decimal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m := NewMoney(1234.56)
	assert.Equal(t, "1234.56", m.String())
}

func TestNewMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("99.999")
	require.NoError(t, err)
	assert.Equal(t, "100.00", m.Round().String())

	_, err = NewMoneyFromString("not a number")
	assert.Error(t, err)
}

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoney(100)
	b := NewMoney(40)

	assert.True(t, a.Add(b).Equal(NewMoney(140)))
	assert.True(t, a.Sub(b).Equal(NewMoney(60)))
	assert.True(t, a.Mul(decimal.NewFromFloat(0.5)).Equal(NewMoney(50)))
	assert.True(t, a.Div(decimal.NewFromInt(4)).Equal(NewMoney(25)))
}

func TestMoneyAnnualMonthly(t *testing.T) {
	monthly := NewMoney(9000)
	assert.True(t, monthly.Annual().Equal(NewMoney(108000)))
	assert.True(t, monthly.Annual().Monthly().Equal(monthly))
}

func TestMoneyRound(t *testing.T) {
	m := NewMoney(2.345)
	assert.Equal(t, "2.35", m.Round().String())
	m = NewMoney(-2.345)
	assert.Equal(t, "-2.35", m.Round().String())
}

func TestMoneyClampNonNegative(t *testing.T) {
	assert.True(t, NewMoney(-50).ClampNonNegative().IsZero())
	assert.True(t, NewMoney(50).ClampNonNegative().Equal(NewMoney(50)))
	assert.True(t, Zero().ClampNonNegative().IsZero())
}

func TestMoneyComparisons(t *testing.T) {
	a := NewMoney(10)
	b := NewMoney(20)

	assert.True(t, a.LessThan(b))
	assert.True(t, b.GreaterThan(a))
	assert.True(t, a.LessThanOrEqual(NewMoney(10)))
	assert.True(t, a.GreaterThanOrEqual(NewMoney(10)))
	assert.False(t, a.Equal(b))
}

func TestMoneyMinMax(t *testing.T) {
	a := NewMoney(10)
	b := NewMoney(20)

	assert.True(t, Min(a, b).Equal(a))
	assert.True(t, Max(a, b).Equal(b))
	assert.True(t, Min(a, a).Equal(a))
}

func TestMoneyFormat(t *testing.T) {
	assert.Equal(t, "R1234.50", NewMoney(1234.5).Format())
	assert.Equal(t, "R0.00", Zero().Format())
}
