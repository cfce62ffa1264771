package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"zero", decimal.Zero, "R0.00"},
		{"small", decimal.NewFromFloat(12.5), "R12.50"},
		{"thousands", decimal.NewFromInt(1234), "R1,234.00"},
		{"millions", decimal.NewFromFloat(1234567.891), "R1,234,567.89"},
		{"negative", decimal.NewFromFloat(-5000.25), "-R5,000.25"},
		{"exact boundary", decimal.NewFromInt(1000000), "R1,000,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.amount))
		})
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "79.4%", FormatPercentage(decimal.NewFromFloat(0.7937)))
	assert.Equal(t, "100.0%", FormatPercentage(decimal.NewFromInt(1)))
	assert.Equal(t, "0.0%", FormatPercentage(decimal.Zero))
	assert.Equal(t, "-2.5%", FormatPercentage(decimal.NewFromFloat(-0.025)))
}
