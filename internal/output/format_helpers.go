package output

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes formatted money amounts in reports.
const CurrencySymbol = "R"

// FormatCurrency formats a decimal as currency with thousands separators and
// 2 decimals. Kept here so it can be reused by multiple formatters and unit
// tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(CurrencySymbol)
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// FormatPercentage formats a decimal fraction as a percentage with 1 decimal.
func FormatPercentage(fraction decimal.Decimal) string {
	return fraction.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}

func intToString(v int) string {
	return strconv.Itoa(v)
}
