package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a register amount string into a decimal.
// It accepts the printed forms used by the report: a leading dollar
// sign, thousands separators, and an optional minus for adjustments
// ("$6,847.50", "$-120.00", "1234.56"). An empty string parses to zero,
// matching how the register prints voided rows.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// FormatAmount renders an amount with exactly two decimal places.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
