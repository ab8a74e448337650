package fincalc

import "github.com/shopspring/decimal"

// ErrorDisplay is shown instead of a value after a failed operation.
const ErrorDisplay = "Error"

// FormatDisplay formats a computed value for the calculator display: whole
// numbers are shown as is, other values with two decimals, and nothing at all
// as "0.00". Text that is not a number is shown as ErrorDisplay.
func FormatDisplay(value string) string {
	if value == "" {
		return "0.00"
	}
	d, err := ParseEntry(value)
	if err != nil {
		return ErrorDisplay
	}
	return FormatDecimal(d)
}

// FormatDecimal is FormatDisplay for a parsed value.
func FormatDecimal(d decimal.Decimal) string {
	if d.IsInteger() {
		return d.String()
	}
	return d.StringFixed(2)
}
