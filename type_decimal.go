package fincalc

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// ParseEntry parses decimal text as typed on the keypad, for instance "-12.5"
// or "1.5e3". Surrounding spaces are ignored.
func ParseEntry(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidOperand, s)
	}
	return d, nil
}

// fromFloat converts a computed value back to a stack entry.
func fromFloat(v float64) (decimal.Decimal, error) {
	v, err := finite(v)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return newDecimal(v), nil
}
