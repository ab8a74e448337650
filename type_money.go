package fincalc

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a signed cash flow in a given currency, used to present PV, PMT and
// FV. An empty currency formats as a plain number with two decimals.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns the cash flow v in currency cur.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value.
func (m Money) String() string {
	if m.cur == "" {
		return m.value.StringFixed(2)
	}
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}
