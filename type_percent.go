package fincalc

import "fmt"

// Percent is a rate expressed in percent: 1.5 means 1.5%.
type Percent float64

// String formats the rate with two decimals, as in "1.50%".
func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// Precise formats the rate with four decimals, as rates are usually quoted
// with more digits than amounts.
func (p Percent) Precise() string {
	return fmt.Sprintf("%.4f%%", float64(p))
}
