package fincalc

import (
	"fmt"
	"math"
)

// ConvertRate compounds a periodic rate over a number of periods:
// ((1+percent/100)^periods − 1)·100. A fractional number of periods converts
// to a shorter period.
func ConvertRate(percent, periods float64) (float64, error) {
	if percent <= -100 {
		return 0, fmt.Errorf("%w: rate %v%% is not above -100%%", ErrDomain, percent)
	}
	return checked("rate", math.Expm1(periods*math.Log1p(percent/100))*100)
}

// ToMonthlyRate converts a yearly rate into the equivalent monthly rate.
func ToMonthlyRate(yearlyPercent float64) (float64, error) {
	return ConvertRate(yearlyPercent, 1.0/12)
}

// ToYearlyRate converts a monthly rate into the equivalent yearly rate.
func ToYearlyRate(monthlyPercent float64) (float64, error) {
	return ConvertRate(monthlyPercent, 12)
}
