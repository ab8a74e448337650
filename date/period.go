package date

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Period is a compounding or payment period.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// ParsePeriod parses a period name such as "monthly", or a short form such as
// "mo" or "q". Case is ignored.
func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(p)
	switch p {
	case "daily", "day", "d":
		return Daily, nil
	case "weekly", "week", "w":
		return Weekly, nil
	case "monthly", "month", "mo", "m":
		return Monthly, nil
	case "quarterly", "quarter", "q":
		return Quarterly, nil
	case "yearly", "year", "yr", "y":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown period %s", p)
	}
}

// PerYear returns how many periods p fit in a year.
func (p Period) PerYear() float64 {
	switch p {
	case Daily:
		return 365
	case Weekly:
		return 52
	case Monthly:
		return 12
	case Quarterly:
		return 4
	case Yearly:
		return 1
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// daysPerMonth is the average length of a month.
const daysPerMonth = 30.44

// MonthsBetween returns the number of months between a and b: whole calendar
// months plus the remaining days counted in average months of 30.44 days,
// rounded to two decimals. The order of a and b does not matter.
func MonthsBetween(a, b Date) float64 {
	if a.After(b) {
		a, b = b, a
	}
	months := float64((b.y-a.y)*12 + int(b.m) - int(a.m))
	months += float64(b.d-a.d) / daysPerMonth
	return round2(months)
}

// DaysBetween returns the number of days between a and b, always positive.
func DaysBetween(a, b Date) int {
	if a.After(b) {
		a, b = b, a
	}
	return int(b.time().Sub(a.time()).Hours() / 24)
}

// Between returns the number of periods p between a and b, rounded to two
// decimals. Daily and weekly periods count actual days, longer periods are
// derived from MonthsBetween.
func Between(a, b Date, p Period) float64 {
	switch p {
	case Daily:
		return float64(DaysBetween(a, b))
	case Weekly:
		return round2(float64(DaysBetween(a, b)) / 7)
	default:
		return round2(MonthsBetween(a, b) * p.PerYear() / 12)
	}
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
