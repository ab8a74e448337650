package renderer

import (
	"github.com/etnz/fincalc"
	"github.com/shopspring/decimal"
)

// Register is one row of the registers table.
type Register struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Solved bool   `json:"solved,omitempty"`
}

// newRegisters lists the TVM registers formatted for display: N as a plain
// number, I/YR as a percentage, and the cash flows as money in currency.
func newRegisters(regs fincalc.Registers, solved fincalc.Register, hasSolved bool, currency string) []Register {
	rows := make([]Register, 0, len(fincalc.AllRegisters))
	for _, r := range fincalc.AllRegisters {
		rows = append(rows, Register{
			Name:   r.String(),
			Value:  formatRegister(r, regs.Get(r), currency),
			Solved: hasSolved && r == solved,
		})
	}
	return rows
}

func formatRegister(r fincalc.Register, v float64, currency string) string {
	switch r {
	case fincalc.N:
		return fincalc.FormatDecimal(decimal.NewFromFloat(v))
	case fincalc.IYR:
		return fincalc.Percent(v).Precise()
	default:
		return fincalc.M(v, currency).String()
	}
}
