package renderer

import (
	"github.com/etnz/fincalc"
)

// Solution is a solved TVM problem, ready to render.
type Solution struct {
	Target    string     `json:"target"`
	Value     string     `json:"value"`
	Warning   string     `json:"warning,omitempty"`
	Registers []Register `json:"registers"`
}

// NewSolution presents regs, where target has just been solved. warning is
// the error returned along with an approximate solution, if any.
func NewSolution(regs fincalc.Registers, target fincalc.Register, warning error, currency string) *Solution {
	s := &Solution{
		Target:    target.String(),
		Value:     formatRegister(target, regs.Get(target), currency),
		Registers: newRegisters(regs, target, true, currency),
	}
	if warning != nil {
		s.Warning = "approximate solution: " + warning.Error()
	}
	return s
}
