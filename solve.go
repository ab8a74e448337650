package fincalc

import (
	"errors"
	"fmt"
	"math"
)

var solvers = map[Register]func(Registers) (float64, error){
	N:   ComputeN,
	IYR: ComputeIYR,
	PV:  ComputePV,
	PMT: ComputePMT,
	FV:  ComputeFV,
}

// Compute returns the value of target that balances the other four registers.
func Compute(r Registers, target Register) (float64, error) {
	solve, ok := solvers[target]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownRegister, target)
	}
	return solve(r)
}

// periodSlack absorbs floating point noise before rounding N up, so that
// 12.0000000001 periods still count as 12.
const periodSlack = 1e-9

// CeilPeriods rounds a number of periods up to the next whole period: a
// partial final period still requires a full payment.
func CeilPeriods(n float64) float64 {
	return math.Ceil(n - periodSlack)
}

// Solve computes target and returns a copy of the registers with the result
// stored in it, along with the result itself. N is rounded up to a whole
// number of periods.
//
// On error the registers are returned unchanged, except for ErrNotBracketed
// where the approximate rate is stored and returned with the error.
func (r Registers) Solve(target Register) (Registers, float64, error) {
	return r.solve(target, true)
}

// SolveRaw is like Solve but stores N without rounding.
func (r Registers) SolveRaw(target Register) (Registers, float64, error) {
	return r.solve(target, false)
}

func (r Registers) solve(target Register, ceil bool) (Registers, float64, error) {
	v, err := Compute(r, target)
	if err != nil && !errors.Is(err, ErrNotBracketed) {
		return r, 0, err
	}
	if target == N && ceil {
		v = CeilPeriods(v)
	}
	return r.With(target, v), v, err
}
