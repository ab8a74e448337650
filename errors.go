package fincalc

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoSolution is returned when the inputs admit no solution for the
	// requested register, for instance N when the payments never reach FV.
	ErrNoSolution = errors.New("no solution")
	// ErrDomain is returned for mathematically undefined operations.
	ErrDomain = errors.New("math domain error")
	// ErrNonFinite is returned when a computation overflows or yields NaN.
	ErrNonFinite = errors.New("non-finite result")
	// ErrNotBracketed is returned by ComputeIYR when no sign change could be
	// found. The value returned with it is the best approximation found.
	ErrNotBracketed = errors.New("rate search did not bracket a root")

	ErrInsufficientOperands = errors.New("insufficient operands")
	ErrInvalidOperand       = errors.New("invalid operand")
	ErrUnknownOperator      = errors.New("unknown operator")
	ErrUnknownRegister      = errors.New("unknown register")
)

// finite returns v or ErrNonFinite.
func finite(v float64) (float64, error) {
	if !isFinite(v) {
		return 0, fmt.Errorf("%w: %v", ErrNonFinite, v)
	}
	return v, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
