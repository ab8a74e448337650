package fincalc

import (
	"fmt"
	"math"
)

// Each Compute function solves the cash-flow identity
//
//	PV·A + PMT·(A−1)/i + FV = 0    with i = IYR/100 and A = (1+i)^N
//	PV + PMT·N + FV = 0            when i = 0
//
// for its target register. The input value of the target register is
// ignored. Results carry the cash-flow sign: a positive PV produces negative
// PMT and FV.

// compound returns A = (1+i)^N and A−1, the latter computed directly so that
// it keeps its precision for rates close to zero.
func compound(n, i float64) (a, am1 float64) {
	am1 = math.Expm1(n * math.Log1p(i))
	return am1 + 1, am1
}

// growth returns the periodic rate i, the compound factor A = (1+i)^N and
// A−1. A rate too small to compound over N periods is treated as zero.
func growth(n, iyr float64) (i, a, am1 float64, err error) {
	if iyr <= -100 {
		return 0, 0, 0, fmt.Errorf("%w: rate %v%% is not above -100%%", ErrDomain, iyr)
	}
	i = iyr / 100
	if i == 0 {
		return 0, 1, 0, nil
	}
	a, am1 = compound(n, i)
	if am1 == 0 {
		return 0, 1, 0, nil
	}
	if _, err := finite(am1); err != nil {
		return 0, 0, 0, err
	}
	return i, a, am1, nil
}

// ComputeFV returns the future value.
func ComputeFV(r Registers) (float64, error) {
	i, a, am1, err := growth(r.N, r.IYR)
	if err != nil {
		return 0, fmt.Errorf("FV: %w", err)
	}
	var fv float64
	if i == 0 {
		fv = -(r.PV + r.PMT*r.N)
	} else {
		fv = -(r.PV*a + r.PMT*am1/i)
	}
	return checked("FV", fv)
}

// ComputePV returns the present value.
func ComputePV(r Registers) (float64, error) {
	i, a, am1, err := growth(r.N, r.IYR)
	if err != nil {
		return 0, fmt.Errorf("PV: %w", err)
	}
	var pv float64
	if i == 0 {
		pv = -(r.PMT*r.N + r.FV)
	} else {
		pv = -(r.PMT*am1/i + r.FV) / a
	}
	return checked("PV", pv)
}

// ComputePMT returns the periodic payment. It fails with ErrNoSolution when N
// is zero.
func ComputePMT(r Registers) (float64, error) {
	if r.N == 0 {
		return 0, fmt.Errorf("PMT: %w: no period to pay", ErrNoSolution)
	}
	i, a, am1, err := growth(r.N, r.IYR)
	if err != nil {
		return 0, fmt.Errorf("PMT: %w", err)
	}
	var pmt float64
	if i == 0 {
		pmt = -(r.PV + r.FV) / r.N
	} else {
		pmt = -(r.PV*a + r.FV) * i / am1
	}
	return checked("PMT", pmt)
}

// ComputeN returns the number of periods, not rounded.
//
// With interest, (1+i)^N is isolated as X = (PMT/i − FV) / (PV + PMT/i).
// ErrNoSolution is returned when the denominator is zero or X is not
// positive, and without interest when PMT is zero.
func ComputeN(r Registers) (float64, error) {
	if r.IYR <= -100 {
		return 0, fmt.Errorf("N: %w: rate %v%% is not above -100%%", ErrDomain, r.IYR)
	}
	i := r.IYR / 100
	if i == 0 {
		if r.PMT == 0 {
			return 0, fmt.Errorf("N: %w: no payment and no interest", ErrNoSolution)
		}
		return checked("N", -(r.PV+r.FV)/r.PMT)
	}
	annuity := r.PMT / i
	den := r.PV + annuity
	if den == 0 {
		return 0, fmt.Errorf("N: %w: PV balances the payments", ErrNoSolution)
	}
	x := (annuity - r.FV) / den
	if x <= 0 {
		return 0, fmt.Errorf("N: %w: FV is never reached", ErrNoSolution)
	}
	return checked("N", math.Log(x)/math.Log1p(i))
}

func checked(name string, v float64) (float64, error) {
	v, err := finite(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}
