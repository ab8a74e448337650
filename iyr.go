package fincalc

import (
	"fmt"
	"math"
)

// Rate search parameters.
const (
	minRate      = -0.9999 // a rate cannot reach -100%
	maxRate      = 1.0
	maxWidenings = 32
	maxBisection = 100
	rateEpsilon  = 1e-10
)

// balance evaluates the cash-flow identity at the periodic rate i.
// At i = 0 the payment factor ((1+i)^N−1)/i is replaced by its limit N.
func balance(r Registers, i float64) float64 {
	if i == 0 {
		return r.PV + r.PMT*r.N + r.FV
	}
	a, am1 := compound(r.N, i)
	return r.PV*a + r.PMT*am1/i + r.FV
}

// ComputeIYR returns the periodic interest rate in percent.
//
// There is no closed form, the rate is found by bisection over
// [-99.99%, 100%]. A bound where the balance overflows, as happens over long
// horizons, is first moved halfway to zero until the balance is finite. The
// upper bound is then doubled until the balance changes sign. If it never
// does, the bisection still runs and its result is returned together with
// ErrNotBracketed: it is the best approximation available.
func ComputeIYR(r Registers) (float64, error) {
	if r.N == 0 {
		return 0, fmt.Errorf("I/YR: %w: no period to earn interest", ErrNoSolution)
	}

	lo, hi := minRate, maxRate
	flo, fhi := balance(r, lo), balance(r, hi)
	for k := 0; !isFinite(flo) && k < maxBisection; k++ {
		lo /= 2
		flo = balance(r, lo)
	}
	for k := 0; !isFinite(fhi) && k < maxBisection; k++ {
		hi /= 2
		fhi = balance(r, hi)
	}
	if !isFinite(flo) || !isFinite(fhi) {
		return 0, fmt.Errorf("I/YR: %w: no rate gives a finite balance", ErrNonFinite)
	}

	bracketed := brackets(flo, fhi)
	for k := 0; !bracketed && k < maxWidenings; k++ {
		f := balance(r, 2*hi)
		if !isFinite(f) {
			break
		}
		hi, fhi = 2*hi, f
		bracketed = brackets(flo, fhi)
	}

	increasing := fhi > flo
	i := (lo + hi) / 2
	for k := 0; k < maxBisection; k++ {
		i = (lo + hi) / 2
		f := balance(r, i)
		if math.Abs(f) < rateEpsilon {
			break
		}
		if (f > 0) == increasing {
			hi = i
		} else {
			lo = i
		}
	}

	iyr, err := checked("I/YR", i*100)
	if err != nil {
		return 0, err
	}
	if !bracketed {
		return iyr, fmt.Errorf("I/YR: %w: best approximation is %v", ErrNotBracketed, iyr)
	}
	return iyr, nil
}

// brackets reports whether a root lies between two balances.
func brackets(a, b float64) bool {
	return a == 0 || b == 0 || (a < 0) != (b < 0)
}
