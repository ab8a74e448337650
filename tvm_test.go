package fincalc

import (
	"errors"
	"math"
	"testing"
)

func TestCompute_ReferenceScenarios(t *testing.T) {
	tests := []struct {
		name   string
		regs   Registers
		target Register
		want   float64
	}{
		{
			name:   "FV of savings plan",
			regs:   Registers{N: 12, IYR: 1, PV: -1000, PMT: -500},
			target: FV,
			want:   7468.08,
		},
		{
			name:   "PV of a target amount",
			regs:   Registers{N: 12, IYR: 1, PMT: -500, FV: 10000},
			target: PV,
			want:   -3246.95,
		},
		{
			name:   "PMT of a loan",
			regs:   Registers{N: 12, IYR: 1, PV: 2000},
			target: PMT,
			want:   -177.70,
		},
		{
			name:   "N unrounded",
			regs:   Registers{IYR: 1, PV: -1000, PMT: -100, FV: 5000},
			target: N,
			want:   31.17,
		},
		{
			name:   "IYR of a savings plan",
			regs:   Registers{N: 12, PV: -1000, PMT: -100, FV: 5000},
			target: IYR,
			want:   9.40,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.regs, tt.target)
			if err != nil {
				t.Fatalf("Compute(%v) returned unexpected error: %v", tt.target, err)
			}
			assertNear(t, tt.target.String(), got, tt.want, 0.01)
		})
	}
}

func TestCompute_SignConvention(t *testing.T) {
	// Money received now (positive PV) must be paid back (negative PMT, FV).
	pmt, err := ComputePMT(Registers{N: 12, IYR: 1, PV: 2000})
	if err != nil {
		t.Fatal(err)
	}
	if pmt >= 0 {
		t.Errorf("ComputePMT() = %v, want a negative payment", pmt)
	}

	fv, err := ComputeFV(Registers{N: 10, IYR: 5, PV: 1000})
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, "FV", fv, -1628.89, 0.01)

	pv, err := ComputePV(Registers{N: 10, IYR: 5, FV: 1628.89})
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, "PV", pv, -1000, 0.01)
}

func TestCompute_RoundTrip(t *testing.T) {
	tests := []Registers{
		{N: 12, IYR: 1, PV: -1000, PMT: -500},
		{N: 360, IYR: 0.5, PV: 250000, PMT: -1498.88},
		{N: 5, IYR: -3, PV: 100, PMT: 10},
		{N: 24, IYR: 0, PV: -50, PMT: -20},
		{N: 7.5, IYR: 12, PV: 0, PMT: -1},
	}
	for _, regs := range tests {
		fv, err := ComputeFV(regs)
		if err != nil {
			t.Fatalf("ComputeFV(%+v) returned unexpected error: %v", regs, err)
		}
		regs.FV = fv
		pv, err := ComputePV(regs)
		if err != nil {
			t.Fatalf("ComputePV(%+v) returned unexpected error: %v", regs, err)
		}
		assertNear(t, "PV", pv, regs.PV, 1e-6*math.Max(1, math.Abs(regs.PV)))

		pmt, err := ComputePMT(regs)
		if err != nil {
			t.Fatalf("ComputePMT(%+v) returned unexpected error: %v", regs, err)
		}
		assertNear(t, "PMT", pmt, regs.PMT, 1e-6*math.Max(1, math.Abs(regs.PMT)))
	}
}

func TestCompute_ZeroRate(t *testing.T) {
	regs := Registers{N: 10, IYR: 0, PV: -1000, PMT: -100, FV: 2000}

	fv, err := ComputeFV(regs)
	if err != nil || fv != 2000 {
		t.Errorf("ComputeFV() = %v, %v, want 2000", fv, err)
	}
	pv, err := ComputePV(regs)
	if err != nil || pv != -1000 {
		t.Errorf("ComputePV() = %v, %v, want -1000", pv, err)
	}
	pmt, err := ComputePMT(regs)
	if err != nil || pmt != -100 {
		t.Errorf("ComputePMT() = %v, %v, want -100", pmt, err)
	}
	n, err := ComputeN(regs)
	if err != nil || n != 10 {
		t.Errorf("ComputeN() = %v, %v, want 10", n, err)
	}
	iyr, err := ComputeIYR(regs)
	if err != nil {
		t.Fatalf("ComputeIYR() returned unexpected error: %v", err)
	}
	assertNear(t, "IYR", iyr, 0, 1e-6)
}

func TestCompute_Failures(t *testing.T) {
	tests := []struct {
		name    string
		regs    Registers
		target  Register
		wantErr error
	}{
		{"PMT without periods", Registers{N: 0, IYR: 1, PV: 100}, PMT, ErrNoSolution},
		{"PMT without periods nor rate", Registers{N: 0, IYR: 0, PV: 100}, PMT, ErrNoSolution},
		{"N without payment nor rate", Registers{IYR: 0, PV: -100, FV: 200}, N, ErrNoSolution},
		{"N never reached", Registers{IYR: 1, PV: 1000, PMT: 100, FV: 15000}, N, ErrNoSolution},
		{"N with balanced payments", Registers{IYR: 1, PV: -10000, PMT: 100, FV: 5000}, N, ErrNoSolution},
		{"IYR without periods", Registers{N: 0, PV: -100, FV: 200}, IYR, ErrNoSolution},
		{"FV with total loss rate", Registers{N: 1, IYR: -100, PV: 100}, FV, ErrDomain},
		{"PV below total loss rate", Registers{N: 1, IYR: -150, FV: 100}, PV, ErrDomain},
		{"N below total loss rate", Registers{IYR: -100, PV: -1, FV: 1}, N, ErrDomain},
		{"FV overflow", Registers{N: 1e6, IYR: 100, PV: 1}, FV, ErrNonFinite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.regs, tt.target)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Compute(%v) error = %v, want %v", tt.target, err, tt.wantErr)
			}
		})
	}
}

func TestComputeN_Annuity(t *testing.T) {
	// A 2000 loan at 1% repaid 177.70 a month takes 12 months.
	n, err := ComputeN(Registers{IYR: 1, PV: 2000, PMT: -177.6975773566833})
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, "N", n, 12, 1e-9)
	if got := CeilPeriods(n); got != 12 {
		t.Errorf("CeilPeriods(%v) = %v, want 12", n, got)
	}
}

func TestComputeIYR_Loan(t *testing.T) {
	iyr, err := ComputeIYR(Registers{N: 12, PV: 2000, PMT: -177.6975773566833})
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, "IYR", iyr, 1, 1e-6)
}

func TestComputeIYR_NotBracketed(t *testing.T) {
	// Only inflows: no rate can balance them.
	iyr, err := ComputeIYR(Registers{N: 10, PV: 1000, PMT: 100, FV: 1000})
	if !errors.Is(err, ErrNotBracketed) {
		t.Fatalf("ComputeIYR() error = %v, want %v", err, ErrNotBracketed)
	}
	if math.IsNaN(iyr) || math.IsInf(iyr, 0) {
		t.Errorf("ComputeIYR() = %v, want a finite approximation", iyr)
	}
}

func TestComputeIYR_WidensBracket(t *testing.T) {
	// 300% per period: out of the initial [-99.99%, 100%] bracket.
	iyr, err := ComputeIYR(Registers{N: 2, PV: -1, FV: 16})
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, "IYR", iyr, 300, 1e-6)
}

func TestCompute_TinyRate(t *testing.T) {
	// Rates close to zero behave like a zero rate, payments included.
	for _, iyr := range []float64{1e-9, 1e-12, 1e-15} {
		regs := Registers{N: 360, IYR: iyr, PV: -100000, PMT: -1000}
		fv, err := ComputeFV(regs)
		if err != nil {
			t.Fatalf("ComputeFV(IYR=%v) error: %v", iyr, err)
		}
		assertNear(t, "FV", fv, 460000, 1e-2)

		regs.FV = 460000
		pmt, err := ComputePMT(regs)
		if err != nil {
			t.Fatalf("ComputePMT(IYR=%v) error: %v", iyr, err)
		}
		assertNear(t, "PMT", pmt, -1000, 1e-6)

		pv, err := ComputePV(regs)
		if err != nil {
			t.Fatalf("ComputePV(IYR=%v) error: %v", iyr, err)
		}
		assertNear(t, "PV", pv, -100000, 1e-2)
	}
}

func TestComputeIYR_LongHorizon(t *testing.T) {
	daily := 100 * (math.Pow(1.5, 1.0/3650) - 1)
	tests := []struct {
		name string
		regs Registers
		want float64
	}{
		{"daily loan", Registers{N: 3650, PV: 1000, FV: -1500}, daily},
		{"daily savings", Registers{N: 3650, PV: -1000, FV: 1500}, daily},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iyr, err := ComputeIYR(tt.regs)
			if err != nil {
				t.Fatalf("ComputeIYR() error: %v", err)
			}
			assertNear(t, "IYR", iyr, tt.want, 1e-9)
		})
	}

	t.Run("century mortgage", func(t *testing.T) {
		regs := Registers{N: 1200, PV: 100000, PMT: -300}
		iyr, err := ComputeIYR(regs)
		if err != nil {
			t.Fatalf("ComputeIYR() error: %v", err)
		}
		if iyr <= 0 || iyr >= 0.3 {
			t.Fatalf("ComputeIYR() = %v, want between 0 and 0.3", iyr)
		}
		regs.IYR = iyr
		pmt, err := ComputePMT(regs)
		if err != nil {
			t.Fatal(err)
		}
		assertNear(t, "PMT at the solved rate", pmt, -300, 1e-4)
	})
}
