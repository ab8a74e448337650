package fincalc

import (
	"fmt"
	"strings"
)

// Register identifies one of the five TVM registers.
type Register int

const (
	N   Register = iota // number of periods
	IYR                 // periodic interest rate, in percent
	PV                  // present value
	PMT                 // periodic payment
	FV                  // future value
)

// AllRegisters lists the registers in keypad order.
var AllRegisters = [...]Register{N, IYR, PV, PMT, FV}

type registerInfo struct {
	name    string
	aliases []string
}

var registerTable = map[Register]registerInfo{
	N:   {"N", []string{"n"}},
	IYR: {"I/YR", []string{"i", "iyr", "i/yr"}},
	PV:  {"PV", []string{"pv"}},
	PMT: {"PMT", []string{"pmt"}},
	FV:  {"FV", []string{"fv"}},
}

func (r Register) String() string {
	if info, ok := registerTable[r]; ok {
		return info.name
	}
	return fmt.Sprintf("Register(%d)", int(r))
}

// ParseRegister returns the register named s. Names are case insensitive,
// "i" and "i/yr" are accepted for IYR.
func ParseRegister(s string) (Register, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for r, info := range registerTable {
		if strings.ToLower(info.name) == s {
			return r, nil
		}
		for _, alias := range info.aliases {
			if alias == s {
				return r, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRegister, s)
}

// Registers holds the five time value of money registers.
// The zero value is a cleared register set.
type Registers struct {
	N   float64 // number of periods
	IYR float64 // periodic rate in percent: 1.5 means 1.5% per period
	PV  float64
	PMT float64
	FV  float64
}

// Get returns the value of register r.
func (t Registers) Get(r Register) float64 {
	switch r {
	case N:
		return t.N
	case IYR:
		return t.IYR
	case PV:
		return t.PV
	case PMT:
		return t.PMT
	case FV:
		return t.FV
	}
	panic("unknown register " + r.String())
}

// With returns a copy of t where register r is set to v.
func (t Registers) With(r Register, v float64) Registers {
	switch r {
	case N:
		t.N = v
	case IYR:
		t.IYR = v
	case PV:
		t.PV = v
	case PMT:
		t.PMT = v
	case FV:
		t.FV = v
	default:
		panic("unknown register " + r.String())
	}
	return t
}

// MarshalJSON writes the registers in keypad order.
func (t Registers) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, r := range AllRegisters {
		w.Append(jsonKey(r), t.Get(r))
	}
	return w.MarshalJSON()
}

func jsonKey(r Register) string {
	if r == IYR {
		return "IYR"
	}
	return r.String()
}
