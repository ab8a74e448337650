// Package keypad drives the fincalc engine one key press at a time.
//
// A Session holds what a calculator keeps between two key presses: the TVM
// registers, the operand stack, the number being typed and ten storage
// registers. Keys are identified by their labels, as printed on the keypad
// (see Layout), or by an ASCII alias ("enter", "chs", "sqrt", ...).
package keypad

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/etnz/fincalc"
	"github.com/shopspring/decimal"
)

// ErrUnknownKey is returned by Press for labels that are not on the keypad.
var ErrUnknownKey = errors.New("unknown key")

// Layout is the keypad, row by row.
var Layout = [][]string{
	{"N", "i", "PV", "PMT", "FV"},
	{"x⇔y", "CLx", "R↓", "%", "→i%mo"},
	{"y^x", "1/x", "√x", "CHS", "→i%yr"},
	{"EEX", "ENTER", "7", "8", "9"},
	{"STO", "RCL", "4", "5", "6"},
	{"+", "-", "1", "2", "3"},
	{"÷", "×", "0", ".", "RESET"},
}

// Session is a calculator session. The zero value is not usable, use New.
// A Session is not safe for concurrent use.
type Session struct {
	regs   fincalc.Registers
	stack  fincalc.Stack
	entry  string // number being typed, "" when none
	memory [10]decimal.Decimal
	prefix string // "sto" or "rcl" while waiting for the register digit
	failed bool   // the last key failed
	ceil   bool   // round computed N up
	logger *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger traces key presses and approximations on l.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithRawPeriods keeps computed N unrounded instead of rounding it up to a
// whole number of periods.
func WithRawPeriods() Option {
	return func(s *Session) { s.ceil = false }
}

// New returns a cleared session.
func New(opts ...Option) *Session {
	s := &Session{ceil: true, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Registers returns the TVM registers.
func (s *Session) Registers() fincalc.Registers { return s.regs }

// Stack returns the operand stack.
func (s *Session) Stack() fincalc.Stack { return s.stack }

// Entry returns the number being typed, "" if none.
func (s *Session) Entry() string { return s.entry }

// Memory returns storage register d.
func (s *Session) Memory(d int) decimal.Decimal { return s.memory[d] }

// Failed reports whether the last key press failed.
func (s *Session) Failed() bool { return s.failed }

// Display returns what the calculator shows: the entry as typed, otherwise
// the X register formatted by fincalc.FormatDecimal, and "Error" right after
// a failed key.
func (s *Session) Display() string {
	switch {
	case s.failed:
		return fincalc.ErrorDisplay
	case s.entry != "":
		return s.entry
	}
	if x, ok := s.stack.Peek(); ok {
		return fincalc.FormatDecimal(x)
	}
	return fincalc.FormatDisplay("")
}

// Reset clears registers, stack, entry and storage registers.
func (s *Session) Reset() {
	*s = Session{ceil: s.ceil, logger: s.logger}
}

// Press applies the key labelled label.
// On error the registers, the stack and the entry are unchanged, a pending
// STO or RCL is cancelled, and the display shows "Error" until the next key.
func (s *Session) Press(label string) error {
	label = strings.TrimSpace(label)
	err := s.press(label)
	s.failed = err != nil
	if err != nil {
		s.logger.Debug("key failed", "key", label, "error", err)
	} else {
		s.logger.Debug("key", "key", label, "display", s.Display(), "depth", s.stack.Len())
	}
	return err
}

// PressAll presses keys in order and stops at the first failure.
func (s *Session) PressAll(labels ...string) error {
	for _, label := range labels {
		if err := s.Press(label); err != nil {
			return err
		}
	}
	return nil
}

// Type replaces the entry with a whole number, as if typed key by key. An
// entry already being typed is entered first. After STO or RCL, number is
// the register digit that completes the sequence.
func (s *Session) Type(number string) error {
	if s.prefix != "" {
		return s.Press(number)
	}
	d, err := fincalc.ParseEntry(number)
	if err != nil {
		s.failed = true
		return err
	}
	if s.entry != "" {
		if err := s.Press("ENTER"); err != nil {
			return err
		}
	}
	s.entry = d.String()
	s.failed = false
	return nil
}

var controls = map[string]func(*Session) error{
	".":      (*Session).point,
	"eex":    (*Session).exponent,
	"chs":    (*Session).changeSign,
	"enter":  (*Session).enter,
	"clx":    (*Session).clearX,
	"%":      (*Session).percent,
	"→i%mo":  (*Session).toMonthly,
	"->i%mo": (*Session).toMonthly,
	"i%mo":   (*Session).toMonthly,
	"→i%yr":  (*Session).toYearly,
	"->i%yr": (*Session).toYearly,
	"i%yr":   (*Session).toYearly,
	"sto":    func(s *Session) error { s.prefix = "sto"; return nil },
	"rcl":    func(s *Session) error { s.prefix = "rcl"; return nil },
	"reset":  func(s *Session) error { s.Reset(); return nil },
}

func (s *Session) press(label string) error {
	if s.prefix != "" {
		return s.storage(label)
	}
	if isDigit(label) {
		s.entry += label
		return nil
	}
	if control, ok := controls[strings.ToLower(label)]; ok {
		return control(s)
	}
	if reg, err := fincalc.ParseRegister(label); err == nil {
		return s.tvm(reg)
	}
	if op, err := fincalc.ParseOperator(label); err == nil {
		return s.operate(op)
	}
	return fmt.Errorf("%w: %q", ErrUnknownKey, label)
}

func isDigit(label string) bool {
	return len(label) == 1 && label[0] >= '0' && label[0] <= '9'
}
