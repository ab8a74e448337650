package keypad

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/fincalc"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// pending returns the entry ready to be parsed: an exponent being typed
// without digits yet is ignored.
func (s *Session) pending() string {
	e := strings.TrimSuffix(s.entry, "-")
	return strings.TrimSuffix(e, "e")
}

// operand returns X: the entry if any, otherwise the top of the stack, along
// with the stack below it.
func (s *Session) operand() (decimal.Decimal, fincalc.Stack, error) {
	if s.entry != "" {
		x, err := fincalc.ParseEntry(s.pending())
		return x, s.stack, err
	}
	x, rest, ok := s.stack.Pop()
	if !ok {
		return decimal.Decimal{}, s.stack, fmt.Errorf("%w: empty stack", fincalc.ErrInsufficientOperands)
	}
	return x, rest, nil
}

func (s *Session) point() error {
	switch {
	case strings.ContainsAny(s.entry, ".e"):
	case s.entry == "":
		s.entry = "0."
	default:
		s.entry += "."
	}
	return nil
}

func (s *Session) exponent() error {
	switch {
	case strings.Contains(s.entry, "e"):
	case s.entry == "":
		s.entry = "1e"
	default:
		s.entry += "e"
	}
	return nil
}

// changeSign negates the entry, or its exponent while it is being typed, or X
// when nothing is typed.
func (s *Session) changeSign() error {
	if s.entry == "" {
		x, rest, ok := s.stack.Pop()
		if ok {
			s.stack = rest.Push(x.Neg())
		}
		return nil
	}
	if mantissa, exp, ok := strings.Cut(s.entry, "e"); ok {
		if strings.HasPrefix(exp, "-") {
			s.entry = mantissa + "e" + exp[1:]
		} else {
			s.entry = mantissa + "e-" + exp
		}
		return nil
	}
	if strings.HasPrefix(s.entry, "-") {
		s.entry = s.entry[1:]
	} else {
		s.entry = "-" + s.entry
	}
	return nil
}

func (s *Session) enter() error {
	if s.entry == "" {
		return nil
	}
	x, err := fincalc.ParseEntry(s.pending())
	if err != nil {
		return err
	}
	s.stack = s.stack.Push(x)
	s.entry = ""
	return nil
}

// clearX clears the entry, or drops X when nothing is typed.
func (s *Session) clearX() error {
	if s.entry != "" {
		s.entry = ""
		return nil
	}
	if _, rest, ok := s.stack.Pop(); ok {
		s.stack = rest
	}
	return nil
}

func (s *Session) operate(op fincalc.Operator) error {
	stack, _, err := fincalc.Evaluate(s.stack, op, s.pending())
	if err != nil {
		return err
	}
	s.stack = stack
	s.entry = ""
	return nil
}

// percent replaces X with Y·X/100 and keeps Y.
func (s *Session) percent() error {
	x, rest, err := s.operand()
	if err != nil {
		return err
	}
	y, ok := rest.Peek()
	if !ok {
		return fmt.Errorf("%%: %w: need 2, have 1", fincalc.ErrInsufficientOperands)
	}
	s.stack = rest.Push(y.Mul(x).Div(hundred))
	s.entry = ""
	return nil
}

func (s *Session) toMonthly() error { return s.convert(fincalc.ToMonthlyRate) }
func (s *Session) toYearly() error  { return s.convert(fincalc.ToYearlyRate) }

// convert replaces X with convert(X).
func (s *Session) convert(convert func(float64) (float64, error)) error {
	x, rest, err := s.operand()
	if err != nil {
		return err
	}
	v, err := convert(x.InexactFloat64())
	if err != nil {
		return err
	}
	s.stack = rest.Push(decimal.NewFromFloat(v))
	s.entry = ""
	return nil
}

// tvm stores the entry in reg, or solves reg when nothing is typed.
func (s *Session) tvm(reg fincalc.Register) error {
	if s.entry != "" {
		x, err := fincalc.ParseEntry(s.pending())
		if err != nil {
			return err
		}
		s.regs = s.regs.With(reg, x.InexactFloat64())
		s.entry = ""
		return nil
	}

	solve := s.regs.Solve
	if !s.ceil {
		solve = s.regs.SolveRaw
	}
	regs, v, err := solve(reg)
	if errors.Is(err, fincalc.ErrNotBracketed) {
		s.logger.Warn("approximate solution", "register", reg, "value", v, "error", err)
	} else if err != nil {
		return err
	}
	s.regs = regs
	s.stack = s.stack.Push(decimal.NewFromFloat(v))
	return nil
}

// storage completes a STO or RCL sequence with the register digit.
func (s *Session) storage(label string) error {
	prefix := s.prefix
	s.prefix = ""
	if !isDigit(label) {
		return fmt.Errorf("%w: %s expects a register digit, got %q", ErrUnknownKey, strings.ToUpper(prefix), label)
	}
	d := int(label[0] - '0')

	stack := s.stack
	if s.entry != "" {
		x, err := fincalc.ParseEntry(s.pending())
		if err != nil {
			return err
		}
		stack = stack.Push(x)
	}

	switch prefix {
	case "sto":
		x, ok := stack.Peek()
		if !ok {
			return fmt.Errorf("STO: %w: empty stack", fincalc.ErrInsufficientOperands)
		}
		s.memory[d] = x
	case "rcl":
		stack = stack.Push(s.memory[d])
	}
	s.stack = stack
	s.entry = ""
	return nil
}
