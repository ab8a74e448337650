package fincalc

import (
	"fmt"
	"math"
	"strings"
)

// Operator is an RPN operator key.
type Operator int

const (
	Add        Operator = iota // +
	Sub                        // −
	Mul                        // ×
	Div                        // ÷
	Pow                        // y^x
	Reciprocal                 // 1/x
	Sqrt                       // √x
	Swap                       // x⇔y
	RollDown                   // R↓
)

type arity int

const (
	binary  arity = iota // consumes Y and X, pushes one result
	unary                // replaces X
	reorder              // moves entries, no arithmetic
)

type operatorInfo struct {
	symbol  string
	aliases []string
	arity   arity
	binary  func(y, x float64) (float64, error)
	unary   func(x float64) (float64, error)
}

var operators = map[Operator]operatorInfo{
	Add: {symbol: "+", arity: binary, binary: func(y, x float64) (float64, error) { return y + x, nil }},
	Sub: {symbol: "-", aliases: []string{"−"}, arity: binary, binary: func(y, x float64) (float64, error) { return y - x, nil }},
	Mul: {symbol: "×", aliases: []string{"*", "x"}, arity: binary, binary: func(y, x float64) (float64, error) { return y * x, nil }},
	Div: {symbol: "÷", aliases: []string{"/"}, arity: binary, binary: divide},
	Pow: {symbol: "y^x", aliases: []string{"^", "pow"}, arity: binary, binary: power},
	Reciprocal: {symbol: "1/x", aliases: []string{"inv"}, arity: unary, unary: func(x float64) (float64, error) {
		return divide(1, x)
	}},
	Sqrt:     {symbol: "√x", aliases: []string{"sqrt"}, arity: unary, unary: squareRoot},
	Swap:     {symbol: "x⇔y", aliases: []string{"x<>y", "swap"}, arity: reorder},
	RollDown: {symbol: "R↓", aliases: []string{"rdown", "rv", "roll"}, arity: reorder},
}

func divide(y, x float64) (float64, error) {
	if x == 0 {
		return 0, fmt.Errorf("%w: division by zero", ErrDomain)
	}
	return y / x, nil
}

func power(y, x float64) (float64, error) {
	v := math.Pow(y, x)
	if math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %v^%v", ErrDomain, y, x)
	}
	return v, nil
}

func squareRoot(x float64) (float64, error) {
	if x < 0 {
		return 0, fmt.Errorf("%w: square root of %v", ErrDomain, x)
	}
	return math.Sqrt(x), nil
}

func (o Operator) String() string {
	if info, ok := operators[o]; ok {
		return info.symbol
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// ParseOperator returns the operator for a key label such as "+", "÷" or
// "x⇔y". ASCII aliases ("/", "sqrt", "swap", ...) are accepted.
func ParseOperator(s string) (Operator, error) {
	s = strings.TrimSpace(s)
	for op, info := range operators {
		if info.symbol == s {
			return op, nil
		}
		for _, alias := range info.aliases {
			if strings.EqualFold(alias, s) {
				return op, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, s)
}

// Evaluate applies op to the stack and returns the new stack and the value now
// in the display, the new X register.
//
// pending is the entry being typed, "" if none. It is pushed as X before the
// operator runs. Binary operators compute Y op X (Y−X, Y÷X, Y^X), unary
// operators replace X, Swap and RollDown reorder the stack.
//
// When the operation is rejected, for lack of operands or because the result
// is undefined, Evaluate returns the original stack s itself, the display
// unchanged, and an error.
func Evaluate(s Stack, op Operator, pending string) (Stack, string, error) {
	next, err := apply(s, op, pending)
	if err != nil {
		return s, display(s, pending), fmt.Errorf("%v: %w", op, err)
	}
	x, _ := next.Peek()
	return next, x.String(), nil
}

func apply(s Stack, op Operator, pending string) (Stack, error) {
	info, ok := operators[op]
	if !ok {
		return s, ErrUnknownOperator
	}
	if info.arity == reorder && s.Len() == 0 {
		return s, fmt.Errorf("%w: empty stack", ErrInsufficientOperands)
	}

	work := s
	if pending != "" {
		d, err := ParseEntry(pending)
		if err != nil {
			return s, err
		}
		work = work.Push(d)
	}

	switch info.arity {
	case binary:
		if work.Len() < 2 {
			return s, fmt.Errorf("%w: need 2, have %d", ErrInsufficientOperands, work.Len())
		}
		x, rest, _ := work.Pop()
		y, rest, _ := rest.Pop()
		v, err := info.binary(y.InexactFloat64(), x.InexactFloat64())
		if err != nil {
			return s, err
		}
		d, err := fromFloat(v)
		if err != nil {
			return s, err
		}
		return rest.Push(d), nil

	case unary:
		x, rest, ok := work.Pop()
		if !ok {
			return s, fmt.Errorf("%w: need 1, have 0", ErrInsufficientOperands)
		}
		v, err := info.unary(x.InexactFloat64())
		if err != nil {
			return s, err
		}
		d, err := fromFloat(v)
		if err != nil {
			return s, err
		}
		return rest.Push(d), nil

	default:
		if op == Swap {
			return work.Swap(), nil
		}
		return work.Rotate(), nil
	}
}

// display returns what the calculator shows when nothing was computed.
func display(s Stack, pending string) string {
	if pending != "" {
		return pending
	}
	if x, ok := s.Peek(); ok {
		return x.String()
	}
	return ""
}
