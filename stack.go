package fincalc

import (
	"strings"

	"github.com/shopspring/decimal"
)

type node struct {
	value decimal.Decimal
	next  *node
}

// Stack is an immutable operand stack. Every operation returns a new Stack
// sharing the untouched entries with its receiver.
//
// The zero value is an empty stack. Stack values are comparable: a Stack
// returned unchanged compares equal (==) to the original.
type Stack struct {
	top  *node
	size int
}

// NewStack returns a stack holding values, given from bottom to top.
func NewStack(values ...string) (Stack, error) {
	var s Stack
	for _, v := range values {
		d, err := ParseEntry(v)
		if err != nil {
			return Stack{}, err
		}
		s = s.Push(d)
	}
	return s, nil
}

// MustStack is like NewStack but panics on invalid values.
func MustStack(values ...string) Stack {
	s, err := NewStack(values...)
	if err != nil {
		panic(err.Error())
	}
	return s
}

// Len returns the number of entries.
func (s Stack) Len() int { return s.size }

// Push returns a stack with v on top.
func (s Stack) Push(v decimal.Decimal) Stack {
	return Stack{top: &node{value: v, next: s.top}, size: s.size + 1}
}

// Pop returns the top entry and the stack below it. ok is false on an empty
// stack.
func (s Stack) Pop() (v decimal.Decimal, rest Stack, ok bool) {
	if s.top == nil {
		return decimal.Decimal{}, s, false
	}
	return s.top.value, Stack{top: s.top.next, size: s.size - 1}, true
}

// Peek returns the top entry, the X register.
func (s Stack) Peek() (v decimal.Decimal, ok bool) {
	if s.top == nil {
		return decimal.Decimal{}, false
	}
	return s.top.value, true
}

// Swap exchanges the two top entries. Stacks with less than two entries are
// returned as is.
func (s Stack) Swap() Stack {
	if s.size < 2 {
		return s
	}
	x, rest, _ := s.Pop()
	y, rest, _ := rest.Pop()
	return rest.Push(x).Push(y)
}

// Rotate moves the top entry to the bottom (R↓).
func (s Stack) Rotate() Stack {
	if s.size < 2 {
		return s
	}
	values := s.Values()
	last := len(values) - 1
	r := Stack{}.Push(values[last])
	for _, v := range values[:last] {
		r = r.Push(v)
	}
	return r
}

// Values returns the entries from bottom to top.
func (s Stack) Values() []decimal.Decimal {
	values := make([]decimal.Decimal, s.size)
	i := s.size - 1
	for n := s.top; n != nil; n = n.next {
		values[i] = n.value
		i--
	}
	return values
}

// Strings returns the entries as decimal text, from bottom to top.
func (s Stack) Strings() []string {
	values := s.Values()
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = v.String()
	}
	return strs
}

func (s Stack) String() string {
	return "[" + strings.Join(s.Strings(), " ") + "]"
}
