package renderer

import (
	"strconv"

	"github.com/etnz/fincalc"
	"github.com/etnz/fincalc/keypad"
)

// stackLevels names the first stack levels, from the top.
var stackLevels = []string{"X", "Y", "Z", "T"}

// State is a snapshot of a keypad session, ready to render.
type State struct {
	Display   string       `json:"display"`
	Entry     string       `json:"entry,omitempty"`
	Stack     []StackEntry `json:"stack"`
	Registers []Register   `json:"registers"`
	Memory    []Memory     `json:"memory,omitempty"`
}

// StackEntry is one stack level, X being the top.
type StackEntry struct {
	Level string `json:"level"`
	Value string `json:"value"`
}

// Memory is a non zero storage register.
type Memory struct {
	Index int    `json:"index"`
	Value string `json:"value"`
}

// NewState captures the session s. Cash flow registers are formatted in
// currency.
func NewState(s *keypad.Session, currency string) *State {
	st := &State{
		Display:   s.Display(),
		Entry:     s.Entry(),
		Stack:     make([]StackEntry, 0, s.Stack().Len()),
		Registers: newRegisters(s.Registers(), 0, false, currency),
	}

	values := s.Stack().Values()
	for i := len(values) - 1; i >= 0; i-- {
		depth := len(values) - 1 - i
		level := strconv.Itoa(depth + 1)
		if depth < len(stackLevels) {
			level = stackLevels[depth]
		}
		st.Stack = append(st.Stack, StackEntry{Level: level, Value: fincalc.FormatDecimal(values[i])})
	}

	for d := 0; d < 10; d++ {
		if m := s.Memory(d); !m.IsZero() {
			st.Memory = append(st.Memory, Memory{Index: d, Value: fincalc.FormatDecimal(m)})
		}
	}
	return st
}
