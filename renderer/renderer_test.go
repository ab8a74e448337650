package renderer

import (
	"errors"
	"strings"
	"testing"

	"github.com/etnz/fincalc"
	"github.com/etnz/fincalc/keypad"
)

func assertContains(t *testing.T, md string, lines ...string) {
	t.Helper()
	for _, line := range lines {
		if !strings.Contains(md, line) {
			t.Errorf("rendered markdown is missing %q:\n%s", line, md)
		}
	}
}

func TestRenderSolution(t *testing.T) {
	regs, _, err := fincalc.Registers{N: 12, IYR: 1, PV: -1000, PMT: -500}.Solve(fincalc.FV)
	if err != nil {
		t.Fatal(err)
	}
	md := RenderSolution(NewSolution(regs, fincalc.FV, nil, "USD"))

	assertContains(t, md,
		"# FV = $7,468.08\n",
		"| Register | Value |\n|:---|---:|\n",
		"| N | 12 |\n",
		"| I/YR | 1.0000% |\n",
		"| PV | -$1,000.00 |\n",
		"| PMT | -$500.00 |\n",
		"| FV ✱ | $7,468.08 |",
	)
	if strings.Contains(md, "approximate") {
		t.Errorf("exact solution rendered with a warning:\n%s", md)
	}
}

func TestRenderSolution_Warning(t *testing.T) {
	regs := fincalc.Registers{N: 10, PV: 1000, PMT: 100, FV: 1000}
	md := RenderSolution(NewSolution(regs, fincalc.IYR, errors.New("no sign change"), ""))
	assertContains(t, md, "> ⚠️ approximate solution: no sign change\n", "| PV | 1000.00 |")
}

func TestRenderState(t *testing.T) {
	s := keypad.New()
	if err := s.PressAll("1", "ENTER", "2", "ENTER", "4", "2", "STO", "7", "ENTER", "5"); err != nil {
		t.Fatal(err)
	}
	md := RenderState(NewState(s, ""))

	assertContains(t, md,
		"# Display: 5\n",
		"Typing: `5`",
		"| Level | Value |\n|:---|---:|\n| X | 42 |\n| Y | 2 |\n| Z | 1 |",
		"| N | 0 |",
		"| R7 | 42 |",
	)
}

func TestRenderState_Empty(t *testing.T) {
	md := RenderState(NewState(keypad.New(), "EUR"))
	assertContains(t, md, "# Display: 0.00\n", "Empty stack.", "| I/YR | 0.0000% |")
	if strings.Contains(md, "Storage") {
		t.Errorf("empty session rendered a storage section:\n%s", md)
	}
}
