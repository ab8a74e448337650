package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/fincalc"
	"github.com/etnz/fincalc/renderer"
	"github.com/google/subcommands"
)

// solveCmd holds the flags for the 'solve' subcommand.
type solveCmd struct {
	regs  fincalc.Registers
	raw   bool
	json  bool
	query string
}

func (*solveCmd) Name() string     { return "solve" }
func (*solveCmd) Synopsis() string { return "solve a time value of money problem" }
func (*solveCmd) Usage() string {
	return `fincalc solve [-n <periods>] [-i <rate>] [-pv <amount>] [-pmt <amount>] [-fv <amount>] [-raw] [-json] <register>

  Computes <register> (N, I/YR, PV, PMT or FV) from the four others.
  Money received is positive, money paid is negative.
`
}

func (c *solveCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.regs.N, "n", 0, "Number of periods")
	f.Float64Var(&c.regs.IYR, "i", 0, "Interest rate per period, in percent")
	f.Float64Var(&c.regs.PV, "pv", 0, "Present value")
	f.Float64Var(&c.regs.PMT, "pmt", 0, "Payment per period")
	f.Float64Var(&c.regs.FV, "fv", 0, "Future value")
	f.BoolVar(&c.raw, "raw", false, "Do not round a computed N up to a whole number of periods")
	f.BoolVar(&c.json, "json", false, "Print the solution as JSON")
	f.StringVar(&c.query, "q", "", "Print only the JSONPath selection of the JSON solution, for instance '$.registers.PMT'")
}

// solveOutput is the JSON form of a solution.
type solveOutput struct {
	Target    string            `json:"target"`
	Value     float64           `json:"value"`
	Warning   string            `json:"warning,omitempty"`
	Registers fincalc.Registers `json:"registers"`
}

func (c *solveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(stderr, "Error: expected exactly one register to solve, got %d\n", f.NArg())
		return subcommands.ExitUsageError
	}
	target, err := fincalc.ParseRegister(f.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg, logger, closeLog, err := setup()
	defer closeLog()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	logger.Debug("solving", "target", target, "registers", c.regs)

	solve := c.regs.Solve
	if c.raw || cfg.RawPeriods {
		solve = c.regs.SolveRaw
	}
	regs, v, err := solve(target)
	var warning error
	switch {
	case errors.Is(err, fincalc.ErrNotBracketed):
		logger.Warn("approximate solution", "target", target, "value", v, "error", err)
		warning = err
	case err != nil:
		fmt.Fprintf(stderr, "Error solving %v: %v\n", target, err)
		return subcommands.ExitFailure
	}

	out := solveOutput{Target: target.String(), Value: v, Registers: regs}
	if warning != nil {
		out.Warning = warning.Error()
	}
	if c.query != "" {
		val, err := queryJSON(out, c.query)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(stdout, val)
		return subcommands.ExitSuccess
	}
	if c.json {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(stderr, "Error encoding solution: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RenderSolution(renderer.NewSolution(regs, target, warning, cfg.Currency)))
	return subcommands.ExitSuccess
}

// queryJSON evaluates the JSONPath path against the JSON form of v.
func queryJSON(v any, path string) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, err
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	// a single answer may come back as a list of one
	if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
		jval = jlist[0]
	}
	return jval, nil
}
