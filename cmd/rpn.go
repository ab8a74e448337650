package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/fincalc"
	"github.com/etnz/fincalc/keypad"
	"github.com/etnz/fincalc/renderer"
	"github.com/google/subcommands"
)

type rpnCmd struct{}

func (*rpnCmd) Name() string     { return "rpn" }
func (*rpnCmd) Synopsis() string { return "evaluate an RPN expression" }
func (*rpnCmd) Usage() string {
	return `fincalc rpn <token>...

  Evaluates numbers and operators in reverse polish notation, and shows the resulting stack.
  See 'fincalc topic rpn' for the operators.
`
}

func (c *rpnCmd) SetFlags(f *flag.FlagSet) {}

func (c *rpnCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, logger, closeLog, err := setup()
	defer closeLog()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	opts := []keypad.Option{keypad.WithLogger(logger)}
	if cfg.RawPeriods {
		opts = append(opts, keypad.WithRawPeriods())
	}
	session := keypad.New(opts...)
	for _, token := range f.Args() {
		var err error
		if _, perr := fincalc.ParseEntry(token); perr == nil {
			err = session.Type(token)
		} else {
			err = session.Press(token)
		}
		if err != nil {
			fmt.Fprintf(stderr, "Error at %q: %v\n", token, err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.RenderState(renderer.NewState(session, cfg.Currency)))
	return subcommands.ExitSuccess
}
