package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/fincalc/date"
	"github.com/google/subcommands"
)

// periodsCmd holds the flags for the 'periods' subcommand.
type periodsCmd struct {
	period string
}

func (*periodsCmd) Name() string     { return "periods" }
func (*periodsCmd) Synopsis() string { return "count the periods between two dates" }
func (*periodsCmd) Usage() string {
	return `fincalc periods [-p <period>] <from> [<to>]

  Counts the periods between two dates, to be used as N. <to> defaults to today.
  Dates are YYYY-MM-DD or DD.MM.YYYY.
`
}

func (c *periodsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Period to count: daily, weekly, monthly, quarterly or yearly (defaults to the configured period)")
}

func (c *periodsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 || f.NArg() > 2 {
		fmt.Fprintf(stderr, "Error: expected one or two dates, got %d\n", f.NArg())
		return subcommands.ExitUsageError
	}
	from, err := date.Parse(f.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	to := date.Today()
	if f.NArg() == 2 {
		to, err = date.Parse(f.Arg(1))
		if err != nil {
			fmt.Fprintf(stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	cfg, logger, closeLog, err := setup()
	defer closeLog()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.period == "" {
		c.period = cfg.Period
	}
	p, err := date.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}

	n := date.Between(from, to, p)
	logger.Debug("periods", "from", from, "to", to, "period", p, "n", n)
	printMarkdown(fmt.Sprintf("%s → %s: **%g** %s periods\n", from, to, n, p))
	return subcommands.ExitSuccess
}
