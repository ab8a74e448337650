package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/fincalc"
	"github.com/etnz/fincalc/date"
	"github.com/google/subcommands"
)

// rateCmd holds the flags for the 'rate' subcommand.
type rateCmd struct {
	from string
	to   string
}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "convert an interest rate between periods" }
func (*rateCmd) Usage() string {
	return `fincalc rate [-from <period>] [-to <period>] <percent>

  Converts a rate per <from> period into the equivalent compound rate per <to> period.
  Periods are daily, weekly, monthly, quarterly or yearly.
`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "yearly", "Period of the given rate")
	f.StringVar(&c.to, "to", "", "Period of the converted rate (defaults to the configured period)")
}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(stderr, "Error: expected exactly one rate, got %d\n", f.NArg())
		return subcommands.ExitUsageError
	}
	percent, err := strconv.ParseFloat(strings.TrimSuffix(f.Arg(0), "%"), 64)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing rate: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg, logger, closeLog, err := setup()
	defer closeLog()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.to == "" {
		c.to = cfg.Period
	}

	from, err := date.ParsePeriod(c.from)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing -from: %v\n", err)
		return subcommands.ExitUsageError
	}
	to, err := date.ParsePeriod(c.to)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing -to: %v\n", err)
		return subcommands.ExitUsageError
	}

	periods := from.PerYear() / to.PerYear()
	logger.Debug("converting rate", "percent", percent, "from", from, "to", to, "periods", periods)
	converted, err := fincalc.ConvertRate(percent, periods)
	if err != nil {
		fmt.Fprintf(stderr, "Error converting rate: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(fmt.Sprintf("%s %s = **%s %s**\n", fincalc.Percent(percent).Precise(), from, fincalc.Percent(converted).Precise(), to))
	return subcommands.ExitSuccess
}
