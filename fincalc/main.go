// Command fincalc is a financial calculator: time value of money, RPN
// arithmetic and interest rate conversions.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/fincalc/cmd"
	"github.com/etnz/fincalc/date"
	"github.com/etnz/fincalc/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// returns immediately unless invoked by the shell for completion
	completion().Complete("fincalc")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

var periods = predict.Set{
	date.Daily.String(), date.Weekly.String(), date.Monthly.String(), date.Quarterly.String(), date.Yearly.String(),
}

// completion describes the command line for shell completion.
func completion() *complete.Command {
	args := map[string]complete.Predictor{
		"solve": predict.Set{"N", "I/YR", "PV", "PMT", "FV"},
	}
	if topics, err := docs.AllTopics(); err == nil {
		args["topic"] = predict.Set(append(topics, "*"))
	} else {
		fmt.Fprintf(os.Stderr, "Error listing topics: %v\n", err)
	}

	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, c := range cmd.Commands {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		root.Sub[c.Name()] = &complete.Command{Flags: flagPredictors(f), Args: args[c.Name()]}
	}
	return root
}

func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[fl.Name] = predict.Nothing
			return
		}
		switch fl.Name {
		case "from", "to", "p":
			flags[fl.Name] = periods
		case "config":
			flags[fl.Name] = predict.Files("*.toml")
		case "log-file":
			flags[fl.Name] = predict.Files("*")
		default:
			flags[fl.Name] = predict.Something
		}
	})
	return flags
}
