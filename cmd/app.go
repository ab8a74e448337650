// Package cmd implements the fincalc command line application.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&solveCmd{}, "tvm")
	c.Register(&rateCmd{}, "tvm")
	c.Register(&periodsCmd{}, "tvm")

	c.Register(&rpnCmd{}, "calculator")
	c.Register(&keysCmd{}, "calculator")

	c.Register(&topicCmd{}, "help")
}

// Commands lists the subcommands by name, for shell completion.
var Commands = []subcommands.Command{
	&solveCmd{}, &rateCmd{}, &periodsCmd{}, &rpnCmd{}, &keysCmd{}, &topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configPath = flag.String("config", defaultConfigPath(), "Path to the TOML configuration file")
	currency   = flag.String("currency", "", "ISO 4217 currency used to format PV, PMT and FV (overrides "+EnvCurrency+")")
	Verbose    = flag.Bool("v", false, "Log debug information (overrides "+EnvVerbose+")")
	logFile    = flag.String("log-file", "", "Also write JSON logs to this file")
	plain      = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal")
)

// stdout is where commands write their results.
var stdout io.Writer = os.Stdout

// printMarkdown renders md for the terminal, or prints it as is with -plain.
func printMarkdown(md string) {
	if *plain {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
