package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/fincalc"
	"github.com/etnz/fincalc/keypad"
	"github.com/etnz/fincalc/renderer"
	"github.com/google/subcommands"
)

// stdin is where 'keys' reads key presses from.
var stdin io.Reader = os.Stdin

// keysCmd holds the flags for the 'keys' subcommand.
type keysCmd struct {
	state bool
}

func (*keysCmd) Name() string     { return "keys" }
func (*keysCmd) Synopsis() string { return "run a keypad session from the standard input" }
func (*keysCmd) Usage() string {
	return `fincalc keys [-state]

  Reads key labels from the standard input, separated by spaces or new lines,
  and prints the display after each line. A number of several digits is typed
  at once.
  See 'fincalc topic keys' for the keys.
`
}

func (c *keysCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.state, "state", false, "Show the full session state at the end")
}

func (c *keysCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		keys := strings.Fields(scanner.Text())
		if len(keys) == 0 {
			continue
		}
		for _, key := range keys {
			if err := pressKey(session, key); err != nil {
				logger.Warn("key failed", "key", key, "error", err)
			}
		}
		fmt.Fprintln(stdout, session.Display())
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(stderr, "Error reading keys: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.state {
		printMarkdown(renderer.RenderState(renderer.NewState(session, cfg.Currency)))
	}
	return subcommands.ExitSuccess
}

// pressKey presses key, or types it when it is a number of several digits.
func pressKey(s *keypad.Session, key string) error {
	if len(key) > 1 {
		if _, err := fincalc.ParseEntry(key); err == nil {
			return s.Type(key)
		}
	}
	return s.Press(key)
}
