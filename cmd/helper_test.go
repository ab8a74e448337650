package cmd

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// isolate points the global flags and the environment to a blank setup for
// the duration of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(EnvCurrency, "")
	t.Setenv(EnvVerbose, "")

	oldConfig, oldCurrency, oldVerbose, oldLogFile, oldPlain := *configPath, *currency, *Verbose, *logFile, *plain
	*configPath = filepath.Join(t.TempDir(), "missing.toml")
	*currency, *Verbose, *logFile, *plain = "", false, "", true
	t.Cleanup(func() {
		*configPath, *currency, *Verbose, *logFile, *plain = oldConfig, oldCurrency, oldVerbose, oldLogFile, oldPlain
	})
}

// run executes cmd with args and returns what it wrote on stdout and stderr.
func run(t *testing.T, cmd subcommands.Command, args ...string) (string, string, subcommands.ExitStatus) {
	t.Helper()
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing %v: %v", args, err)
	}

	var out, errOut bytes.Buffer
	oldOut, oldErr := stdout, stderr
	stdout, stderr = &out, &errOut
	defer func() { stdout, stderr = oldOut, oldErr }()

	status := cmd.Execute(context.Background(), f)
	return out.String(), errOut.String(), status
}

func assertContains(t *testing.T, got string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Errorf("output does not contain %q:\n%s", w, got)
		}
	}
}
