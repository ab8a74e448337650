package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fincalc.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	*configPath = path
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		isolate(t)
		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() error: %v", err)
		}
		want := Config{Period: "monthly"}
		if cfg != want {
			t.Errorf("LoadConfig() = %+v, want %+v", cfg, want)
		}
	})

	t.Run("file", func(t *testing.T) {
		isolate(t)
		writeConfig(t, "currency = \"EUR\"\nperiod = \"quarterly\"\nraw_periods = true\n")
		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() error: %v", err)
		}
		want := Config{Currency: "EUR", Period: "quarterly", RawPeriods: true}
		if cfg != want {
			t.Errorf("LoadConfig() = %+v, want %+v", cfg, want)
		}
	})

	t.Run("environment overrides file", func(t *testing.T) {
		isolate(t)
		writeConfig(t, "currency = \"EUR\"\n")
		t.Setenv(EnvCurrency, "USD")
		t.Setenv(EnvVerbose, "true")
		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() error: %v", err)
		}
		if cfg.Currency != "USD" || !cfg.Verbose {
			t.Errorf("LoadConfig() = %+v, want USD and verbose", cfg)
		}
	})

	t.Run("flags override environment", func(t *testing.T) {
		isolate(t)
		t.Setenv(EnvCurrency, "USD")
		*currency = "JPY"
		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() error: %v", err)
		}
		if cfg.Currency != "JPY" {
			t.Errorf("Currency = %q, want JPY", cfg.Currency)
		}
	})
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		verbose string
	}{
		{"invalid toml", "currency = ", ""},
		{"unknown period", "period = \"hourly\"\n", ""},
		{"invalid verbose", "", "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			writeConfig(t, tt.content)
			t.Setenv(EnvVerbose, tt.verbose)
			if _, err := LoadConfig(); err == nil {
				t.Error("LoadConfig() succeeded, want an error")
			}
		})
	}
}

func TestConfig_Currency(t *testing.T) {
	isolate(t)
	writeConfig(t, "currency = \"USD\"\n")
	out, _, _ := run(t, &solveCmd{}, "-n", "12", "-i", "1", "-pv", "-1000", "-pmt", "-500", "fv")
	assertContains(t, out, "$7,468.08")
}

func TestNewLogger(t *testing.T) {
	isolate(t)
	*logFile = filepath.Join(t.TempDir(), "fincalc.log")

	var errOut strings.Builder
	old := stderr
	stderr = &errOut
	defer func() { stderr = old }()

	logger, closeLog, err := newLogger(Config{})
	if err != nil {
		t.Fatalf("newLogger() error: %v", err)
	}
	logger.Debug("hidden on the terminal", "n", 1)
	logger.Warn("shown everywhere", "n", 2)
	closeLog()

	if strings.Contains(errOut.String(), "hidden") {
		t.Errorf("debug record on stderr without -v: %q", errOut.String())
	}
	assertContains(t, errOut.String(), "shown everywhere")

	data, err := os.ReadFile(*logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("log file has %d records, want 2:\n%s", len(lines), data)
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("invalid JSON record %q: %v", lines[0], err)
	}
	if rec["msg"] != "hidden on the terminal" || rec["level"] != "DEBUG" {
		t.Errorf("first record = %v", rec)
	}
}

func TestNewLogger_Verbose(t *testing.T) {
	isolate(t)
	var errOut strings.Builder
	old := stderr
	stderr = &errOut
	defer func() { stderr = old }()

	logger, closeLog, err := newLogger(Config{Verbose: true})
	if err != nil {
		t.Fatalf("newLogger() error: %v", err)
	}
	defer closeLog()
	logger.Debug("details")
	assertContains(t, errOut.String(), "details")
}
