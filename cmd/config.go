package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/etnz/fincalc/date"
)

const (
	EnvCurrency = "FINCALC_CURRENCY"
	EnvVerbose  = "FINCALC_VERBOSE"
)

// Config holds the user preferences.
//
// They are read from the TOML configuration file, then overridden by the
// environment variables, then by the global flags.
type Config struct {
	// Currency is the ISO code used to format cash flows, none by default.
	Currency string `toml:"currency"`
	// Period is the default period of 'periods' and of 'rate -to'.
	Period string `toml:"period"`
	// RawPeriods disables rounding computed N up to whole periods.
	RawPeriods bool `toml:"raw_periods"`
	// Verbose enables debug logs.
	Verbose bool `toml:"verbose"`
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fincalc.toml"
	}
	return filepath.Join(home, ".fincalc.toml")
}

// LoadConfig resolves the configuration from the file at -config, the
// environment and the global flags. A missing file is not an error.
func LoadConfig() (Config, error) {
	cfg := Config{Period: date.Monthly.String()}

	if _, err := toml.DecodeFile(*configPath, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("reading config %q: %w", *configPath, err)
	}
	if _, err := date.ParsePeriod(cfg.Period); err != nil {
		return cfg, fmt.Errorf("config %q: %w", *configPath, err)
	}

	if v := os.Getenv(EnvCurrency); v != "" {
		cfg.Currency = v
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s=%q: %w", EnvVerbose, v, err)
		}
		cfg.Verbose = verbose
	}

	if *currency != "" {
		cfg.Currency = *currency
	}
	if *Verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}
