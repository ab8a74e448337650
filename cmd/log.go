package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// stderr receives the terminal logs and error messages.
var stderr io.Writer = os.Stderr

// newLogger returns the application logger: text on stderr, plus JSON in the
// -log-file when set. Debug records are kept only in verbose mode.
// The returned function closes the log file.
func newLogger(cfg Config) (*slog.Logger, func(), error) {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	handlers := []slog.Handler{slog.NewTextHandler(stderr, opts)}
	closer := func() {}
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, closer, fmt.Errorf("opening log file %q: %w", *logFile, err)
		}
		closer = func() { f.Close() }
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

// setup loads the configuration and the logger shared by all commands.
func setup() (Config, *slog.Logger, func(), error) {
	cfg, err := LoadConfig()
	if err != nil {
		return cfg, nil, func() {}, err
	}
	logger, closer, err := newLogger(cfg)
	if err != nil {
		return cfg, nil, closer, err
	}
	logger.Debug("configuration", "file", *configPath, "currency", cfg.Currency, "period", cfg.Period, "raw_periods", cfg.RawPeriods)
	return cfg, logger, closer, nil
}
