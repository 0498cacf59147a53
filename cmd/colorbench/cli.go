package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/chromatic/internal/compare"
)

const (
	formatText = "text"
	formatYAML = "yaml"
	formatCSV  = "csv"
)

// ExitError carries the process exit code for a failed invocation.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// usageError is an ExitError with code 2.
func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Config holds the parsed command-line settings.
type Config struct {
	Format          string
	Sweep           bool
	ExhaustiveLimit int
	LogLevel        slog.Level
	LogFormat       string
}

// Parse processes command-line arguments. It returns the Config, whether the
// program should exit cleanly (help was requested), or an *ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("colorbench", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
colorbench - compare graph coloring algorithms.

Usage:
  colorbench [options]

By default every algorithm runs once on a fixed set of canonical graphs.
With -sweep each graph family is grown through a range of sizes instead.

Options:
`)
		flagSet.PrintDefaults()
	}

	cfg := &Config{}
	var levelStr string
	flagSet.StringVar(&cfg.Format, "format", formatText, "Report format: text, yaml or csv.")
	flagSet.BoolVar(&cfg.Sweep, "sweep", false, "Run the size sweep over graph families instead of the canonical set.")
	flagSet.IntVar(&cfg.ExhaustiveLimit, "exhaustive-limit", compare.DefaultExhaustiveLimit, "Largest node count the exhaustive search runs on.")
	flagSet.StringVar(&levelStr, "log-level", "warn", "Minimum log level: debug, info, warn or error.")
	flagSet.StringVar(&cfg.LogFormat, "log-format", "text", "Log output format: "+strings.Join(logFormats(), " or ")+".")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	if flagSet.NArg() > 0 {
		return nil, false, usageError("unexpected argument %q", flagSet.Arg(0))
	}

	cfg.Format = strings.ToLower(cfg.Format)
	switch cfg.Format {
	case formatText, formatYAML, formatCSV:
	default:
		return nil, false, usageError("invalid format %q: must be text, yaml or csv", cfg.Format)
	}
	if cfg.ExhaustiveLimit < 1 {
		return nil, false, usageError("invalid exhaustive-limit %d: must be at least 1", cfg.ExhaustiveLimit)
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if _, ok := handlerFor[cfg.LogFormat]; !ok {
		return nil, false, usageError("invalid log-format %q: must be %s", cfg.LogFormat, strings.Join(logFormats(), " or "))
	}

	lvl, err := parseLevel(levelStr)
	if err != nil {
		return nil, false, usageError("invalid log-level %q: %v", levelStr, err)
	}
	cfg.LogLevel = lvl

	return cfg, false, nil
}
