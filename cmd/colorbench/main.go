// Command colorbench colors graphs with every algorithm and prints a
// comparison as a table, YAML or CSV. It runs either the fixed canonical set
// or, with -sweep, each graph family over a range of sizes.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/chromatic/internal/compare"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, runs the comparison and writes the report to outW.
// Logs go to errW.
func run(outW, errW io.Writer, args []string) error {
	cfg, shouldExit, err := Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(cfg, errW)
	logger.Info("colorbench starting", "format", cfg.Format, "sweep", cfg.Sweep, "exhaustive_limit", cfg.ExhaustiveLimit)

	runner := compare.Runner{ExhaustiveLimit: cfg.ExhaustiveLimit, Logger: logger}
	var reports []compare.Report
	if cfg.Sweep {
		reports, err = runner.SweepAll(compare.DefaultFamilies())
	} else {
		var cases []compare.Case
		if cases, err = compare.Canonical(); err == nil {
			reports, err = runner.RunAll(cases)
		}
	}
	if err != nil {
		return err
	}

	switch cfg.Format {
	case formatYAML:
		return compare.WriteYAML(outW, reports)
	case formatCSV:
		return compare.WriteCSV(outW, reports)
	default:
		return compare.WriteText(outW, reports)
	}
}
