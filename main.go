package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/crillab/countdown/bmc"
	"github.com/crillab/countdown/countdown"
	"github.com/crillab/countdown/smt"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "countdown [flags]",
		Short: "Solve countdown puzzles by bounded model checking",
		Long: `Combine the starting numbers with +, -, * and / to reach the target.
Each number can be used at most once. Values are fixed-width integers.

The puzzle is unrolled step by step, and each step is checked by a SAT solver.
When the target cannot be reached, --approx looks for the closest value.`,
		Example: `  countdown --numbers 1,5,6,7,13,25 --target 200
  countdown --numbers 2,3 --target 100 --bits 8 --approx
  countdown --config puzzle.yaml --timeout 30s`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, &opts)
		},
	}
	opts.addFlags(cmd.Flags())
	return cmd
}

func newLogger(w io.Writer, debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func run(out, errOut io.Writer, cfg config, opts *options) error {
	logger := newLogger(errOut, opts.debug)
	ctx, err := smt.NewContext()
	if err != nil {
		return err
	}
	sys, err := countdown.New(ctx, cfg.Puzzle)
	if err != nil {
		return err
	}
	if cfg.Search.MaxSteps < 0 {
		cfg.Search.MaxSteps = sys.MaxSteps()
	}
	if cfg.Search.Approximate && cfg.Search.Simulation {
		logger.Warn("approximation is ignored in simulation mode")
		cfg.Search.Approximate = false
	}
	if opts.dimacs != "" {
		return writeDimacs(opts.dimacs, sys, cfg.Search.MaxSteps)
	}

	reg := prometheus.NewRegistry()
	driver, err := bmc.New(sys,
		bmc.WithConfig(cfg.Search),
		bmc.WithLogger(logger),
		bmc.WithMetrics(bmc.NewMetrics(reg)),
	)
	if err != nil {
		return err
	}
	res := driver.Solve(cfg.Search.Timeout)
	if err := printResult(out, res); err != nil {
		return err
	}
	if opts.metricsFile != "" {
		if err := prometheus.WriteToTextfile(opts.metricsFile, reg); err != nil {
			return errors.Wrapf(err, "could not write metrics to %q", opts.metricsFile)
		}
	}
	return nil
}

// writeDimacs writes the formula stating that the target is reached after
// exactly steps steps.
func writeDimacs(path string, sys *countdown.System, steps int) error {
	roots := []smt.Bool{sys.Initial()}
	for step := 0; step < steps; step++ {
		roots = append(roots, sys.Transition(step))
	}
	goal, _ := sys.Goal(steps)
	roots = append(roots, goal)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create %q", path)
	}
	if err := smt.WriteDimacs(f, sys.Context(), roots...); err != nil {
		f.Close()
		return errors.Wrapf(err, "could not write %q", path)
	}
	return f.Close()
}

// highlighted reports whether w is a terminal.
func highlighted(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func printResult(w io.Writer, res bmc.Result) error {
	var err error
	switch res.Verdict {
	case bmc.Found:
		_, err = fmt.Fprintf(w, "%s at step %d\n", res.Verdict, res.Steps)
	case bmc.Approximate:
		_, err = fmt.Fprintf(w, "%s at step %d: %d away from the target\n", res.Verdict, res.Steps, res.Distance)
	case bmc.Exhausted:
		_, err = fmt.Fprintf(w, "%s after %d steps\n", res.Verdict, res.Steps)
	default:
		_, err = fmt.Fprintf(w, "%s at step %d\n", res.Verdict, res.Steps)
	}
	if err != nil {
		return err
	}
	if res.Trace == nil {
		return nil
	}
	return res.Trace.Print(w, highlighted(w))
}
