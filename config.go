package main

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/crillab/countdown/bmc"
	"github.com/crillab/countdown/countdown"
)

// A config is the content of a puzzle file.
type config struct {
	Puzzle countdown.Config `yaml:"puzzle"`
	Search bmc.Config       `yaml:"search"`
}

// defaultConfig returns the configuration used when neither a file nor a flag
// sets a parameter. A negative bound stands for the longest possible solution.
func defaultConfig() config {
	return config{
		Puzzle: countdown.DefaultConfig(),
		Search: bmc.Config{MaxSteps: -1},
	}
}

// loadConfig reads a puzzle file. Parameters missing from the file keep their
// default value.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "could not open %q", path)
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, errors.Wrapf(err, "could not parse puzzle file %q", path)
	}
	return cfg, nil
}

type options struct {
	configFile  string
	numbers     []int
	target      int64
	bits        int
	noOverflow  bool
	steps       int
	approx      bool
	simulate    bool
	timeout     time.Duration
	dimacs      string
	metricsFile string
	debug       bool
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	def := defaultConfig()
	fs.StringVarP(&o.configFile, "config", "c", "", "YAML puzzle file; flags given explicitly override its content")
	fs.IntSliceVarP(&o.numbers, "numbers", "n", nil, "starting numbers, separated by commas")
	fs.Int64VarP(&o.target, "target", "t", def.Puzzle.Target, "value to reach")
	fs.IntVar(&o.bits, "bits", def.Puzzle.Bits, "width of the values")
	fs.BoolVar(&o.noOverflow, "no-overflow", false, "let operations wrap around instead of forbidding overflows")
	fs.IntVar(&o.steps, "steps", def.Search.MaxSteps, "maximum number of steps; negative means 2n-1 for n numbers")
	fs.BoolVar(&o.approx, "approx", def.Search.Approximate, "look for the closest value when the target cannot be reached")
	fs.BoolVar(&o.simulate, "simulate", def.Search.Simulation, "unroll the puzzle without any goal and show a run")
	fs.DurationVar(&o.timeout, "timeout", def.Search.Timeout, "time budget of each phase; 0 means no limit")
	fs.StringVar(&o.dimacs, "dimacs", "", "write the unrolled formula in DIMACS format to this file instead of solving")
	fs.StringVar(&o.metricsFile, "metrics-file", "", "write solver metrics in Prometheus text format to this file")
	fs.BoolVar(&o.debug, "debug", false, "log every step of the search")
}

// config returns the configuration described by the puzzle file, if any,
// and the flags set in fs.
func (o *options) config(fs *pflag.FlagSet) (config, error) {
	cfg := defaultConfig()
	if o.configFile != "" {
		var err error
		if cfg, err = loadConfig(o.configFile); err != nil {
			return cfg, err
		}
	}
	if fs.Changed("numbers") {
		cfg.Puzzle.Numbers = make([]int64, len(o.numbers))
		for i, n := range o.numbers {
			cfg.Puzzle.Numbers[i] = int64(n)
		}
	}
	if fs.Changed("target") {
		cfg.Puzzle.Target = o.target
	}
	if fs.Changed("bits") {
		cfg.Puzzle.Bits = o.bits
	}
	if fs.Changed("no-overflow") {
		cfg.Puzzle.OverflowChecking = !o.noOverflow
	}
	if fs.Changed("steps") {
		cfg.Search.MaxSteps = o.steps
	}
	if fs.Changed("approx") {
		cfg.Search.Approximate = o.approx
	}
	if fs.Changed("simulate") {
		cfg.Search.Simulation = o.simulate
	}
	if fs.Changed("timeout") {
		cfg.Search.Timeout = o.timeout
	}
	return cfg, nil
}
