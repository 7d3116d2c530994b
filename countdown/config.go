package countdown

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

const (
	// DefaultBits is the default width of the values of the puzzle.
	DefaultBits = 16
	minBits     = 1
	maxBits     = 64
)

// Config describes a puzzle.
type Config struct {
	Numbers          []int64 `yaml:"numbers"`
	Target           int64   `yaml:"target"`
	Bits             int     `yaml:"bits"`
	OverflowChecking bool    `yaml:"overflowChecking"`
}

// DefaultConfig returns a configuration with no numbers, 16-bit values
// and overflow checking.
func DefaultConfig() Config {
	return Config{Bits: DefaultBits, OverflowChecking: true}
}

// A RangeError is returned when a literal of the puzzle cannot be represented
// with the configured width while overflow checking is enabled.
type RangeError struct {
	Value int64
	Bits  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("value %d is out of the range [%d, %d] of %d-bit integers",
		e.Value, minValue(e.Bits), maxValue(e.Bits), e.Bits)
}

func minValue(bits int) int64 {
	return math.MinInt64 >> uint(64-bits)
}

func maxValue(bits int) int64 {
	return math.MaxInt64 >> uint(64-bits)
}

// Validate checks the shape of the puzzle. A puzzle without starting numbers
// is valid: it has no solution.
// Literals are checked when they are encoded, see New.
func (cfg Config) Validate() error {
	if cfg.Bits < minBits || cfg.Bits > maxBits {
		return errors.Errorf("invalid width %d: must be between %d and %d", cfg.Bits, minBits, maxBits)
	}
	return nil
}

// MaxSteps returns the length of the longest possible solution,
// where all n numbers are pushed and combined by n-1 operators.
func (cfg Config) MaxSteps() int {
	if n := 2*len(cfg.Numbers) - 1; n > 0 {
		return n
	}
	return 0
}
