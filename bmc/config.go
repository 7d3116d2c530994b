package bmc

import "time"

// Config holds the parameters of a search.
type Config struct {
	// MaxSteps is the bound of the unrolling.
	MaxSteps int `yaml:"maxSteps"`
	// Approximate enables the optimization phase when no exact solution is found.
	Approximate bool `yaml:"approximate"`
	// Simulation unrolls the system without checking any goal.
	Simulation bool `yaml:"simulation"`
	// Timeout is the time budget of each phase. Zero means no limit.
	Timeout time.Duration `yaml:"timeout"`
}
