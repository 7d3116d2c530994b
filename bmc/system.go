// Package bmc implements bounded model checking of symbolic transition systems.
//
// A Driver unrolls the transition relation of a system one step at a time and
// asks a solver session whether the goal of the system can be reached after
// exactly that many steps. When no goal can be reached within the bound, the
// driver can fall back to an optimization session minimizing the objective of
// the system after the maximal number of steps.
package bmc

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o bmcfakes/fake_session.go . Session
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o bmcfakes/fake_optimizer.go . Optimizer

import (
	"fmt"
	"io"
	"time"

	"github.com/crillab/countdown/smt"
)

// A TransitionSystem describes the states reachable after every number of steps.
// All of its formulas live in the same context.
type TransitionSystem interface {
	fmt.Stringer
	// Context returns the context of the formulas of the system.
	Context() *smt.Context
	// Initial constrains the state at step 0.
	Initial() smt.Bool
	// Goal constrains the state at the given step, if the system has a goal for this step.
	Goal(step int) (smt.Bool, bool)
	// Transition relates the state at step to the state at step+1.
	Transition(step int) smt.Bool
	// Objective is the quantity to minimize at the given step, read as unsigned,
	// if the system supports approximate solutions.
	Objective(step int) (smt.BV, bool)
	// Render returns the first steps of a model.
	Render(model *smt.Model, steps int) Trace
}

// A Trace is the human-readable form of a model.
type Trace interface {
	fmt.Stringer
	Print(w io.Writer, highlight bool) error
}

// A Session is an incremental solver with scoped assertions.
type Session interface {
	Add(fs ...smt.Bool)
	Push()
	Pop()
	Check() smt.Status
	Model() *smt.Model
	SetTimeout(d time.Duration)
}

// An Optimizer is a one-shot solver minimizing an objective.
type Optimizer interface {
	Add(fs ...smt.Bool)
	Minimize(objective smt.BV)
	Check() smt.Status
	Model() *smt.Model
	SetTimeout(d time.Duration)
}

var (
	_ Session   = (*smt.Solver)(nil)
	_ Optimizer = (*smt.Optimizer)(nil)
)
