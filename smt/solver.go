package smt

import (
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// A Solver is an incremental satisfiability session backed by gini.
// Assertions can be scoped: those added after a call to Push are retracted
// by the matching call to Pop.
type Solver struct {
	ctx     *Context
	g       *gini.Gini
	marks   []int8  // circuit nodes already sent to g
	scopes  []z.Lit // selector of every open scope, innermost last
	timeout time.Duration
	status  Status
}

// NewSolver returns an empty session over the terms of ctx.
func NewSolver(ctx *Context) *Solver {
	g := gini.New()
	g.Add(ctx.c.T)
	g.Add(0)
	return &Solver{ctx: ctx, g: g}
}

// SetTimeout bounds the duration of every subsequent check.
// A zero or negative duration means no bound.
func (s *Solver) SetTimeout(d time.Duration) {
	s.timeout = d
}

// Add asserts every formula in fs in the innermost open scope.
func (s *Solver) Add(fs ...Bool) {
	for _, f := range fs {
		s.marks, _ = s.ctx.c.CnfSince(s.g, s.marks, f.m)
		if n := len(s.scopes); n > 0 {
			s.g.Add(s.scopes[n-1].Not())
		}
		s.g.Add(f.m)
		s.g.Add(0)
	}
}

// Push opens a new scope.
func (s *Solver) Push() {
	s.scopes = append(s.scopes, s.ctx.c.Lit())
}

// Pop retracts every assertion made since the matching call to Push.
// It panics if no scope is open.
func (s *Solver) Pop() {
	n := len(s.scopes)
	if n == 0 {
		panic("pop without a matching push")
	}
	sel := s.scopes[n-1]
	s.scopes = s.scopes[:n-1]
	s.g.Add(sel.Not())
	s.g.Add(0)
}

// Scopes returns the number of open scopes.
func (s *Solver) Scopes() int {
	return len(s.scopes)
}

// Check decides whether the current assertions are satisfiable.
func (s *Solver) Check() Status {
	maxVar := s.g.MaxVar()
	for _, sel := range s.scopes {
		// A selector no clause refers to constrains nothing.
		if sel.Var() <= maxVar {
			s.g.Assume(sel)
		}
	}
	if s.timeout > 0 {
		s.status = statusOf(s.g.GoSolve().Try(s.timeout))
	} else {
		s.status = statusOf(s.g.Solve())
	}
	return s.status
}

// Model returns the model found by the last check.
// It panics if the last check was not Sat.
func (s *Solver) Model() *Model {
	if s.status != Sat {
		panic("cannot get a model from a non-Sat session")
	}
	maxVar := int(s.g.MaxVar())
	vals := make([]bool, maxVar+1)
	for v := 1; v <= maxVar; v++ {
		vals[v] = s.g.Value(z.Var(v).Pos())
	}
	return newModel(s.ctx.c, vals)
}
