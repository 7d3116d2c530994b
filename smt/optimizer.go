package smt

import (
	"fmt"
	"time"

	"github.com/crillab/gophersat/solver"
)

// An Optimizer is a one-shot session backed by gophersat that looks for a model
// minimizing an unsigned bit-vector objective.
type Optimizer struct {
	ctx       *Context
	roots     []Bool
	objective BV
	timeout   time.Duration
	status    Status
	model     *Model
	cost      int
}

// NewOptimizer returns an empty optimization session over the terms of ctx.
func NewOptimizer(ctx *Context) *Optimizer {
	return &Optimizer{ctx: ctx}
}

// SetTimeout bounds the duration of the search.
// A zero or negative duration means no bound.
func (o *Optimizer) SetTimeout(d time.Duration) {
	o.timeout = d
}

// Add asserts every formula in fs.
func (o *Optimizer) Add(fs ...Bool) {
	o.roots = append(o.roots, fs...)
}

// MaxObjectiveWidth is the widest objective an Optimizer accepts: the weights
// of its bits must add up to an int.
const MaxObjectiveWidth = 62

// Minimize sets the objective of the search. Its bit i weighs 2^i.
// It panics if objective is wider than MaxObjectiveWidth.
func (o *Optimizer) Minimize(objective BV) {
	if objective.Width() > MaxObjectiveWidth {
		panic(fmt.Sprintf("objective has %d bits, at most %d are supported", objective.Width(), MaxObjectiveWidth))
	}
	o.objective = objective
}

// problem returns the clauses and the cost function of the search as a
// gophersat problem.
func (o *Optimizer) problem() *solver.Problem {
	cs := o.ctx.translate(o.roots, o.objective.bits...)
	constrs := make([]solver.PBConstr, 0, len(cs.list)+o.objective.Width())
	for _, clause := range cs.list {
		lits := make([]int, len(clause))
		for i, m := range clause {
			lits[i] = m.Dimacs()
		}
		constrs = append(constrs, solver.PropClause(lits...))
	}
	t := o.ctx.c.T.Dimacs()
	var (
		costLits    []solver.Lit
		costWeights []int
	)
	for i, m := range o.objective.bits {
		if int(m.Var()) > cs.nbVars {
			// Free input bit: it must still be a variable of the problem.
			constrs = append(constrs, solver.PropClause(t, m.Dimacs()))
		}
		costLits = append(costLits, solver.IntToLit(int32(m.Dimacs())))
		costWeights = append(costWeights, 1<<uint(i))
	}
	if len(costLits) == 0 {
		// Without an objective, every model is optimal.
		costLits = append(costLits, solver.IntToLit(int32(o.ctx.c.F.Dimacs())))
		costWeights = append(costWeights, 1)
	}
	prob := solver.ParsePBConstrs(constrs)
	prob.SetCostFunc(costLits, costWeights)
	return prob
}

// Check searches for an optimal model.
// If the time budget expires before optimality is proven, Check returns Unknown.
func (o *Optimizer) Check() Status {
	s := solver.New(o.problem())
	done := make(chan int, 1)
	go func() { done <- s.Minimize() }()
	var cost int
	if o.timeout > 0 {
		timer := time.NewTimer(o.timeout)
		defer timer.Stop()
		select {
		case cost = <-done:
		case <-timer.C:
			o.status = Unknown
			return o.status
		}
	} else {
		cost = <-done
	}
	if cost < 0 {
		o.status = Unsat
		return o.status
	}
	model := s.Model()
	vals := make([]bool, len(model)+1)
	copy(vals[1:], model)
	o.status, o.model, o.cost = Sat, newModel(o.ctx.c, vals), cost
	return o.status
}

// Model returns the optimal model found by the last check.
// It panics if the last check was not Sat.
func (o *Optimizer) Model() *Model {
	if o.status != Sat {
		panic("cannot get a model from a non-Sat session")
	}
	return o.model
}

// Cost returns the value of the objective in the optimal model.
func (o *Optimizer) Cost() int {
	return o.cost
}
