package countdown

import (
	"fmt"

	"github.com/crillab/countdown/bmc"
	"github.com/crillab/countdown/smt"
	"github.com/pkg/errors"
)

// A System is the transition system of a puzzle.
// It is immutable once built.
type System struct {
	ctx    *smt.Context
	cache  *Cache
	cfg    Config
	nums   []smt.BV
	target smt.BV
}

var _ bmc.TransitionSystem = (*System)(nil)

// New returns the transition system of the puzzle described by cfg.
// Every literal of the puzzle is encoded right away: with overflow checking,
// a literal out of the range of cfg.Bits-bit integers yields a *RangeError.
func New(ctx *smt.Context, cfg Config) (*System, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid puzzle")
	}
	if n := int64(len(cfg.Numbers)); n+1 > int64(1)<<uint(ctx.IntBits()-1)-1 {
		return nil, errors.Errorf("invalid puzzle: %d numbers do not fit %d-bit stack pointers", n, ctx.IntBits())
	}
	s := System{
		ctx:   ctx,
		cache: NewCache(ctx, len(cfg.Numbers), cfg.Bits),
		cfg:   cfg,
		nums:  make([]smt.BV, len(cfg.Numbers)),
	}
	for i, n := range cfg.Numbers {
		v, err := s.encode(n)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid starting number #%d", i+1)
		}
		s.nums[i] = v
	}
	target, err := s.encode(cfg.Target)
	if err != nil {
		return nil, errors.Wrap(err, "invalid target")
	}
	s.target = target
	return &s, nil
}

// encode returns the bit-vector constant for the literal val.
func (s *System) encode(val int64) (smt.BV, error) {
	bits := s.cfg.Bits
	if s.cfg.OverflowChecking && (val < minValue(bits) || val > maxValue(bits)) {
		return smt.BV{}, &RangeError{Value: val, Bits: bits}
	}
	return s.ctx.BVVal(val, bits), nil
}

func (s *System) String() string {
	return fmt.Sprintf("numbers=%v target=%d bits=%d overflowChecking=%t",
		s.cfg.Numbers, s.cfg.Target, s.cfg.Bits, s.cfg.OverflowChecking)
}

// Config returns the description of the puzzle.
func (s *System) Config() Config {
	return s.cfg
}

// Context returns the context every formula of s is built in.
func (s *System) Context() *smt.Context {
	return s.ctx
}

// Cache returns the variables of s.
func (s *System) Cache() *Cache {
	return s.cache
}

// MaxSteps returns the length of the longest possible solution.
func (s *System) MaxSteps() int {
	return s.cfg.MaxSteps()
}

// Initial states that the stack is empty.
func (s *System) Initial() smt.Bool {
	return s.ctx.IntEq(s.cache.IndexVar(0), s.ctx.IntVal(0))
}

// Goal states that the stack holds the target and nothing else at the given step.
func (s *System) Goal(step int) (smt.Bool, bool) {
	ctx := s.ctx
	return ctx.And(
		ctx.IntEq(s.cache.IndexVar(step), ctx.IntVal(1)),
		ctx.BVEq(ctx.Select(s.cache.StackVar(step), ctx.IntVal(0)), s.target),
	), true
}

// Transition relates the state at step to the state at step+1:
// exactly one action happens, and its guard and effect hold.
func (s *System) Transition(step int) smt.Bool {
	fs := make([]smt.Bool, 0, len(s.nums)+len(Ops)+1)
	for slot := range s.nums {
		fs = append(fs, s.pushFormula(step, slot))
	}
	for _, op := range Ops {
		fs = append(fs, s.opFormula(step, op))
	}
	fs = append(fs, s.ctx.ExactlyOne(s.actionVars(step)...))
	return s.ctx.And(fs...)
}

// Objective is the distance between the top of the stack and the target at
// the given step. It is computed on one more bit than the values, so it never
// wraps, and must be read as unsigned. An empty stack is as far from the target
// as two values can be.
// There is no objective when values are too wide for the optimizer.
func (s *System) Objective(step int) (smt.BV, bool) {
	ctx := s.ctx
	bits := s.cfg.Bits
	w := bits + 1
	if w > smt.MaxObjectiveWidth {
		return smt.BV{}, false
	}
	idx := s.cache.IndexVar(step)
	top := ctx.Select(s.cache.StackVar(step), ctx.IntSub(idx, ctx.IntVal(1)))
	diff := ctx.BVSub(ctx.SignExtend(top, 1), ctx.SignExtend(s.target, 1))
	dist := ctx.BVIte(ctx.BVSLt(diff, ctx.BVVal(0, w)), ctx.BVNeg(diff), diff)
	penalty := ctx.ZeroExtend(ctx.BVVal(-1, bits), 1)
	return ctx.BVIte(ctx.IntEq(idx, ctx.IntVal(0)), penalty, dist), true
}

// Render returns the trace of the first steps of model.
func (s *System) Render(model *smt.Model, steps int) bmc.Trace {
	return s.Decode(model, steps)
}
