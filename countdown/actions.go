package countdown

import (
	"fmt"

	"github.com/crillab/countdown/smt"
)

// Op is an arithmetic operator of the game.
type Op byte

const (
	Add = Op(iota) // e1 + e2
	Sub            // e1 - e2
	Mul            // e1 * e2
	Div            // e1 / e2, rounded toward zero
)

// Ops lists every operator, in the order they are encoded.
var Ops = []Op{Add, Sub, Mul, Div}

func (op Op) String() string {
	switch op {
	case Add:
		return "add"
	case Sub:
		return "sub"
	case Mul:
		return "mul"
	case Div:
		return "div"
	default:
		panic("invalid operator")
	}
}

// Apply returns e1 op e2 on unbounded integers, rounding divisions toward zero.
// It panics on a division by zero.
func (op Op) Apply(e1, e2 int64) int64 {
	switch op {
	case Add:
		return e1 + e2
	case Sub:
		return e1 - e2
	case Mul:
		return e1 * e2
	case Div:
		return e1 / e2
	default:
		panic("invalid operator")
	}
}

// An Action is what happens during one step of a solution.
// It is either pushing a starting number or applying an operator.
type Action struct {
	Push  bool
	Slot  int   // position of the pushed number in the starting numbers
	Value int64 // pushed number
	Op    Op
}

func (a Action) String() string {
	if a.Push {
		return fmt.Sprintf("push %d", a.Value)
	}
	return a.Op.String()
}

// result returns the symbolic value of e1 op e2.
func (s *System) result(op Op, e1, e2 smt.BV) smt.BV {
	ctx := s.ctx
	switch op {
	case Add:
		return ctx.BVAdd(e1, e2)
	case Sub:
		return ctx.BVSub(e1, e2)
	case Mul:
		return ctx.BVMul(e1, e2)
	default:
		return ctx.BVSDiv(e1, e2)
	}
}

// precondition returns the condition under which e1 op e2 can be computed.
func (s *System) precondition(op Op, e1, e2 smt.BV) smt.Bool {
	ctx := s.ctx
	switch op {
	case Div:
		return ctx.Not(ctx.BVEq(e2, ctx.BVVal(0, s.cfg.Bits)))
	case Add:
		if s.cfg.OverflowChecking {
			return ctx.And(ctx.BVAddNoOverflow(e1, e2), ctx.BVAddNoUnderflow(e1, e2))
		}
	case Sub:
		if s.cfg.OverflowChecking {
			return ctx.And(ctx.BVSubNoOverflow(e1, e2), ctx.BVSubNoUnderflow(e1, e2))
		}
	case Mul:
		if s.cfg.OverflowChecking {
			// The exact product of two w-bit values fits in 2w bits.
			w := 2 * s.cfg.Bits
			prod := ctx.BVMul(ctx.SignExtend(e1, s.cfg.Bits), ctx.SignExtend(e2, s.cfg.Bits))
			return ctx.And(
				ctx.BVSLe(ctx.BVVal(minValue(s.cfg.Bits), w), prod),
				ctx.BVSLe(prod, ctx.BVVal(maxValue(s.cfg.Bits), w)),
			)
		}
	}
	return ctx.True()
}

// pushFormula states the meaning of pushing the number at position slot at the given step.
func (s *System) pushFormula(step, slot int) smt.Bool {
	ctx, c := s.ctx, s.cache
	idx := c.IndexVar(step)
	effect := ctx.And(
		ctx.IntEq(c.IndexVar(step+1), ctx.IntAdd(idx, ctx.IntVal(1))),
		ctx.ArrayEq(c.StackVar(step+1), ctx.Store(c.StackVar(step), idx, s.nums[slot])),
	)
	earlier := make([]smt.Bool, step)
	for t := range earlier {
		earlier[t] = c.PushVar(t, slot)
	}
	return ctx.Implies(c.PushVar(step, slot), ctx.And(ctx.Not(ctx.Or(earlier...)), effect))
}

// opFormula states the meaning of applying op at the given step.
func (s *System) opFormula(step int, op Op) smt.Bool {
	ctx, c := s.ctx, s.cache
	idx := c.IndexVar(step)
	stack := c.StackVar(step)
	top := ctx.IntSub(idx, ctx.IntVal(1))
	below := ctx.IntSub(idx, ctx.IntVal(2))
	e1 := ctx.Select(stack, top)
	e2 := ctx.Select(stack, below)
	guard := ctx.And(ctx.IntGe(idx, ctx.IntVal(2)), s.precondition(op, e1, e2))
	effect := ctx.And(
		ctx.IntEq(c.IndexVar(step+1), top),
		ctx.ArrayEq(c.StackVar(step+1), ctx.Store(stack, below, s.result(op, e1, e2))),
	)
	return ctx.Implies(c.OpVar(step, op), ctx.And(guard, effect))
}

// actionVars returns every action variable of the given step: pushes first, then operators.
func (s *System) actionVars(step int) []smt.Bool {
	vars := make([]smt.Bool, 0, len(s.nums)+len(Ops))
	for slot := range s.nums {
		vars = append(vars, s.cache.PushVar(step, slot))
	}
	for _, op := range Ops {
		vars = append(vars, s.cache.OpVar(step, op))
	}
	return vars
}
