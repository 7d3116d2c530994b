package countdown

import (
	"fmt"

	"github.com/crillab/countdown/smt"
)

type pushKey struct {
	step, slot int
}

type opKey struct {
	step int
	op   Op
}

// A Cache memoizes the symbolic variables of the puzzle.
// The first request for a variable declares it in the context, under a name
// derived from its kind and step; later requests return the same term.
// Two caches on the same context never share variables.
type Cache struct {
	ctx   *smt.Context
	ns    string
	size  int // number of cells in a stack
	bits  int // width of the values
	index map[int]smt.Int
	stack map[int]smt.Array
	push  map[pushKey]smt.Bool
	ops   map[opKey]smt.Bool
}

// NewCache returns an empty cache for stacks of size cells of the given width.
func NewCache(ctx *smt.Context, size, bits int) *Cache {
	return &Cache{
		ctx:   ctx,
		ns:    ctx.Namespace("countdown"),
		size:  size,
		bits:  bits,
		index: make(map[int]smt.Int),
		stack: make(map[int]smt.Array),
		push:  make(map[pushKey]smt.Bool),
		ops:   make(map[opKey]smt.Bool),
	}
}

func (c *Cache) name(kind string, step int) string {
	return fmt.Sprintf("%s.%s@%d", c.ns, kind, step)
}

// IndexVar returns the stack pointer at the given step: the number of values in the stack.
func (c *Cache) IndexVar(step int) smt.Int {
	v, ok := c.index[step]
	if !ok {
		v = c.ctx.IntConst(c.name("idx", step))
		c.index[step] = v
	}
	return v
}

// StackVar returns the stack at the given step.
func (c *Cache) StackVar(step int) smt.Array {
	v, ok := c.stack[step]
	if !ok {
		v = c.ctx.ArrayConst(c.name("stack", step), c.size, c.bits)
		c.stack[step] = v
	}
	return v
}

// PushVar returns the action variable for pushing, at the given step,
// the starting number at position slot.
func (c *Cache) PushVar(step, slot int) smt.Bool {
	key := pushKey{step: step, slot: slot}
	v, ok := c.push[key]
	if !ok {
		v = c.ctx.BoolConst(fmt.Sprintf("%s.push%d@%d", c.ns, slot, step))
		c.push[key] = v
	}
	return v
}

// OpVar returns the action variable for applying op at the given step.
func (c *Cache) OpVar(step int, op Op) smt.Bool {
	key := opKey{step: step, op: op}
	v, ok := c.ops[key]
	if !ok {
		v = c.ctx.BoolConst(c.name(op.String(), step))
		c.ops[key] = v
	}
	return v
}

// AddVar returns the action variable for adding at the given step.
func (c *Cache) AddVar(step int) smt.Bool { return c.OpVar(step, Add) }

// SubVar returns the action variable for subtracting at the given step.
func (c *Cache) SubVar(step int) smt.Bool { return c.OpVar(step, Sub) }

// MulVar returns the action variable for multiplying at the given step.
func (c *Cache) MulVar(step int) smt.Bool { return c.OpVar(step, Mul) }

// DivVar returns the action variable for dividing at the given step.
func (c *Cache) DivVar(step int) smt.Bool { return c.OpVar(step, Div) }
