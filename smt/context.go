package smt

import (
	"fmt"
	"sort"

	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"
)

const defaultIntBits = 16

// A Context holds the circuit every term is built into, as well as the names
// of declared symbols.
// Terms from different contexts must never be mixed.
type Context struct {
	c          *logic.C
	intBits    int
	symbols    map[string][]z.Lit
	namespaces map[string]int
}

// Option configures a Context.
type Option func(*Context) error

// IntBits sets the width, in bits, of the integers built by the context.
func IntBits(n int) Option {
	return func(ctx *Context) error {
		if n < 2 || n > 64 {
			return errors.Errorf("invalid integer width %d: must be between 2 and 64", n)
		}
		ctx.intBits = n
		return nil
	}
}

// NewContext returns a new, empty context.
func NewContext(options ...Option) (*Context, error) {
	ctx := Context{
		c:          logic.NewCCap(1024),
		intBits:    defaultIntBits,
		symbols:    make(map[string][]z.Lit),
		namespaces: make(map[string]int),
	}
	for _, option := range options {
		if err := option(&ctx); err != nil {
			return nil, err
		}
	}
	return &ctx, nil
}

// IntBits returns the width of the integers built by ctx.
func (ctx *Context) IntBits() int {
	return ctx.intBits
}

// Namespace returns a prefix that was never returned before by ctx for the same argument.
func (ctx *Context) Namespace(prefix string) string {
	n := ctx.namespaces[prefix]
	ctx.namespaces[prefix] = n + 1
	if n == 0 {
		return prefix
	}
	return fmt.Sprintf("%s%d", prefix, n)
}

// Symbols returns the sorted names of all declared symbols.
func (ctx *Context) Symbols() []string {
	names := make([]string, 0, len(ctx.symbols))
	for name := range ctx.symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// declare allocates n fresh inputs bound to name.
func (ctx *Context) declare(name string, n int) []z.Lit {
	if _, ok := ctx.symbols[name]; ok {
		panic(fmt.Sprintf("symbol %q declared twice", name))
	}
	lits := make([]z.Lit, n)
	for i := range lits {
		lits[i] = ctx.c.Lit()
	}
	ctx.symbols[name] = lits
	return lits
}

// A Bool is a propositional term.
type Bool struct {
	m z.Lit
}

// True returns the true constant.
func (ctx *Context) True() Bool {
	return Bool{ctx.c.T}
}

// False returns the false constant.
func (ctx *Context) False() Bool {
	return Bool{ctx.c.F}
}

// BoolVal returns the constant b.
func (ctx *Context) BoolVal(b bool) Bool {
	if b {
		return ctx.True()
	}
	return ctx.False()
}

// BoolConst declares a new propositional variable.
func (ctx *Context) BoolConst(name string) Bool {
	return Bool{ctx.declare(name, 1)[0]}
}

// Not returns the negation of a.
func (ctx *Context) Not(a Bool) Bool {
	return Bool{a.m.Not()}
}

// And returns the conjunction of bs, true if bs is empty.
func (ctx *Context) And(bs ...Bool) Bool {
	return Bool{ctx.c.Ands(lits(bs)...)}
}

// Or returns the disjunction of bs, false if bs is empty.
func (ctx *Context) Or(bs ...Bool) Bool {
	return Bool{ctx.c.Ors(lits(bs)...)}
}

// Implies returns "a implies b".
func (ctx *Context) Implies(a, b Bool) Bool {
	return Bool{ctx.c.Implies(a.m, b.m)}
}

// Xor is true iff exactly one of a and b is true.
func (ctx *Context) Xor(a, b Bool) Bool {
	return Bool{ctx.c.Xor(a.m, b.m)}
}

// Iff is true iff a and b have the same value.
func (ctx *Context) Iff(a, b Bool) Bool {
	return Bool{ctx.c.Xor(a.m, b.m).Not()}
}

// BoolIte returns "if cond then a else b".
func (ctx *Context) BoolIte(cond, a, b Bool) Bool {
	return Bool{ctx.c.Choice(cond.m, a.m, b.m)}
}

// AtMostOne is true iff no two terms of bs are true together.
func (ctx *Context) AtMostOne(bs ...Bool) Bool {
	var res []z.Lit
	for i := range bs {
		for j := i + 1; j < len(bs); j++ {
			res = append(res, ctx.c.And(bs[i].m, bs[j].m).Not())
		}
	}
	return Bool{ctx.c.Ands(res...)}
}

// ExactlyOne is true iff exactly one term of bs is true.
func (ctx *Context) ExactlyOne(bs ...Bool) Bool {
	return ctx.And(ctx.Or(bs...), ctx.AtMostOne(bs...))
}

func lits(bs []Bool) []z.Lit {
	res := make([]z.Lit, len(bs))
	for i, b := range bs {
		res[i] = b.m
	}
	return res
}
