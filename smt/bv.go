package smt

import (
	"fmt"

	"github.com/go-air/gini/z"
)

// A BV is a fixed-width bit-vector term.
// Bits are stored least significant first; signed operations use two's complement.
type BV struct {
	bits []z.Lit
}

// Width returns the number of bits of v.
func (v BV) Width() int {
	return len(v.bits)
}

func (v BV) msb() z.Lit {
	return v.bits[len(v.bits)-1]
}

// BVConst declares a new bit-vector variable of the given width.
func (ctx *Context) BVConst(name string, width int) BV {
	if width < 1 {
		panic(fmt.Sprintf("invalid width %d for %q", width, name))
	}
	return BV{ctx.declare(name, width)}
}

// BVVal returns the constant val, truncated to width bits.
func (ctx *Context) BVVal(val int64, width int) BV {
	bits := make([]z.Lit, width)
	for i := range bits {
		if i < 64 && (val>>uint(i))&1 == 1 || i >= 64 && val < 0 {
			bits[i] = ctx.c.T
		} else {
			bits[i] = ctx.c.F
		}
	}
	return BV{bits}
}

func (ctx *Context) checkWidths(op string, a, b BV) {
	if a.Width() != b.Width() {
		panic(fmt.Sprintf("%s: width mismatch (%d vs %d)", op, a.Width(), b.Width()))
	}
}

// fullAdd returns the sum and carry out of a+b+cin.
func (ctx *Context) fullAdd(a, b, cin z.Lit) (sum, cout z.Lit) {
	c := ctx.c
	x := c.Xor(a, b)
	sum = c.Xor(x, cin)
	cout = c.Or(c.And(a, b), c.And(cin, x))
	return sum, cout
}

// add returns a+b+cin, along with the carry out of the most significant bit.
func (ctx *Context) add(a, b []z.Lit, cin z.Lit) ([]z.Lit, z.Lit) {
	res := make([]z.Lit, len(a))
	carry := cin
	for i := range a {
		res[i], carry = ctx.fullAdd(a[i], b[i], carry)
	}
	return res, carry
}

func not(bits []z.Lit) []z.Lit {
	res := make([]z.Lit, len(bits))
	for i, m := range bits {
		res[i] = m.Not()
	}
	return res
}

func (ctx *Context) zeros(n int) []z.Lit {
	res := make([]z.Lit, n)
	for i := range res {
		res[i] = ctx.c.F
	}
	return res
}

// BVAdd returns a+b, wrapping around on overflow.
func (ctx *Context) BVAdd(a, b BV) BV {
	ctx.checkWidths("add", a, b)
	res, _ := ctx.add(a.bits, b.bits, ctx.c.F)
	return BV{res}
}

// BVSub returns a-b, wrapping around on overflow.
func (ctx *Context) BVSub(a, b BV) BV {
	ctx.checkWidths("sub", a, b)
	res, _ := ctx.add(a.bits, not(b.bits), ctx.c.T)
	return BV{res}
}

// BVNeg returns the two's complement opposite of a.
func (ctx *Context) BVNeg(a BV) BV {
	res, _ := ctx.add(not(a.bits), ctx.zeros(a.Width()), ctx.c.T)
	return BV{res}
}

// BVMul returns the product of a and b, truncated to their width.
func (ctx *Context) BVMul(a, b BV) BV {
	ctx.checkWidths("mul", a, b)
	w := a.Width()
	acc := ctx.zeros(w)
	for i := 0; i < w; i++ {
		partial := ctx.zeros(w)
		for j := i; j < w; j++ {
			partial[j] = ctx.c.And(a.bits[j-i], b.bits[i])
		}
		acc, _ = ctx.add(acc, partial, ctx.c.F)
	}
	return BV{acc}
}

// uge returns a >= b, both being read as unsigned.
func (ctx *Context) uge(a, b []z.Lit) z.Lit {
	// a - b does not borrow.
	carry := ctx.c.T
	for i := range a {
		_, carry = ctx.fullAdd(a[i], b[i].Not(), carry)
	}
	return carry
}

// udiv returns the unsigned quotient of a by b.
// When b is 0 the quotient has all its bits set.
func (ctx *Context) udiv(a, b []z.Lit) []z.Lit {
	w := len(a)
	divisor := append(append([]z.Lit{}, b...), ctx.c.F)
	rem := ctx.zeros(w + 1)
	quo := make([]z.Lit, w)
	for i := w - 1; i >= 0; i-- {
		shifted := make([]z.Lit, w+1)
		shifted[0] = a[i]
		copy(shifted[1:], rem[:w])
		geq := ctx.uge(shifted, divisor)
		quo[i] = geq
		diff, _ := ctx.add(shifted, not(divisor), ctx.c.T)
		for j := range rem {
			rem[j] = ctx.c.Choice(geq, diff[j], shifted[j])
		}
	}
	return quo
}

// BVSDiv returns the signed quotient of a by b, rounded toward zero.
// The result of a division by zero is unspecified.
func (ctx *Context) BVSDiv(a, b BV) BV {
	ctx.checkWidths("sdiv", a, b)
	absA := ctx.BVIte(Bool{a.msb()}, ctx.BVNeg(a), a)
	absB := ctx.BVIte(Bool{b.msb()}, ctx.BVNeg(b), b)
	q := BV{ctx.udiv(absA.bits, absB.bits)}
	return ctx.BVIte(ctx.Xor(Bool{a.msb()}, Bool{b.msb()}), ctx.BVNeg(q), q)
}

// BVEq is true iff a and b have the same bits.
func (ctx *Context) BVEq(a, b BV) Bool {
	ctx.checkWidths("eq", a, b)
	eqs := make([]z.Lit, a.Width())
	for i := range eqs {
		eqs[i] = ctx.c.Xor(a.bits[i], b.bits[i]).Not()
	}
	return Bool{ctx.c.Ands(eqs...)}
}

// BVSLt returns a < b, both being read as signed.
func (ctx *Context) BVSLt(a, b BV) Bool {
	ctx.checkWidths("slt", a, b)
	// Flipping the sign bits maps the signed order onto the unsigned one.
	fa := append([]z.Lit{}, a.bits...)
	fb := append([]z.Lit{}, b.bits...)
	fa[len(fa)-1] = fa[len(fa)-1].Not()
	fb[len(fb)-1] = fb[len(fb)-1].Not()
	return Bool{ctx.uge(fa, fb).Not()}
}

// BVSLe returns a <= b, both being read as signed.
func (ctx *Context) BVSLe(a, b BV) Bool {
	return ctx.Not(ctx.BVSLt(b, a))
}

// BVSGt returns a > b, both being read as signed.
func (ctx *Context) BVSGt(a, b BV) Bool {
	return ctx.BVSLt(b, a)
}

// BVSGe returns a >= b, both being read as signed.
func (ctx *Context) BVSGe(a, b BV) Bool {
	return ctx.Not(ctx.BVSLt(a, b))
}

// BVULt returns a < b, both being read as unsigned.
func (ctx *Context) BVULt(a, b BV) Bool {
	ctx.checkWidths("ult", a, b)
	return Bool{ctx.uge(a.bits, b.bits).Not()}
}

// BVIte returns "if cond then a else b".
func (ctx *Context) BVIte(cond Bool, a, b BV) BV {
	ctx.checkWidths("ite", a, b)
	res := make([]z.Lit, a.Width())
	for i := range res {
		res[i] = ctx.c.Choice(cond.m, a.bits[i], b.bits[i])
	}
	return BV{res}
}

// SignExtend returns a widened by n copies of its sign bit.
func (ctx *Context) SignExtend(a BV, n int) BV {
	res := make([]z.Lit, a.Width(), a.Width()+n)
	copy(res, a.bits)
	for i := 0; i < n; i++ {
		res = append(res, a.msb())
	}
	return BV{res}
}

// ZeroExtend returns a widened by n zero bits.
func (ctx *Context) ZeroExtend(a BV, n int) BV {
	return BV{append(append([]z.Lit{}, a.bits...), ctx.zeros(n)...)}
}

// Extract returns bits hi down to lo of a, inclusive.
func (ctx *Context) Extract(a BV, hi, lo int) BV {
	if lo < 0 || hi < lo || hi >= a.Width() {
		panic(fmt.Sprintf("invalid extraction [%d:%d] of a %d-bit vector", hi, lo, a.Width()))
	}
	res := make([]z.Lit, hi-lo+1)
	copy(res, a.bits[lo:hi+1])
	return BV{res}
}

// BVAddNoOverflow is true iff a+b does not exceed the largest signed value.
func (ctx *Context) BVAddNoOverflow(a, b BV) Bool {
	sum := ctx.BVAdd(a, b)
	return Bool{ctx.c.Ands(a.msb().Not(), b.msb().Not(), sum.msb()).Not()}
}

// BVAddNoUnderflow is true iff a+b does not go below the smallest signed value.
func (ctx *Context) BVAddNoUnderflow(a, b BV) Bool {
	sum := ctx.BVAdd(a, b)
	return Bool{ctx.c.Ands(a.msb(), b.msb(), sum.msb().Not()).Not()}
}

// BVSubNoOverflow is true iff a-b does not exceed the largest signed value.
func (ctx *Context) BVSubNoOverflow(a, b BV) Bool {
	diff := ctx.BVSub(a, b)
	return Bool{ctx.c.Ands(a.msb().Not(), b.msb(), diff.msb()).Not()}
}

// BVSubNoUnderflow is true iff a-b does not go below the smallest signed value.
func (ctx *Context) BVSubNoUnderflow(a, b BV) Bool {
	diff := ctx.BVSub(a, b)
	return Bool{ctx.c.Ands(a.msb(), b.msb().Not(), diff.msb().Not()).Not()}
}
