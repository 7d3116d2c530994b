package smt

import (
	"fmt"

	"github.com/go-air/gini/z"
)

// An Int is a bounded signed integer, as wide as the context's IntBits.
// Sums wrap around.
type Int struct {
	bv BV
}

// IntConst declares a new integer variable.
func (ctx *Context) IntConst(name string) Int {
	return Int{ctx.BVConst(name, ctx.intBits)}
}

// IntVal returns the integer constant val.
func (ctx *Context) IntVal(val int64) Int {
	return Int{ctx.BVVal(val, ctx.intBits)}
}

// IntAdd returns a+b.
func (ctx *Context) IntAdd(a, b Int) Int {
	return Int{ctx.BVAdd(a.bv, b.bv)}
}

// IntSub returns a-b.
func (ctx *Context) IntSub(a, b Int) Int {
	return Int{ctx.BVSub(a.bv, b.bv)}
}

// IntEq returns a == b.
func (ctx *Context) IntEq(a, b Int) Bool {
	return ctx.BVEq(a.bv, b.bv)
}

// IntLt returns a < b.
func (ctx *Context) IntLt(a, b Int) Bool {
	return ctx.BVSLt(a.bv, b.bv)
}

// IntLe returns a <= b.
func (ctx *Context) IntLe(a, b Int) Bool {
	return ctx.BVSLe(a.bv, b.bv)
}

// IntGt returns a > b.
func (ctx *Context) IntGt(a, b Int) Bool {
	return ctx.BVSGt(a.bv, b.bv)
}

// IntGe returns a >= b.
func (ctx *Context) IntGe(a, b Int) Bool {
	return ctx.BVSGe(a.bv, b.bv)
}

// An Array is a fixed-size array of bit-vectors, indexed by integers.
type Array struct {
	cells []BV
	width int
}

// Len returns the number of cells in a.
func (a Array) Len() int {
	return len(a.cells)
}

// ArrayConst declares an array of size cells of the given width.
func (ctx *Context) ArrayConst(name string, size, width int) Array {
	bits := ctx.declare(name, size*width)
	cells := make([]BV, size)
	for i := range cells {
		cells[i] = BV{bits[i*width : (i+1)*width]}
	}
	return Array{cells, width}
}

// Select returns the cell of a at position idx.
// An out-of-range index, and any index of an empty array, yields the zero vector.
func (ctx *Context) Select(a Array, idx Int) BV {
	res := BV{ctx.zeros(a.width)}
	for i := len(a.cells) - 1; i >= 0; i-- {
		res = ctx.BVIte(ctx.IntEq(idx, ctx.IntVal(int64(i))), a.cells[i], res)
	}
	return res
}

// Store returns a copy of a where the cell at position idx is val.
// An out-of-range index leaves the array unchanged.
func (ctx *Context) Store(a Array, idx Int, val BV) Array {
	cells := make([]BV, len(a.cells))
	for i, cell := range a.cells {
		cells[i] = ctx.BVIte(ctx.IntEq(idx, ctx.IntVal(int64(i))), val, cell)
	}
	return Array{cells, a.width}
}

// ArrayEq is true iff a and b are equal cell by cell.
func (ctx *Context) ArrayEq(a, b Array) Bool {
	if len(a.cells) != len(b.cells) {
		panic(fmt.Sprintf("array size mismatch (%d vs %d)", len(a.cells), len(b.cells)))
	}
	eqs := make([]z.Lit, len(a.cells))
	for i := range a.cells {
		eqs[i] = ctx.BVEq(a.cells[i], b.cells[i]).m
	}
	return Bool{ctx.c.Ands(eqs...)}
}
