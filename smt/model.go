package smt

import (
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// A Model is an assignment of the variables known to the session that produced it.
// Models are snapshots: they do not change when the session goes on.
// Any term of the context can be evaluated in a model, including terms built
// after the model was found; inputs the session never saw are false.
type Model struct {
	c     *logic.C
	vals  []bool // vals[v] is the value of the variable v in the session
	gates map[z.Var]bool
}

func newModel(c *logic.C, vals []bool) *Model {
	return &Model{c: c, vals: vals, gates: make(map[z.Var]bool)}
}

func (m *Model) lit(l z.Lit) bool {
	return m.variable(l.Var()) == l.IsPos()
}

func (m *Model) variable(v z.Var) bool {
	a, b := m.c.Ins(v.Pos())
	if a == z.LitNull {
		return int(v) < len(m.vals) && m.vals[v]
	}
	if val, ok := m.gates[v]; ok {
		return val
	}
	val := m.lit(a) && m.lit(b)
	m.gates[v] = val
	return val
}

// Bool returns the value of b in m.
func (m *Model) Bool(b Bool) bool {
	return m.lit(b.m)
}

// Uint returns the value of v in m, read as unsigned.
// Bits beyond the 64th are ignored.
func (m *Model) Uint(v BV) uint64 {
	var res uint64
	for i, l := range v.bits {
		if i < 64 && m.lit(l) {
			res |= 1 << uint(i)
		}
	}
	return res
}

// BV returns the value of v in m, read as signed.
func (m *Model) BV(v BV) int64 {
	res := int64(m.Uint(v))
	if w := v.Width(); w > 0 && w < 64 && m.lit(v.msb()) {
		res -= 1 << uint(w)
	}
	return res
}

// Int returns the value of i in m.
func (m *Model) Int(i Int) int64 {
	return m.BV(i.bv)
}

// Array returns the values of all cells of a in m.
func (m *Model) Array(a Array) []int64 {
	res := make([]int64, len(a.cells))
	for i, cell := range a.cells {
		res[i] = m.BV(cell)
	}
	return res
}
