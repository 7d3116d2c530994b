package smt

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopes(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	a := ctx.BoolConst("a")
	b := ctx.BoolConst("b")
	s := NewSolver(ctx)
	s.Add(ctx.Or(a, b))
	require.Equal(t, Sat, s.Check())

	s.Push()
	s.Add(ctx.Not(a))
	require.Equal(t, Sat, s.Check())
	assert.True(t, s.Model().Bool(b))

	s.Push()
	s.Add(ctx.Not(b))
	assert.Equal(t, Unsat, s.Check())
	assert.Equal(t, 2, s.Scopes())
	s.Pop()

	assert.Equal(t, Sat, s.Check())
	s.Pop()
	assert.Equal(t, 0, s.Scopes())

	s.Add(ctx.Not(b))
	require.Equal(t, Sat, s.Check())
	assert.True(t, s.Model().Bool(a))
}

func TestEmptyScope(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	s := NewSolver(ctx)
	s.Push()
	s.Push()
	assert.Equal(t, Sat, s.Check())
	s.Pop()
	s.Pop()
	assert.Panics(t, s.Pop)
}

func TestModelSnapshot(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	x := ctx.BVConst("x", 8)
	s := NewSolver(ctx)
	s.Push()
	s.Add(ctx.BVEq(x, ctx.BVVal(42, 8)))
	require.Equal(t, Sat, s.Check())
	m := s.Model()
	s.Pop()
	s.Add(ctx.BVEq(x, ctx.BVVal(-3, 8)))
	require.Equal(t, Sat, s.Check())
	assert.Equal(t, int64(42), m.BV(x))
	assert.Equal(t, int64(-3), s.Model().BV(x))
}

func TestModelOfUnsat(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	s := NewSolver(ctx)
	s.Add(ctx.False())
	require.Equal(t, Unsat, s.Check())
	assert.Panics(t, func() { s.Model() })
}

func TestTimeout(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	x := ctx.BVConst("x", 8)
	y := ctx.BVConst("y", 8)
	s := NewSolver(ctx)
	s.SetTimeout(10 * time.Second)
	s.Add(ctx.BVEq(ctx.BVMul(x, y), ctx.BVVal(35, 8)), ctx.BVSLt(ctx.BVVal(1, 8), x), ctx.BVSLt(x, y))
	require.Equal(t, Sat, s.Check())
	m := s.Model()
	assert.Equal(t, int64(35), wrap(m.BV(x)*m.BV(y), 8))
}

func TestIntegers(t *testing.T) {
	ctx, err := NewContext(IntBits(6))
	require.NoError(t, err)
	assert.Equal(t, 6, ctx.IntBits())
	i := ctx.IntConst("i")
	j := ctx.IntConst("j")
	s := NewSolver(ctx)
	s.Add(ctx.IntEq(ctx.IntAdd(i, ctx.IntVal(3)), j))

	s.Push()
	s.Add(
		ctx.IntGe(i, ctx.IntVal(20)),
		ctx.IntLe(i, ctx.IntVal(28)),
		ctx.IntLt(j, ctx.IntVal(24)),
	)
	require.Equal(t, Sat, s.Check())
	m := s.Model()
	assert.Equal(t, int64(20), m.Int(i))
	assert.Equal(t, int64(23), m.Int(j))
	assert.Equal(t, int64(20), m.Int(ctx.IntSub(j, ctx.IntVal(3))))
	s.Pop()

	// 6-bit integers wrap around.
	s.Push()
	s.Add(ctx.IntEq(i, ctx.IntVal(31)))
	require.Equal(t, Sat, s.Check())
	m = s.Model()
	assert.Equal(t, int64(-30), m.Int(j))
	assert.True(t, m.Bool(ctx.IntLt(j, i)))
	s.Pop()

	s.Push()
	s.Add(ctx.IntGe(i, ctx.IntVal(20)), ctx.IntLt(j, ctx.IntVal(24)))
	require.Equal(t, Sat, s.Check())
	m = s.Model()
	assert.Equal(t, wrap(m.Int(i)+3, 6), m.Int(j))
	s.Pop()
}

func TestInvalidIntBits(t *testing.T) {
	_, err := NewContext(IntBits(1))
	assert.Error(t, err)
}

func TestArrays(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	arr := ctx.ArrayConst("arr", 3, 8)
	idx := ctx.IntConst("idx")
	stored := ctx.Store(arr, idx, ctx.BVVal(9, 8))
	s := NewSolver(ctx)
	s.Add(
		ctx.BVEq(ctx.Select(arr, ctx.IntVal(0)), ctx.BVVal(1, 8)),
		ctx.BVEq(ctx.Select(arr, ctx.IntVal(1)), ctx.BVVal(2, 8)),
		ctx.BVEq(ctx.Select(arr, ctx.IntVal(2)), ctx.BVVal(3, 8)),
	)

	s.Push()
	s.Add(ctx.IntEq(idx, ctx.IntVal(1)))
	require.Equal(t, Sat, s.Check())
	m := s.Model()
	assert.Equal(t, []int64{1, 2, 3}, m.Array(arr))
	assert.Equal(t, []int64{1, 9, 3}, m.Array(stored))
	assert.Equal(t, int64(9), m.BV(ctx.Select(stored, idx)))
	s.Pop()

	s.Push()
	s.Add(ctx.IntEq(idx, ctx.IntVal(5)))
	require.Equal(t, Sat, s.Check())
	m = s.Model()
	assert.Equal(t, []int64{1, 2, 3}, m.Array(stored), "out-of-range store must be a no-op")
	assert.Equal(t, int64(0), m.BV(ctx.Select(arr, idx)), "out-of-range select must be zero")
	assert.True(t, m.Bool(ctx.ArrayEq(arr, stored)))
	s.Pop()
}

func TestEmptyArray(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	arr := ctx.ArrayConst("arr", 0, 8)
	idx := ctx.IntConst("idx")
	stored := ctx.Store(arr, idx, ctx.BVVal(9, 8))
	sel := ctx.Select(stored, idx)
	assert.Equal(t, 0, stored.Len())
	assert.Equal(t, 8, sel.Width())

	s := NewSolver(ctx)
	s.Add(ctx.ArrayEq(arr, stored))
	require.Equal(t, Sat, s.Check())
	m := s.Model()
	assert.Empty(t, m.Array(stored))
	assert.Equal(t, int64(0), m.BV(sel))
}

func TestBooleans(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	bs := []Bool{ctx.BoolConst("a"), ctx.BoolConst("b"), ctx.BoolConst("c")}
	s := NewSolver(ctx)
	s.Add(ctx.ExactlyOne(bs...), ctx.Not(bs[0]), ctx.Implies(bs[1], ctx.False()))
	require.Equal(t, Sat, s.Check())
	m := s.Model()
	assert.False(t, m.Bool(bs[0]))
	assert.False(t, m.Bool(bs[1]))
	assert.True(t, m.Bool(bs[2]))
	assert.True(t, m.Bool(ctx.Iff(bs[0], bs[1])))
	assert.True(t, m.Bool(ctx.Xor(bs[1], bs[2])))
	assert.True(t, m.Bool(ctx.BoolIte(bs[2], ctx.True(), bs[0])))
	assert.True(t, m.Bool(ctx.And()))
	assert.False(t, m.Bool(ctx.Or()))

	s.Add(ctx.AtMostOne(bs...), ctx.Or(bs[0], bs[1]))
	assert.Equal(t, Unsat, s.Check())
}

func TestDuplicateSymbol(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	ctx.BoolConst("a")
	assert.Panics(t, func() { ctx.BVConst("a", 4) })
	assert.Equal(t, "x", ctx.Namespace("x"))
	assert.Equal(t, "x1", ctx.Namespace("x"))
	assert.Equal(t, []string{"a"}, ctx.Symbols())
}

func TestWriteDimacs(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	a := ctx.BoolConst("a")
	b := ctx.BoolConst("b")
	var buf bytes.Buffer
	require.NoError(t, WriteDimacs(&buf, ctx, ctx.Or(a, b), ctx.Not(a)))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "p cnf "))
	assert.Contains(t, lines, "c a=2")
	assert.Contains(t, lines, "c b=3")
	assert.Contains(t, lines, "-2 0")
	for _, line := range lines[1:] {
		if !strings.HasPrefix(line, "c ") {
			assert.True(t, strings.HasSuffix(line, " 0"), "clause %q is not terminated", line)
		}
	}
}
