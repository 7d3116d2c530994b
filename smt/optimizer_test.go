package smt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimize(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	x := ctx.BVConst("x", 6)
	o := NewOptimizer(ctx)
	o.Add(ctx.BVSLe(ctx.BVVal(5, 6), x), ctx.BVSLe(x, ctx.BVVal(12, 6)))
	o.Minimize(x)
	require.Equal(t, Sat, o.Check())
	assert.Equal(t, int64(5), o.Model().BV(x))
	assert.Equal(t, 5, o.Cost())
}

func TestMinimizeDerivedObjective(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	x := ctx.BVConst("x", 6)
	target := ctx.BVVal(20, 6)
	diff := ctx.BVSub(x, target)
	dist := ctx.BVIte(ctx.BVSLt(diff, ctx.BVVal(0, 6)), ctx.BVNeg(diff), diff)
	o := NewOptimizer(ctx)
	o.SetTimeout(time.Minute)
	// x is a multiple of 8.
	o.Add(ctx.BVEq(ctx.Extract(x, 2, 0), ctx.BVVal(0, 3)), ctx.BVSLe(ctx.BVVal(0, 6), x))
	o.Minimize(dist)
	require.Equal(t, Sat, o.Check())
	m := o.Model()
	assert.Contains(t, []int64{16, 24}, m.BV(x))
	assert.Equal(t, uint64(4), m.Uint(dist))
	assert.Equal(t, 4, o.Cost())
}

func TestMinimizeUnsat(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	x := ctx.BVConst("x", 4)
	o := NewOptimizer(ctx)
	o.Add(ctx.BVSLt(x, ctx.BVVal(0, 4)), ctx.BVSLt(ctx.BVVal(2, 4), x))
	o.Minimize(x)
	assert.Equal(t, Unsat, o.Check())
	assert.Panics(t, func() { o.Model() })
}

func TestOptimizeWithoutObjective(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	a := ctx.BoolConst("a")
	o := NewOptimizer(ctx)
	o.Add(a)
	require.Equal(t, Sat, o.Check())
	assert.True(t, o.Model().Bool(a))
	assert.Equal(t, 0, o.Cost())
}

func TestMinimizeFreeObjective(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	x := ctx.BVConst("x", 8)
	y := ctx.BVConst("y", 8)
	o := NewOptimizer(ctx)
	o.Add(ctx.BVEq(y, ctx.BVVal(3, 8)))
	o.Minimize(ctx.ZeroExtend(x, 1))
	require.Equal(t, Sat, o.Check())
	assert.Equal(t, int64(0), o.Model().BV(x))
	assert.Equal(t, int64(3), o.Model().BV(y))
	assert.Equal(t, 0, o.Cost())
}

func TestMinimizeWidth(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	o := NewOptimizer(ctx)
	assert.NotPanics(t, func() { o.Minimize(ctx.BVConst("x", MaxObjectiveWidth)) })
	assert.Panics(t, func() { o.Minimize(ctx.BVConst("y", MaxObjectiveWidth+1)) })
}
