/*
Package smt provides a small bit-vector constraint layer on top of SAT solvers.

Terms are built in a Context, which owns an and-inverter circuit
(github.com/go-air/gini/logic). Every term is eventually a set of circuit
literals:

    Bool   one literal
    BV     a fixed-width two's complement bit-vector, least significant bit first
    Int    a BV whose width is the one configured on the context (16 by default)
    Array  a fixed number of BV cells, indexed by an Int

Building a formula

    ctx, _ := smt.NewContext()
    x := ctx.BVConst("x", 8)
    y := ctx.BVConst("y", 8)
    f := ctx.And(
        ctx.BVEq(ctx.BVAdd(x, y), ctx.BVVal(10, 8)),
        ctx.BVSLt(x, y),
    )

Solving

Two kinds of sessions are available. A Solver is an incremental session
backed by gini, with scoped assertions:

    s := smt.NewSolver(ctx)
    s.Add(f)
    s.Push()
    s.Add(ctx.BVEq(x, ctx.BVVal(4, 8)))
    if s.Check() == smt.Sat {
        fmt.Println(s.Model().BV(y)) // 6
    }
    s.Pop()

An Optimizer is a one-shot session backed by gophersat, minimizing an
unsigned bit-vector objective:

    o := smt.NewOptimizer(ctx)
    o.Add(f)
    o.Minimize(y)
    if o.Check() == smt.Sat {
        fmt.Println(o.Cost())
    }
*/
package smt
