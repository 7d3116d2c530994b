package countdown_test

import (
	"fmt"

	"github.com/crillab/countdown/countdown"
	"github.com/crillab/countdown/smt"
)

func ExampleCache_AddVar() {
	ctx, _ := smt.NewContext()
	sys, err := countdown.New(ctx, countdown.Config{Numbers: []int64{3, 4}, Target: 7, Bits: 8, OverflowChecking: true})
	if err != nil {
		fmt.Printf("Invalid puzzle: %v", err)
		return
	}
	c := sys.Cache()
	s := smt.NewSolver(ctx)
	s.Add(sys.Initial())
	for step := 0; step < sys.MaxSteps(); step++ {
		s.Add(sys.Transition(step))
	}
	s.Add(c.PushVar(0, 0), c.PushVar(1, 1), c.AddVar(2))
	if s.Check() != smt.Sat {
		fmt.Println("Problem is unsatisfiable")
		return
	}
	trace := sys.Decode(s.Model(), sys.MaxSteps())
	value, _ := trace.Result()
	fmt.Println(trace.Actions(), value)
	// Output: [push 3 push 4 add] 7
}

func ExampleOp_Apply() {
	// The smallest 8-bit value divided by -1 does not fit 8 bits: the
	// division wraps around even with overflow checking.
	ctx, _ := smt.NewContext()
	sys, _ := countdown.New(ctx, countdown.Config{Numbers: []int64{-1, -128}, Bits: 8, OverflowChecking: true})
	c := sys.Cache()
	s := smt.NewSolver(ctx)
	s.Add(sys.Initial())
	for step := 0; step < sys.MaxSteps(); step++ {
		s.Add(sys.Transition(step))
	}
	s.Add(c.PushVar(0, 0), c.PushVar(1, 1), c.DivVar(2))
	fmt.Println(countdown.Div.Apply(-128, -1), s.Check())
	value, _ := sys.Decode(s.Model(), sys.MaxSteps()).Result()
	fmt.Println(value)
	// Output:
	// 128 SAT
	// -128
}
