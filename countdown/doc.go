/*
Package countdown encodes the Countdown numbers game as a symbolic transition system.

A puzzle is a sequence of starting numbers and a target. A solution is a
sequence of actions on a stack: every starting number can be pushed at most
once, and the arithmetic operators add, sub, mul and div pop the two topmost
values e1 (the top) and e2 (below it), and push e1 op e2. The puzzle is solved
when the stack holds exactly one value, equal to the target.

Values are fixed-width signed bit-vectors, from 1 to 64 bits wide. With
overflow checking, add, sub and mul can only be applied when their exact
result fits in the chosen width; without it, their results wrap around. A
division only requires e2 not to be zero, and rounds toward zero: the
smallest value divided by -1 wraps around to itself either way.

A System provides the formulas describing the puzzle at every step of the
unrolling, as required by the bmc package:

    ctx, _ := smt.NewContext()
    sys, err := countdown.New(ctx, countdown.Config{
        Numbers:          []int64{1, 5, 6, 7, 13, 25},
        Target:           200,
        Bits:             16,
        OverflowChecking: true,
    })
*/
package countdown
