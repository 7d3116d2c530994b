package countdown

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/crillab/countdown/smt"
	"github.com/mattn/go-runewidth"
)

const (
	cellWidth    = 4
	actionWidth  = 10
	reverseVideo = "\033[7m"
	resetVideo   = "\033[0m"
)

// A Step is the state of the game after an action.
type Step struct {
	Initial bool   // whether this is the state before any action
	Action  Action // the action leading to this state, unless Initial
	Pointer int    // number of values in the stack
	Cells   []int64
}

// Stack returns the values in the stack, bottom first.
func (s Step) Stack() []int64 {
	n := s.Pointer
	if n < 0 {
		n = 0
	}
	if n > len(s.Cells) {
		n = len(s.Cells)
	}
	return s.Cells[:n]
}

// A Trace is a sequence of states, the first one being the initial state.
type Trace struct {
	Steps []Step
}

// Decode reads the first steps of a solution from model.
func (s *System) Decode(model *smt.Model, steps int) *Trace {
	trace := Trace{Steps: make([]Step, steps+1)}
	for t := range trace.Steps {
		step := Step{
			Initial: t == 0,
			Pointer: int(model.Int(s.cache.IndexVar(t))),
			Cells:   model.Array(s.cache.StackVar(t)),
		}
		if t > 0 {
			step.Action = s.action(model, t-1)
		}
		trace.Steps[t] = step
	}
	return &trace
}

// action returns the action the model performs at the given step.
func (s *System) action(model *smt.Model, step int) Action {
	for slot, n := range s.cfg.Numbers {
		if model.Bool(s.cache.PushVar(step, slot)) {
			return Action{Push: true, Slot: slot, Value: n}
		}
	}
	for _, op := range Ops {
		if model.Bool(s.cache.OpVar(step, op)) {
			return Action{Op: op}
		}
	}
	panic(fmt.Sprintf("no action at step %d", step))
}

// Actions returns the actions of t, in order.
func (t *Trace) Actions() []Action {
	var res []Action
	for _, step := range t.Steps {
		if !step.Initial {
			res = append(res, step.Action)
		}
	}
	return res
}

// Result returns the value computed by t, if its last state holds exactly one value.
func (t *Trace) Result() (int64, bool) {
	if len(t.Steps) == 0 {
		return 0, false
	}
	last := t.Steps[len(t.Steps)-1]
	if stack := last.Stack(); len(stack) == 1 {
		return stack[0], true
	}
	return 0, false
}

// Top returns the value on top of the stack in the last state of t, if any.
func (t *Trace) Top() (int64, bool) {
	if len(t.Steps) == 0 {
		return 0, false
	}
	stack := t.Steps[len(t.Steps)-1].Stack()
	if len(stack) == 0 {
		return 0, false
	}
	return stack[len(stack)-1], true
}

// Print writes t, one line per state.
// Cells holding a value of the stack are settled. When highlight is set, they
// are displayed in reverse video and the other cells hold whatever the solver
// chose; otherwise, only settled cells are displayed.
func (t *Trace) Print(w io.Writer, highlight bool) error {
	for _, step := range t.Steps {
		if _, err := io.WriteString(w, step.line(highlight)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (t *Trace) String() string {
	var sb strings.Builder
	_ = t.Print(&sb, false)
	return sb.String()
}

func (s Step) line(highlight bool) string {
	action := "init"
	if !s.Initial {
		action = s.Action.String()
	}
	var sb strings.Builder
	sb.WriteString(runewidth.FillRight(action, actionWidth))
	sb.WriteString("~> |")
	for i, cell := range s.Cells {
		settled := i < s.Pointer
		switch {
		case highlight && settled:
			sb.WriteString(reverseVideo + runewidth.FillLeft(strconv.FormatInt(cell, 10), cellWidth) + resetVideo)
		case highlight || settled:
			sb.WriteString(runewidth.FillLeft(strconv.FormatInt(cell, 10), cellWidth))
		default:
			sb.WriteString(runewidth.FillLeft(".", cellWidth))
		}
		sb.WriteString("|")
	}
	return sb.String()
}
