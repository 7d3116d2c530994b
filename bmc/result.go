package bmc

import "time"

// Verdict is the outcome of a search.
type Verdict byte

const (
	// Inconclusive means the solver gave up, or the time budget expired.
	Inconclusive = Verdict(iota)
	// Found means the goal is reached by the returned trace.
	Found
	// Approximate means no trace reaches the goal, and the returned trace
	// minimizes the objective.
	Approximate
	// Exhausted means no trace within the bound reaches the goal.
	Exhausted
)

func (v Verdict) String() string {
	switch v {
	case Inconclusive:
		return "UNKNOWN"
	case Found:
		return "SATISFIABLE"
	case Approximate:
		return "APPROXIMATE"
	case Exhausted:
		return "UNSATISFIABLE"
	default:
		panic("invalid verdict")
	}
}

// Result is what a search returns.
type Result struct {
	Verdict  Verdict
	Steps    int    // length of Trace
	Trace    Trace  // nil unless Verdict is Found or Approximate
	Distance uint64 // value of the objective, when Verdict is Approximate
	Elapsed  time.Duration
}
