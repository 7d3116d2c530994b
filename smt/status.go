package smt

// Status is the outcome of a satisfiability check.
type Status byte

const (
	// Unknown means the check gave up, usually because its time budget expired.
	Unknown = Status(iota)
	// Sat means the assertions have a model.
	Sat
	// Unsat means the assertions have no model.
	Unsat
)

func (s Status) String() string {
	switch s {
	case Unknown:
		return "UNKNOWN"
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		panic("invalid status")
	}
}

func statusOf(res int) Status {
	switch {
	case res > 0:
		return Sat
	case res < 0:
		return Unsat
	default:
		return Unknown
	}
}
