package fin

import "fmt"

// Factoring is the outcome of testing whether a candidate arrow (or arrow
// family) factors through a universal construction. A candidate that fails
// to commute is an ordinary, checkable outcome — law testing routinely feeds
// non-commuting candidates — so the failure is reported here rather than as
// an error. Errors are reserved for malformed candidates.
type Factoring struct {
	Factored bool
	Mediator Arrow  // valid only when Factored
	Reason   string // set only when !Factored
}

func factored(m Arrow) Factoring {
	return Factoring{Factored: true, Mediator: m}
}

func notFactored(format string, args ...any) Factoring {
	return Factoring{Reason: fmt.Sprintf(format, args...)}
}
