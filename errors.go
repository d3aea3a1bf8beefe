package gnfa

import "errors"

var (
	// ErrMalformedAutomaton indicates an edge, the start state or an accept
	// identifier references a state that is not in the state set, or a state
	// identifier is declared twice.
	ErrMalformedAutomaton = errors.New("gnfa: malformed automaton")
	// ErrNotInterior indicates an attempt to eliminate the start state, an
	// accept state or a state that no longer exists.
	ErrNotInterior = errors.New("gnfa: state is not an interior state")
)
