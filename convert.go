package gnfa

// NewGNFA Validate a and copy it into a normalized GNFA, ready for
// Eliminate, Reduce or Assemble. a itself is not modified.
func NewGNFA(a *Automaton, opts ...Option) (*GNFA, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	g := newGNFA(a, newOptions(opts...))
	g.step(PhaseRaw, -1)
	g.normalize()
	return g, nil
}

// ToRegex Convert a into an equivalent regular expression by state
// elimination. The only error is ErrMalformedAutomaton.
func ToRegex(a *Automaton, opts ...Option) (*Regex, error) {
	g, err := NewGNFA(a, opts...)
	if err != nil {
		return nil, err
	}
	if g.alive.Intersection(g.accept).None() {
		g.step(PhaseDone, -1)
		return &Regex{Empty: true}, nil
	}
	return g.Assemble(), nil
}

// Convert Like ToRegex but returns only the expression text. An automaton
// with no accepting path yields the empty string, as does one that accepts
// only the empty word; use ToRegex to tell them apart.
func Convert(a *Automaton, opts ...Option) (string, error) {
	r, err := ToRegex(a, opts...)
	if err != nil {
		return "", err
	}
	return r.Expr, nil
}
