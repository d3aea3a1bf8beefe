package gnfa

import (
	"fmt"
	"sort"
)

// State A state of an Automaton. ID is unique within its automaton.
type State struct {
	ID     int  `json:"id"`
	Accept bool `json:"accept,omitempty"`
}

// Edge A labelled transition. Label is a regular expression over the input
// alphabet; the empty label is epsilon.
type Edge struct {
	From  int    `json:"from"`
	To    int    `json:"to"`
	Label string `json:"label,omitempty"`
}

// Automaton Represents a nondeterministic finite automaton whose transitions
// are labelled by regular expressions. The accept set is the union of Accept
// and every state whose Accept flag is set. Several edges may connect the
// same pair of states; they are merged into one alternation during
// conversion.
//
// An Automaton is a plain value: conversion reads it and never modifies it.
type Automaton struct {
	Start  int     `json:"start"`
	States []State `json:"states"`
	Edges  []Edge  `json:"edges,omitempty"`
	Accept []int   `json:"accept,omitempty"`
}

func NewAutomaton() *Automaton {
	return &Automaton{}
}

// CreateState Create a new non-accepting state and return its identifier,
// one more than the largest identifier in use.
func (a *Automaton) CreateState() int {
	id := 0
	if len(a.States) > 0 {
		id = a.maxID() + 1
	}
	a.States = append(a.States, State{ID: id})
	return id
}

// SetAccept Set or clear this state as an accept state.
func (a *Automaton) SetAccept(id int, accept bool) {
	for i := range a.States {
		if a.States[i].ID == id {
			a.States[i].Accept = accept
		}
	}
	kept := a.Accept[:0]
	for _, s := range a.Accept {
		if s != id {
			kept = append(kept, s)
		}
	}
	a.Accept = kept
	if accept {
		a.Accept = append(a.Accept, id)
	}
}

// IsAccept Returns true if this state is an accept state.
func (a *Automaton) IsAccept(id int) bool {
	for _, s := range a.Accept {
		if s == id {
			return true
		}
	}
	for _, s := range a.States {
		if s.ID == id && s.Accept {
			return true
		}
	}
	return false
}

// AddTransition Add a new transition from source to dest with the given
// label. Parallel transitions are allowed.
func (a *Automaton) AddTransition(source, dest int, label string) {
	a.Edges = append(a.Edges, Edge{From: source, To: dest, Label: label})
}

// GetNumStates How many states this automaton has.
func (a *Automaton) GetNumStates() int {
	return len(a.States)
}

// GetNumTransitions How many transitions this automaton has.
func (a *Automaton) GetNumTransitions() int {
	return len(a.Edges)
}

func (a *Automaton) maxID() int {
	m := a.States[0].ID
	for _, s := range a.States[1:] {
		if s.ID > m {
			m = s.ID
		}
	}
	return m
}

// Validate checks that the start state, every accept identifier and every
// edge endpoint name a declared state, and that no identifier is declared
// twice. The returned error wraps ErrMalformedAutomaton.
func (a *Automaton) Validate() error {
	if len(a.States) == 0 {
		if len(a.Edges) > 0 {
			return fmt.Errorf("%w: %d edges but no states", ErrMalformedAutomaton, len(a.Edges))
		}
		if len(a.Accept) > 0 {
			return fmt.Errorf("%w: accept state %d but no states", ErrMalformedAutomaton, a.Accept[0])
		}
		return nil
	}

	known := make(map[int]struct{}, len(a.States))
	for _, s := range a.States {
		if _, dup := known[s.ID]; dup {
			return fmt.Errorf("%w: state %d declared twice", ErrMalformedAutomaton, s.ID)
		}
		known[s.ID] = struct{}{}
	}
	if _, ok := known[a.Start]; !ok {
		return fmt.Errorf("%w: start state %d is not a state", ErrMalformedAutomaton, a.Start)
	}
	for _, id := range a.Accept {
		if _, ok := known[id]; !ok {
			return fmt.Errorf("%w: accept state %d is not a state", ErrMalformedAutomaton, id)
		}
	}
	for i, e := range a.Edges {
		if _, ok := known[e.From]; !ok {
			return fmt.Errorf("%w: edge %d (%d -> %d) leaves unknown state %d", ErrMalformedAutomaton, i, e.From, e.To, e.From)
		}
		if _, ok := known[e.To]; !ok {
			return fmt.Errorf("%w: edge %d (%d -> %d) enters unknown state %d", ErrMalformedAutomaton, i, e.From, e.To, e.To)
		}
	}
	return nil
}

// sortedIDs returns the state identifiers in ascending order.
func (a *Automaton) sortedIDs() []int {
	ids := make([]int, len(a.States))
	for i, s := range a.States {
		ids[i] = s.ID
	}
	sort.Ints(ids)
	return ids
}

// Automata Factory for small automata.
type Automata struct {
}

var defaultAutomata = &Automata{}

// MakeEmpty
// Returns a new automaton with the empty language: one state, no accept states.
func (*Automata) MakeEmpty() *Automaton {
	a := NewAutomaton()
	a.Start = a.CreateState()
	return a
}

// MakeEmptyString
// Returns a new automaton that accepts only the empty string.
func (*Automata) MakeEmptyString() *Automaton {
	a := NewAutomaton()
	a.Start = a.CreateState()
	a.SetAccept(a.Start, true)
	return a
}

// MakeLabel
// Returns a new automaton with a single transition labelled label from the
// start state to its only accept state.
func (*Automata) MakeLabel(label string) *Automaton {
	a := NewAutomaton()
	a.Start = a.CreateState()
	f := a.CreateState()
	a.SetAccept(f, true)
	a.AddTransition(a.Start, f, label)
	return a
}
