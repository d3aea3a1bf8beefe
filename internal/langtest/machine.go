// Package langtest decides whether automata and regular expressions denote
// the same language. It is test tooling: expressions are compiled into
// Thompson machines with explicit epsilon arcs, simulated over bitset state
// sets, and compared exactly through their subset constructions.
package langtest

import (
	"github.com/bits-and-blooms/bitset"
)

const epsilon = rune(-1)

type arc struct {
	label rune
	dest  int
}

// Machine A nondeterministic machine over single runes with epsilon arcs.
// State 0 is not special; start is explicit.
type Machine struct {
	start   int
	accept  *bitset.BitSet
	arcs    [][]arc
	symbols map[rune]struct{}
}

func newMachine() *Machine {
	return &Machine{
		accept:  bitset.New(8),
		symbols: make(map[rune]struct{}),
	}
}

// Empty Returns a machine with the empty language.
func Empty() *Machine {
	m := newMachine()
	m.start = m.createState()
	return m
}

func (m *Machine) createState() int {
	m.arcs = append(m.arcs, nil)
	return len(m.arcs) - 1
}

func (m *Machine) addArc(from, to int, label rune) {
	m.arcs[from] = append(m.arcs[from], arc{label: label, dest: to})
	if label != epsilon {
		m.symbols[label] = struct{}{}
	}
}

func (m *Machine) addEpsilon(from, to int) {
	m.addArc(from, to, epsilon)
}

// NumStates How many states the machine has.
func (m *Machine) NumStates() int {
	return len(m.arcs)
}

// closure extends set with every state reachable through epsilon arcs.
func (m *Machine) closure(set *bitset.BitSet) *bitset.BitSet {
	workList := make([]int, 0, set.Count())
	for s, ok := set.NextSet(0); ok; s, ok = set.NextSet(s + 1) {
		workList = append(workList, int(s))
	}
	for len(workList) > 0 {
		s := workList[len(workList)-1]
		workList = workList[:len(workList)-1]
		for _, a := range m.arcs[s] {
			if a.label == epsilon && !set.Test(uint(a.dest)) {
				set.Set(uint(a.dest))
				workList = append(workList, a.dest)
			}
		}
	}
	return set
}

func (m *Machine) initial() *bitset.BitSet {
	set := bitset.New(uint(len(m.arcs)))
	set.Set(uint(m.start))
	return m.closure(set)
}

// move returns the epsilon closure of the states reached from set on c.
func (m *Machine) move(set *bitset.BitSet, c rune) *bitset.BitSet {
	next := bitset.New(uint(len(m.arcs)))
	for s, ok := set.NextSet(0); ok; s, ok = set.NextSet(s + 1) {
		for _, a := range m.arcs[s] {
			if a.label == c {
				next.Set(uint(a.dest))
			}
		}
	}
	return m.closure(next)
}

func (m *Machine) accepts(set *bitset.BitSet) bool {
	return set.IntersectionCardinality(m.accept) > 0
}

// Run Returns true if the machine accepts s.
func Run(m *Machine, s string) bool {
	set := m.initial()
	for _, c := range s {
		if set.None() {
			return false
		}
		set = m.move(set, c)
	}
	return m.accepts(set)
}
