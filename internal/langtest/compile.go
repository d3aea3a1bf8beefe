package langtest

import (
	"fmt"
	"slices"

	"github.com/geange/gnfa"
)

// Compile Returns a machine accepting the language of a. Edge labels are
// parsed as expressions and spliced between their endpoints, so labels may
// be any expression CompileRegex accepts.
func Compile(a *gnfa.Automaton) (*Machine, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if len(a.States) == 0 {
		return Empty(), nil
	}

	m := newMachine()
	pos := make(map[int]int, len(a.States))
	for _, s := range a.States {
		pos[s.ID] = m.createState()
	}
	m.start = pos[a.Start]
	for _, s := range a.States {
		if a.IsAccept(s.ID) {
			m.accept.Set(uint(pos[s.ID]))
		}
	}
	for i, e := range a.Edges {
		f, err := m.parse(e.Label)
		if err != nil {
			return nil, fmt.Errorf("edge %d (%d -> %d): %w", i, e.From, e.To, err)
		}
		m.addEpsilon(pos[e.From], f.in)
		m.addEpsilon(f.out, pos[e.To])
	}
	return m, nil
}

// FromRegex Returns a machine for a conversion result, honouring its Empty
// flag.
func FromRegex(r *gnfa.Regex) (*Machine, error) {
	if r.Empty {
		return Empty(), nil
	}
	return CompileRegex(r.Expr)
}

// Alphabet Returns the sorted union of the symbols read by the machines.
func Alphabet(machines ...*Machine) []rune {
	seen := make(map[rune]struct{})
	for _, m := range machines {
		for c := range m.symbols {
			seen[c] = struct{}{}
		}
	}
	res := make([]rune, 0, len(seen))
	for c := range seen {
		res = append(res, c)
	}
	slices.Sort(res)
	return res
}

// Strings Returns every word over alphabet of length at most maxLen, shortest
// first.
func Strings(alphabet []rune, maxLen int) []string {
	res := []string{""}
	level := []string{""}
	for n := 0; n < maxLen; n++ {
		next := make([]string, 0, len(level)*len(alphabet))
		for _, w := range level {
			for _, c := range alphabet {
				next = append(next, w+string(c))
			}
		}
		res = append(res, next...)
		level = next
	}
	return res
}
