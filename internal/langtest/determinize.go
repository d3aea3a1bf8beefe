package langtest

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultWorkLimit Bounds the number of subset states determinize creates.
const DefaultWorkLimit = 100000

// ErrTooComplex is returned when a subset construction exceeds its work limit.
var ErrTooComplex = errors.New("langtest: too complex to determinize")

// DFA A deterministic machine without an explicit dead state: a missing
// transition is written -1.
type DFA struct {
	alphabet []rune
	next     [][]int
	accept   []bool
}

// Determinize Performs the subset construction of m over alphabet. Symbols
// of m outside alphabet are ignored.
func Determinize(m *Machine, alphabet []rune, workLimit int) (*DFA, error) {
	d := &DFA{alphabet: alphabet}
	init := m.initial()
	if init.None() {
		return d, nil
	}

	newState := NewHashMap[int](16)
	worklist := make([]*frozenSet, 0)
	add := func(f *frozenSet) int {
		id := len(d.next)
		d.next = append(d.next, make([]int, len(alphabet)))
		d.accept = append(d.accept, m.accepts(f.bits))
		newState.Set(f, id)
		worklist = append(worklist, f)
		return id
	}
	add(newFrozenSet(init))

	for len(worklist) > 0 {
		f := worklist[0]
		worklist = worklist[1:]
		from, _ := newState.Get(f)
		for i, c := range alphabet {
			set := m.move(f.bits, c)
			if set.None() {
				d.next[from][i] = -1
				continue
			}
			key := newFrozenSet(set)
			to, ok := newState.Get(key)
			if !ok {
				if newState.Size() >= workLimit {
					return nil, fmt.Errorf("%w: more than %d states", ErrTooComplex, workLimit)
				}
				to = add(key)
			}
			d.next[from][i] = to
		}
	}
	return d, nil
}

// NumStates How many live states the DFA has.
func (d *DFA) NumStates() int {
	return len(d.next)
}

func (d *DFA) start() int {
	if len(d.next) == 0 {
		return -1
	}
	return 0
}

func (d *DFA) step(s, i int) int {
	if s == -1 {
		return -1
	}
	return d.next[s][i]
}

func (d *DFA) isAccept(s int) bool {
	return s != -1 && d.accept[s]
}

// Equivalent Reports whether m1 and m2 accept the same words over alphabet.
// When they differ, witness is a shortest word accepted by exactly one.
func Equivalent(m1, m2 *Machine, alphabet []rune) (equal bool, witness string, err error) {
	d1, err := Determinize(m1, alphabet, DefaultWorkLimit)
	if err != nil {
		return false, "", err
	}
	d2, err := Determinize(m2, alphabet, DefaultWorkLimit)
	if err != nil {
		return false, "", err
	}

	type pair struct{ p, q int }
	type visit struct {
		pair
		word string
	}
	seen := map[pair]struct{}{}
	queue := []visit{{pair{d1.start(), d2.start()}, ""}}
	seen[queue[0].pair] = struct{}{}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if d1.isAccept(v.p) != d2.isAccept(v.q) {
			return false, v.word, nil
		}
		for i, c := range alphabet {
			n := pair{d1.step(v.p, i), d2.step(v.q, i)}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			var b strings.Builder
			b.WriteString(v.word)
			b.WriteRune(c)
			queue = append(queue, visit{n, b.String()})
		}
	}
	return true, "", nil
}
