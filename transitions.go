package gnfa

import (
	"github.com/bits-and-blooms/bitset"
)

// Transition An edge of the transition index. Source and Dest are dense
// state positions, not state identifiers.
type Transition struct {
	Source int
	Dest   int
	Label  string
}

type edgeKey struct {
	from, to int
}

// TransitionIndex Holds at most one labelled edge per ordered pair of states.
// Adjacency is kept in both directions as one bitset row per state, so every
// enumeration runs in ascending position order.
type TransitionIndex struct {
	out    []*bitset.BitSet
	in     []*bitset.BitSet
	labels map[edgeKey]string
}

func NewTransitionIndex(numStates int) *TransitionIndex {
	x := &TransitionIndex{
		labels: make(map[edgeKey]string),
	}
	x.Grow(numStates)
	return x
}

// Grow Make room for states at positions below numStates.
func (x *TransitionIndex) Grow(numStates int) {
	for len(x.out) < numStates {
		x.out = append(x.out, bitset.New(uint(numStates)))
		x.in = append(x.in, bitset.New(uint(numStates)))
	}
}

// Len How many edges the index holds.
func (x *TransitionIndex) Len() int {
	return len(x.labels)
}

// Label Returns the label of the edge from u to v and whether that edge exists.
func (x *TransitionIndex) Label(u, v int) (string, bool) {
	label, ok := x.labels[edgeKey{u, v}]
	return label, ok
}

// SelfLoop Returns the label of the self-loop on u and whether it exists.
func (x *TransitionIndex) SelfLoop(u int) (string, bool) {
	return x.Label(u, u)
}

// InsertOrMerge Add the edge (u, v, label). If a (u, v) edge already exists
// its label becomes the alternation of the old and the new label.
func (x *TransitionIndex) InsertOrMerge(u, v int, label string) {
	k := edgeKey{u, v}
	if old, ok := x.labels[k]; ok {
		x.labels[k] = mergeLabels(old, label)
		return
	}
	x.labels[k] = label
	x.out[u].Set(uint(v))
	x.in[v].Set(uint(u))
}

// From Returns the edges leaving u, self-loop included.
func (x *TransitionIndex) From(u int) []Transition {
	row := x.out[u]
	res := make([]Transition, 0, row.Count())
	for v, ok := row.NextSet(0); ok; v, ok = row.NextSet(v + 1) {
		res = append(res, Transition{Source: u, Dest: int(v), Label: x.labels[edgeKey{u, int(v)}]})
	}
	return res
}

// To Returns the edges entering v, self-loop included.
func (x *TransitionIndex) To(v int) []Transition {
	col := x.in[v]
	res := make([]Transition, 0, col.Count())
	for u, ok := col.NextSet(0); ok; u, ok = col.NextSet(u + 1) {
		res = append(res, Transition{Source: int(u), Dest: v, Label: x.labels[edgeKey{int(u), v}]})
	}
	return res
}

// Degree Returns the number of edges entering and leaving u, not counting a
// self-loop.
func (x *TransitionIndex) Degree(u int) (in, out int) {
	in, out = int(x.in[u].Count()), int(x.out[u].Count())
	if x.out[u].Test(uint(u)) {
		in--
		out--
	}
	return in, out
}

// RemoveIncident Remove every edge entering or leaving u.
func (x *TransitionIndex) RemoveIncident(u int) {
	row := x.out[u]
	for v, ok := row.NextSet(0); ok; v, ok = row.NextSet(v + 1) {
		delete(x.labels, edgeKey{u, int(v)})
		x.in[v].Clear(uint(u))
	}
	row.ClearAll()

	col := x.in[u]
	for w, ok := col.NextSet(0); ok; w, ok = col.NextSet(w + 1) {
		delete(x.labels, edgeKey{int(w), u})
		x.out[w].Clear(uint(u))
	}
	col.ClearAll()
}
