package gnfa

import (
	"github.com/bits-and-blooms/bitset"
)

// GNFA A generalized NFA owned by a single conversion. States are kept at
// dense positions sorted by identifier; new states always receive an
// identifier larger than every existing one, so position order and
// identifier order agree for the whole conversion.
type GNFA struct {
	// position -> identifier
	ids []int
	// identifier -> position
	pos map[int]int

	// States still present. Eliminated states are cleared here and never
	// come back.
	alive  *bitset.BitSet
	accept *bitset.BitSet
	start  int

	index *TransitionIndex
	opts  *options
	phase Phase
}

// newGNFA copies a into a fresh GNFA, collapsing parallel edges. a must have
// passed Validate.
func newGNFA(a *Automaton, opts *options) *GNFA {
	ids := a.sortedIDs()
	g := &GNFA{
		ids:    ids,
		pos:    make(map[int]int, len(ids)),
		alive:  bitset.New(uint(len(ids))),
		accept: bitset.New(uint(len(ids))),
		index:  NewTransitionIndex(len(ids)),
		opts:   opts,
		phase:  PhaseRaw,
	}
	for p, id := range ids {
		g.pos[id] = p
		g.alive.Set(uint(p))
	}
	for _, s := range a.States {
		if s.Accept {
			g.accept.Set(uint(g.pos[s.ID]))
		}
	}
	for _, id := range a.Accept {
		g.accept.Set(uint(g.pos[id]))
	}
	if len(ids) > 0 {
		g.start = g.pos[a.Start]
	}
	for _, e := range a.Edges {
		g.index.InsertOrMerge(g.pos[e.From], g.pos[e.To], e.Label)
	}
	return g
}

// addState appends a state with an identifier larger than any in use and
// returns its position.
func (g *GNFA) addState(accept bool) int {
	id := 0
	if len(g.ids) > 0 {
		id = g.ids[len(g.ids)-1] + 1
	}
	p := len(g.ids)
	g.ids = append(g.ids, id)
	g.pos[id] = p
	g.alive.Set(uint(p))
	g.accept.SetTo(uint(p), accept)
	g.index.Grow(p + 1)
	return p
}

func (g *GNFA) removeState(p int) {
	g.index.RemoveIncident(p)
	g.alive.Clear(uint(p))
	g.accept.Clear(uint(p))
}

// interior returns the positions of live states that are neither the start
// nor accepting.
func (g *GNFA) interior() *bitset.BitSet {
	in := g.alive.Difference(g.accept)
	in.Clear(uint(g.start))
	return in
}

func (g *GNFA) isInterior(p int) bool {
	return p != g.start && g.alive.Test(uint(p)) && !g.accept.Test(uint(p))
}

func (g *GNFA) idsOf(set *bitset.BitSet) []int {
	res := make([]int, 0, set.Count())
	for p, ok := set.NextSet(0); ok; p, ok = set.NextSet(p + 1) {
		res = append(res, g.ids[p])
	}
	return res
}

// Phase Returns the conversion phase the GNFA is in.
func (g *GNFA) Phase() Phase {
	return g.phase
}

// Start Returns the identifier of the start state. It is only meaningful
// when NumStates is positive.
func (g *GNFA) Start() int {
	if len(g.ids) == 0 {
		return 0
	}
	return g.ids[g.start]
}

// NumStates How many states are left.
func (g *GNFA) NumStates() int {
	return int(g.alive.Count())
}

// States Returns the identifiers of the remaining states in ascending order.
func (g *GNFA) States() []int {
	return g.idsOf(g.alive)
}

// AcceptStates Returns the identifiers of the remaining accept states.
func (g *GNFA) AcceptStates() []int {
	return g.idsOf(g.alive.Intersection(g.accept))
}

// Interior Returns the identifiers of the states that may still be
// eliminated, in ascending order.
func (g *GNFA) Interior() []int {
	if len(g.ids) == 0 {
		return nil
	}
	return g.idsOf(g.interior())
}

// Label Returns the label of the edge between two states, by identifier.
func (g *GNFA) Label(from, to int) (string, bool) {
	u, ok := g.pos[from]
	if !ok || !g.alive.Test(uint(u)) {
		return "", false
	}
	v, ok := g.pos[to]
	if !ok || !g.alive.Test(uint(v)) {
		return "", false
	}
	return g.index.Label(u, v)
}

// NumEdges How many edges are left.
func (g *GNFA) NumEdges() int {
	return g.index.Len()
}

// Edges Returns every remaining edge, ordered by source then target
// identifier.
func (g *GNFA) Edges() []Edge {
	res := make([]Edge, 0, g.index.Len())
	for p, ok := g.alive.NextSet(0); ok; p, ok = g.alive.NextSet(p + 1) {
		for _, t := range g.index.From(int(p)) {
			res = append(res, Edge{From: g.ids[t.Source], To: g.ids[t.Dest], Label: t.Label})
		}
	}
	return res
}

// Automaton Returns a snapshot of the GNFA as a plain Automaton.
func (g *GNFA) Automaton() *Automaton {
	a := &Automaton{Start: g.Start(), Edges: g.Edges(), Accept: g.AcceptStates()}
	for p, ok := g.alive.NextSet(0); ok; p, ok = g.alive.NextSet(p + 1) {
		a.States = append(a.States, State{ID: g.ids[p], Accept: g.accept.Test(p)})
	}
	return a
}

func (g *GNFA) step(phase Phase, state int) {
	g.phase = phase
	if g.opts.step != nil {
		g.opts.step(g, Step{Phase: phase, State: state})
	}
}
