package gnfa

import "fmt"

// Order Picks the next state to eliminate. It returns the identifier of an
// interior state, or false when none is left.
type Order func(g *GNFA) (int, bool)

// LowestID Eliminate the interior state with the smallest identifier first.
func LowestID(g *GNFA) (int, bool) {
	p, ok := g.interior().NextSet(0)
	if !ok {
		return 0, false
	}
	return g.ids[p], true
}

// FewestEdges Eliminate the interior state whose removal creates the fewest
// bypass edges, breaking ties by identifier. This tends to keep expressions
// shorter than LowestID.
func FewestEdges(g *GNFA) (int, bool) {
	interior := g.interior()
	best, bestCost := -1, 0
	for p, ok := interior.NextSet(0); ok; p, ok = interior.NextSet(p + 1) {
		in, out := g.index.Degree(int(p))
		if cost := in * out; best == -1 || cost < bestCost {
			best, bestCost = int(p), cost
		}
	}
	if best == -1 {
		return 0, false
	}
	return g.ids[best], true
}

// Sequence Eliminate the given states in the given order, skipping any that
// are not interior when their turn comes, then fall back to LowestID.
func Sequence(ids ...int) Order {
	next := 0
	return func(g *GNFA) (int, bool) {
		for next < len(ids) {
			id := ids[next]
			next++
			if p, ok := g.pos[id]; ok && g.isInterior(p) {
				return id, true
			}
		}
		return LowestID(g)
	}
}

// Eliminate Remove the interior state with identifier id, rewriting every
// path u -> id -> v into a direct edge labelled r L* s, where r and s are the
// labels of the two edges and L is the self-loop label of id. A rewrite with
// u == v lands on the self-loop of u.
func (g *GNFA) Eliminate(id int) error {
	p, ok := g.pos[id]
	if !ok || !g.isInterior(p) {
		return fmt.Errorf("%w: %d", ErrNotInterior, id)
	}
	g.eliminate(p)
	return nil
}

func (g *GNFA) eliminate(x int) {
	loop, _ := g.index.SelfLoop(x)
	middle := Star(loop)

	ins := g.index.To(x)
	outs := g.index.From(x)
	for _, in := range ins {
		if in.Source == x {
			continue
		}
		prefix := Concat(in.Label, middle)
		for _, out := range outs {
			if out.Dest == x {
				continue
			}
			g.index.InsertOrMerge(in.Source, out.Dest, Concat(prefix, out.Label))
		}
	}
	g.removeState(x)
}

// Reduce Eliminate interior states in the configured order until only the
// start and accept states remain.
func (g *GNFA) Reduce() {
	if g.phase >= PhaseTwoState {
		return
	}
	for {
		id, ok := g.opts.order(g)
		if !ok {
			break
		}
		p, known := g.pos[id]
		if !known || !g.isInterior(p) {
			// the order returned a state that cannot be removed
			if id, ok = LowestID(g); !ok {
				break
			}
			p = g.pos[id]
		}
		g.eliminate(p)
		g.step(PhaseReducing, id)
	}
	g.step(PhaseTwoState, -1)
}
