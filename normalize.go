package gnfa

import (
	"github.com/bits-and-blooms/bitset"
)

// normalize brings the GNFA to a single accept state. Parallel edges were
// already merged when the index was filled.
func (g *GNFA) normalize() {
	if len(g.ids) == 0 {
		g.step(PhaseNormalized, -1)
		return
	}

	accepts := g.alive.Intersection(g.accept)
	if n := accepts.Count(); n > 1 || (n == 1 && g.opts.freshAccept && g.needsFreshAccept(accepts)) {
		g.addSuperAccept(accepts)
	}

	if g.opts.freshStart && g.index.in[g.start].Any() {
		g.addSuperStart()
	}

	if g.opts.trim {
		g.trim()
	}

	g.step(PhaseNormalized, -1)
}

func (g *GNFA) needsFreshAccept(accepts *bitset.BitSet) bool {
	f, _ := accepts.NextSet(0)
	return int(f) == g.start || g.index.out[f].Any()
}

// addSuperAccept makes a new state the only accept state, reached from every
// former accept state by an epsilon edge.
func (g *GNFA) addSuperAccept(accepts *bitset.BitSet) {
	f := g.addState(true)
	for p, ok := accepts.NextSet(0); ok; p, ok = accepts.NextSet(p + 1) {
		g.index.InsertOrMerge(int(p), f, "")
		g.accept.Clear(p)
	}
}

// addSuperStart moves the start to a new state with a single epsilon edge to
// the former start, so the start state has no incoming edges.
func (g *GNFA) addSuperStart() {
	s := g.addState(false)
	g.index.InsertOrMerge(s, g.start, "")
	g.start = s
}

// trim removes interior states that lie on no path from the start state to
// an accept state. No accepted word passes through them.
func (g *GNFA) trim() {
	live := g.liveFromStart()
	live.InPlaceIntersection(g.liveToAccept())

	dead := g.interior().Difference(live)
	for p, ok := dead.NextSet(0); ok; p, ok = dead.NextSet(p + 1) {
		g.removeState(int(p))
	}
}

func (g *GNFA) liveFromStart() *bitset.BitSet {
	live := bitset.New(uint(len(g.ids)))
	live.Set(uint(g.start))
	workList := []int{g.start}
	for len(workList) > 0 {
		s := workList[len(workList)-1]
		workList = workList[:len(workList)-1]
		row := g.index.out[s]
		for d, ok := row.NextSet(0); ok; d, ok = row.NextSet(d + 1) {
			if !live.Test(d) {
				live.Set(d)
				workList = append(workList, int(d))
			}
		}
	}
	return live
}

func (g *GNFA) liveToAccept() *bitset.BitSet {
	live := g.alive.Intersection(g.accept)
	workList := make([]int, 0, live.Count())
	for p, ok := live.NextSet(0); ok; p, ok = live.NextSet(p + 1) {
		workList = append(workList, int(p))
	}
	for len(workList) > 0 {
		s := workList[len(workList)-1]
		workList = workList[:len(workList)-1]
		col := g.index.in[s]
		for src, ok := col.NextSet(0); ok; src, ok = col.NextSet(src + 1) {
			if !live.Test(src) {
				live.Set(src)
				workList = append(workList, int(src))
			}
		}
	}
	return live
}
