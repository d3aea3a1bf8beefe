package gnfa

// Regex The result of a conversion. Expr uses the input symbols together
// with |, * and parentheses; the empty Expr stands for epsilon. Since the
// empty language has no such expression, Empty reports it separately and
// Expr is then empty as well.
type Regex struct {
	Expr  string
	Empty bool
}

func (r *Regex) String() string {
	return r.Expr
}

var emptyLanguage = Regex{Empty: true}

// Assemble Compose the expression from the remaining start state s and
// accept state f, reducing first if interior states are left. With A, B, C
// and D the labels of s -> s, s -> f, f -> f and f -> s the result is
// A* (B C* D A*)* B C*, which shrinks to A* B C* without a back edge.
func (g *GNFA) Assemble() *Regex {
	g.Reduce()
	r := g.assemble()
	g.step(PhaseDone, -1)
	return &r
}

func (g *GNFA) assemble() Regex {
	if g.alive.None() {
		return emptyLanguage
	}
	accepts := g.alive.Intersection(g.accept)
	if accepts.None() {
		return emptyLanguage
	}

	s := g.start
	if g.accept.Test(uint(s)) {
		// Only the start state is left: every word is a trip around its loop.
		loop, _ := g.index.SelfLoop(s)
		return Regex{Expr: Star(loop)}
	}

	fp, _ := accepts.NextSet(0)
	f := int(fp)
	b, ok := g.index.Label(s, f)
	if !ok {
		return emptyLanguage
	}
	a, _ := g.index.SelfLoop(s)
	c, _ := g.index.SelfLoop(f)

	head := Star(a)
	tail := Concat(b, Star(c))
	d, back := g.index.Label(f, s)
	if !back {
		return Regex{Expr: Concat(head, tail)}
	}
	cycle := Star(Concat(Concat(tail, d), head))
	return Regex{Expr: Concat(Concat(head, cycle), tail)}
}
