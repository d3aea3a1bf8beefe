package gnfa_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geange/gnfa"
	"github.com/geange/gnfa/internal/langtest"
)

// assertSameLanguage checks r against a both exactly and by running every
// word up to length 6 through each side.
func assertSameLanguage(t *testing.T, a *gnfa.Automaton, r *gnfa.Regex) {
	t.Helper()
	want, err := langtest.Compile(a)
	require.NoError(t, err)
	got, err := langtest.FromRegex(r)
	require.NoError(t, err, "result %q does not parse", r.Expr)

	alphabet := langtest.Alphabet(want, got)
	equal, witness, err := langtest.Equivalent(want, got, alphabet)
	require.NoError(t, err)
	assert.Truef(t, equal, "%q (empty=%v) and the automaton disagree on %q", r.Expr, r.Empty, witness)

	for _, s := range langtest.Strings(alphabet, 6) {
		if langtest.Run(want, s) != langtest.Run(got, s) {
			t.Errorf("%q and the automaton disagree on %q", r.Expr, s)
			return
		}
	}
}

func assertDenotes(t *testing.T, r *gnfa.Regex, expr string) {
	t.Helper()
	got, err := langtest.FromRegex(r)
	require.NoError(t, err, "result %q does not parse", r.Expr)
	want := langtest.MustCompileRegex(expr)
	equal, witness, err := langtest.Equivalent(want, got, langtest.Alphabet(want, got))
	require.NoError(t, err)
	assert.Truef(t, equal, "%q does not denote %q, they disagree on %q", r.Expr, expr, witness)
}

func automaton(start int, states []int, accept []int, edges ...gnfa.Edge) *gnfa.Automaton {
	a := &gnfa.Automaton{Start: start, Accept: accept, Edges: edges}
	for _, id := range states {
		a.States = append(a.States, gnfa.State{ID: id})
	}
	return a
}

func edge(from, to int, label string) gnfa.Edge {
	return gnfa.Edge{From: from, To: to, Label: label}
}

func TestConvertScenarios(t *testing.T) {
	tests := []struct {
		name string
		a    *gnfa.Automaton
		want string
	}{
		{
			name: "single state loop",
			a:    automaton(0, []int{0}, []int{0}, edge(0, 0, "a")),
			want: "a*",
		},
		{
			name: "single edge",
			a:    automaton(0, []int{0, 1}, []int{1}, edge(0, 1, "a")),
			want: "a",
		},
		{
			name: "loop on start",
			a:    automaton(0, []int{0, 1}, []int{1}, edge(0, 0, "b"), edge(0, 1, "a")),
			want: "b*a",
		},
		{
			name: "loop on accept",
			a:    automaton(0, []int{0, 1}, []int{1}, edge(0, 1, "a"), edge(1, 1, "b")),
			want: "ab*",
		},
		{
			name: "dead branch and parallel loops",
			a: automaton(0, []int{0, 1, 2}, []int{1},
				edge(0, 0, "b"), edge(0, 1, "a"), edge(0, 2, "b"),
				edge(1, 1, "a"), edge(1, 1, "b"), edge(2, 2, "a")),
			want: "b*a(a|b)*",
		},
		{
			name: "two accept states",
			a:    automaton(0, []int{0, 1}, []int{0, 1}, edge(0, 1, "a"), edge(1, 0, "b")),
			want: "(ab)*|(ab)*a",
		},
		{
			name: "back edge from accept to start",
			a:    automaton(0, []int{0, 1}, []int{1}, edge(0, 1, "a"), edge(1, 0, "b")),
			want: "(ab)*a",
		},
		{
			name: "back edge with loops on both ends",
			a: automaton(0, []int{0, 1}, []int{1},
				edge(0, 0, "c"), edge(0, 1, "a"), edge(1, 1, "d"), edge(1, 0, "b")),
			want: "c*a(d|bc*a)*",
		},
		{
			name: "start is the only accept state",
			a:    automaton(0, []int{0, 1}, []int{0}, edge(0, 1, "a"), edge(1, 0, "b")),
			want: "(ab)*",
		},
		{
			name: "epsilon edges",
			a: automaton(0, []int{0, 1, 2}, []int{2},
				edge(0, 1, ""), edge(1, 2, "a"), edge(0, 2, "")),
			want: "a|",
		},
		{
			name: "labels are expressions",
			a: automaton(0, []int{0, 1, 2}, []int{2},
				edge(0, 1, "a|b"), edge(1, 2, "c"), edge(1, 1, "d*e")),
			want: "(a|b)(d*e)*c",
		},
		{
			name: "sparse identifiers",
			a: automaton(10, []int{30, 10, 20}, []int{30},
				edge(10, 20, "a"), edge(20, 20, "b"), edge(20, 30, "c")),
			want: "ab*c",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := gnfa.ToRegex(tt.a)
			require.NoError(t, err)
			assert.False(t, r.Empty)
			assertDenotes(t, r, tt.want)
			assertSameLanguage(t, tt.a, r)

			s, err := gnfa.Convert(tt.a)
			require.NoError(t, err)
			assert.Equal(t, r.Expr, s)
		})
	}
}

func TestConvertEmptyLanguage(t *testing.T) {
	tests := []struct {
		name string
		a    *gnfa.Automaton
	}{
		{"no states", &gnfa.Automaton{}},
		{"single non-accepting state", automaton(0, []int{0}, nil, edge(0, 0, "a"))},
		{"no accept states", automaton(0, []int{0, 1, 2}, nil, edge(0, 1, "a"), edge(1, 2, "b"))},
		{"no path to accept", automaton(0, []int{0, 1}, []int{1}, edge(1, 0, "a"), edge(0, 0, "b"))},
		{"accept behind a dead end", automaton(0, []int{0, 1, 2}, []int{2}, edge(0, 1, "a"), edge(2, 1, "b"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := gnfa.ToRegex(tt.a)
			require.NoError(t, err)
			assert.True(t, r.Empty)
			assert.Equal(t, "", r.Expr)
			assertSameLanguage(t, tt.a, r)

			s, err := gnfa.Convert(tt.a)
			require.NoError(t, err)
			assert.Equal(t, "", s)
		})
	}
}

func TestConvertEpsilon(t *testing.T) {
	r, err := gnfa.ToRegex(automaton(0, []int{0}, []int{0}))
	require.NoError(t, err)
	assert.False(t, r.Empty)
	assert.Equal(t, "", r.Expr)

	r, err = gnfa.ToRegex(automaton(0, []int{0, 1}, []int{1}, edge(0, 1, "")))
	require.NoError(t, err)
	assert.False(t, r.Empty)
	assert.Equal(t, "", r.Expr)
}

func TestConvertMalformed(t *testing.T) {
	tests := []struct {
		name string
		a    *gnfa.Automaton
	}{
		{"dangling edge", automaton(0, []int{0}, []int{0}, edge(0, 1, "a"))},
		{"unknown start", automaton(4, []int{0}, []int{0})},
		{"unknown accept", automaton(0, []int{0}, []int{9})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gnfa.Convert(tt.a)
			assert.ErrorIs(t, err, gnfa.ErrMalformedAutomaton)
		})
	}
}

func TestConvertDoesNotModifyInput(t *testing.T) {
	a := automaton(0, []int{0, 1, 2}, []int{1, 2}, edge(0, 1, "a"), edge(1, 2, "b"), edge(0, 1, "c"))
	before := *a
	before.States = append([]gnfa.State(nil), a.States...)
	before.Edges = append([]gnfa.Edge(nil), a.Edges...)
	before.Accept = append([]int(nil), a.Accept...)

	_, err := gnfa.Convert(a)
	require.NoError(t, err)
	assert.Equal(t, before, *a)
}

func TestEliminationOrderDoesNotChangeLanguage(t *testing.T) {
	a := automaton(0, []int{0, 1, 2, 3, 4, 5}, []int{5},
		edge(0, 1, "a"), edge(0, 2, "b"),
		edge(1, 2, "a"), edge(2, 1, "b"),
		edge(1, 3, "b"), edge(2, 4, "a"),
		edge(3, 3, "a"), edge(3, 4, "b"), edge(4, 3, "a"),
		edge(3, 5, ""), edge(4, 5, "b"), edge(5, 1, "a"))

	for _, perm := range permutations([]int{1, 2, 3, 4}) {
		t.Run(fmt.Sprint(perm), func(t *testing.T) {
			r, err := gnfa.ToRegex(a, gnfa.WithOrder(gnfa.Sequence(perm...)))
			require.NoError(t, err)
			assertSameLanguage(t, a, r)
		})
	}
}

func permutations(ids []int) [][]int {
	if len(ids) <= 1 {
		return [][]int{append([]int(nil), ids...)}
	}
	var res [][]int
	for i := range ids {
		rest := make([]int, 0, len(ids)-1)
		rest = append(rest, ids[:i]...)
		rest = append(rest, ids[i+1:]...)
		for _, p := range permutations(rest) {
			res = append(res, append([]int{ids[i]}, p...))
		}
	}
	return res
}

var labels = []string{"a", "b", "a", "b", "", "ab", "a|b"}

func randomAutomaton(rnd *rand.Rand) *gnfa.Automaton {
	n := 1 + rnd.Intn(5)
	a := &gnfa.Automaton{Start: rnd.Intn(n)}
	for id := 0; id < n; id++ {
		a.States = append(a.States, gnfa.State{ID: id, Accept: rnd.Intn(3) == 0})
	}
	for i := rnd.Intn(2 * n); i >= 0; i-- {
		a.AddTransition(rnd.Intn(n), rnd.Intn(n), labels[rnd.Intn(len(labels))])
	}
	return a
}

func TestConvertRandomAutomata(t *testing.T) {
	configs := map[string][]gnfa.Option{
		"default":      nil,
		"fewest-edges": {gnfa.WithOrder(gnfa.FewestEdges)},
		"trim":         {gnfa.WithTrim()},
		"fresh-start":  {gnfa.WithFreshStart()},
		"fresh-accept": {gnfa.WithFreshAccept()},
		"all":          {gnfa.WithTrim(), gnfa.WithFreshStart(), gnfa.WithFreshAccept(), gnfa.WithOrder(gnfa.FewestEdges)},
	}

	rnd := rand.New(rand.NewSource(20261014))
	for i := 0; i < 150; i++ {
		a := randomAutomaton(rnd)
		for name, opts := range configs {
			r, err := gnfa.ToRegex(a, opts...)
			require.NoError(t, err)
			if !t.Run(fmt.Sprintf("%d/%s", i, name), func(t *testing.T) {
				assertSameLanguage(t, a, r)
			}) {
				t.Logf("automaton: %+v", *a)
			}
		}
	}
}

func TestFreshAcceptAvoidsBackEdge(t *testing.T) {
	a := automaton(0, []int{0, 1}, []int{1}, edge(0, 1, "a"), edge(1, 0, "b"))
	var last gnfa.Step
	r, err := gnfa.ToRegex(a, gnfa.WithFreshAccept(), gnfa.WithStepCallback(func(g *gnfa.GNFA, step gnfa.Step) {
		if step.Phase != gnfa.PhaseTwoState {
			return
		}
		last = step
		_, back := g.Label(g.AcceptStates()[0], g.Start())
		assert.False(t, back)
	}))
	require.NoError(t, err)
	assert.Equal(t, gnfa.PhaseTwoState, last.Phase)
	assertDenotes(t, r, "a(ba)*")
}
