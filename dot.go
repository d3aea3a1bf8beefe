package gnfa

import (
	"fmt"
	"strings"
)

// Dot Renders the GNFA in graphviz dot syntax. Epsilon edges are labelled ''.
func (g *GNFA) Dot() string {
	res := make([]string, 0, g.index.Len()+g.NumStates()+2)
	res = append(res, "\trankdir = LR;")

	for _, e := range g.Edges() {
		label := e.Label
		if len(label) == 0 {
			label = "''"
		}
		res = append(res, fmt.Sprintf("\t\"%d\" -> \"%d\" [label=%q];", e.From, e.To, label))
	}

	if g.NumStates() > 0 {
		res = append(res, "\t\"__start\" [shape=point];")
		res = append(res, fmt.Sprintf("\t\"__start\" -> \"%d\";", g.Start()))
	}
	for _, id := range g.AcceptStates() {
		res = append(res, fmt.Sprintf("\t\"%d\" [peripheries=2];", id))
	}

	return "digraph g {\n" + strings.Join(res, "\n") + "\n}\n"
}
