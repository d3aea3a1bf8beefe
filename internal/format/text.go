package format

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/geange/gnfa"
)

// ErrMissingStart is returned for a text description without a start line.
var ErrMissingStart = errors.New("format: missing start declaration")

type textFile struct {
	Decls []*textDecl `parser:"@@*"`
}

type textDecl struct {
	Pos lexer.Position

	States *int      `parser:"  'states' @Int"`
	Start  *int      `parser:"| 'start' @Int"`
	Accept []int     `parser:"| 'accept' @Int (',' @Int)*"`
	Edge   *textEdge `parser:"| @@"`
}

type textEdge struct {
	From  int     `parser:"@Int '->'"`
	To    int     `parser:"@Int"`
	Label *string `parser:"@(String | Ident)?"`
}

var textLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "Keyword", Pattern: `(states|start|accept)\b`},
	{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
	{Name: "Punct", Pattern: `,`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var textParser = participle.MustBuild[textFile](
	participle.Lexer(textLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.Unquote("String"),
)

// ParseText Decode the text encoding.
func ParseText(name, src string) (*gnfa.Automaton, error) {
	file, err := textParser.ParseString(name, src)
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}

	a := gnfa.NewAutomaton()
	declared := -1
	haveStart := false
	for _, d := range file.Decls {
		switch {
		case d.States != nil:
			if declared != -1 {
				return nil, fmt.Errorf("format: %s: states declared twice", d.Pos)
			}
			if *d.States < 0 {
				return nil, fmt.Errorf("format: %s: negative state count %d", d.Pos, *d.States)
			}
			declared = *d.States
		case d.Start != nil:
			if haveStart {
				return nil, fmt.Errorf("format: %s: start declared twice", d.Pos)
			}
			a.Start, haveStart = *d.Start, true
		case d.Accept != nil:
			a.Accept = append(a.Accept, d.Accept...)
		case d.Edge != nil:
			label := ""
			if d.Edge.Label != nil {
				label = *d.Edge.Label
			}
			a.AddTransition(d.Edge.From, d.Edge.To, label)
		}
	}

	if !haveStart {
		if len(file.Decls) == 0 {
			return a, nil
		}
		return nil, fmt.Errorf("%w in %s", ErrMissingStart, name)
	}
	if declared == -1 {
		inferStates(a)
	} else {
		for id := 0; id < declared; id++ {
			a.CreateState()
		}
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("format: %s: %w", name, err)
	}
	return a, nil
}
