package langtest

import (
	"fmt"
	"io"
	"strings"
)

// frag is a piece of machine with one entry and one exit state.
type frag struct {
	in, out int
}

// regExp parses the expression syntax produced by gnfa: literal runes,
// '|', '*', parentheses and '\' escapes. Any alternative may be empty.
type regExp struct {
	originalString []rune
	pos            int
	m              *Machine
}

// CompileRegex Returns a machine accepting the language of expr. The empty
// expression denotes epsilon.
func CompileRegex(expr string) (*Machine, error) {
	m := newMachine()
	f, err := m.parse(expr)
	if err != nil {
		return nil, err
	}
	m.start = f.in
	m.accept.Set(uint(f.out))
	return m, nil
}

// MustCompileRegex Like CompileRegex but panics on a syntax error.
func MustCompileRegex(expr string) *Machine {
	m, err := CompileRegex(expr)
	if err != nil {
		panic(err)
	}
	return m
}

// parse adds the states for expr to m and returns their fragment.
func (m *Machine) parse(expr string) (frag, error) {
	r := &regExp{originalString: []rune(expr), m: m}
	f, err := r.parseUnionExp()
	if err != nil {
		return frag{}, err
	}
	if r.more() {
		return frag{}, fmt.Errorf("end-of-string expected at position %d in %q", r.pos, expr)
	}
	return f, nil
}

func (r *regExp) more() bool {
	return r.pos < len(r.originalString)
}

func (r *regExp) peek(s string) bool {
	return r.more() && strings.ContainsRune(s, r.originalString[r.pos])
}

func (r *regExp) match(c rune) bool {
	if r.more() && r.originalString[r.pos] == c {
		r.pos++
		return true
	}
	return false
}

func (r *regExp) next() (rune, error) {
	if !r.more() {
		return 0, io.EOF
	}
	ch := r.originalString[r.pos]
	r.pos++
	return ch, nil
}

func (r *regExp) parseUnionExp() (frag, error) {
	e, err := r.parseConcatExp()
	if err != nil {
		return frag{}, err
	}
	for r.match('|') {
		e2, err := r.parseConcatExp()
		if err != nil {
			return frag{}, err
		}
		e = r.makeUnion(e, e2)
	}
	return e, nil
}

func (r *regExp) parseConcatExp() (frag, error) {
	e := r.makeEmptyString()
	for r.more() && !r.peek(")|") {
		e2, err := r.parseRepeatExp()
		if err != nil {
			return frag{}, err
		}
		e = r.makeConcatenation(e, e2)
	}
	return e, nil
}

func (r *regExp) parseRepeatExp() (frag, error) {
	e, err := r.parseSimpleExp()
	if err != nil {
		return frag{}, err
	}
	for r.match('*') {
		e = r.makeRepeat(e)
	}
	return e, nil
}

func (r *regExp) parseSimpleExp() (frag, error) {
	if r.match('(') {
		if r.match(')') {
			return r.makeEmptyString(), nil
		}
		e, err := r.parseUnionExp()
		if err != nil {
			return frag{}, err
		}
		if !r.match(')') {
			return frag{}, fmt.Errorf("expected ')' at position %d", r.pos)
		}
		return e, nil
	}
	if r.peek("*") {
		return frag{}, fmt.Errorf("nothing to repeat at position %d", r.pos)
	}
	r.match('\\')
	c, err := r.next()
	if err != nil {
		return frag{}, fmt.Errorf("character expected at position %d: %w", r.pos, err)
	}
	return r.makeChar(c), nil
}

func (r *regExp) makeChar(c rune) frag {
	in, out := r.m.createState(), r.m.createState()
	r.m.addArc(in, out, c)
	return frag{in, out}
}

func (r *regExp) makeEmptyString() frag {
	s := r.m.createState()
	return frag{s, s}
}

func (r *regExp) makeConcatenation(e1, e2 frag) frag {
	r.m.addEpsilon(e1.out, e2.in)
	return frag{e1.in, e2.out}
}

func (r *regExp) makeUnion(e1, e2 frag) frag {
	in, out := r.m.createState(), r.m.createState()
	r.m.addEpsilon(in, e1.in)
	r.m.addEpsilon(in, e2.in)
	r.m.addEpsilon(e1.out, out)
	r.m.addEpsilon(e2.out, out)
	return frag{in, out}
}

func (r *regExp) makeRepeat(e frag) frag {
	s := r.m.createState()
	r.m.addEpsilon(s, e.in)
	r.m.addEpsilon(e.out, s)
	return frag{s, s}
}
