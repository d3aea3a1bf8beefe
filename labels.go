package gnfa

import "strings"

// Concat Returns the concatenation of r and s. The empty expression denotes
// epsilon and is the identity of concatenation. An operand whose top level is
// an alternation is grouped so it keeps its meaning next to the other operand.
func Concat(r, s string) string {
	if r == "" {
		return s
	}
	if s == "" {
		return r
	}
	return group(r) + group(s)
}

// Alt Returns the alternation (r)|(s). An empty operand renders as () and
// stands for epsilon.
func Alt(r, s string) string {
	var b strings.Builder
	b.Grow(len(r) + len(s) + 5)
	b.WriteByte('(')
	b.WriteString(r)
	b.WriteString(")|(")
	b.WriteString(s)
	b.WriteByte(')')
	return b.String()
}

// Star Returns the Kleene closure (r)*. Epsilon closed under star is epsilon,
// so Star("") is "".
func Star(r string) string {
	if r == "" {
		return ""
	}
	return "(" + r + ")*"
}

// mergeLabels combines the labels of two parallel edges. Two epsilon edges
// collapse to a single epsilon edge.
func mergeLabels(r, s string) string {
	if r == "" && s == "" {
		return ""
	}
	return Alt(r, s)
}

func group(r string) string {
	if hasTopLevelAlt(r) {
		return "(" + r + ")"
	}
	return r
}

// hasTopLevelAlt reports whether r contains a '|' outside any parentheses.
// A backslash escapes the following rune.
func hasTopLevelAlt(r string) bool {
	depth := 0
	escaped := false
	for _, c := range r {
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case '|':
			if depth == 0 {
				return true
			}
		}
	}
	return false
}
