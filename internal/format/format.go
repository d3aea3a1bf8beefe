// Package format reads automaton descriptions for the nfa2regex command.
//
// Two encodings are understood. The text encoding lists one declaration per
// line:
//
//	# binary strings ending in 01
//	states 3
//	start 0
//	accept 2
//	0 -> 0 "0|1"
//	0 -> 1 "0"
//	1 -> 2 "1"
//	2 -> 2            # no label: epsilon
//
// The YAML encoding (JSON is accepted too) mirrors gnfa.Automaton:
//
//	start: 0
//	accept: [2]
//	edges:
//	  - {from: 0, to: 1, label: a}
//
// In both encodings the state list may be left out, in which case it is
// inferred from the start state, the accept states and the edges.
package format

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/geange/gnfa"
)

// Format An automaton encoding.
type Format string

const (
	Text Format = "text"
	YAML Format = "yaml"
)

// ErrUnknownFormat is returned for a Format other than Text or YAML.
var ErrUnknownFormat = errors.New("format: unknown format")

// Detect Picks the format from the file extension; anything that is not
// .yaml, .yml or .json is read as text.
func Detect(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return YAML
	}
	return Text
}

// Parse Decode data in format f. name is used in error messages.
func Parse(name string, data []byte, f Format) (*gnfa.Automaton, error) {
	switch f {
	case Text:
		return ParseText(name, string(data))
	case YAML:
		return ParseYAML(name, data)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownFormat, f)
}

// Load Read and decode the file at path, detecting its format.
func Load(path string) (*gnfa.Automaton, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, data, Detect(path))
}

// inferStates fills a.States from every identifier a mentions.
func inferStates(a *gnfa.Automaton) {
	seen := map[int]struct{}{a.Start: {}}
	for _, id := range a.Accept {
		seen[id] = struct{}{}
	}
	for _, e := range a.Edges {
		seen[e.From] = struct{}{}
		seen[e.To] = struct{}{}
	}
	ids := maps.Keys(seen)
	slices.Sort(ids)
	a.States = make([]gnfa.State, len(ids))
	for i, id := range ids {
		a.States[i] = gnfa.State{ID: id}
	}
}
