package format

import (
	"fmt"

	"sigs.k8s.io/yaml"

	"github.com/geange/gnfa"
)

// ParseYAML Decode the YAML (or JSON) encoding. Unknown fields are rejected.
func ParseYAML(name string, data []byte) (*gnfa.Automaton, error) {
	a := gnfa.NewAutomaton()
	if err := yaml.UnmarshalStrict(data, a); err != nil {
		return nil, fmt.Errorf("format: %s: %w", name, err)
	}
	if len(a.States) == 0 && (len(a.Edges) > 0 || len(a.Accept) > 0) {
		inferStates(a)
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("format: %s: %w", name, err)
	}
	return a, nil
}

// MarshalYAML Encode a in the YAML encoding.
func MarshalYAML(a *gnfa.Automaton) ([]byte, error) {
	return yaml.Marshal(a)
}
