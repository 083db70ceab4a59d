package enum

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the set as an ordered array of name/value pairs. An
// object would lose declaration order through Go's map encoding, so the
// array form is the canonical JSON shape.
func (s *Set[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Variants())
}

// UnmarshalJSON always fails: decoding into a set would mutate a variant
// set that is fixed at its declaration site.
func (s *Set[T]) UnmarshalJSON([]byte) error {
	return ErrNewInstance
}

// MarshalYAML encodes the set as a mapping node with keys in declaration
// order, which YAML preserves.
func (s *Set[T]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, v := range s.variants {
		var key, val yaml.Node
		if err := key.Encode(v.Name); err != nil {
			return nil, err
		}
		if err := val.Encode(v.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &key, &val)
	}
	return node, nil
}

// UnmarshalYAML always fails, for the same reason as UnmarshalJSON.
func (s *Set[T]) UnmarshalYAML(*yaml.Node) error {
	return ErrNewInstance
}
