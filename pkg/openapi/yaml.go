package openapi

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML renders the spec as block-style YAML, preserving the key order
// of the JSON rendering.
func MarshalYAML(spec *Spec) ([]byte, error) {
	data, err := MarshalJSON(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal spec: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode spec: %w", err)
	}
	clearStyle(&doc)

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return out, nil
}

// clearStyle drops the flow and quoting styles inherited from JSON so the
// encoder picks block style and quotes only where a scalar would re-resolve.
func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		clearStyle(child)
	}
}
