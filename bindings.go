package rowan

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Bindings files persist a ButtonMapping as YAML: one entry per action, in
// mapping order, each a flow list of button text forms.
//
//	pan_up: [key:W, pad:11]
//	place: [mouse:left]
//
// Actions are caller-defined values, so the caller supplies the two sides of
// the name contract: a name function when saving and a parse function when
// loading. Names must be unique per action set.

// MarshalBindings encodes the mapping in entry order.
func MarshalBindings[A comparable](m *ButtonMapping[A], name func(A) string) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range m.Entries() {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name(e.Action())}
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, b := range e.Buttons() {
			seq.Content = append(seq.Content, &yaml.Node{
				Kind: yaml.ScalarNode, Tag: "!!str", Value: b.String(),
			})
		}
		root.Content = append(root.Content, keyNode, seq)
	}
	return yaml.Marshal(root)
}

// UnmarshalBindings decodes a bindings file into a fresh ButtonMapping,
// preserving file order. Unknown action names, malformed buttons, duplicate
// actions, and buttons claimed by two actions are all errors: a corrupt
// bindings file should fall back to the default mapping, not half-load.
func UnmarshalBindings[A comparable](data []byte, parse func(string) (A, bool)) (*ButtonMapping[A], error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("rowan: failed to parse bindings: %w", err)
	}
	if len(doc.Content) == 0 {
		return NewButtonMapping[A](), nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("rowan: bindings root must be a mapping, got %s", nodeKindName(root.Kind))
	}

	m := NewButtonMapping[A]()
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]
		action, ok := parse(keyNode.Value)
		if !ok {
			return nil, fmt.Errorf("rowan: bindings line %d: unknown action %q", keyNode.Line, keyNode.Value)
		}
		var buttons []Button
		if err := valNode.Decode(&buttons); err != nil {
			return nil, fmt.Errorf("rowan: bindings for action %q: %w", keyNode.Value, err)
		}
		if !m.InsertMapping(NewMappedButtons(action, buttons...)) {
			return nil, fmt.Errorf("rowan: bindings line %d: action %q conflicts with an earlier entry", keyNode.Line, keyNode.Value)
		}
	}
	return m, nil
}

func nodeKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
