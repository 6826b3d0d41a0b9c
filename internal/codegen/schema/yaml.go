package schema

import (
	"errors"
	"fmt"

	yaml "gopkg.in/yaml.v3"
)

// decodeYAML parses a YAML document into a Table tree. Mapping order is taken
// from the node tree, which yaml.v3 keeps in source order.
func decodeYAML(data []byte) (*Table, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return NewTable(), nil
	}
	v, err := yamlValue(doc.Content[0])
	if err != nil {
		return nil, err
	}
	t, ok := v.(*Table)
	if !ok {
		return nil, fmt.Errorf("line %d: document root must be a mapping, got %s", doc.Content[0].Line, kindName(v))
	}
	return t, nil
}

func yamlValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	case yaml.MappingNode:
		t := NewTable()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
			}
			if t.Has(k.Value) {
				return nil, fmt.Errorf("line %d: key %q defined twice", k.Line, k.Value)
			}
			val, err := yamlValue(v)
			if err != nil {
				return nil, err
			}
			t.Set(k.Value, val)
		}
		return t, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := yamlValue(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		switch s := v.(type) {
		case int:
			return int64(s), nil
		case uint64:
			return nil, fmt.Errorf("line %d: integer %d overflows int64", n.Line, s)
		case nil:
			return nil, nil
		default:
			return v, nil
		}
	}
	return nil, errors.New("unsupported YAML node")
}
