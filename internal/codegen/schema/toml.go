package schema

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2/unstable"
)

// decodeTOML parses a TOML document into a Table tree. The low level parser is
// used instead of toml.Unmarshal because field declaration order is part of
// the generated output.
func decodeTOML(data []byte) (*Table, error) {
	root := NewTable()
	current := root

	p := unstable.Parser{}
	p.Reset(data)
	for p.NextExpression() {
		e := p.Expression()
		switch e.Kind {
		case unstable.KeyValue:
			if err := setKeyValue(current, e); err != nil {
				return nil, err
			}
		case unstable.Table:
			t, err := descend(root, keyParts(e.Key()), false)
			if err != nil {
				return nil, err
			}
			current = t
		case unstable.ArrayTable:
			t, err := descend(root, keyParts(e.Key()), true)
			if err != nil {
				return nil, err
			}
			current = t
		}
	}
	if err := p.Error(); err != nil {
		var perr *unstable.ParserError
		if errors.As(err, &perr) && len(perr.Highlight) > 0 {
			r := p.Range(perr.Highlight)
			line := bytes.Count(data[:r.Offset], []byte("\n")) + 1
			return nil, fmt.Errorf("line %d: %s", line, perr.Message)
		}
		return nil, err
	}
	return root, nil
}

func keyParts(it unstable.Iterator) []string {
	var parts []string
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return parts
}

func setKeyValue(t *Table, kv *unstable.Node) error {
	parts := keyParts(kv.Key())
	parent, err := descend(t, parts[:len(parts)-1], false)
	if err != nil {
		return err
	}
	last := parts[len(parts)-1]
	if parent.Has(last) {
		return fmt.Errorf("key %q defined twice", strings.Join(parts, "."))
	}
	v, err := tomlValue(kv.Value())
	if err != nil {
		return fmt.Errorf("key %q: %w", strings.Join(parts, "."), err)
	}
	parent.Set(last, v)
	return nil
}

// descend walks path below t creating tables on the way. When appendArray is
// set the final element is an array of tables and a new entry is appended.
func descend(t *Table, path []string, appendArray bool) (*Table, error) {
	for i, part := range path {
		final := i == len(path)-1
		v, ok := t.Get(part)
		if final && appendArray {
			next := NewTable()
			switch arr := v.(type) {
			case nil:
				t.Set(part, []any{next})
			case []any:
				t.Set(part, append(arr, next))
			default:
				return nil, fmt.Errorf("key %q is a %s, not an array of tables", strings.Join(path, "."), kindName(v))
			}
			return next, nil
		}
		if !ok {
			next := NewTable()
			t.Set(part, next)
			t = next
			continue
		}
		switch sub := v.(type) {
		case *Table:
			t = sub
		case []any:
			if len(sub) == 0 {
				return nil, fmt.Errorf("key %q is an empty array", strings.Join(path[:i+1], "."))
			}
			last, isTable := sub[len(sub)-1].(*Table)
			if !isTable {
				return nil, fmt.Errorf("key %q is not an array of tables", strings.Join(path[:i+1], "."))
			}
			t = last
		default:
			return nil, fmt.Errorf("key %q is a %s, not a table", strings.Join(path[:i+1], "."), kindName(v))
		}
	}
	return t, nil
}

func tomlValue(n *unstable.Node) (any, error) {
	switch n.Kind {
	case unstable.String:
		return string(n.Data), nil
	case unstable.Bool:
		return string(n.Data) == "true", nil
	case unstable.Integer:
		i, err := strconv.ParseInt(string(n.Data), 0, 64)
		if err != nil {
			return nil, err
		}
		return i, nil
	case unstable.Float:
		f, err := strconv.ParseFloat(strings.ReplaceAll(string(n.Data), "_", ""), 64)
		if err != nil {
			return nil, err
		}
		return f, nil
	case unstable.LocalDate, unstable.LocalTime, unstable.LocalDateTime, unstable.DateTime:
		return string(n.Data), nil
	case unstable.Array:
		out := []any{}
		it := n.Children()
		for it.Next() {
			v, err := tomlValue(it.Node())
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case unstable.InlineTable:
		t := NewTable()
		it := n.Children()
		for it.Next() {
			if err := setKeyValue(t, it.Node()); err != nil {
				return nil, err
			}
		}
		return t, nil
	}
	return nil, fmt.Errorf("unsupported value kind %s", n.Kind)
}
