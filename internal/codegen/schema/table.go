package schema

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Table is a key/value node of a parsed schema document that remembers the
// order in which its keys were declared.
//
// Values are string, int64, float64, bool, *Table or []any.
type Table struct {
	entries *orderedmap.OrderedMap[string, any]
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{entries: orderedmap.New[string, any]()}
}

// Set stores v under key. Re-setting a key keeps its original position.
func (t *Table) Set(key string, v any) {
	t.entries.Set(key, v)
}

// Get returns the value stored under key.
func (t *Table) Get(key string) (any, bool) {
	return t.entries.Get(key)
}

// Has reports whether key is present.
func (t *Table) Has(key string) bool {
	_, ok := t.entries.Get(key)
	return ok
}

// Len returns the number of keys.
func (t *Table) Len() int {
	return t.entries.Len()
}

// Keys returns the keys in declaration order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, t.entries.Len())
	for pair := t.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Each calls fn for every entry in declaration order and stops at the first
// error.
func (t *Table) Each(fn func(key string, v any) error) error {
	for pair := t.entries.Oldest(); pair != nil; pair = pair.Next() {
		if err := fn(pair.Key, pair.Value); err != nil {
			return err
		}
	}
	return nil
}

// ToMap converts the table into plain maps, recursively. Order is lost.
func (t *Table) ToMap() map[string]any {
	out := make(map[string]any, t.entries.Len())
	for pair := t.entries.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = plain(pair.Value)
	}
	return out
}

func plain(v any) any {
	switch v := v.(type) {
	case *Table:
		return v.ToMap()
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = plain(e)
		}
		return out
	default:
		return v
	}
}

// kindName names the kind of a document value for error messages.
func kindName(v any) string {
	switch v.(type) {
	case nil:
		return "nothing"
	case string:
		return "string"
	case int64:
		return "integer"
	case float64:
		return "float"
	case bool:
		return "boolean"
	case *Table:
		return "table"
	case []any:
		return "array"
	default:
		return "value"
	}
}
