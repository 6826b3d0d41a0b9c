package lua

import (
	"fmt"
	"strings"

	"github.com/monkeys-engine/monkeys/internal/codegen/schema"
)

// NameEntry maps the runtime name of a component to the pointer type the
// scripting side casts component memory to.
type NameEntry struct {
	Name string
	Type string
}

// NameTable returns one entry per component in declaration order.
func NameTable(components []schema.Component) []NameEntry {
	out := make([]NameEntry, 0, len(components))
	for _, c := range components {
		out = append(out, NameEntry{
			Name: c.QualifiedName(),
			Type: "struct " + StructName(c.Namespace, c.Name) + "*",
		})
	}
	return out
}

func nameTableText(entries []NameEntry) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("\t[%q] = %q,", e.Name, e.Type)
	}
	return strings.Join(lines, "\n")
}
