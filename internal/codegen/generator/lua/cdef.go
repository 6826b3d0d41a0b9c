package lua

import (
	"strings"

	"github.com/monkeys-engine/monkeys/internal/codegen/generator/record"
	"github.com/monkeys-engine/monkeys/internal/codegen/meta"
	"github.com/monkeys-engine/monkeys/internal/codegen/types"
)

// ComponentCdefs renders every component of md as a flat cdef struct: the
// default group first, then each named group in first-seen order.
func ComponentCdefs(md *meta.Metadata) (string, error) {
	var b strings.Builder
	for _, c := range md.Groups.Default {
		s, err := record.Emit(types.Scripting, c, record.Options{
			Name:   StructName("", c.Name),
			Indent: "\t",
		}, md.Foreign)
		if err != nil {
			return "", err
		}
		b.WriteString("\n")
		b.WriteString(s)
	}

	named := md.Groups.Named()
	if len(named) > 0 {
		b.WriteString("\n")
	}
	for _, g := range named {
		for _, c := range g.Components {
			s, err := record.Emit(types.Scripting, c, record.Options{
				Name:   StructName(g.Namespace, c.Name),
				Indent: "\t",
			}, md.Foreign)
			if err != nil {
				return "", err
			}
			b.WriteString("\n")
			b.WriteString(s)
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}
