package schema

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/monkeys-engine/monkeys/internal/codegen/generr"
)

type fieldSpec struct {
	Type string         `mapstructure:"type"`
	Meta map[string]any `mapstructure:",remain"`
}

// parseField accepts either a bare tag string or a table with a "type" key.
func parseField(name string, v any) (Field, error) {
	fail := func(kind generr.Kind, detail string, err error) (Field, error) {
		e := generr.Wrap(kind, err, detail)
		e.Field = name
		return Field{}, e
	}

	var (
		spec fieldSpec
		desc string
	)
	switch d := v.(type) {
	case string:
		desc = d
	case *Table:
		if !d.Has("type") {
			return fail(generr.MissingField, fmt.Sprintf("\"%s\" or \"%s.type\" must be a string naming the field type", name, name), nil)
		}
		if err := mapstructure.Decode(d.ToMap(), &spec); err != nil {
			return fail(generr.WrongKind, "'type' property of field must be a string", err)
		}
		desc = spec.Type
	default:
		return fail(generr.WrongKind, fmt.Sprintf("field type must be a string or a table, got %s", kindName(v)), nil)
	}

	ref := ParseTypeRef(desc)
	if ref.Kind == ForeignPointer && ref.Name == "" {
		return fail(generr.MissingField, "ptr:<type-name> must include a type name", nil)
	}
	return Field{Name: name, Type: ref, Meta: spec.Meta}, nil
}
