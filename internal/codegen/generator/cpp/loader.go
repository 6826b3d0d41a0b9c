package cpp

import (
	"fmt"
	"strings"

	"github.com/monkeys-engine/monkeys/internal/codegen/generator/record"
	"github.com/monkeys-engine/monkeys/internal/codegen/generr"
	"github.com/monkeys-engine/monkeys/internal/codegen/schema"
	"github.com/monkeys-engine/monkeys/internal/codegen/types"
)

// LoaderExpr returns the C++ expression that reads field f out of the
// toml::value named "table", plus any local bindings the expression needs,
// in the order they must be declared.
func LoaderExpr(f schema.Field) (bindings []string, expr string, err error) {
	if f.Type.Kind == schema.ForeignPointer {
		// foreign types are never parsed from data
		return nil, "nullptr", nil
	}

	key := f.Name
	tag := f.Type.Tag
	switch {
	case tag == types.HashedString:
		return nil, fmt.Sprintf("entt::hashed_string{%s.c_str()}", findString("table", key)), nil
	case tag == types.Ref, tag == types.Signal:
		return nil, hashValue(key), nil
	case tag == types.Resource, tag == types.Texture, tag == types.Mesh:
		return nil, fmt.Sprintf("engine->findResource(%s)", hashValue(key)), nil
	case tag.Composite():
		typ, err := types.Lookup(types.Native, tag)
		if err != nil {
			return nil, "", err
		}
		local := record.FieldIdent(f.Name) + "_table"
		binding := fmt.Sprintf("auto %s = table.at(%q);", local, key)
		members := tag.Members()
		args := make([]string, len(members))
		for i, m := range members {
			args[i] = fmt.Sprintf("float(toml::find<toml::floating>(%s, %q))", local, m)
		}
		return []string{binding}, fmt.Sprintf("%s{%s}", typ, strings.Join(args, ", ")), nil
	case tag.Integer(), tag == types.Entity:
		expr, err = cast(tag, "toml::integer", key)
		return nil, expr, err
	case tag == types.Float, tag == types.Double:
		expr, err = cast(tag, "toml::floating", key)
		return nil, expr, err
	case tag == types.Bool:
		expr, err = cast(tag, "toml::boolean", key)
		return nil, expr, err
	}

	e := generr.New(generr.UnknownType, fmt.Sprintf("no loader for field data type: %s", f.Type.Name))
	e.Field = f.Name
	return nil, "", e
}

func cast(tag types.Tag, tomlType, key string) (string, error) {
	typ, err := types.Lookup(types.Native, tag)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s(toml::find<%s>(table, %q))", typ, tomlType, key), nil
}

func findString(table, key string) string {
	return fmt.Sprintf("toml::find<std::string>(%s, %q)", table, key)
}

// ref and signal share this on purpose: both store only the hash value.
func hashValue(key string) string {
	return fmt.Sprintf("entt::hashed_string::value(%s.c_str())", findString("table", key))
}
