package lua

import (
	"strings"
	"text/template"

	"github.com/monkeys-engine/monkeys/internal/codegen/common"
)

func tplFuncs() template.FuncMap {
	return template.FuncMap{
		"join": strings.Join,
	}
}

func writeFileHeader() string {
	return common.FileHeader("--", "Lua")
}

// StructName is the flattened cdef name of a component. LuaJIT has a single
// global cdef namespace, so the group is folded into the identifier.
func StructName(namespace, name string) string {
	group := "Core"
	if namespace != "" {
		group = common.ToSnakeCase(namespace)
	}
	return "Component_" + group + "_" + common.ToPascalCase(name)
}
