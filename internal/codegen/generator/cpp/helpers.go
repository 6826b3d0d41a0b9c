package cpp

import (
	"strings"
	"text/template"

	"github.com/monkeys-engine/monkeys/internal/codegen/common"
	"github.com/monkeys-engine/monkeys/internal/codegen/generator/record"
)

func tplFuncs() template.FuncMap {
	return template.FuncMap{
		"pascalcase": common.ToPascalCase,
		"snakecase":  common.ToSnakeCase,
		"fieldident": record.FieldIdent,
		"join":       strings.Join,
	}
}

func writeFileHeader() string {
	return common.FileHeader("//", "C++")
}

// nativeNamespace is the C++ namespace path of a record below components::.
func nativeNamespace(docNamespace, sub string) string {
	if sub == "" {
		return docNamespace
	}
	return docNamespace + "::" + common.ToSnakeCase(sub)
}
