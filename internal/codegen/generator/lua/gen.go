// Package lua renders the scripting backend: LuaJIT FFI cdef declarations
// for components and events, plus the lookup tables scripts use to find the
// cdef type of a component or event by name.
package lua

import (
	"log/slog"
	"path/filepath"

	"github.com/monkeys-engine/monkeys/internal/codegen/common"
	"github.com/monkeys-engine/monkeys/internal/codegen/meta"
)

const componentsTemplate = `{{.Header}}
local ffi = require("ffi")

ffi.cdef[[
{{- range .PointerDeclarations}}
	struct {{.}};
{{- end}}
{{.Cdef}}
]]

return {
{{.NameTable}}
}
`

// Generate renders <name>.lua holding the component cdefs and the component
// name table.
func Generate(logger *slog.Logger, outputDir string, md *meta.Metadata) ([]common.Artifact, error) {
	namespace := md.Groups.DefaultNamespace
	logger.Debug("Generating lua definitions", "namespace", namespace, "components", md.Groups.Len())

	cdef, err := ComponentCdefs(md)
	if err != nil {
		return nil, err
	}

	data := struct {
		Header              string
		PointerDeclarations []string
		Cdef                string
		NameTable           string
	}{
		Header:              writeFileHeader(),
		PointerDeclarations: md.Foreign.Names(),
		Cdef:                cdef,
		NameTable:           nameTableText(NameTable(md.Document.Components)),
	}
	text, err := common.Render("components.lua", componentsTemplate, tplFuncs(), data)
	if err != nil {
		return nil, err
	}
	base := common.ComponentsBaseName(namespace)
	return []common.Artifact{{Path: filepath.Join(outputDir, base+".lua"), Content: text}}, nil
}
