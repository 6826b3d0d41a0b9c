package cpp

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/monkeys-engine/monkeys/internal/codegen/common"
	"github.com/monkeys-engine/monkeys/internal/codegen/generator/record"
	"github.com/monkeys-engine/monkeys/internal/codegen/meta"
	"github.com/monkeys-engine/monkeys/internal/codegen/types"
)

const headerTemplate = `{{.Header}}
#pragma once

#include <cstddef>
#include <cstdint>
#include <entt/entt.hpp>
#include <glm/glm.hpp>
#include <monkeys/resources.hpp>
{{- range .PointerDeclarations}}
struct {{.}};
{{- end}}

namespace components::{{.Namespace}} {
{{.Components}}
} // components::{{.Namespace}}
`

// ComponentStructs renders every component of md as C++ structs. Default
// group components sit directly in the document namespace, grouped ones in a
// nested namespace block per sub-namespace, in first-seen order.
func ComponentStructs(md *meta.Metadata) (string, error) {
	var b strings.Builder
	for _, c := range md.Groups.Default {
		s, err := record.Emit(types.Native, c, record.Options{
			Name:        record.TypeName(c.Name),
			Indent:      "\t",
			Description: c.Description,
		}, md.Foreign)
		if err != nil {
			return "", err
		}
		b.WriteString("\n")
		b.WriteString(s)
		b.WriteString("\n")
	}
	for _, g := range md.Groups.Named() {
		fmt.Fprintf(&b, "\n\tnamespace %s {\n", g.Ident)
		for _, c := range g.Components {
			s, err := record.Emit(types.Native, c, record.Options{
				Name:        record.TypeName(c.Name),
				Indent:      "\t\t",
				Description: c.Description,
			}, md.Foreign)
			if err != nil {
				return "", err
			}
			b.WriteString("\n")
			b.WriteString(s)
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "\n\t} // %s\n", g.Ident)
	}
	return b.String(), nil
}

// GenerateHeader renders <namespace>.hpp holding the component structs and
// forward declarations of every foreign pointer type they reference.
func GenerateHeader(logger *slog.Logger, outputDir string, md *meta.Metadata) ([]common.Artifact, error) {
	namespace := md.Groups.DefaultNamespace
	logger.Debug("Generating component header", "namespace", namespace, "components", md.Groups.Len())

	components, err := ComponentStructs(md)
	if err != nil {
		return nil, err
	}

	data := struct {
		Header              string
		Namespace           string
		PointerDeclarations []string
		Components          string
	}{
		Header:              writeFileHeader(),
		Namespace:           namespace,
		PointerDeclarations: md.Foreign.Names(),
		Components:          components,
	}
	text, err := common.Render("components.hpp", headerTemplate, tplFuncs(), data)
	if err != nil {
		return nil, err
	}
	return []common.Artifact{{Path: filepath.Join(outputDir, namespace+".hpp"), Content: text}}, nil
}
