// Package cpp renders the native backend: C++ component structs
// (<namespace>.hpp), component registration code with TOML loaders
// (<namespace>.cpp) and event structs (events.hpp).
package cpp

import (
	"log/slog"
	"path/filepath"

	"github.com/monkeys-engine/monkeys/internal/codegen/common"
	"github.com/monkeys-engine/monkeys/internal/codegen/generator/record"
	"github.com/monkeys-engine/monkeys/internal/codegen/schema"
	"github.com/monkeys-engine/monkeys/internal/codegen/types"
)

const eventsTemplate = `{{.Header}}
#pragma once

#include <cstddef>
#include <cstdint>
#include <entt/entt.hpp>
#include <glm/glm.hpp>

namespace events {
{{join .Events "\n"}}
}
`

// GenerateEvents renders events.hpp with one struct per event.
func GenerateEvents(logger *slog.Logger, outputDir string, doc *schema.EventDocument) ([]common.Artifact, error) {
	logger.Debug("Generating event header", "events", len(doc.Events))

	structs := make([]string, 0, len(doc.Events))
	for _, ev := range doc.Events {
		s, err := record.EmitEvent(types.Native, ev, record.Options{Name: record.TypeName(ev.Name)})
		if err != nil {
			return nil, err
		}
		structs = append(structs, s)
	}

	data := struct {
		Header string
		Events []string
	}{
		Header: writeFileHeader(),
		Events: structs,
	}
	text, err := common.Render("events.hpp", eventsTemplate, tplFuncs(), data)
	if err != nil {
		return nil, err
	}
	return []common.Artifact{{Path: filepath.Join(outputDir, "events.hpp"), Content: text}}, nil
}
