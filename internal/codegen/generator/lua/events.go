package lua

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/monkeys-engine/monkeys/internal/codegen/common"
	"github.com/monkeys-engine/monkeys/internal/codegen/generator/record"
	"github.com/monkeys-engine/monkeys/internal/codegen/schema"
	"github.com/monkeys-engine/monkeys/internal/codegen/types"
)

const eventsTemplate = `{{.Header}}
local ffi = require("ffi")

ffi.cdef[[
{{join .Events "\n"}}
]]

return {
{{join .Types "\n"}}
}
`

// EventStructName is the cdef name of an event.
func EventStructName(name string) string {
	return record.TypeName(name) + "_Event"
}

// GenerateEvents renders events.lua with one cdef struct per event and the
// list of event names with their cdef types.
func GenerateEvents(logger *slog.Logger, outputDir string, doc *schema.EventDocument) ([]common.Artifact, error) {
	logger.Debug("Generating lua events", "events", len(doc.Events))

	structs := make([]string, 0, len(doc.Events))
	entries := make([]string, 0, len(doc.Events))
	for _, ev := range doc.Events {
		s, err := record.EmitEvent(types.Scripting, ev, record.Options{Name: EventStructName(ev.Name)})
		if err != nil {
			return nil, err
		}
		structs = append(structs, s)
		entries = append(entries, fmt.Sprintf("\t{name='%s', type='%s'},", luaEscape(ev.Name), EventStructName(ev.Name)))
	}

	data := struct {
		Header string
		Events []string
		Types  []string
	}{
		Header: writeFileHeader(),
		Events: structs,
		Types:  entries,
	}
	text, err := common.Render("events.lua", eventsTemplate, tplFuncs(), data)
	if err != nil {
		return nil, err
	}
	return []common.Artifact{{Path: filepath.Join(outputDir, "events.lua"), Content: text}}, nil
}

var luaQuote = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func luaEscape(s string) string { return luaQuote.Replace(s) }
