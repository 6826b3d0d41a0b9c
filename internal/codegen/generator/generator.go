package generator

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/monkeys-engine/monkeys/internal/codegen/common"
	"github.com/monkeys-engine/monkeys/internal/codegen/generator/cpp"
	"github.com/monkeys-engine/monkeys/internal/codegen/generator/lua"
	"github.com/monkeys-engine/monkeys/internal/codegen/generr"
	"github.com/monkeys-engine/monkeys/internal/codegen/meta"
	"github.com/monkeys-engine/monkeys/internal/codegen/schema"
)

type Generator struct {
	outputDir string
	logger    *slog.Logger
}

// ModeGenerator renders the artifacts of one component output mode without
// touching the filesystem.
type ModeGenerator func(logger *slog.Logger, outputDir string, md *meta.Metadata) ([]common.Artifact, error)

var generators = map[string]ModeGenerator{
	"lua": lua.Generate,
	"hpp": cpp.GenerateHeader,
	"cpp": cpp.GenerateSource,
}

// Modes lists the supported component output modes.
func Modes() []string {
	out := make([]string, 0, len(generators))
	for k := range generators {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func New(outputDir string, logger *slog.Logger) *Generator {
	if outputDir != "/" {
		outputDir = strings.TrimRight(outputDir, "/")
	}
	return &Generator{
		outputDir: outputDir,
		logger:    logger,
	}
}

// GenerateComponents compiles the component schema at source in the given
// mode and returns the paths written. Nothing is written unless every
// artifact rendered.
func (g *Generator) GenerateComponents(mode, source string) ([]string, error) {
	gen, ok := generators[mode]
	if !ok {
		return nil, fmt.Errorf("unsupported mode '%s' (supported: %v)", mode, Modes())
	}

	g.logger.Info("Loading component schema", "source", source)
	doc, err := schema.LoadComponents(source)
	if err != nil {
		return nil, g.abort(err)
	}

	md := meta.New(doc)
	g.logger.Info("Generating components",
		"mode", mode,
		"namespace", md.Groups.DefaultNamespace,
		"components", md.Groups.Len(),
		"groups", len(md.Groups.Namespaces()))

	artifacts, err := gen(g.logger, g.outputDir, md)
	if err != nil {
		return nil, g.abort(fmt.Errorf("generate %s from %s: %w", mode, source, err))
	}
	if md.Foreign.Len() > 0 {
		g.logger.Debug("Referenced foreign types", "types", md.Foreign.Names())
	}
	return g.write(artifacts)
}

// GenerateEvents compiles the event schema at source into the selected
// backends and returns the paths written.
func (g *Generator) GenerateEvents(source string, scripting, native bool) ([]string, error) {
	if !scripting && !native {
		return nil, fmt.Errorf("no event output selected")
	}

	g.logger.Info("Loading event schema", "source", source)
	doc, err := schema.LoadEvents(source)
	if err != nil {
		return nil, g.abort(err)
	}
	g.logger.Info("Generating events", "events", len(doc.Events))

	var artifacts []common.Artifact
	if scripting {
		a, err := lua.GenerateEvents(g.logger, g.outputDir, doc)
		if err != nil {
			return nil, g.abort(fmt.Errorf("generate lua events from %s: %w", source, err))
		}
		artifacts = append(artifacts, a...)
	}
	if native {
		a, err := cpp.GenerateEvents(g.logger, g.outputDir, doc)
		if err != nil {
			return nil, g.abort(fmt.Errorf("generate hpp events from %s: %w", source, err))
		}
		artifacts = append(artifacts, a...)
	}
	return g.write(artifacts)
}

// abort logs why a run stopped before anything was written.
func (g *Generator) abort(err error) error {
	g.logger.Debug("Generation aborted, no files written", "kind", generr.KindOf(err))
	return err
}

func (g *Generator) write(artifacts []common.Artifact) ([]string, error) {
	if err := common.WriteArtifacts(g.logger, artifacts); err != nil {
		return nil, err
	}
	paths := make([]string, len(artifacts))
	for i, a := range artifacts {
		paths[i] = a.Path
		g.logger.Info("Generated file", "path", a.Path)
	}
	return paths, nil
}
