package cpp

import (
	"log/slog"
	"path/filepath"

	"github.com/monkeys-engine/monkeys/internal/codegen/common"
	"github.com/monkeys-engine/monkeys/internal/codegen/generator/record"
	"github.com/monkeys-engine/monkeys/internal/codegen/generr"
	"github.com/monkeys-engine/monkeys/internal/codegen/meta"
	"github.com/monkeys-engine/monkeys/internal/codegen/schema"
)

const componentDefTemplate = `		{ // components::{{.Namespace}}::{{.ClassName}}
			monkeys::api::definitions::Component component_def {"{{.ComponentName}}"_hs, entt::type_hash<components::{{.Namespace}}::{{.ClassName}}>::value(), "{{.Namespace}}", "{{.ClassName}}"};
			component_def.size_in_bytes = sizeof(components::{{.Namespace}}::{{.ClassName}});
			component_def.loader = [](monkeys::api::Engine* engine, entt::registry& registry, const void* tableptr, entt::entity entity) {
{{- if .LoaderArgs}}
				const auto& table = *reinterpret_cast<const toml::value*>(tableptr);
{{- range .LoaderVars}}
				{{.}}
{{- end}}
				registry.emplace_or_replace<components::{{.Namespace}}::{{.ClassName}}>(entity, {{join .LoaderArgs ", "}});
{{- else}}
				registry.emplace_or_replace<components::{{.Namespace}}::{{.ClassName}}>(entity);
{{- end}}
			};
{{- if .LoaderArgs}}
			component_def.getter = [](entt::registry& registry, entt::entity entity){ return (char*)&(registry.get<components::{{.Namespace}}::{{.ClassName}}>(entity)); };
{{- else}}
			component_def.getter = nullptr;
{{- end}}
			component_def.attached_to_entity = [](entt::registry& registry, entt::entity entity){ return registry.any_of<components::{{.Namespace}}::{{.ClassName}}>(entity); };
			component_def.manage = [](entt::registry& registry, entt::entity entity, monkeys::api::definitions::ManageOperation op){
				switch (op) {
					case monkeys::api::definitions::ManageOperation::Add:
						registry.emplace_or_replace<components::{{.Namespace}}::{{.ClassName}}>(entity);
						break;
					case monkeys::api::definitions::ManageOperation::Remove:
						registry.remove<components::{{.Namespace}}::{{.ClassName}}>(entity);
						break;
					default: break;
				}
			};
			engine->registerComponent<components::{{.Namespace}}::{{.ClassName}}>(component_def);
		}`

const sourceTemplate = `{{.Header}}
#include "{{.HeaderFile}}"

#include <monkeys/api/definitions.hpp>
#include <monkeys/api/engine.hpp>
#include <toml.hpp>

using namespace entt::literals;

void register_{{snakecase .Name}}_components(monkeys::api::Engine* engine) {
{{join .Components "\n"}}
}
`

type componentDef struct {
	Namespace     string
	ClassName     string
	ComponentName string
	LoaderVars    []string
	LoaderArgs    []string
}

// ComponentDef renders the registration block of one component. Loader
// arguments follow field declaration order.
func ComponentDef(docNamespace string, c schema.Component) (string, error) {
	def := componentDef{
		Namespace:     nativeNamespace(docNamespace, c.Namespace),
		ClassName:     record.TypeName(c.Name),
		ComponentName: c.QualifiedName(),
	}
	for _, f := range c.Fields {
		vars, arg, err := LoaderExpr(f)
		if err != nil {
			return "", generr.InRecord(err, c.Name)
		}
		def.LoaderVars = append(def.LoaderVars, vars...)
		def.LoaderArgs = append(def.LoaderArgs, arg)
	}
	return common.Render("component_def.cpp", componentDefTemplate, tplFuncs(), def)
}

// GenerateSource renders the component registration source file.
func GenerateSource(logger *slog.Logger, outputDir string, md *meta.Metadata) ([]common.Artifact, error) {
	namespace := md.Groups.DefaultNamespace
	logger.Debug("Generating component definitions", "namespace", namespace, "components", md.Groups.Len())

	defs := make([]string, 0, len(md.Document.Components))
	for _, c := range md.Document.Components {
		def, err := ComponentDef(namespace, c)
		if err != nil {
			return nil, err
		}
		logger.Debug("Generated component definition", "component", c.QualifiedName())
		defs = append(defs, def)
	}

	data := struct {
		Header     string
		HeaderFile string
		Name       string
		Components []string
	}{
		Header:     writeFileHeader(),
		HeaderFile: namespace + ".hpp",
		Name:       namespace,
		Components: defs,
	}
	text, err := common.Render("components.cpp", sourceTemplate, tplFuncs(), data)
	if err != nil {
		return nil, err
	}
	base := common.ComponentsBaseName(namespace)
	return []common.Artifact{{Path: filepath.Join(outputDir, base+".cpp"), Content: text}}, nil
}
