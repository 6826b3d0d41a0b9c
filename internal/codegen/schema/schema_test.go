package schema_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monkeys-engine/monkeys/internal/codegen/generr"
	"github.com/monkeys-engine/monkeys/internal/codegen/schema"
	"github.com/monkeys-engine/monkeys/internal/codegen/types"
)

const componentsTOML = `
namespace = "game"

[[component]]
_name_ = "velocity"
_description_ = "Linear velocity"
z = "float"
y = "float"
x = "float"

[[component]]
_name_ = "follow-target"
_namespace_ = "ai"
target = "ptr:Entity"
offset = { type = "vec3", default = [0.0, 1.0, 0.0] }
max-speed = "float"
`

func TestParseComponentsTOML(t *testing.T) {
	doc, err := schema.ParseComponents([]byte(componentsTOML), schema.TOML)
	require.NoError(t, err)

	assert.Equal(t, "game", doc.Namespace)
	require.Len(t, doc.Components, 2)

	vel := doc.Components[0]
	assert.Equal(t, "velocity", vel.Name)
	assert.Equal(t, "", vel.Namespace)
	assert.Equal(t, "Linear velocity", vel.Description)
	require.Len(t, vel.Fields, 3)
	// declaration order, not alphabetical
	assert.Equal(t, "z", vel.Fields[0].Name)
	assert.Equal(t, "y", vel.Fields[1].Name)
	assert.Equal(t, "x", vel.Fields[2].Name)
	assert.Equal(t, types.Float, vel.Fields[0].Type.Tag)

	follow := doc.Components[1]
	assert.Equal(t, "ai", follow.Namespace)
	assert.Equal(t, "ai/follow-target", follow.QualifiedName())
	require.Len(t, follow.Fields, 3)
	assert.Equal(t, schema.TypeRef{Kind: schema.ForeignPointer, Name: "Entity"}, follow.Fields[0].Type)
	assert.Equal(t, "offset", follow.Fields[1].Name)
	assert.Equal(t, types.Vec3, follow.Fields[1].Type.Tag)
	assert.Contains(t, follow.Fields[1].Meta, "default")
	assert.Equal(t, "max-speed", follow.Fields[2].Name)
}

func TestParseComponentsYAML(t *testing.T) {
	src := `
namespace: core
component:
  - _name_: health
    current: int32
    max: int32
  - _name_: sprite
    _namespace_: render
    image: texture
    tint: {type: rgba}
`
	doc, err := schema.ParseComponents([]byte(src), schema.YAML)
	require.NoError(t, err)
	require.Len(t, doc.Components, 2)
	assert.Equal(t, []string{"current", "max"}, fieldNames(doc.Components[0]))
	assert.Equal(t, "render", doc.Components[1].Namespace)
	assert.Equal(t, types.RGBA, doc.Components[1].Fields[1].Type.Tag)
}

func TestUnknownTagSurvivesLoading(t *testing.T) {
	src := `
namespace = "core"
[[component]]
_name_ = "broken"
value = "nonsense"
`
	doc, err := schema.ParseComponents([]byte(src), schema.TOML)
	require.NoError(t, err)
	ref := doc.Components[0].Fields[0].Type
	assert.Equal(t, schema.Scalar, ref.Kind)
	assert.Equal(t, types.Invalid, ref.Tag)
	assert.Equal(t, "nonsense", ref.Name)
}

func TestParseComponentsErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind generr.Kind
	}{
		{
			name: "malformed",
			src:  "namespace = \n",
			kind: generr.ParseError,
		},
		{
			name: "missing namespace",
			src:  "[[component]]\n_name_ = \"a\"\n",
			kind: generr.SchemaStructureError,
		},
		{
			name: "namespace not a string",
			src:  "namespace = 4\n[[component]]\n_name_ = \"a\"\n",
			kind: generr.WrongKind,
		},
		{
			name: "missing component array",
			src:  "namespace = \"core\"\n",
			kind: generr.SchemaStructureError,
		},
		{
			name: "component not an array",
			src:  "namespace = \"core\"\ncomponent = \"x\"\n",
			kind: generr.SchemaStructureError,
		},
		{
			name: "missing name",
			src:  "namespace = \"core\"\n[[component]]\nx = \"float\"\n",
			kind: generr.MissingField,
		},
		{
			name: "name not a string",
			src:  "namespace = \"core\"\n[[component]]\n_name_ = 3\n",
			kind: generr.WrongKind,
		},
		{
			name: "field table without type",
			src:  "namespace = \"core\"\n[[component]]\n_name_ = \"a\"\nx = { default = 1 }\n",
			kind: generr.MissingField,
		},
		{
			name: "field type not a string",
			src:  "namespace = \"core\"\n[[component]]\n_name_ = \"a\"\nx = { type = 1 }\n",
			kind: generr.WrongKind,
		},
		{
			name: "field descriptor is a number",
			src:  "namespace = \"core\"\n[[component]]\n_name_ = \"a\"\nx = 1\n",
			kind: generr.WrongKind,
		},
		{
			name: "pointer without type name",
			src:  "namespace = \"core\"\n[[component]]\n_name_ = \"a\"\nx = \"ptr:\"\n",
			kind: generr.MissingField,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := schema.ParseComponents([]byte(tt.src), schema.TOML)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestFieldErrorNamesRecordAndField(t *testing.T) {
	src := "namespace = \"core\"\n[[component]]\n_name_ = \"mover\"\nspeed = { default = 1 }\n"
	_, err := schema.ParseComponents([]byte(src), schema.TOML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `record "mover"`)
	assert.Contains(t, err.Error(), `field "speed"`)
}

func TestLoadComponentsFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "components.toml")
	require.NoError(t, os.WriteFile(path, []byte(componentsTOML), 0o644))

	doc, err := schema.LoadComponents(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Source)
	assert.Len(t, doc.Components, 2)

	_, err = schema.LoadComponents(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, generr.NotFound)
}

func TestLoadErrorCarriesSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("namespace = \"core\"\n"), 0o644))

	_, err := schema.LoadComponents(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestParseEvents(t *testing.T) {
	src := `
[player-jumped]
height = "float"
entity = "entity"

[score-changed]
delta = "int32"
`
	doc, err := schema.ParseEvents([]byte(src), schema.TOML)
	require.NoError(t, err)
	require.Len(t, doc.Events, 2)
	assert.Equal(t, "player-jumped", doc.Events[0].Name)
	assert.Equal(t, "height", doc.Events[0].Fields[0].Name)
	assert.Equal(t, "entity", doc.Events[0].Fields[1].Name)
	assert.Equal(t, "score-changed", doc.Events[1].Name)
}

func TestParseEventsRejectsNonTables(t *testing.T) {
	_, err := schema.ParseEvents([]byte("jump = \"float\"\n"), schema.TOML)
	assert.ErrorIs(t, err, generr.WrongKind)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, schema.YAML, schema.FormatFromPath("a/b.yml"))
	assert.Equal(t, schema.YAML, schema.FormatFromPath("a/b.YAML"))
	assert.Equal(t, schema.TOML, schema.FormatFromPath("a/b.toml"))
	assert.Equal(t, schema.TOML, schema.FormatFromPath("a/b"))
}

func TestEffectiveNamespace(t *testing.T) {
	assert.Equal(t, "core", (&schema.ComponentDocument{}).EffectiveNamespace())
	assert.Equal(t, "game", (&schema.ComponentDocument{Namespace: "game"}).EffectiveNamespace())
}

func fieldNames(c schema.Component) []string {
	var out []string
	for _, f := range c.Fields {
		out = append(out, f.Name)
	}
	return out
}
