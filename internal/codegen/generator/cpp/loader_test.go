package cpp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monkeys-engine/monkeys/internal/codegen/generator/cpp"
	"github.com/monkeys-engine/monkeys/internal/codegen/generr"
	"github.com/monkeys-engine/monkeys/internal/codegen/schema"
)

func field(name, desc string) schema.Field {
	return schema.Field{Name: name, Type: schema.ParseTypeRef(desc)}
}

func TestLoaderExprScalars(t *testing.T) {
	tests := []struct {
		desc string
		want string
	}{
		{"uint8", `std::uint8_t(toml::find<toml::integer>(table, "v"))`},
		{"int64", `std::int64_t(toml::find<toml::integer>(table, "v"))`},
		{"flags32", `std::uint32_t(toml::find<toml::integer>(table, "v"))`},
		{"byte", `std::byte(toml::find<toml::integer>(table, "v"))`},
		{"entity", `entt::entity(toml::find<toml::integer>(table, "v"))`},
		{"float", `float(toml::find<toml::floating>(table, "v"))`},
		{"double", `double(toml::find<toml::floating>(table, "v"))`},
		{"bool", `bool(toml::find<toml::boolean>(table, "v"))`},
		{"hashed-string", `entt::hashed_string{toml::find<std::string>(table, "v").c_str()}`},
		{"ref", `entt::hashed_string::value(toml::find<std::string>(table, "v").c_str())`},
		{"resource", `engine->findResource(entt::hashed_string::value(toml::find<std::string>(table, "v").c_str()))`},
		{"mesh", `engine->findResource(entt::hashed_string::value(toml::find<std::string>(table, "v").c_str()))`},
		{"ptr:Body", "nullptr"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			bindings, expr, err := cpp.LoaderExpr(field("v", tt.desc))
			require.NoError(t, err)
			assert.Empty(t, bindings)
			assert.Equal(t, tt.want, expr)
		})
	}
}

func TestLoaderExprRefAndSignalMatch(t *testing.T) {
	_, ref, err := cpp.LoaderExpr(field("on-hit", "ref"))
	require.NoError(t, err)
	_, signal, err := cpp.LoaderExpr(field("on-hit", "signal"))
	require.NoError(t, err)
	assert.Equal(t, ref, signal)
}

func TestLoaderExprCompositeOrder(t *testing.T) {
	bindings, expr, err := cpp.LoaderExpr(field("pos", "vec3"))
	require.NoError(t, err)
	assert.Equal(t, []string{`auto pos_table = table.at("pos");`}, bindings)
	assert.Equal(t,
		`glm::vec3{float(toml::find<toml::floating>(pos_table, "x")), `+
			`float(toml::find<toml::floating>(pos_table, "y")), `+
			`float(toml::find<toml::floating>(pos_table, "z"))}`,
		expr)
}

func TestLoaderExprColors(t *testing.T) {
	bindings, expr, err := cpp.LoaderExpr(field("tint-color", "rgba"))
	require.NoError(t, err)
	assert.Equal(t, []string{`auto tint_color_table = table.at("tint-color");`}, bindings)
	assert.Equal(t,
		`glm::vec4{float(toml::find<toml::floating>(tint_color_table, "r")), `+
			`float(toml::find<toml::floating>(tint_color_table, "g")), `+
			`float(toml::find<toml::floating>(tint_color_table, "b")), `+
			`float(toml::find<toml::floating>(tint_color_table, "a"))}`,
		expr)

	_, expr, err = cpp.LoaderExpr(field("uv", "vec2"))
	require.NoError(t, err)
	assert.Contains(t, expr, "glm::vec2{")
}

func TestLoaderExprUnknownTag(t *testing.T) {
	_, _, err := cpp.LoaderExpr(field("speed", "nonsense"))
	require.Error(t, err)
	assert.ErrorIs(t, err, generr.UnknownType)
	assert.Contains(t, err.Error(), `field "speed"`)
	assert.Contains(t, err.Error(), "nonsense")
}
