package cmd_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monkeys-engine/monkeys/internal/cmd"
	"github.com/monkeys-engine/monkeys/internal/codegen/generr"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGenerateComponentsRun(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "game.toml")
	require.NoError(t, os.WriteFile(source, []byte(`
namespace = "game"

[[component]]
_name_ = "velocity"
x = "float"
`), 0o644))

	out := filepath.Join(dir, "out")
	c := cmd.GenerateComponents{Build: "hpp", Source: source, Destination: out}
	require.NoError(t, c.Run(discard()))
	assert.FileExists(t, filepath.Join(out, "game.hpp"))

	c = cmd.GenerateComponents{Build: "lua", Source: source, Destination: out}
	require.NoError(t, c.Run(discard()))
	assert.FileExists(t, filepath.Join(out, "game.lua"))
}

func TestGenerateComponentsRunMissingSource(t *testing.T) {
	c := cmd.GenerateComponents{Build: "cpp", Source: filepath.Join(t.TempDir(), "nope.toml"), Destination: t.TempDir()}
	assert.ErrorIs(t, c.Run(discard()), generr.NotFound)
}

func TestGenerateEventsRun(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "events.toml")
	require.NoError(t, os.WriteFile(source, []byte("[jumped]\nheight = \"float\"\n"), 0o644))

	out := filepath.Join(dir, "out")
	e := cmd.GenerateEvents{Source: source, Destination: out}
	require.NoError(t, e.Run(discard()))
	assert.NoDirExists(t, out)

	e.Lua = true
	require.NoError(t, e.Run(discard()))
	assert.FileExists(t, filepath.Join(out, "events.lua"))
	assert.NoFileExists(t, filepath.Join(out, "events.hpp"))
}
