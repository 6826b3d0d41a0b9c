package util_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/monkeys-engine/monkeys/internal/util"
)

func TestHighlightPlainOnPipes(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "")
	var buf bytes.Buffer
	out := util.NewOutput(&buf)
	assert.Equal(t, "out/core.hpp", util.Highlight(out, "out/core.hpp"))

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, "out/core.hpp", util.Highlight(util.NewOutput(&buf), "out/core.hpp"))
}

func TestHighlightColorProfiles(t *testing.T) {
	tests := []struct {
		name    string
		profile termenv.Profile
		want    string
	}{
		{"ascii", termenv.Ascii, "out/core.hpp"},
		{"ansi", termenv.ANSI, "\x1b[34mout/core.hpp\x1b[0m"},
		{"truecolor", termenv.TrueColor, "\x1b[34mout/core.hpp\x1b[0m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := util.NewOutput(&bytes.Buffer{}, termenv.WithProfile(tt.profile))
			assert.Equal(t, tt.want, util.Highlight(out, "out/core.hpp"))
		})
	}
}

func TestEnableColorOnPipe(t *testing.T) {
	restore := util.EnableColor(util.NewOutput(&bytes.Buffer{}))
	assert.NotPanics(t, restore)
}
