// Package util holds console helpers shared by the commands.
package util

import (
	"io"

	"github.com/muesli/termenv"
)

// NewOutput wraps w for styled printing. The color profile comes from w and
// the environment, so pipes, files and NO_COLOR get plain text.
func NewOutput(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return termenv.NewOutput(w, opts...)
}

// Highlight renders s in blue when out supports color.
func Highlight(out *termenv.Output, s string) string {
	return out.String(s).Foreground(termenv.ANSIBlue).String()
}

// EnableColor turns on ANSI escape processing for out where the console
// needs it (Windows 10 conhost) and returns the func restoring the console
// mode. Failing consoles are left alone: Highlight then degrades with the
// detected profile.
func EnableColor(out *termenv.Output) func() {
	restore, err := termenv.EnableVirtualTerminalProcessing(out)
	if err != nil || restore == nil {
		return func() {}
	}
	return func() { _ = restore() }
}
