package common

import (
	"fmt"
	"strings"
	"text/template"
)

// FileHeader returns the banner placed at the top of every generated file,
// commented out with the given line comment marker.
func FileHeader(comment, lang string) string {
	version, err := GetVersion()
	if err != nil {
		version = "unknown"
	}
	lines := []string{
		fmt.Sprintf("%s Auto-generated %s code by monkeys %s", comment, lang, version),
		fmt.Sprintf("%s DO NOT EDIT - changes will be overwritten on the next generate run", comment),
	}
	return strings.Join(lines, "\n")
}

// Render executes a text template held in a Go string constant. Parse and
// execution failures are returned wrapped with the template name.
func Render(name, text string, funcs template.FuncMap, data any) (string, error) {
	tmpl, err := template.New(name).Funcs(funcs).Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse %s template: %w", name, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("execute %s template: %w", name, err)
	}
	return b.String(), nil
}
