// Package record resolves field types and renders record definitions as
// struct text for either backend.
package record

import (
	"fmt"
	"strings"

	"github.com/monkeys-engine/monkeys/internal/codegen/common"
	"github.com/monkeys-engine/monkeys/internal/codegen/generr"
	"github.com/monkeys-engine/monkeys/internal/codegen/meta"
	"github.com/monkeys-engine/monkeys/internal/codegen/schema"
	"github.com/monkeys-engine/monkeys/internal/codegen/types"
)

// FieldIdent is the identifier a field is declared with in generated code.
func FieldIdent(name string) string { return common.ToSnakeCase(name) }

// TypeName is the identifier a record is declared with in generated code.
func TypeName(name string) string { return common.ToPascalCase(name) }

// ResolveField returns the spelling of f's type in backend b. Foreign
// pointers are registered in foreign; the scripting backend spells them with
// the struct keyword since LuaJIT only knows them through forward declarations.
func ResolveField(b types.Backend, f schema.Field, foreign *meta.ForeignTypes) (string, error) {
	switch f.Type.Kind {
	case schema.ForeignPointer:
		foreign.Add(f.Type.Name)
		if b == types.Scripting {
			return "struct " + f.Type.Name + "*", nil
		}
		return f.Type.Name + "*", nil
	case schema.Scalar:
		if !f.Type.Tag.Valid() {
			return "", unknownType(f)
		}
		s, err := types.Lookup(b, f.Type.Tag)
		if err != nil {
			return "", fieldError(err, f)
		}
		return s, nil
	}
	return "", generr.New(generr.MissingField, fmt.Sprintf("field %q has no type", f.Name))
}

// ResolveEventField is ResolveField for event records, which accept neither
// foreign pointers nor handle/flag tags.
func ResolveEventField(b types.Backend, f schema.Field) (string, error) {
	if f.Type.Kind == schema.ForeignPointer {
		e := generr.New(generr.WrongKind, "events do not support foreign pointers")
		e.Field = f.Name
		return "", e
	}
	if !f.Type.Tag.Valid() {
		return "", unknownType(f)
	}
	if !f.Type.Tag.AllowedInEvents() {
		e := generr.New(generr.UnknownType, fmt.Sprintf("%q is not a valid event field type", f.Type.Name))
		e.Field = f.Name
		return "", e
	}
	s, err := types.LookupEvent(b, f.Type.Tag)
	if err != nil {
		return "", fieldError(err, f)
	}
	return s, nil
}

func unknownType(f schema.Field) error {
	e := generr.New(generr.UnknownType, fmt.Sprintf("must name a valid field data type, got: %s", f.Type.Name))
	e.Field = f.Name
	return e
}

func fieldError(err error, f schema.Field) error {
	if ge, ok := err.(*generr.Error); ok && ge.Field == "" {
		ge.Field = f.Name
	}
	return err
}

// Options controls how a record is laid out.
type Options struct {
	// Name is the struct name to emit.
	Name string
	// Indent prefixes the struct line; fields get one more tab.
	Indent string
	// Description is written as a one-line comment above the struct when set.
	Description string
}

// Emit renders component c as a struct in backend b. Metadata keys were split
// off by the loader, so every field of c becomes one member line.
func Emit(b types.Backend, c schema.Component, opts Options, foreign *meta.ForeignTypes) (string, error) {
	lines := make([]string, 0, len(c.Fields))
	for _, f := range c.Fields {
		t, err := ResolveField(b, f, foreign)
		if err != nil {
			return "", generr.InRecord(err, c.Name)
		}
		lines = append(lines, member(opts.Indent, t, f.Name))
	}
	return structText(opts, lines), nil
}

// EmitEvent renders event ev as a struct in backend b.
func EmitEvent(b types.Backend, ev schema.Event, opts Options) (string, error) {
	lines := make([]string, 0, len(ev.Fields))
	for _, f := range ev.Fields {
		t, err := ResolveEventField(b, f)
		if err != nil {
			return "", generr.InRecord(err, ev.Name)
		}
		lines = append(lines, member(opts.Indent, t, f.Name))
	}
	return structText(opts, lines), nil
}

func member(indent, typ, name string) string {
	return fmt.Sprintf("%s\t%s %s;", indent, typ, FieldIdent(name))
}

func structText(opts Options, lines []string) string {
	var b strings.Builder
	if opts.Description != "" {
		fmt.Fprintf(&b, "%s// %s\n", opts.Indent, strings.ReplaceAll(opts.Description, "\n", " "))
	}
	fmt.Fprintf(&b, "%sstruct %s {\n", opts.Indent, opts.Name)
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%s};", opts.Indent)
	return b.String()
}
