// Package generr defines the error taxonomy shared by the schema loader and
// the code generators. Every failure aborts the whole generation run.
package generr

import (
	"errors"
	"strings"
)

// Kind classifies a generation failure.
type Kind string

const (
	// NotFound indicates the schema file could not be read.
	NotFound Kind = "not-found"
	// ParseError indicates the schema file is not well-formed TOML/YAML.
	ParseError Kind = "parse-error"
	// SchemaStructureError indicates required top-level keys or arrays are missing.
	SchemaStructureError Kind = "schema-structure"
	// MissingField indicates a record lacks _name_ or a field lacks a type.
	MissingField Kind = "missing-field"
	// WrongKind indicates a key holds a value of the wrong kind.
	WrongKind Kind = "wrong-kind"
	// UnknownType indicates a tag that no type table knows.
	UnknownType Kind = "unknown-type"
)

// Error implements error so a bare Kind can be used as an errors.Is target.
func (k Kind) Error() string { return string(k) }

// Error is a generation failure pinned to a source file, record and field.
type Error struct {
	Kind   Kind
	Source string
	Record string
	Field  string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Source != "" {
		b.WriteString(e.Source)
		b.WriteString(": ")
	}
	if e.Record != "" {
		b.WriteString("record \"")
		b.WriteString(e.Record)
		b.WriteString("\": ")
	}
	if e.Field != "" {
		b.WriteString("field \"")
		b.WriteString(e.Field)
		b.WriteString("\": ")
	}
	b.WriteString(string(e.Kind))
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches either another *Error of the same kind or a bare Kind.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Kind:
		return e.Kind == t
	case *Error:
		return e.Kind == t.Kind
	}
	return false
}

// New creates an Error of the given kind.
func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// Wrap creates an Error of the given kind around err.
func Wrap(kind Kind, err error, detail string) *Error {
	return &Error{Kind: kind, Detail: detail, Err: err}
}

// InRecord annotates err with the record name when it is an *Error and the
// record is not set yet. Other errors are returned unchanged.
func InRecord(err error, record string) error {
	var ge *Error
	if errors.As(err, &ge) && ge.Record == "" {
		ge.Record = record
	}
	return err
}

// InSource annotates err with the source path, see InRecord.
func InSource(err error, source string) error {
	var ge *Error
	if errors.As(err, &ge) && ge.Source == "" {
		ge.Source = source
	}
	return err
}

// KindOf returns the kind of err, or "" when err is not a generation error.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}
	return ""
}
