// Package schema loads component and event definition documents.
//
// A component document declares a namespace and an array of component
// records:
//
//	namespace = "core"
//
//	[[component]]
//	_name_ = "velocity"
//	_description_ = "Linear velocity in units per second"
//	x = "float"
//	y = "float"
//	target = "ptr:Entity"
//	tint = { type = "rgb", default = [1.0, 1.0, 1.0] }
//
// An event document is a flat table of event name to field table. Both TOML
// and YAML sources are accepted.
package schema

import (
	"strings"

	"github.com/monkeys-engine/monkeys/internal/codegen/types"
)

// DefaultNamespace labels records of a document that declares no namespace.
const DefaultNamespace = "core"

const foreignPrefix = "ptr:"

// TypeKind discriminates the variants of a TypeRef.
type TypeKind int

const (
	// Scalar refers to a tag of the built-in vocabulary.
	Scalar TypeKind = iota
	// ForeignPointer refers to an externally defined type by name.
	ForeignPointer
)

// TypeRef is a parsed field type descriptor.
type TypeRef struct {
	Kind TypeKind
	// Tag is types.Invalid when a scalar names something outside the
	// vocabulary; resolution reports it.
	Tag types.Tag
	// Name is the declared tag for scalars and the referenced type name for
	// foreign pointers.
	Name string
}

// ParseTypeRef splits a descriptor string into its variant.
func ParseTypeRef(s string) TypeRef {
	if name, ok := strings.CutPrefix(s, foreignPrefix); ok {
		return TypeRef{Kind: ForeignPointer, Name: name}
	}
	tag, _ := types.ParseTag(s)
	return TypeRef{Kind: Scalar, Tag: tag, Name: s}
}

func (r TypeRef) String() string {
	if r.Kind == ForeignPointer {
		return foreignPrefix + r.Name
	}
	return r.Name
}

// Field is one typed member of a record, in declaration order.
type Field struct {
	Name string
	Type TypeRef
	// Meta holds extra keys of a table descriptor. Backends ignore them.
	Meta map[string]any
}

// Component is a record definition of a component document.
type Component struct {
	Name        string
	Namespace   string
	Description string
	Fields      []Field
}

// QualifiedName joins sub-namespace and name with '/', dropping an empty
// namespace.
func (c Component) QualifiedName() string {
	if c.Namespace == "" {
		return c.Name
	}
	return c.Namespace + "/" + c.Name
}

// ComponentDocument is a loaded component schema.
type ComponentDocument struct {
	Source     string
	Namespace  string
	Components []Component
}

// EffectiveNamespace returns the document namespace, defaulting to "core".
func (d *ComponentDocument) EffectiveNamespace() string {
	if d.Namespace == "" {
		return DefaultNamespace
	}
	return d.Namespace
}

// Event is a flat record of an event document.
type Event struct {
	Name   string
	Fields []Field
}

// EventDocument is a loaded event schema.
type EventDocument struct {
	Source string
	Events []Event
}

// IsMetaKey reports whether key is reserved for record metadata, i.e. both
// prefixed and suffixed with '_'.
func IsMetaKey(key string) bool {
	return strings.HasPrefix(key, "_") && strings.HasSuffix(key, "_")
}
