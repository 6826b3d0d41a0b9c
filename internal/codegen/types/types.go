// Package types holds the closed field type vocabulary and its spelling in
// every backend. The tables are constants; nothing here is mutated at runtime.
package types

import (
	"fmt"

	"github.com/monkeys-engine/monkeys/internal/codegen/generr"
)

// Backend selects the target environment of generated code.
type Backend int

const (
	// Native emits C++ structs and loaders.
	Native Backend = iota
	// Scripting emits LuaJIT FFI declarations.
	Scripting
)

func (b Backend) String() string {
	switch b {
	case Native:
		return "native"
	case Scripting:
		return "scripting"
	default:
		return fmt.Sprintf("backend(%d)", int(b))
	}
}

// Tag is an abstract field type from the schema vocabulary.
type Tag int

const (
	Invalid Tag = iota
	Entity
	Uint8
	Uint16
	Uint32
	Uint64
	Int8
	Int16
	Int32
	Int64
	Byte
	Flags8
	Flags16
	Flags32
	Flags64
	Ref
	Signal
	HashedString
	Vec2
	Vec3
	Vec4
	Resource
	Texture
	Mesh
	Float
	Double
	Bool
	RGB
	RGBA

	tagCount
)

var tagNames = [tagCount]string{
	Invalid:      "",
	Entity:       "entity",
	Uint8:        "uint8",
	Uint16:       "uint16",
	Uint32:       "uint32",
	Uint64:       "uint64",
	Int8:         "int8",
	Int16:        "int16",
	Int32:        "int32",
	Int64:        "int64",
	Byte:         "byte",
	Flags8:       "flags8",
	Flags16:      "flags16",
	Flags32:      "flags32",
	Flags64:      "flags64",
	Ref:          "ref",
	Signal:       "signal",
	HashedString: "hashed-string",
	Vec2:         "vec2",
	Vec3:         "vec3",
	Vec4:         "vec4",
	Resource:     "resource",
	Texture:      "texture",
	Mesh:         "mesh",
	Float:        "float",
	Double:       "double",
	Bool:         "bool",
	RGB:          "rgb",
	RGBA:         "rgba",
}

var tagsByName = func() map[string]Tag {
	m := make(map[string]Tag, tagCount)
	for t := Entity; t < tagCount; t++ {
		m[tagNames[t]] = t
	}
	return m
}()

// String returns the schema spelling of the tag.
func (t Tag) String() string {
	if t <= Invalid || t >= tagCount {
		return fmt.Sprintf("tag(%d)", int(t))
	}
	return tagNames[t]
}

// Valid reports whether t is part of the vocabulary.
func (t Tag) Valid() bool { return t > Invalid && t < tagCount }

// ParseTag maps a schema spelling to its Tag.
func ParseTag(s string) (Tag, bool) {
	t, ok := tagsByName[s]
	return t, ok
}

// AllTags lists the vocabulary in declaration order.
func AllTags() []Tag {
	out := make([]Tag, 0, tagCount-1)
	for t := Entity; t < tagCount; t++ {
		out = append(out, t)
	}
	return out
}

// Integer reports whether the tag is loaded from an integer value.
func (t Tag) Integer() bool {
	switch t {
	case Uint8, Uint16, Uint32, Uint64, Int8, Int16, Int32, Int64,
		Byte, Flags8, Flags16, Flags32, Flags64:
		return true
	}
	return false
}

// Composite reports whether the tag is a vector or color made of float members.
func (t Tag) Composite() bool {
	return len(t.Members()) > 0
}

// Members returns the sub-keys of a composite tag in their fixed order.
func (t Tag) Members() []string {
	switch t {
	case Vec2:
		return []string{"x", "y"}
	case Vec3:
		return []string{"x", "y", "z"}
	case Vec4:
		return []string{"x", "y", "z", "w"}
	case RGB:
		return []string{"r", "g", "b"}
	case RGBA:
		return []string{"r", "g", "b", "a"}
	}
	return nil
}

// Lookup resolves a tag to its spelling in the given backend.
func Lookup(b Backend, t Tag) (string, error) {
	var s string
	switch b {
	case Native:
		s = nativeSpelling(t)
	case Scripting:
		s = scriptingSpelling(t)
	default:
		return "", generr.New(generr.UnknownType, fmt.Sprintf("unknown backend %s", b))
	}
	if s == "" {
		return "", generr.New(generr.UnknownType, fmt.Sprintf("%q has no %s spelling", t, b))
	}
	return s, nil
}

// LookupEvent is Lookup for event fields. Only the scripting backend spells
// event vectors and colors differently from component fields.
func LookupEvent(b Backend, t Tag) (string, error) {
	if b != Scripting {
		return Lookup(b, t)
	}
	if s := scriptingEventSpelling(t); s != "" {
		return s, nil
	}
	return "", generr.New(generr.UnknownType, fmt.Sprintf("%q has no %s spelling", t, b))
}

// LookupName resolves a schema spelling, failing with UnknownType when it is
// outside the vocabulary.
func LookupName(b Backend, name string) (string, error) {
	t, ok := ParseTag(name)
	if !ok {
		return "", generr.New(generr.UnknownType, fmt.Sprintf("%q is not a valid field type", name))
	}
	return Lookup(b, t)
}
