package types

const (
	nativeHash   = "entt::hashed_string::hash_type"
	nativeHandle = "monkeys::resources::Handle"
)

func nativeSpelling(t Tag) string {
	switch t {
	case Entity:
		return "entt::entity"
	case Uint8, Flags8:
		return "std::uint8_t"
	case Uint16, Flags16:
		return "std::uint16_t"
	case Uint32, Flags32:
		return "std::uint32_t"
	case Uint64, Flags64:
		return "std::uint64_t"
	case Int8:
		return "std::int8_t"
	case Int16:
		return "std::int16_t"
	case Int32:
		return "std::int32_t"
	case Int64:
		return "std::int64_t"
	case Byte:
		return "std::byte"
	case Ref, Signal:
		return nativeHash
	case HashedString:
		return "entt::hashed_string"
	case Vec2:
		return "glm::vec2"
	case Vec3, RGB:
		return "glm::vec3"
	case Vec4, RGBA:
		return "glm::vec4"
	case Resource, Texture, Mesh:
		return nativeHandle
	case Float:
		return "float"
	case Double:
		return "double"
	case Bool:
		return "bool"
	}
	return ""
}

// scripting spellings must stay valid inside a LuaJIT ffi.cdef block
func scriptingSpelling(t Tag) string {
	switch t {
	case Entity, Uint32, Flags32, Ref, Signal, HashedString, Resource, Texture, Mesh:
		return "uint32_t"
	case Uint8, Byte, Flags8:
		return "uint8_t"
	case Uint16, Flags16:
		return "uint16_t"
	case Uint64, Flags64:
		return "uint64_t"
	case Int8:
		return "int8_t"
	case Int16:
		return "int16_t"
	case Int32:
		return "int32_t"
	case Int64:
		return "int64_t"
	case Vec2:
		return "struct {float x, y;}"
	case Vec3:
		return "struct {float x, y, z;}"
	case Vec4:
		return "struct {float x, y, z, w;}"
	case RGB:
		return "struct {float r, g, b;}"
	case RGBA:
		return "struct {float r, g, b, a;}"
	case Float:
		return "float"
	case Double:
		return "double"
	case Bool:
		return "bool"
	}
	return ""
}

// scriptingEventSpelling overrides scriptingSpelling inside events: event
// payloads are handed to scripts as the engine's named math types, so a
// vec3 in an event is the same ctype scripts already use for positions.
func scriptingEventSpelling(t Tag) string {
	switch t {
	case Vec2:
		return "struct Vec2"
	case Vec3:
		return "struct Vec3"
	case Vec4:
		return "struct Vec4"
	case RGB:
		return "struct RGB"
	case RGBA:
		return "struct RGBA"
	}
	return scriptingSpelling(t)
}

// AllowedInEvents reports whether events may declare fields of this tag.
// Events carry plain values only: no flags, signals or resource handles.
func (t Tag) AllowedInEvents() bool {
	switch t {
	case Flags8, Flags16, Flags32, Flags64, Signal, Resource, Texture, Mesh:
		return false
	}
	return t.Valid()
}
