package meta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monkeys-engine/monkeys/internal/codegen/meta"
	"github.com/monkeys-engine/monkeys/internal/codegen/schema"
)

func TestGroupPreservesFirstSeenOrder(t *testing.T) {
	doc := &schema.ComponentDocument{
		Namespace: "game",
		Components: []schema.Component{
			{Name: "b1", Namespace: "B"},
			{Name: "a1", Namespace: "A"},
			{Name: "plain"},
			{Name: "b2", Namespace: "B"},
			{Name: "c1", Namespace: "C"},
		},
	}

	g := meta.Group(doc)
	assert.Equal(t, "game", g.DefaultNamespace)
	require.Len(t, g.Default, 1)
	assert.Equal(t, "plain", g.Default[0].Name)
	assert.Equal(t, []string{"B", "A", "C"}, g.Namespaces())

	named := g.Named()
	require.Len(t, named, 3)
	assert.Equal(t, "B", named[0].Namespace)
	require.Len(t, named[0].Components, 2)
	assert.Equal(t, "b1", named[0].Components[0].Name)
	assert.Equal(t, "b2", named[0].Components[1].Name)
	assert.Equal(t, 5, g.Len())
}

func TestGroupDefaultsToCore(t *testing.T) {
	g := meta.Group(&schema.ComponentDocument{Components: []schema.Component{{Name: "x"}}})
	assert.Equal(t, "core", g.DefaultNamespace)
	assert.Empty(t, g.Named())
}

func TestNamedGroupIdent(t *testing.T) {
	g := meta.Group(&schema.ComponentDocument{
		Namespace:  "core",
		Components: []schema.Component{{Name: "x", Namespace: "rigid-body"}},
	})
	assert.Equal(t, "rigid_body", g.Named()[0].Ident)
}

func TestForeignTypesIdempotent(t *testing.T) {
	f := meta.NewForeignTypes()
	f.Add("Foo")
	f.Add("Foo")
	f.Add("Foo")
	f.Add("Bar")
	assert.Equal(t, 2, f.Len())
	assert.True(t, f.Has("Foo"))
	assert.False(t, f.Has("Baz"))
	assert.Equal(t, []string{"Bar", "Foo"}, f.Names())
}

func TestNewMetadata(t *testing.T) {
	doc := &schema.ComponentDocument{Namespace: "core"}
	md := meta.New(doc)
	assert.Same(t, doc, md.Document)
	assert.NotNil(t, md.Groups)
	assert.Equal(t, 0, md.Foreign.Len())
}

func TestGroupMergesSpellingsOfOneNamespace(t *testing.T) {
	g := meta.Group(&schema.ComponentDocument{
		Namespace: "game",
		Components: []schema.Component{
			{Name: "a", Namespace: "my-ns"},
			{Name: "b", Namespace: "other"},
			{Name: "c", Namespace: "my_ns"},
		},
	})

	named := g.Named()
	require.Len(t, named, 2)
	assert.Equal(t, "my-ns", named[0].Namespace)
	assert.Equal(t, "my_ns", named[0].Ident)
	require.Len(t, named[0].Components, 2)
	assert.Equal(t, "a", named[0].Components[0].Name)
	assert.Equal(t, "c", named[0].Components[1].Name)
	assert.Equal(t, []string{"my-ns", "other"}, g.Namespaces())
	assert.Equal(t, 3, g.Len())
}
