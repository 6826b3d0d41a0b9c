package meta

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/monkeys-engine/monkeys/internal/codegen/common"
	"github.com/monkeys-engine/monkeys/internal/codegen/schema"
)

// Groups partitions the components of a document by sub-namespace.
type Groups struct {
	// DefaultNamespace labels Default; it is the document namespace or "core".
	DefaultNamespace string
	// Default holds components without a sub-namespace, in declaration order.
	Default []schema.Component

	// keyed by snake_case identifier, so "my-ns" and "my_ns" share a group
	named *orderedmap.OrderedMap[string, *NamedGroup]
}

// NamedGroup is one sub-namespace and its components.
type NamedGroup struct {
	// Namespace is the sub-namespace as first declared, Ident its snake_case
	// identifier.
	Namespace  string
	Ident      string
	Components []schema.Component
}

// Group splits doc's components into the default group and the named groups.
// Named groups are ordered by first appearance, and components keep their
// declaration order inside each group. Sub-namespaces that differ only in
// separators or case map to the same identifier and are merged.
func Group(doc *schema.ComponentDocument) *Groups {
	g := &Groups{
		DefaultNamespace: doc.EffectiveNamespace(),
		named:            orderedmap.New[string, *NamedGroup](),
	}
	for _, c := range doc.Components {
		if c.Namespace == "" {
			g.Default = append(g.Default, c)
			continue
		}
		ident := common.ToSnakeCase(c.Namespace)
		ng, ok := g.named.Get(ident)
		if !ok {
			ng = &NamedGroup{Namespace: c.Namespace, Ident: ident}
			g.named.Set(ident, ng)
		}
		ng.Components = append(ng.Components, c)
	}
	return g
}

// Named returns the named groups in first-seen order.
func (g *Groups) Named() []NamedGroup {
	out := make([]NamedGroup, 0, g.named.Len())
	for pair := g.named.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, *pair.Value)
	}
	return out
}

// Namespaces returns the named groups' first declared spellings in
// first-seen order.
func (g *Groups) Namespaces() []string {
	out := make([]string, 0, g.named.Len())
	for pair := g.named.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value.Namespace)
	}
	return out
}

// Len returns the total number of components across all groups.
func (g *Groups) Len() int {
	n := len(g.Default)
	for pair := g.named.Oldest(); pair != nil; pair = pair.Next() {
		n += len(pair.Value.Components)
	}
	return n
}
