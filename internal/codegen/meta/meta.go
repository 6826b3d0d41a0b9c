// Package meta holds the state derived from a schema document during one
// generation run: the namespace groups and the foreign type registry.
// Shared between the generator orchestrator and the backend generators.
package meta

import (
	"sort"

	"github.com/monkeys-engine/monkeys/internal/codegen/schema"
)

// Metadata is built fresh for every generation run.
type Metadata struct {
	Document *schema.ComponentDocument
	Groups   *Groups
	Foreign  *ForeignTypes
}

// New derives the run state for doc.
func New(doc *schema.ComponentDocument) *Metadata {
	return &Metadata{
		Document: doc,
		Groups:   Group(doc),
		Foreign:  NewForeignTypes(),
	}
}

// ForeignTypes is the set of type names referenced through ptr: descriptors.
type ForeignTypes struct {
	names map[string]struct{}
}

func NewForeignTypes() *ForeignTypes {
	return &ForeignTypes{names: make(map[string]struct{})}
}

// Add registers name. Registering a name twice is a no-op.
func (f *ForeignTypes) Add(name string) {
	f.names[name] = struct{}{}
}

// Has reports whether name was registered.
func (f *ForeignTypes) Has(name string) bool {
	_, ok := f.names[name]
	return ok
}

func (f *ForeignTypes) Len() int { return len(f.names) }

// Names returns the registered names sorted, so forward declarations come out
// the same on every run.
func (f *ForeignTypes) Names() []string {
	out := make([]string, 0, len(f.names))
	for n := range f.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
