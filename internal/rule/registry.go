package rule

import (
	"fmt"
	"sort"
)

// Entry registers one rule kind.
type Entry struct {
	Kind        Kind
	Description string
	New         func() Rule
}

// Registry maps rule kinds to their factories.
type Registry struct {
	entries map[Kind]Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[Kind]Entry)}
}

// Register adds e. The first registration of a kind wins; later ones are
// rejected.
func (r *Registry) Register(e Entry) error {
	if _, ok := r.entries[e.Kind]; ok {
		return fmt.Errorf("rule kind %q already registered", e.Kind)
	}
	r.entries[e.Kind] = e
	return nil
}

// Lookup returns the entry for kind.
func (r *Registry) Lookup(kind Kind) (Entry, bool) {
	e, ok := r.entries[kind]
	return e, ok
}

// Entries returns every entry sorted by kind.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

// Builtin returns a registry holding every rule kind with default options.
// reader backs the import rule.
func Builtin(reader LineReader) *Registry {
	r := NewRegistry()
	for _, e := range []Entry{
		{KindCase, "change letter case", func() Rule { return NewCase(DefaultCaseOptions()) }},
		{KindDelete, "delete characters at a specified position", func() Rule { return NewDelete(DefaultDeleteOptions()) }},
		{KindExtension, "change file extensions", func() Rule { return NewExtension(DefaultExtensionOptions()) }},
		{KindImport, "import lines of text file for insertion", func() Rule { return NewImport(DefaultImportOptions(), reader) }},
		{KindInsert, "insert a text into a specified position", func() Rule { return NewInsert(DefaultInsertOptions()) }},
		{KindRemove, "remove a text", func() Rule { return NewRemove(DefaultRemoveOptions()) }},
		{KindReplace, "replace a text", func() Rule { return NewReplace(DefaultReplaceOptions()) }},
		{KindSerialize, "serialize file names", func() Rule { return NewSerialize(DefaultSerializeOptions()) }},
		{KindStrip, "strip a set of characters off", func() Rule { return NewStrip(DefaultStripOptions()) }},
	} {
		_ = r.Register(e)
	}
	return r
}
