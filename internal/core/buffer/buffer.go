// Package buffer holds the live, per-language text buffers of an editing
// session.
package buffer

import (
	"maps"

	"github.com/colonyops/pixelcode/internal/core/language"
)

// Collection maps a language identifier to the current text for that
// language. Every catalog language has an entry for the lifetime of the
// collection; entries are overwritten but never removed.
//
// A Collection is owned by the UI event loop and is not safe for concurrent use.
type Collection struct {
	texts map[string]string
}

// New returns a collection seeded with the starter snippet of every catalog
// language.
func New() *Collection {
	c := &Collection{texts: make(map[string]string, len(language.IDs()))}
	for _, id := range language.IDs() {
		c.texts[id] = language.Snippet(id)
	}
	return c
}

// Get returns the buffer for id. Unknown ids read as empty.
func (c *Collection) Get(id string) string {
	return c.texts[id]
}

// Set overwrites the buffer for id. Writing an id outside the catalog adds an
// entry for it, which is then kept like any other.
func (c *Collection) Set(id, text string) {
	c.texts[id] = text
}

// Reset restores the buffer for id to its starter snippet.
func (c *Collection) Reset(id string) {
	c.texts[id] = language.Snippet(id)
}

// Has reports whether id has an entry.
func (c *Collection) Has(id string) bool {
	_, ok := c.texts[id]
	return ok
}

// Snapshot returns a copy of every buffer keyed by language id.
func (c *Collection) Snapshot() map[string]string {
	return maps.Clone(c.texts)
}
