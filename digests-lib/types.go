// ABOUTME: Public types returned by the Digests reader library
// ABOUTME: A loaded document owns its entries and their shared query scope

package digests

import (
	"digests-feedreader/core/domain"
	"digests-feedreader/core/entry"
	"digests-feedreader/infrastructure/xpath"
)

// Document is a loaded Atom document and the entries it owns
type Document struct {
	// Dialect is the detected Atom variant
	Dialect domain.Dialect

	// Entries are in document order; Entries[i].Index() == i
	Entries []*entry.Atom

	scope *xpath.Scope
}

// Len returns the number of entries
func (d *Document) Len() int {
	return len(d.Entries)
}

// Entry returns the entry at index
func (d *Document) Entry(index int) (*entry.Atom, bool) {
	if index < 0 || index >= len(d.Entries) {
		return nil, false
	}
	return d.Entries[index], true
}

// Scope returns the query scope shared by the document's entries
func (d *Document) Scope() *xpath.Scope {
	return d.scope
}
