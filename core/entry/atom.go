// ABOUTME: Atom entry facade with memoized, extension-backed field accessors
// ABOUTME: Binds one entry index to its positional query and owns its extensions

package entry

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/antchfx/xmlquery"

	"digests-feedreader/core/domain"
	readererrors "digests-feedreader/core/errors"
	"digests-feedreader/core/extension"
	"digests-feedreader/core/interfaces"
)

// Atom is one entry of a parsed Atom document.
//
// Each field is extracted at most once: the first accessor call delegates
// to the owned extensions and the result, absent or not, is cached for the
// life of the entry. Attach a scope with SetScope before reading fields;
// without one every field reads as absent.
type Atom struct {
	node       *xmlquery.Node
	index      int
	dialect    domain.Dialect
	xpathQuery string

	scope      interfaces.Scope
	atom       interfaces.EntryExtension
	thread     interfaces.ThreadExtension
	extensions []namedExtension

	cache fieldCache
	mu    sync.Mutex
}

type namedExtension struct {
	name string
	ext  interfaces.Extension
}

// NewAtom creates the entry at the zero-based index of its feed. The
// dialect hint is handed unchanged to every extension. An unknown dialect
// or extension name yields a CollaboratorResolutionError.
func NewAtom(node *xmlquery.Node, index int, dialect domain.Dialect, opts ...Option) (*Atom, error) {
	if index < 0 {
		return nil, &readererrors.ValidationError{
			Field:   "index",
			Message: fmt.Sprintf("must be non-negative, got %d", index),
		}
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		registry, err := defaultRegistry()
		if err != nil {
			return nil, readererrors.WrapError(err, "building default extension registry")
		}
		o.registry = registry
	}

	e := &Atom{
		node:       node,
		index:      index,
		dialect:    dialect,
		xpathQuery: domain.EntryPath(index),
	}

	atomExt, err := o.registry.Create(extension.NameAtomEntry, node, index, dialect, o.deps)
	if err != nil {
		return nil, err
	}
	base, ok := atomExt.(interfaces.EntryExtension)
	if !ok {
		return nil, notImplemented(extension.NameAtomEntry, dialect, "EntryExtension")
	}
	e.atom = base

	threadExt, err := o.registry.Create(extension.NameThreadEntry, node, index, dialect, o.deps)
	if err != nil {
		return nil, err
	}
	thread, ok := threadExt.(interfaces.ThreadExtension)
	if !ok {
		return nil, notImplemented(extension.NameThreadEntry, dialect, "ThreadExtension")
	}
	e.thread = thread

	for _, name := range o.extensions {
		ext, err := o.registry.Create(name, node, index, dialect, o.deps)
		if err != nil {
			return nil, err
		}
		e.extensions = append(e.extensions, namedExtension{name: name, ext: ext})
	}

	return e, nil
}

func notImplemented(name string, dialect domain.Dialect, contract string) error {
	return &readererrors.CollaboratorResolutionError{
		Name:    name,
		Dialect: string(dialect),
		Reason:  "extension does not implement " + contract,
	}
}

// Node returns the entry node
func (e *Atom) Node() *xmlquery.Node { return e.node }

// Index returns the zero-based position of the entry in its feed
func (e *Atom) Index() int { return e.index }

// Dialect returns the dialect hint the entry was built with
func (e *Atom) Dialect() domain.Dialect { return e.dialect }

// XPathQuery returns the positional query selecting this entry
func (e *Atom) XPathQuery() string { return e.xpathQuery }

// Extension returns an additional extension attached with WithExtensions
func (e *Atom) Extension(name string) (interfaces.Extension, bool) {
	for _, named := range e.extensions {
		if named.name == name {
			return named.ext, true
		}
	}
	return nil, false
}

// Scope returns the attached query scope, or nil
func (e *Atom) Scope() interfaces.Scope {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scope
}

// SetScope attaches scope to the entry and to every extension it owns.
// Cached fields are kept.
func (e *Atom) SetScope(scope interfaces.Scope) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.scope = scope
	e.atom.SetScope(scope)
	e.thread.SetScope(scope)
	for _, named := range e.extensions {
		named.ext.SetScope(scope)
	}
}

// Authors returns the entry authors, possibly none
func (e *Atom) Authors() []domain.Author {
	return slices.Clone(memoize(e, fieldAuthors, e.atom.Authors))
}

// Author returns the author at index
func (e *Atom) Author(index int) (domain.Author, bool) {
	authors := e.Authors()
	if index < 0 || index >= len(authors) {
		return domain.Author{}, false
	}
	return authors[index], true
}

// Content returns the entry content
func (e *Atom) Content() string {
	return memoize(e, fieldContent, e.atom.Content)
}

// DateCreated returns the creation date, or nil
func (e *Atom) DateCreated() *time.Time {
	return memoize(e, fieldDateCreated, e.atom.DateCreated)
}

// DateModified returns the modification date, or nil
func (e *Atom) DateModified() *time.Time {
	return memoize(e, fieldDateModified, e.atom.DateModified)
}

// Description returns the entry summary
func (e *Atom) Description() string {
	return memoize(e, fieldDescription, e.atom.Description)
}

// Enclosure returns the entry enclosure, or nil
func (e *Atom) Enclosure() *domain.Enclosure {
	return memoize(e, fieldEnclosure, e.atom.Enclosure)
}

// ID returns the entry identifier
func (e *Atom) ID() string {
	return memoize(e, fieldID, e.atom.ID)
}

// Links returns the entry links, possibly none
func (e *Atom) Links() []string {
	return slices.Clone(memoize(e, fieldLinks, e.atom.Links))
}

// Link returns the link at index
func (e *Atom) Link(index int) (string, bool) {
	links := e.Links()
	if index < 0 || index >= len(links) {
		return "", false
	}
	return links[index], true
}

// Permalink returns the first link of the entry
func (e *Atom) Permalink() (string, bool) {
	return e.Link(0)
}

// Title returns the entry title
func (e *Atom) Title() string {
	return memoize(e, fieldTitle, e.atom.Title)
}

// CommentCount returns the number of replies. Threading metadata wins;
// a zero thread count falls back to the Atom extension, so an explicit
// thr:total of 0 is treated like a missing one.
func (e *Atom) CommentCount() int {
	return memoize(e, fieldCommentCount, func() int {
		if count := e.thread.CommentCount(); count != 0 {
			return count
		}
		return e.atom.CommentCount()
	})
}

// CommentLink returns the page where comments can be made
func (e *Atom) CommentLink() string {
	return memoize(e, fieldCommentLink, e.atom.CommentLink)
}

// CommentFeedLink returns the feed of comments on this entry
func (e *Atom) CommentFeedLink() string {
	return memoize(e, fieldCommentFeedLink, e.atom.CommentFeedLink)
}
