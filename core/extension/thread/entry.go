// ABOUTME: Thread entry extension reading RFC 4685 threading metadata
// ABOUTME: Only the reply total is exposed

package thread

import (
	"github.com/antchfx/xmlquery"

	"digests-feedreader/core/domain"
	"digests-feedreader/core/extension"
	"digests-feedreader/core/interfaces"
	"digests-feedreader/pkg/utils/parse"
)

var _ interfaces.ThreadExtension = (*Entry)(nil)

// Entry reads threading metadata for the entry at one position
type Entry struct {
	extension.Base
}

// New creates a thread entry extension
func New(node *xmlquery.Node, index int, dialect domain.Dialect, deps interfaces.Dependencies) *Entry {
	return &Entry{Base: extension.NewBase(node, index, dialect, deps)}
}

// Factory is the registry constructor for the thread entry extension
func Factory(node *xmlquery.Node, index int, dialect domain.Dialect, deps interfaces.Dependencies) (interfaces.Extension, error) {
	return New(node, index, dialect, deps), nil
}

// Register adds the thread entry extension to registry
func Register(registry *extension.Registry) error {
	return registry.Register(&extension.Registration{
		Name:        extension.NameThreadEntry,
		Description: "Atom threading extension (thr:total)",
		Dialects:    []domain.Dialect{domain.DialectAtom, domain.DialectAtom10, domain.DialectAtom03},
		Factory:     Factory,
	})
}

// SetScope attaches the scope and binds the thr prefix
func (e *Entry) SetScope(scope interfaces.Scope) {
	e.Base.SetScope(scope)
	if scope != nil {
		scope.RegisterNamespace("thr", domain.NamespaceThread)
	}
}

// CommentCount returns thr:total, or 0 when absent
func (e *Entry) CommentCount() int {
	return parse.IntOrZero(e.Evaluate(e.XPathPrefix() + "/thr:total"))
}
