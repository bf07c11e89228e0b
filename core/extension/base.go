// ABOUTME: Shared state and query helpers for entry extensions
// ABOUTME: Holds the entry node, its positional prefix and the attached scope

package extension

import (
	"github.com/antchfx/xmlquery"

	"digests-feedreader/core/domain"
	"digests-feedreader/core/interfaces"
	"digests-feedreader/infrastructure/logger"
)

// Base carries what every entry extension needs. Concrete extensions embed
// it and build their queries on top of XPathPrefix.
type Base struct {
	node    *xmlquery.Node
	index   int
	dialect domain.Dialect
	prefix  string
	scope   interfaces.Scope
	logger  interfaces.Logger
}

// NewBase creates the shared extension state for one entry
func NewBase(node *xmlquery.Node, index int, dialect domain.Dialect, deps interfaces.Dependencies) Base {
	log := deps.Logger
	if log == nil {
		log = logger.NewNopLogger()
	}
	return Base{
		node:    node,
		index:   index,
		dialect: dialect,
		prefix:  domain.EntryPath(index),
		logger:  log,
	}
}

// SetScope attaches the query scope and binds the "atom" prefix for the
// extension's dialect
func (b *Base) SetScope(scope interfaces.Scope) {
	b.scope = scope
	if scope != nil {
		scope.RegisterNamespace("atom", b.dialect.AtomNamespace())
	}
}

// Scope returns the attached scope, or nil
func (b *Base) Scope() interfaces.Scope { return b.scope }

// Node returns the entry node
func (b *Base) Node() *xmlquery.Node { return b.node }

// Index returns the zero-based entry index
func (b *Base) Index() int { return b.index }

// Dialect returns the dialect hint the extension was built with
func (b *Base) Dialect() domain.Dialect { return b.dialect }

// XPathPrefix returns the positional query for this entry
func (b *Base) XPathPrefix() string { return b.prefix }

// Logger returns the extension logger
func (b *Base) Logger() interfaces.Logger { return b.logger }

// Evaluate returns the string value of expr, or "" on failure
func (b *Base) Evaluate(expr string) string {
	if b.scope == nil {
		b.logNoScope(expr)
		return ""
	}
	value, err := b.scope.Evaluate(expr)
	if err != nil {
		b.logFailure(expr, err)
		return ""
	}
	return value
}

// Values returns the string values selected by expr, or nil on failure
func (b *Base) Values(expr string) []string {
	if b.scope == nil {
		b.logNoScope(expr)
		return nil
	}
	values, err := b.scope.Values(expr)
	if err != nil {
		b.logFailure(expr, err)
		return nil
	}
	return values
}

// Query returns the nodes selected by expr, or nil on failure
func (b *Base) Query(expr string) []*xmlquery.Node {
	if b.scope == nil {
		b.logNoScope(expr)
		return nil
	}
	nodes, err := b.scope.Query(expr)
	if err != nil {
		b.logFailure(expr, err)
		return nil
	}
	return nodes
}

func (b *Base) logNoScope(expr string) {
	b.logger.Debug("Query issued without a scope", map[string]interface{}{
		"query": expr,
		"index": b.index,
	})
}

func (b *Base) logFailure(expr string, err error) {
	b.logger.Debug("Field query failed", map[string]interface{}{
		"query": expr,
		"index": b.index,
		"error": err.Error(),
	})
}
