// ABOUTME: Query scope contract used by extensions to query a parsed document
// ABOUTME: Entries only forward the scope, extensions issue the queries

package interfaces

import "github.com/antchfx/xmlquery"

// Scope resolves XPath queries against one parsed document.
// Prefixes used in expressions must be registered first.
type Scope interface {
	// RegisterNamespace binds prefix to uri for subsequent queries
	RegisterNamespace(prefix, uri string)

	// Query returns the element nodes selected by expr in document order
	Query(expr string) ([]*xmlquery.Node, error)

	// Values returns the string value of every node selected by expr
	Values(expr string) ([]string, error)

	// Evaluate returns the string value of expr. Node-set results yield
	// the value of the first node, or "" when the set is empty.
	Evaluate(expr string) (string, error)
}

// ScopeConsumer is anything that issues queries through a Scope
type ScopeConsumer interface {
	SetScope(scope Scope)
}
