// ABOUTME: XPath query scope over a parsed XML document
// ABOUTME: Compiles namespace-aware expressions and caches them per namespace set

package xpath

import (
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	gocache "github.com/patrickmn/go-cache"
)

// Scope answers XPath queries against one document. It implements
// interfaces.Scope and is safe for concurrent use.
type Scope struct {
	doc        *xmlquery.Node
	namespaces map[string]string
	generation int
	exprs      *gocache.Cache
	mu         sync.RWMutex

	// evalMu guards Expr.Evaluate, which mutates the compiled query in place
	evalMu sync.Mutex
}

// NewScope creates a scope over doc. Compiled expressions are kept for ttl;
// a ttl of zero or less keeps them for the life of the scope.
func NewScope(doc *xmlquery.Node, ttl time.Duration) *Scope {
	expiration := gocache.NoExpiration
	cleanup := time.Duration(0)
	if ttl > 0 {
		expiration = ttl
		cleanup = 2 * ttl
	}

	return &Scope{
		doc:        doc,
		namespaces: make(map[string]string),
		exprs:      gocache.New(expiration, cleanup),
	}
}

// Document returns the root node the scope queries
func (s *Scope) Document() *xmlquery.Node {
	return s.doc
}

// RegisterNamespace binds prefix to uri. Rebinding a prefix to a different
// uri drops every compiled expression.
func (s *Scope) RegisterNamespace(prefix, uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.namespaces[prefix]; ok && current == uri {
		return
	}
	s.namespaces[prefix] = uri
	s.generation++
	s.exprs.Flush()
}

// Namespaces returns a copy of the registered prefix bindings
func (s *Scope) Namespaces() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.namespaces))
	for prefix, uri := range s.namespaces {
		out[prefix] = uri
	}
	return out
}

// Query returns the nodes selected by expr in document order
func (s *Scope) Query(expr string) (nodes []*xmlquery.Node, err error) {
	compiled, err := s.compile(expr)
	if err != nil {
		return nil, err
	}
	defer recoverQuery(expr, &err)

	return xmlquery.QuerySelectorAll(s.doc, compiled), nil
}

// Values returns the string value of each node selected by expr
func (s *Scope) Values(expr string) (values []string, err error) {
	compiled, err := s.compile(expr)
	if err != nil {
		return nil, err
	}
	defer recoverQuery(expr, &err)

	iter := compiled.Select(xmlquery.CreateXPathNavigator(s.doc))
	for iter.MoveNext() {
		values = append(values, iter.Current().Value())
	}
	return values, nil
}

// Evaluate returns the string value of expr
func (s *Scope) Evaluate(expr string) (value string, err error) {
	compiled, err := s.compile(expr)
	if err != nil {
		return "", err
	}
	s.evalMu.Lock()
	defer s.evalMu.Unlock()
	defer recoverQuery(expr, &err)

	switch v := compiled.Evaluate(xmlquery.CreateXPathNavigator(s.doc)).(type) {
	case string:
		return v, nil
	case float64:
		if math.IsNaN(v) {
			return "", nil
		}
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case *xpath.NodeIterator:
		if v.MoveNext() {
			return v.Current().Value(), nil
		}
		return "", nil
	default:
		return "", fmt.Errorf("xpath %q: unexpected result type %T", expr, v)
	}
}

func (s *Scope) compile(expr string) (*xpath.Expr, error) {
	s.mu.RLock()
	key := strconv.Itoa(s.generation) + "|" + expr
	if cached, ok := s.exprs.Get(key); ok {
		s.mu.RUnlock()
		return cached.(*xpath.Expr), nil
	}
	namespaces := make(map[string]string, len(s.namespaces))
	for prefix, uri := range s.namespaces {
		namespaces[prefix] = uri
	}
	s.mu.RUnlock()

	compiled, err := xpath.CompileWithNS(expr, namespaces)
	if err != nil {
		return nil, fmt.Errorf("xpath %q: %w", expr, err)
	}

	s.exprs.Set(key, compiled, gocache.DefaultExpiration)
	return compiled, nil
}

// recoverQuery turns a panic raised while evaluating expr into an error
func recoverQuery(expr string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("xpath %q: %v", expr, r)
	}
}
