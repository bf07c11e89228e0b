// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
// - xpath: Namespace-aware XPath query scope over a parsed XML document
// - logger: Structured logger backed by logrus, with optional file rotation
//
// # Query Scope
//
// Compiled expressions are cached per scope and dropped whenever a
// namespace binding changes:
//
//	doc, err := xmlquery.Parse(r)
//	scope := xpath.NewScope(doc, 10*time.Minute)
//	scope.RegisterNamespace("atom", domain.NamespaceAtom10)
//	title, err := scope.Evaluate("string(//atom:entry[1]/atom:title)")
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	log, err := logger.New(cfg.Log)
//	log.Info("Loaded Atom document", map[string]interface{}{
//	    "entries": 12,
//	})
//
package infrastructure
