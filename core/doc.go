// Package core contains the entry reading logic of the feed reader.
// It does not parse documents or fetch anything itself; it works against
// the contracts in core/interfaces and receives concrete adapters from the
// caller.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure value types (Author, Enclosure, Dialect and namespaces)
// - entry: The Atom entry facade with memoized per-field accessors
// - extension: Extension registry and shared base for entry extensions
// - extension/atom: Atom 0.3 and 1.0 entry field extraction
// - extension/thread: Atom Threading (RFC 4685) comment totals
// - extensionregistry: Default registration of the built-in extensions
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (scope, logger, extensions)
//
// # Usage Example
//
//	import (
//	    "digests-feedreader/core/domain"
//	    "digests-feedreader/core/entry"
//	    "digests-feedreader/infrastructure/xpath"
//	)
//
//	scope := xpath.NewScope(doc, 0)
//	e, err := entry.NewAtom(node, 0, domain.DialectAtom10)
//	if err != nil {
//	    return err
//	}
//	e.SetScope(scope)
//	title := e.Title()
//
package core
