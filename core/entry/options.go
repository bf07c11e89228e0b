// ABOUTME: Functional options for entry construction
// ABOUTME: Selects the extension registry, logger and auxiliary extensions

package entry

import (
	"sync"

	"digests-feedreader/core/extension"
	"digests-feedreader/core/extensionregistry"
	"digests-feedreader/core/interfaces"
)

var defaultRegistry = sync.OnceValues(extensionregistry.NewDefault)

// Option configures entry construction
type Option func(*options)

type options struct {
	registry   *extension.Registry
	deps       interfaces.Dependencies
	extensions []string
}

// WithRegistry resolves extensions through registry instead of the
// built-in one
func WithRegistry(registry *extension.Registry) Option {
	return func(o *options) {
		o.registry = registry
	}
}

// WithLogger passes logger to every extension the entry constructs
func WithLogger(logger interfaces.Logger) Option {
	return func(o *options) {
		o.deps.Logger = logger
	}
}

// WithExtensions attaches additional named extensions to the entry.
// They receive the scope together with the Atom and thread extensions.
func WithExtensions(names ...string) Option {
	return func(o *options) {
		o.extensions = append(o.extensions, names...)
	}
}
