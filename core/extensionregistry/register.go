// Package extensionregistry registers the built-in entry extensions.
package extensionregistry

import (
	readererrors "digests-feedreader/core/errors"
	"digests-feedreader/core/extension"
	"digests-feedreader/core/extension/atom"
	"digests-feedreader/core/extension/thread"
)

// Register registers all built-in extensions with the provided registry:
//   - Atom_Entry (Atom 1.0 / 0.3 entry fields)
//   - Thread_Entry (threaded comment totals)
func Register(registry *extension.Registry) error {
	if registry == nil {
		return &readererrors.ValidationError{Field: "registry", Message: "cannot be nil"}
	}

	if err := atom.Register(registry); err != nil {
		return readererrors.WrapError(err, "registering Atom entry extension")
	}

	if err := thread.Register(registry); err != nil {
		return readererrors.WrapError(err, "registering thread entry extension")
	}

	return nil
}

// NewDefault returns a registry holding the built-in extensions
func NewDefault() (*extension.Registry, error) {
	registry := extension.NewRegistry()
	if err := Register(registry); err != nil {
		return nil, err
	}
	return registry, nil
}
