// ABOUTME: Registry mapping extension names to constructors
// ABOUTME: Resolves a logical extension name and dialect to a factory

package extension

import (
	"fmt"
	"sort"
	"sync"

	"github.com/antchfx/xmlquery"

	"digests-feedreader/core/domain"
	readererrors "digests-feedreader/core/errors"
	"digests-feedreader/core/interfaces"
)

// Well-known extension names
const (
	NameAtomEntry   = "Atom_Entry"
	NameThreadEntry = "Thread_Entry"
)

// Factory creates an extension bound to one entry node.
// Factories only capture their inputs; queries happen after a scope is attached.
type Factory func(node *xmlquery.Node, index int, dialect domain.Dialect, deps interfaces.Dependencies) (interfaces.Extension, error)

// Registration holds a factory and the dialects it can serve
type Registration struct {
	Name        string           // Extension name (e.g., "Atom_Entry")
	Description string           // Human-readable description
	Dialects    []domain.Dialect // Dialects this extension understands
	Factory     Factory          // Constructor
}

// Supports reports whether the registration can serve dialect.
// An empty dialect is treated as generic Atom.
func (r *Registration) Supports(dialect domain.Dialect) bool {
	if dialect == "" {
		dialect = domain.DialectAtom
	}
	for _, d := range r.Dialects {
		if d == dialect {
			return true
		}
	}
	return false
}

// Registry manages extension factories by name.
// It is safe for concurrent use.
type Registry struct {
	registrations map[string]*Registration
	mu            sync.RWMutex
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		registrations: make(map[string]*Registration),
	}
}

// Register adds an extension registration.
// Returns an error if the registration is incomplete or the name is taken.
func (r *Registry) Register(registration *Registration) error {
	if registration == nil {
		return &readererrors.ValidationError{Field: "registration", Message: "cannot be nil"}
	}
	if registration.Name == "" {
		return &readererrors.ValidationError{Field: "name", Message: "cannot be empty"}
	}
	if registration.Factory == nil {
		return &readererrors.ValidationError{Field: "factory", Message: "cannot be nil"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.registrations[registration.Name]; exists {
		return &readererrors.ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("extension '%s' is already registered", registration.Name),
		}
	}

	r.registrations[registration.Name] = registration
	return nil
}

// Resolve looks up the registration for name and checks it serves dialect
func (r *Registry) Resolve(name string, dialect domain.Dialect) (*Registration, error) {
	r.mu.RLock()
	registration, exists := r.registrations[name]
	r.mu.RUnlock()

	if !exists {
		return nil, &readererrors.CollaboratorResolutionError{
			Name:    name,
			Dialect: string(dialect),
			Reason:  "no extension registered under this name",
		}
	}

	if !registration.Supports(dialect) {
		return nil, &readererrors.CollaboratorResolutionError{
			Name:    name,
			Dialect: string(dialect),
			Reason:  "dialect not supported",
		}
	}

	return registration, nil
}

// Create resolves name and constructs an extension for the given entry node
func (r *Registry) Create(
	name string, node *xmlquery.Node, index int, dialect domain.Dialect, deps interfaces.Dependencies,
) (interfaces.Extension, error) {
	registration, err := r.Resolve(name, dialect)
	if err != nil {
		return nil, err
	}

	ext, err := registration.Factory(node, index, dialect, deps)
	if err != nil {
		return nil, &readererrors.CollaboratorResolutionError{
			Name:    name,
			Dialect: string(dialect),
			Reason:  fmt.Sprintf("factory failed: %v", err),
		}
	}
	if ext == nil {
		return nil, &readererrors.CollaboratorResolutionError{
			Name:    name,
			Dialect: string(dialect),
			Reason:  "factory returned no extension",
		}
	}

	return ext, nil
}

// Names returns the registered extension names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.registrations))
	for name := range r.registrations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
