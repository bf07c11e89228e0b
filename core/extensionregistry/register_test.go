package extensionregistry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digests-feedreader/core/domain"
	"digests-feedreader/core/extension"
	readererrors "digests-feedreader/core/errors"
)

func TestNewDefault(t *testing.T) {
	registry, err := NewDefault()
	require.NoError(t, err)

	assert.Equal(t, []string{extension.NameAtomEntry, extension.NameThreadEntry}, registry.Names())

	for _, dialect := range []domain.Dialect{"", domain.DialectAtom, domain.DialectAtom10, domain.DialectAtom03} {
		_, err := registry.Resolve(extension.NameAtomEntry, dialect)
		assert.NoError(t, err, "dialect %q", dialect)
		_, err = registry.Resolve(extension.NameThreadEntry, dialect)
		assert.NoError(t, err, "dialect %q", dialect)
	}
}

func TestRegister_Twice(t *testing.T) {
	registry := extension.NewRegistry()
	require.NoError(t, Register(registry))

	err := Register(registry)
	assert.True(t, readererrors.IsValidation(err))
}

func TestRegister_NilRegistry(t *testing.T) {
	err := Register(nil)
	assert.True(t, readererrors.IsValidation(err))
}
