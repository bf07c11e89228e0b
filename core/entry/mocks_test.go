package entry

import (
	"time"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/mock"

	"digests-feedreader/core/domain"
	"digests-feedreader/core/extension"
	"digests-feedreader/core/interfaces"
)

// mockEntryExtension is a mock implementation of interfaces.EntryExtension
type mockEntryExtension struct {
	mock.Mock
}

func (m *mockEntryExtension) SetScope(scope interfaces.Scope) {
	m.Called(scope)
}

func (m *mockEntryExtension) Authors() []domain.Author {
	if v := m.Called().Get(0); v != nil {
		return v.([]domain.Author)
	}
	return nil
}

func (m *mockEntryExtension) Content() string {
	return m.Called().String(0)
}

func (m *mockEntryExtension) DateCreated() *time.Time {
	if v := m.Called().Get(0); v != nil {
		return v.(*time.Time)
	}
	return nil
}

func (m *mockEntryExtension) DateModified() *time.Time {
	if v := m.Called().Get(0); v != nil {
		return v.(*time.Time)
	}
	return nil
}

func (m *mockEntryExtension) Description() string {
	return m.Called().String(0)
}

func (m *mockEntryExtension) Enclosure() *domain.Enclosure {
	if v := m.Called().Get(0); v != nil {
		return v.(*domain.Enclosure)
	}
	return nil
}

func (m *mockEntryExtension) ID() string {
	return m.Called().String(0)
}

func (m *mockEntryExtension) Links() []string {
	if v := m.Called().Get(0); v != nil {
		return v.([]string)
	}
	return nil
}

func (m *mockEntryExtension) Title() string {
	return m.Called().String(0)
}

func (m *mockEntryExtension) CommentCount() int {
	return m.Called().Int(0)
}

func (m *mockEntryExtension) CommentLink() string {
	return m.Called().String(0)
}

func (m *mockEntryExtension) CommentFeedLink() string {
	return m.Called().String(0)
}

// mockThreadExtension is a mock implementation of interfaces.ThreadExtension
type mockThreadExtension struct {
	mock.Mock
}

func (m *mockThreadExtension) SetScope(scope interfaces.Scope) {
	m.Called(scope)
}

func (m *mockThreadExtension) CommentCount() int {
	return m.Called().Int(0)
}

// mockExtension is a mock auxiliary extension
type mockExtension struct {
	mock.Mock
}

func (m *mockExtension) SetScope(scope interfaces.Scope) {
	m.Called(scope)
}

// constructed records the inputs a factory was called with
type constructed struct {
	name    string
	node    *xmlquery.Node
	index   int
	dialect domain.Dialect
}

// newMockRegistry returns a registry whose Atom and thread factories hand
// out the given mocks, plus the log of factory calls
func newMockRegistry(base interfaces.Extension, thread interfaces.Extension, extra map[string]interfaces.Extension) (*extension.Registry, *[]constructed) {
	calls := &[]constructed{}
	registry := extension.NewRegistry()
	dialects := []domain.Dialect{domain.DialectAtom, domain.DialectAtom10, domain.DialectAtom03}

	register := func(name string, ext interfaces.Extension) {
		_ = registry.Register(&extension.Registration{
			Name:     name,
			Dialects: dialects,
			Factory: func(node *xmlquery.Node, index int, dialect domain.Dialect, _ interfaces.Dependencies) (interfaces.Extension, error) {
				*calls = append(*calls, constructed{name: name, node: node, index: index, dialect: dialect})
				return ext, nil
			},
		})
	}

	register(extension.NameAtomEntry, base)
	register(extension.NameThreadEntry, thread)
	for name, ext := range extra {
		register(name, ext)
	}

	return registry, calls
}

// fakeScope is an inert interfaces.Scope used as an identity token
type fakeScope struct {
	name string
}

func (s *fakeScope) RegisterNamespace(string, string) {}
func (s *fakeScope) Query(string) ([]*xmlquery.Node, error) { return nil, nil }
func (s *fakeScope) Values(string) ([]string, error) { return nil, nil }
func (s *fakeScope) Evaluate(string) (string, error) { return "", nil }
