// ABOUTME: Main client for the Digests reader library
// ABOUTME: Loads Atom documents and hands out scoped, memoizing entries

package digests

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/antchfx/xmlquery"
	"github.com/mmcdole/gofeed"

	"digests-feedreader/core/domain"
	"digests-feedreader/core/entry"
	readererrors "digests-feedreader/core/errors"
	"digests-feedreader/core/extension"
	"digests-feedreader/core/extensionregistry"
	"digests-feedreader/core/interfaces"
	"digests-feedreader/infrastructure/xpath"
)

// Client is the main entry point for the Digests reader library
type Client struct {
	config Config
}

// Config holds the configuration for the client
type Config struct {
	// Logger configuration
	Logger interfaces.Logger

	// Registry resolves entry extensions; nil means the built-in extensions
	Registry *extension.Registry

	// Extensions are additional extension names attached to every entry
	Extensions []string

	// ExprCacheTTL bounds the lifetime of compiled XPath expressions
	ExprCacheTTL time.Duration
}

// NewClient creates a new reader client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if config.Registry == nil {
		registry, err := extensionregistry.NewDefault()
		if err != nil {
			return nil, NewError(ErrorTypeConfiguration, "failed to build extension registry").WithCause(err)
		}
		config.Registry = registry
	}

	return &Client{config: config}, nil
}

// LoadFile reads and loads the Atom document at path
func (c *Client) LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewError(ErrorTypeValidation, "failed to read file").
			WithCause(err).
			WithContext("path", path)
	}
	return c.Load(data)
}

// LoadReader loads the Atom document read from r
func (c *Client) LoadReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, NewError(ErrorTypeParsing, "failed to read document").
			WithCause(&readererrors.ParseError{Stage: "read", Err: err})
	}
	return c.Load(data)
}

// Load parses an Atom document and constructs one entry per atom:entry.
// Every returned entry already has the document scope attached.
func (c *Client) Load(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, NewError(ErrorTypeValidation, "document is empty")
	}

	switch feedType := gofeed.DetectFeedType(bytes.NewReader(data)); feedType {
	case gofeed.FeedTypeAtom:
	case gofeed.FeedTypeUnknown:
		return nil, NewError(ErrorTypeParsing, "unrecognized document").
			WithCause(&readererrors.ParseError{Stage: "detect", Err: gofeed.ErrFeedTypeNotDetected})
	default:
		return nil, NewError(ErrorTypeUnsupported, "only Atom documents are supported").
			WithContext("feed_type", feedTypeName(feedType))
	}

	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, NewError(ErrorTypeParsing, "failed to parse XML").
			WithCause(&readererrors.ParseError{Stage: "xml", Err: err})
	}

	dialect := detectDialect(doc)
	scope := xpath.NewScope(doc, c.config.ExprCacheTTL)
	scope.RegisterNamespace("atom", dialect.AtomNamespace())

	nodes, err := scope.Query("//atom:entry")
	if err != nil {
		return nil, NewError(ErrorTypeParsing, "failed to select entries").
			WithCause(&readererrors.ParseError{Stage: "select", Err: err})
	}

	document := &Document{
		Dialect: dialect,
		Entries: make([]*entry.Atom, 0, len(nodes)),
		scope:   scope,
	}

	for i, node := range nodes {
		e, err := entry.NewAtom(node, i, dialect,
			entry.WithRegistry(c.config.Registry),
			entry.WithLogger(c.config.Logger),
			entry.WithExtensions(c.config.Extensions...),
		)
		if err != nil {
			errType := ErrorTypeValidation
			if readererrors.IsCollaboratorResolution(err) {
				errType = ErrorTypeResolution
			}
			return nil, NewError(errType, "failed to construct entry").
				WithCause(err).
				WithContext("index", i).
				WithContext("dialect", string(dialect))
		}
		e.SetScope(scope)
		document.Entries = append(document.Entries, e)
	}

	c.config.Logger.Info("Loaded Atom document", map[string]interface{}{
		"dialect": string(dialect),
		"entries": len(document.Entries),
	})

	return document, nil
}

// detectDialect tells Atom 0.3 from Atom 1.0 by the root element
func detectDialect(doc *xmlquery.Node) domain.Dialect {
	for node := doc.FirstChild; node != nil; node = node.NextSibling {
		if node.Type != xmlquery.ElementNode {
			continue
		}
		if node.NamespaceURI == domain.NamespaceAtom03 || node.SelectAttr("version") == "0.3" {
			return domain.DialectAtom03
		}
		return domain.DialectAtom10
	}
	return domain.DialectAtom10
}

func feedTypeName(feedType gofeed.FeedType) string {
	switch feedType {
	case gofeed.FeedTypeRSS:
		return "rss"
	case gofeed.FeedTypeJSON:
		return "json"
	case gofeed.FeedTypeAtom:
		return "atom"
	default:
		return "unknown"
	}
}
