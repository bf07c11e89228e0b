// ABOUTME: Atom entry extension extracting entry fields via positional XPath
// ABOUTME: Handles both Atom 1.0 and the pre-standard Atom 0.3 format

package atom

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/antchfx/xmlquery"

	"digests-feedreader/core/domain"
	"digests-feedreader/core/extension"
	"digests-feedreader/core/interfaces"
	"digests-feedreader/pkg/utils/html"
	"digests-feedreader/pkg/utils/parse"
	timeutil "digests-feedreader/pkg/utils/time"
)

var _ interfaces.EntryExtension = (*Entry)(nil)

// Entry extracts Atom fields for the entry at one position in the document
type Entry struct {
	extension.Base
}

// New creates an Atom entry extension
func New(node *xmlquery.Node, index int, dialect domain.Dialect, deps interfaces.Dependencies) *Entry {
	return &Entry{Base: extension.NewBase(node, index, dialect, deps)}
}

// Factory is the registry constructor for the Atom entry extension
func Factory(node *xmlquery.Node, index int, dialect domain.Dialect, deps interfaces.Dependencies) (interfaces.Extension, error) {
	return New(node, index, dialect, deps), nil
}

// Register adds the Atom entry extension to registry
func Register(registry *extension.Registry) error {
	return registry.Register(&extension.Registration{
		Name:        extension.NameAtomEntry,
		Description: "Atom 1.0 and Atom 0.3 entry fields",
		Dialects:    []domain.Dialect{domain.DialectAtom, domain.DialectAtom10, domain.DialectAtom03},
		Factory:     Factory,
	})
}

// SetScope attaches the scope and binds the prefixes Atom queries use
func (e *Entry) SetScope(scope interfaces.Scope) {
	e.Base.SetScope(scope)
	if scope != nil {
		scope.RegisterNamespace("thr", domain.NamespaceThread)
	}
}

// Authors returns the entry authors, falling back to the feed authors.
// Empty and duplicate records are dropped.
func (e *Entry) Authors() []domain.Author {
	nodes := e.Query(e.XPathPrefix() + "/atom:author")
	if len(nodes) == 0 {
		nodes = e.Query("/atom:feed/atom:author")
	}

	authors := make([]domain.Author, 0, len(nodes))
	seen := make(map[domain.Author]bool, len(nodes))
	for _, node := range nodes {
		author := authorFromNode(node)
		if author.IsEmpty() || seen[author] {
			continue
		}
		seen[author] = true
		authors = append(authors, author)
	}
	return authors
}

// Content returns the entry content, or the description when there is none
func (e *Entry) Content() string {
	var content string
	if nodes := e.Query(e.XPathPrefix() + "/atom:content"); len(nodes) > 0 {
		content = contentFromNode(nodes[0])
	}

	if strings.TrimSpace(content) == "" {
		content = e.Description()
	}
	return strings.TrimSpace(content)
}

// DateCreated returns the publication date
func (e *Entry) DateCreated() *time.Time {
	if e.Dialect() == domain.DialectAtom03 {
		return e.date("atom:created", "atom:issued")
	}
	return e.date("atom:published")
}

// DateModified returns the last update date
func (e *Entry) DateModified() *time.Time {
	if e.Dialect() == domain.DialectAtom03 {
		return e.date("atom:modified")
	}
	return e.date("atom:updated")
}

// Description returns the entry summary with HTML entities decoded
func (e *Entry) Description() string {
	return html.Unescape(e.text("atom:summary"))
}

// Enclosure returns the first enclosure link, or nil
func (e *Entry) Enclosure() *domain.Enclosure {
	nodes := e.Query(e.XPathPrefix() + "/atom:link[@rel='enclosure']")
	if len(nodes) == 0 {
		return nil
	}

	href := strings.TrimSpace(nodes[0].SelectAttr("href"))
	if href == "" {
		return nil
	}
	return &domain.Enclosure{
		URL:    href,
		Length: nodes[0].SelectAttr("length"),
		Type:   nodes[0].SelectAttr("type"),
	}
}

// ID returns atom:id, falling back to the first link and then the title
func (e *Entry) ID() string {
	if id := e.text("atom:id"); id != "" {
		return id
	}
	if links := e.Links(); len(links) > 0 {
		return links[0]
	}
	return e.Title()
}

// Links returns the alternate links of the entry in document order.
// A link without rel is an alternate link.
func (e *Entry) Links() []string {
	nodes := e.Query(e.XPathPrefix() + "/atom:link")

	links := make([]string, 0, len(nodes))
	for _, node := range nodes {
		if rel := node.SelectAttr("rel"); rel != "" && rel != "alternate" {
			continue
		}
		if href := strings.TrimSpace(node.SelectAttr("href")); href != "" {
			links = append(links, href)
		}
	}
	return links
}

// Title returns the entry title with HTML entities decoded
func (e *Entry) Title() string {
	return html.Unescape(e.text("atom:title"))
}

// CommentCount returns thr:count from the replies link, or 0
func (e *Entry) CommentCount() int {
	return parse.IntOrZero(e.Evaluate(e.XPathPrefix() + "/atom:link[@rel='replies']/@thr:count"))
}

// CommentLink returns the HTML page where comments can be read or made
func (e *Entry) CommentLink() string {
	return e.text("atom:link[@rel='replies' and @type='text/html']/@href")
}

// CommentFeedLink returns the Atom feed of the entry's comments
func (e *Entry) CommentFeedLink() string {
	return e.text("atom:link[@rel='replies' and @type='application/atom+xml']/@href")
}

// text evaluates a path relative to the entry and trims the result
func (e *Entry) text(path string) string {
	return strings.TrimSpace(e.Evaluate(e.XPathPrefix() + "/" + path))
}

// date returns the first of the given elements that parses as a date
func (e *Entry) date(paths ...string) *time.Time {
	for _, path := range paths {
		if t := timeutil.ParseOptional(e.text(path)); t != nil {
			return t
		}
	}
	return nil
}

func authorFromNode(node *xmlquery.Node) domain.Author {
	var author domain.Author
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode {
			continue
		}
		value := strings.TrimSpace(child.InnerText())
		switch child.Data {
		case "name":
			author.Name = value
		case "email":
			author.Email = value
		case "uri", "url":
			author.URI = value
		}
	}
	return author
}

func contentFromNode(node *xmlquery.Node) string {
	contentType := node.SelectAttr("type")
	mode := node.SelectAttr("mode")

	switch {
	case mode == "base64":
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(node.InnerText()))
		if err != nil {
			return ""
		}
		return string(decoded)
	case contentType == "xhtml":
		return collectXHTML(node)
	case mode == "xml" || contentType == "application/xhtml+xml":
		return innerXML(node)
	default:
		return node.InnerText()
	}
}

// collectXHTML returns the markup inside the wrapping xhtml:div with the
// element prefix removed
func collectXHTML(node *xmlquery.Node) string {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode || child.Data != "div" {
			continue
		}
		markup := innerXML(child)
		if child.Prefix != "" {
			markup = strings.ReplaceAll(markup, "<"+child.Prefix+":", "<")
			markup = strings.ReplaceAll(markup, "</"+child.Prefix+":", "</")
		}
		return markup
	}
	return innerXML(node)
}

func innerXML(node *xmlquery.Node) string {
	var b strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		b.WriteString(child.OutputXMLWithOptions(xmlquery.WithOutputSelf(), xmlquery.WithPreserveSpace()))
	}
	return b.String()
}
