// ABOUTME: Markup dialects understood by the entry extensions
// ABOUTME: Also owns the translation from entry index to positional query

package domain

import "strconv"

// Dialect identifies a markup variant of a syndication document
type Dialect string

const (
	// DialectAtom is generic Atom, queried with Atom 1.0 rules
	DialectAtom Dialect = "atom"

	// DialectAtom10 is Atom 1.0 (RFC 4287)
	DialectAtom10 Dialect = "atom-10"

	// DialectAtom03 is the pre-standard Atom 0.3 format
	DialectAtom03 Dialect = "atom-03"
)

// Namespace URIs used by the Atom extensions
const (
	NamespaceAtom10 = "http://www.w3.org/2005/Atom"
	NamespaceAtom03 = "http://purl.org/atom/ns#"
	NamespaceThread = "http://purl.org/syndication/thread/1.0"
	NamespaceXHTML  = "http://www.w3.org/1999/xhtml"
)

// IsAtom reports whether the dialect is one of the Atom variants.
// The empty dialect counts as generic Atom.
func (d Dialect) IsAtom() bool {
	switch d {
	case "", DialectAtom, DialectAtom10, DialectAtom03:
		return true
	}
	return false
}

// AtomNamespace returns the namespace URI bound to the "atom" prefix for d
func (d Dialect) AtomNamespace() string {
	if d == DialectAtom03 {
		return NamespaceAtom03
	}
	return NamespaceAtom10
}

// EntryPath returns the positional query selecting the entry at the given
// zero-based index. XPath positions start at 1.
func EntryPath(index int) string {
	return "//atom:entry[" + strconv.Itoa(index+1) + "]"
}
