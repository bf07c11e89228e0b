// ABOUTME: HTML utilities for decoding entities and extracting text
// ABOUTME: Used for entry titles, summaries and plain-text rendering

package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"
)

// Unescape decodes HTML entities such as "&amp;" and "&#8217;"
func Unescape(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return xhtml.UnescapeString(s)
}

// ToText returns the visible text of an HTML fragment with whitespace
// collapsed. Script and style contents are dropped.
func ToText(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	doc.Find("script, style").Remove()

	return strings.Join(strings.Fields(doc.Text()), " ")
}
