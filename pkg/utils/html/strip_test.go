package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnescape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "Hello World", "Hello World"},
		{"named entity", "Fish &amp; Chips", "Fish & Chips"},
		{"numeric entity", "It&#8217;s here", "It’s here"},
		{"markup kept", "&lt;b&gt;bold&lt;/b&gt;", "<b>bold</b>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Unescape(tt.input))
		})
	}
}

func TestToText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "   ", ""},
		{"paragraphs", "<p>Hello</p>\n<p>World</p>", "Hello World"},
		{"inline markup", "An <em>important</em> <a href=\"#\">link</a>", "An important link"},
		{"script removed", "<p>Text</p><script>alert(1)</script>", "Text"},
		{"entities decoded", "<p>Fish &amp; Chips</p>", "Fish & Chips"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToText(tt.input))
		})
	}
}
