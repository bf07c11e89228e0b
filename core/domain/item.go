// ABOUTME: Value types returned by entry accessors
// ABOUTME: Authors and enclosures as extracted from an entry node

package domain

// Author represents author information
type Author struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	URI   string `json:"uri,omitempty"`
}

// IsEmpty reports whether the author carries no information at all
func (a Author) IsEmpty() bool {
	return a.Name == "" && a.Email == "" && a.URI == ""
}

// Enclosure represents media attachment information
type Enclosure struct {
	URL    string `json:"url"`              // Media file URL
	Length string `json:"length,omitempty"` // File size in bytes
	Type   string `json:"type,omitempty"`   // MIME type
}
