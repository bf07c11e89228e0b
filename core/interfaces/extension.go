// ABOUTME: Contracts for dialect-specific entry extensions
// ABOUTME: Extensions extract single fields from an entry node via a Scope

package interfaces

import (
	"time"

	"digests-feedreader/core/domain"
)

// Extension is the minimum every entry extension provides
type Extension interface {
	ScopeConsumer
}

// EntryExtension extracts every entry field for one base dialect.
// Methods never fail: a missing or malformed field yields the zero value
// ("" , nil, 0, or an empty slice).
type EntryExtension interface {
	Extension

	Authors() []domain.Author
	Content() string
	DateCreated() *time.Time
	DateModified() *time.Time
	Description() string
	Enclosure() *domain.Enclosure
	ID() string
	Links() []string
	Title() string
	CommentCount() int
	CommentLink() string
	CommentFeedLink() string
}

// ThreadExtension extracts threaded-comment metadata
type ThreadExtension interface {
	Extension

	CommentCount() int
}
