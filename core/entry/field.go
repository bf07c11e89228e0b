// ABOUTME: Field identifiers and the per-entry memo slots
// ABOUTME: memoize computes each field at most once per entry

package entry

// field identifies one memoized entry field
type field int

const (
	fieldAuthors field = iota
	fieldContent
	fieldDateCreated
	fieldDateModified
	fieldDescription
	fieldEnclosure
	fieldID
	fieldLinks
	fieldTitle
	fieldCommentCount
	fieldCommentLink
	fieldCommentFeedLink

	fieldCount
)

var fieldNames = [fieldCount]string{
	fieldAuthors:         "authors",
	fieldContent:         "content",
	fieldDateCreated:     "datecreated",
	fieldDateModified:    "datemodified",
	fieldDescription:     "description",
	fieldEnclosure:       "enclosure",
	fieldID:              "id",
	fieldLinks:           "links",
	fieldTitle:           "title",
	fieldCommentCount:    "commentcount",
	fieldCommentLink:     "commentlink",
	fieldCommentFeedLink: "commentfeedlink",
}

func (f field) String() string {
	if f < 0 || f >= fieldCount {
		return "unknown"
	}
	return fieldNames[f]
}

// fieldCache holds one slot per field. A filled slot may hold an absent
// value (nil, "" or 0); only the filled flag decides whether to query.
type fieldCache struct {
	values [fieldCount]any
	filled [fieldCount]bool
}

// memoize returns the cached value of f, computing and storing it on the
// first call. compute must not call back into memoize on the same entry.
func memoize[T any](e *Atom, f field, compute func() T) T {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cache.filled[f] {
		return e.cache.values[f].(T)
	}

	value := compute()
	e.cache.values[f] = value
	e.cache.filled[f] = true
	return value
}
