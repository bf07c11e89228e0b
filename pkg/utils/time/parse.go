// ABOUTME: Time parsing utilities for flexible date/time parsing
// ABOUTME: Handles the date constructs found in Atom 1.0 and Atom 0.3 entries

package time

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Common time formats found in RSS/Atom feeds
var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02 Jan 2006 15:04:05 MST",
	"02 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
}

// ParseFlexibleTime attempts to parse a time string using the known feed
// formats, then falls back to dateparse. Returns the zero time on failure.
func ParseFlexibleTime(timeStr string) time.Time {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}
	}

	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	if t, err := dateparse.ParseIn(timeStr, time.UTC); err == nil {
		return t
	}

	return time.Time{}
}

// ParseOptional parses timeStr and returns nil when it is empty or unparseable
func ParseOptional(timeStr string) *time.Time {
	parsed := ParseFlexibleTime(timeStr)
	if parsed.IsZero() {
		return nil
	}
	return &parsed
}
