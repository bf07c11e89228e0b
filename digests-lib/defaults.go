// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for creating default collaborators

package digests

import (
	"digests-feedreader/core/interfaces"
	loggerInfra "digests-feedreader/infrastructure/logger"
)

// DefaultLogger creates a default logger that writes to stderr
func DefaultLogger() interfaces.Logger {
	return loggerInfra.NewDefaultLogger()
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return loggerInfra.NewNopLogger()
}
