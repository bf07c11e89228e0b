package interfaces

// Logger defines the interface for logging throughout the reader.
// Extensions and the loader log through it so callers can plug in
// their own backend.
//
// Example usage:
//
//	logger.Debug("Field query failed", map[string]interface{}{
//		"query": "//atom:entry[2]/atom:title",
//		"error": err.Error(),
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	Error(msg string, fields map[string]interface{})
}
