// ABOUTME: Dependencies container handed to extension factories
// ABOUTME: Defines the collaborators an extension may rely on

package interfaces

// Dependencies holds the external dependencies available to extensions
type Dependencies struct {
	// Logger provides structured logging
	Logger Logger
}
