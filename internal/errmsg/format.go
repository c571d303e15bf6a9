// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Queue operations
	OpQueueLoad Op = "load queue"
	OpQueueSave Op = "save queue"

	// Playlist operations
	OpPlaylistSave Op = "save playlists"

	// Preference operations
	OpLikeToggle   Op = "update liked tracks"
	OpFollowToggle Op = "update followed artists"

	// Persistence
	OpStateLoad Op = "load saved state"
	OpStateSave Op = "save state"
	OpStoreOpen Op = "open state store"

	// Catalog
	OpCatalogLoad Op = "load catalog"
	OpImportFile  Op = "import file"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
