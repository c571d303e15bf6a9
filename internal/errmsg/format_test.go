package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpStateSave,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpQueueSave,
			err:      errors.New("disk full"),
			expected: "Failed to save queue: disk full",
		},
		{
			name:     "state load operation",
			op:       OpStateLoad,
			err:      errors.New("database is locked"),
			expected: "Failed to load saved state: database is locked",
		},
		{
			name:     "preference operation",
			op:       OpLikeToggle,
			err:      errors.New("database is locked"),
			expected: "Failed to update liked tracks: database is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpImportFile,
			context:  "song.mp3",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpImportFile,
			context:  "song.mp3",
			err:      errors.New("permission denied"),
			expected: "Failed to import file 'song.mp3': permission denied",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpCatalogLoad,
			context:  "",
			err:      errors.New("no such file"),
			expected: "Failed to load catalog: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}
