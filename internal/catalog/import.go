package catalog

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
	"github.com/google/uuid"
)

// ImportFile builds a Track from an audio file's embedded tags.
// Files without usable tags fall back to the file name as title.
// Duration is left at 0; the playback device reports the real
// duration once the file is loaded.
func ImportFile(path string) (Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return Track{}, err
	}
	defer f.Close()

	t := Track{
		ID:       uuid.NewString(),
		Title:    strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		AudioURI: path,
	}

	m, err := tag.ReadFrom(f)
	if err != nil {
		// Not an error for the caller: untagged files are playable.
		return t, nil
	}
	if m.Title() != "" {
		t.Title = m.Title()
	}
	t.Artist = m.Artist()
	t.Genre = m.Genre()
	return t, nil
}
