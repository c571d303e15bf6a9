package queue

import "github.com/tonearm/tonearm/internal/catalog"

// DefaultRecentLimit is the bound on the recently played list.
const DefaultRecentLimit = 10

// Recent is a bounded most-recent-first list of played tracks.
// Re-playing a track moves it to the front instead of duplicating it.
type Recent struct {
	tracks []catalog.Track
	limit  int
}

// NewRecent creates a recently played list with the given bound.
// A limit <= 0 falls back to DefaultRecentLimit.
func NewRecent(limit int) *Recent {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return &Recent{limit: limit}
}

// Push records a play of t at the front, deduplicating by ID and
// trimming to the bound.
func (r *Recent) Push(t catalog.Track) {
	kept := make([]catalog.Track, 0, len(r.tracks)+1)
	kept = append(kept, t)
	for _, existing := range r.tracks {
		if existing.ID != t.ID {
			kept = append(kept, existing)
		}
	}
	if len(kept) > r.limit {
		kept = kept[:r.limit]
	}
	r.tracks = kept
}

// Tracks returns a copy, most recent first.
func (r *Recent) Tracks() []catalog.Track {
	result := make([]catalog.Track, len(r.tracks))
	copy(result, r.tracks)
	return result
}

// Replace swaps the list contents, trimming to the bound. Used when
// hydrating from the store.
func (r *Recent) Replace(tracks []catalog.Track) {
	if len(tracks) > r.limit {
		tracks = tracks[:r.limit]
	}
	r.tracks = make([]catalog.Track, len(tracks))
	copy(r.tracks, tracks)
}

// Len returns the number of remembered tracks.
func (r *Recent) Len() int {
	return len(r.tracks)
}

// Clear forgets all remembered tracks.
func (r *Recent) Clear() {
	r.tracks = r.tracks[:0]
}
