// Package queue holds the ordered list of tracks next/previous
// navigate through, distinct from any user playlist.
package queue

import "github.com/tonearm/tonearm/internal/catalog"

// Queue is an ordered sequence of tracks, deduplicated by ID on
// insert. Playing a collection replaces it wholesale.
type Queue struct {
	tracks []catalog.Track
}

// New creates an empty queue.
func New() *Queue {
	return &Queue{tracks: make([]catalog.Track, 0)}
}

// Append adds a track unless its ID is already present.
// Returns true if the queue changed.
func (q *Queue) Append(t catalog.Track) bool {
	if q.IndexOf(t.ID) >= 0 {
		return false
	}
	q.tracks = append(q.tracks, t)
	return true
}

// Replace swaps the queue contents for the given tracks.
func (q *Queue) Replace(tracks []catalog.Track) {
	q.tracks = make([]catalog.Track, len(tracks))
	copy(q.tracks, tracks)
}

// IndexOf returns the position of the track with the given ID, or -1.
func (q *Queue) IndexOf(id string) int {
	for i := range q.tracks {
		if q.tracks[i].ID == id {
			return i
		}
	}
	return -1
}

// Contains reports whether a track with the given ID is queued.
func (q *Queue) Contains(id string) bool {
	return q.IndexOf(id) >= 0
}

// Track returns the track at the given index, or nil if out of bounds.
func (q *Queue) Track(index int) *catalog.Track {
	if index < 0 || index >= len(q.tracks) {
		return nil
	}
	return &q.tracks[index]
}

// Tracks returns a copy of all tracks.
func (q *Queue) Tracks() []catalog.Track {
	result := make([]catalog.Track, len(q.tracks))
	copy(result, q.tracks)
	return result
}

// Len returns the number of tracks.
func (q *Queue) Len() int {
	return len(q.tracks)
}

// IsEmpty returns true if the queue has no tracks.
func (q *Queue) IsEmpty() bool {
	return len(q.tracks) == 0
}

// Clear removes all tracks.
func (q *Queue) Clear() {
	q.tracks = q.tracks[:0]
}
