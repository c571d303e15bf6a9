// Package playlists owns user-authored named track-id sequences.
// Track IDs are weak references into the catalog; dangling IDs are
// filtered out at render time, never here.
package playlists

import (
	"time"

	"github.com/google/uuid"

	"github.com/tonearm/tonearm/internal/catalog"
)

// Direction selects which neighbour an adjacent-swap reorder targets.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Playlist is a user-named, reorderable sequence of track references.
// TrackCount always equals len(TrackIDs) after any mutation.
type Playlist struct {
	ID          string
	Title       string
	Creator     string
	Description string
	CoverURL    string
	TrackIDs    []string
	TrackCount  int
	CreatedAt   int64
}

// Meta is a partial metadata update; nil fields are left untouched.
type Meta struct {
	Title       *string
	Description *string
	CoverURL    *string
}

// Store keeps playlists in creation order.
type Store struct {
	playlists []Playlist
	owner     string
	newID     func() string
	now       func() int64
}

// NewStore creates an empty store. Playlists created by user actions
// are attributed to owner.
func NewStore(owner string) *Store {
	return &Store{
		owner: owner,
		newID: uuid.NewString,
		now:   func() int64 { return time.Now().Unix() },
	}
}

// Create adds a new playlist, optionally seeded with one track.
func (s *Store) Create(title, description string, initial *catalog.Track) Playlist {
	p := Playlist{
		ID:          s.newID(),
		Title:       title,
		Creator:     s.owner,
		Description: description,
		TrackIDs:    []string{},
		CreatedAt:   s.now(),
	}
	if initial != nil {
		p.TrackIDs = append(p.TrackIDs, initial.ID)
	}
	p.TrackCount = len(p.TrackIDs)
	s.playlists = append(s.playlists, p)
	return p
}

// Delete removes a playlist by ID. Returns false if unknown.
func (s *Store) Delete(id string) bool {
	for i := range s.playlists {
		if s.playlists[i].ID == id {
			s.playlists = append(s.playlists[:i], s.playlists[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateMeta shallow-merges the given fields into a playlist.
// Returns false if the playlist is unknown.
func (s *Store) UpdateMeta(id string, meta Meta) bool {
	p := s.find(id)
	if p == nil {
		return false
	}
	if meta.Title != nil {
		p.Title = *meta.Title
	}
	if meta.Description != nil {
		p.Description = *meta.Description
	}
	if meta.CoverURL != nil {
		p.CoverURL = *meta.CoverURL
	}
	return true
}

// AddTrack appends a track reference. Adding an ID that is already
// present is a no-op; the call is idempotent.
// Returns true if the playlist changed.
func (s *Store) AddTrack(id string, t catalog.Track) bool {
	p := s.find(id)
	if p == nil {
		return false
	}
	for _, existing := range p.TrackIDs {
		if existing == t.ID {
			return false
		}
	}
	p.TrackIDs = append(p.TrackIDs, t.ID)
	p.TrackCount = len(p.TrackIDs)
	return true
}

// RemoveTrack filters out a track reference.
// Returns true if the playlist changed.
func (s *Store) RemoveTrack(id, trackID string) bool {
	p := s.find(id)
	if p == nil {
		return false
	}
	kept := p.TrackIDs[:0]
	for _, existing := range p.TrackIDs {
		if existing != trackID {
			kept = append(kept, existing)
		}
	}
	changed := len(kept) != len(p.TrackIDs)
	p.TrackIDs = kept
	p.TrackCount = len(p.TrackIDs)
	return changed
}

// Reorder swaps a track with its neighbour in the given direction.
// Moving the first track up or the last track down is a no-op.
// Returns true if the order changed.
func (s *Store) Reorder(id, trackID string, dir Direction) bool {
	p := s.find(id)
	if p == nil {
		return false
	}
	index := -1
	for i, existing := range p.TrackIDs {
		if existing == trackID {
			index = i
			break
		}
	}
	if index < 0 {
		return false
	}
	switch dir {
	case Up:
		if index == 0 {
			return false
		}
		p.TrackIDs[index-1], p.TrackIDs[index] = p.TrackIDs[index], p.TrackIDs[index-1]
	case Down:
		if index >= len(p.TrackIDs)-1 {
			return false
		}
		p.TrackIDs[index], p.TrackIDs[index+1] = p.TrackIDs[index+1], p.TrackIDs[index]
	default:
		return false
	}
	return true
}

// Get returns a copy of the playlist with the given ID, or nil.
func (s *Store) Get(id string) *Playlist {
	p := s.find(id)
	if p == nil {
		return nil
	}
	cp := copyPlaylist(*p)
	return &cp
}

// All returns a copy of every playlist in creation order.
func (s *Store) All() []Playlist {
	result := make([]Playlist, len(s.playlists))
	for i, p := range s.playlists {
		result[i] = copyPlaylist(p)
	}
	return result
}

// Len returns the number of playlists.
func (s *Store) Len() int {
	return len(s.playlists)
}

// Load replaces the store contents. Used when hydrating from the
// persistence adapter; counts are recomputed rather than trusted.
func (s *Store) Load(playlists []Playlist) {
	s.playlists = make([]Playlist, len(playlists))
	for i, p := range playlists {
		cp := copyPlaylist(p)
		cp.TrackCount = len(cp.TrackIDs)
		s.playlists[i] = cp
	}
}

func (s *Store) find(id string) *Playlist {
	for i := range s.playlists {
		if s.playlists[i].ID == id {
			return &s.playlists[i]
		}
	}
	return nil
}

func copyPlaylist(p Playlist) Playlist {
	ids := make([]string, len(p.TrackIDs))
	copy(ids, p.TrackIDs)
	p.TrackIDs = ids
	return p
}
