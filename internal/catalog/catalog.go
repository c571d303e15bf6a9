package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Catalog holds the known tracks in load order.
type Catalog struct {
	tracks []Track
	byID   map[string]int
}

// New creates a catalog from the given tracks.
// Duplicate IDs keep the first occurrence.
func New(tracks []Track) *Catalog {
	c := &Catalog{
		tracks: make([]Track, 0, len(tracks)),
		byID:   make(map[string]int, len(tracks)),
	}
	for _, t := range tracks {
		c.Add(t)
	}
	return c
}

// LoadFile reads a catalog from a JSON file containing an array of tracks.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tracks []Track
	if err := json.Unmarshal(data, &tracks); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return New(tracks), nil
}

// Add appends a track if its ID is not already present.
// Returns false if the ID is taken.
func (c *Catalog) Add(t Track) bool {
	if t.ID == "" {
		return false
	}
	if _, ok := c.byID[t.ID]; ok {
		return false
	}
	c.byID[t.ID] = len(c.tracks)
	c.tracks = append(c.tracks, t)
	return true
}

// ByID returns the track with the given ID, or nil if unknown.
func (c *Catalog) ByID(id string) *Track {
	i, ok := c.byID[id]
	if !ok {
		return nil
	}
	return &c.tracks[i]
}

// Track returns the track at the given index, or nil if out of bounds.
func (c *Catalog) Track(index int) *Track {
	if index < 0 || index >= len(c.tracks) {
		return nil
	}
	return &c.tracks[index]
}

// Tracks returns a copy of all tracks.
func (c *Catalog) Tracks() []Track {
	result := make([]Track, len(c.tracks))
	copy(result, c.tracks)
	return result
}

// Len returns the number of tracks.
func (c *Catalog) Len() int {
	return len(c.tracks)
}
