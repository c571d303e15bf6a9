package store

import "github.com/tonearm/tonearm/internal/catalog"

// SaveQueue replaces the persisted queue snapshot.
func (m *Manager) SaveQueue(tracks []catalog.Track) error {
	return saveTrackList(m.db, "queue_tracks", tracks)
}

// GetQueue returns the persisted queue, empty on first run.
func (m *Manager) GetQueue() ([]catalog.Track, error) {
	return getTrackList(m.db, "queue_tracks")
}

// SaveRecent replaces the persisted recently-played snapshot,
// most recent first.
func (m *Manager) SaveRecent(tracks []catalog.Track) error {
	return saveTrackList(m.db, "recent_tracks", tracks)
}

// GetRecent returns the persisted recently-played list, empty on
// first run.
func (m *Manager) GetRecent() ([]catalog.Track, error) {
	return getTrackList(m.db, "recent_tracks")
}
