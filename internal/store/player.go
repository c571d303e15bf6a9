package store

import (
	"database/sql"
	"errors"

	"github.com/tonearm/tonearm/internal/catalog"
)

// PlayerState is the persisted playback-preference slice. IsPlaying
// and progress are deliberately absent: a cold start always begins at
// rest.
type PlayerState struct {
	Volume       float64
	Muted        bool
	Shuffle      bool
	Repeat       bool
	CurrentTrack *catalog.Track
}

// GetPlayerState returns the saved player state, or the first-run
// defaults (volume 1, all flags off, no current track).
func (m *Manager) GetPlayerState() (*PlayerState, error) {
	state := &PlayerState{Volume: 1}

	row := m.db.QueryRow(`SELECT volume, muted, shuffle, repeat FROM player_state WHERE id = 1`)
	err := row.Scan(&state.Volume, &state.Muted, &state.Shuffle, &state.Repeat)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	row = m.db.QueryRow(`SELECT ` + trackColumns + ` FROM current_track WHERE id = 1`)
	t, err := scanTrack(row)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, err
	default:
		state.CurrentTrack = &t
	}

	return state, nil
}

// SavePlayerState persists volume, mute and the playback mode flags.
func (m *Manager) SavePlayerState(volume float64, muted, shuffle, repeat bool) error {
	_, err := m.db.Exec(`
		INSERT INTO player_state (id, volume, muted, shuffle, repeat)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			volume = excluded.volume,
			muted = excluded.muted,
			shuffle = excluded.shuffle,
			repeat = excluded.repeat
	`, volume, muted, shuffle, repeat)
	return err
}

// SaveCurrentTrack persists the current track snapshot; pass nil to
// clear it.
func (m *Manager) SaveCurrentTrack(t *catalog.Track) error {
	if t == nil {
		_, err := m.db.Exec(`DELETE FROM current_track`)
		return err
	}
	args := append([]any{}, trackArgs(*t)...)
	_, err := m.db.Exec(`
		INSERT OR REPLACE INTO current_track (id, `+trackColumns+`)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, args...)
	return err
}
