package store

import (
	"database/sql"

	dbutil "github.com/tonearm/tonearm/internal/db"
	"github.com/tonearm/tonearm/internal/playlists"
)

// SavePlaylists replaces the persisted playlists snapshot.
func (m *Manager) SavePlaylists(lists []playlists.Playlist) error {
	return dbutil.WithTx(m.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM playlist_tracks`); err != nil {
			return err
		}
		if _, err := tx.Exec(`DELETE FROM playlists`); err != nil {
			return err
		}

		plStmt, err := tx.Prepare(`
			INSERT INTO playlists (id, position, title, creator, description, cover_url, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer plStmt.Close()

		trStmt, err := tx.Prepare(`
			INSERT INTO playlist_tracks (playlist_id, position, track_id)
			VALUES (?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer trStmt.Close()

		for i, p := range lists {
			_, err := plStmt.Exec(p.ID, i, p.Title, p.Creator, p.Description, p.CoverURL, p.CreatedAt)
			if err != nil {
				return err
			}
			for pos, trackID := range p.TrackIDs {
				if _, err := trStmt.Exec(p.ID, pos, trackID); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// GetPlaylists returns the persisted playlists, empty on first run.
// Track counts are recomputed from the stored references.
func (m *Manager) GetPlaylists() ([]playlists.Playlist, error) {
	rows, err := m.db.Query(`
		SELECT id, title, creator, description, cover_url, created_at
		FROM playlists
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []playlists.Playlist
	for rows.Next() {
		var p playlists.Playlist
		var creator, description, coverURL sql.NullString
		if err := rows.Scan(&p.ID, &p.Title, &creator, &description, &coverURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Creator = dbutil.NullStringValue(creator)
		p.Description = dbutil.NullStringValue(description)
		p.CoverURL = dbutil.NullStringValue(coverURL)
		p.TrackIDs = []string{}
		lists = append(lists, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range lists {
		ids, err := m.playlistTrackIDs(lists[i].ID)
		if err != nil {
			return nil, err
		}
		lists[i].TrackIDs = ids
		lists[i].TrackCount = len(ids)
	}
	return lists, nil
}

func (m *Manager) playlistTrackIDs(playlistID string) ([]string, error) {
	rows, err := m.db.Query(`
		SELECT track_id FROM playlist_tracks
		WHERE playlist_id = ?
		ORDER BY position
	`, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
