package store

import (
	"database/sql"
)

const currentSchemaVersion = 2

// Track snapshot columns shared by current_track, queue_tracks and
// recent_tracks. Kept explicit rather than a JSON blob so malformed
// data degrades per field, not per snapshot.
const trackColumns = `track_id, title, artist, artist_id, audio_uri, duration,
	genre, is_nft, price, bpm, key_sig, bitrate, play_count, likes`

const trackColumnDefs = `
	track_id TEXT NOT NULL,
	title TEXT NOT NULL,
	artist TEXT,
	artist_id TEXT,
	audio_uri TEXT NOT NULL,
	duration INTEGER NOT NULL DEFAULT 0,
	genre TEXT,
	is_nft INTEGER NOT NULL DEFAULT 0,
	price REAL,
	bpm INTEGER,
	key_sig TEXT,
	bitrate INTEGER,
	play_count INTEGER,
	likes INTEGER`

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS player_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			volume REAL NOT NULL DEFAULT 1,
			muted INTEGER NOT NULL DEFAULT 0,
			shuffle INTEGER NOT NULL DEFAULT 0,
			repeat INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS current_track (
			id INTEGER PRIMARY KEY CHECK (id = 1),` + trackColumnDefs + `
		);

		CREATE TABLE IF NOT EXISTS queue_tracks (
			position INTEGER PRIMARY KEY,` + trackColumnDefs + `
		);

		CREATE TABLE IF NOT EXISTS recent_tracks (
			position INTEGER PRIMARY KEY,` + trackColumnDefs + `
		);

		CREATE TABLE IF NOT EXISTS liked_tracks (
			track_id TEXT PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS followed_users (
			user_id TEXT PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS playlists (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			creator TEXT,
			description TEXT,
			cover_url TEXT,
			created_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS playlist_tracks (
			playlist_id TEXT NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			track_id TEXT NOT NULL,
			UNIQUE(playlist_id, position)
		);

		CREATE INDEX IF NOT EXISTS idx_playlist_tracks_playlist
			ON playlist_tracks(playlist_id, position);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	if err != nil {
		return err
	}

	// Migration: add cover_url column if missing
	_, _ = db.Exec(`ALTER TABLE playlists ADD COLUMN cover_url TEXT`)

	return nil
}
