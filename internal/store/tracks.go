package store

import (
	"database/sql"

	"github.com/tonearm/tonearm/internal/catalog"
	dbutil "github.com/tonearm/tonearm/internal/db"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func trackArgs(t catalog.Track) []any {
	return []any{
		t.ID, t.Title, t.Artist, t.ArtistID, t.AudioURI, t.Duration,
		t.Genre, t.IsNFT, t.Price, t.BPM, t.Key, t.Bitrate, t.PlayCount, t.Likes,
	}
}

func scanTrack(row rowScanner) (catalog.Track, error) {
	var t catalog.Track
	var artist, artistID, genre, key sql.NullString
	var price sql.NullFloat64
	var bpm, bitrate, playCount, likes sql.NullInt64

	err := row.Scan(&t.ID, &t.Title, &artist, &artistID, &t.AudioURI, &t.Duration,
		&genre, &t.IsNFT, &price, &bpm, &key, &bitrate, &playCount, &likes)
	if err != nil {
		return catalog.Track{}, err
	}

	t.Artist = dbutil.NullStringValue(artist)
	t.ArtistID = dbutil.NullStringValue(artistID)
	t.Genre = dbutil.NullStringValue(genre)
	t.Key = dbutil.NullStringValue(key)
	if price.Valid {
		t.Price = price.Float64
	}
	t.BPM = int(dbutil.NullInt64Value(bpm))
	t.Bitrate = int(dbutil.NullInt64Value(bitrate))
	t.PlayCount = int(dbutil.NullInt64Value(playCount))
	t.Likes = int(dbutil.NullInt64Value(likes))
	return t, nil
}

// saveTrackList replaces the contents of a positional track table.
func saveTrackList(sqlDB *sql.DB, table string, tracks []catalog.Track) error {
	return dbutil.WithTx(sqlDB, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return err
		}
		stmt, err := tx.Prepare(`
			INSERT INTO ` + table + ` (position, ` + trackColumns + `)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, t := range tracks {
			args := append([]any{i}, trackArgs(t)...)
			if _, err := stmt.Exec(args...); err != nil {
				return err
			}
		}
		return nil
	})
}

func getTrackList(sqlDB *sql.DB, table string) ([]catalog.Track, error) {
	rows, err := sqlDB.Query(`
		SELECT ` + trackColumns + `
		FROM ` + table + `
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tracks []catalog.Track
	for rows.Next() {
		t, err := scanTrack(rows)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}
