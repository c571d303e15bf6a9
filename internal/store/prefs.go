package store

import (
	"database/sql"

	dbutil "github.com/tonearm/tonearm/internal/db"
)

// SaveLiked replaces the persisted liked-track-id set.
func (m *Manager) SaveLiked(trackIDs []string) error {
	return saveIDSet(m.db, "liked_tracks", "track_id", trackIDs)
}

// GetLiked returns the persisted liked-track-id set, empty on first run.
func (m *Manager) GetLiked() ([]string, error) {
	return getIDSet(m.db, "liked_tracks", "track_id")
}

// SaveFollowed replaces the persisted followed-user-id set.
func (m *Manager) SaveFollowed(userIDs []string) error {
	return saveIDSet(m.db, "followed_users", "user_id", userIDs)
}

// GetFollowed returns the persisted followed-user-id set, empty on first run.
func (m *Manager) GetFollowed() ([]string, error) {
	return getIDSet(m.db, "followed_users", "user_id")
}

func saveIDSet(sqlDB *sql.DB, table, column string, ids []string) error {
	return dbutil.WithTx(sqlDB, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return err
		}
		stmt, err := tx.Prepare(`INSERT OR IGNORE INTO ` + table + ` (` + column + `) VALUES (?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, id := range ids {
			if _, err := stmt.Exec(id); err != nil {
				return err
			}
		}
		return nil
	})
}

func getIDSet(sqlDB *sql.DB, table, column string) ([]string, error) {
	rows, err := sqlDB.Query(`SELECT ` + column + ` FROM ` + table + ` ORDER BY ` + column)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
