package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLiteStore implements Store on a key-value table named user_settings.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates the user_settings table if needed and returns the
// store. The *sql.DB is shared with other repositories and owned by the caller.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS user_settings (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("create user_settings table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// GetUserSettings reads the persisted record. A missing row is the default
// (empty) record, not an error.
func (s *SQLiteStore) GetUserSettings(ctx context.Context) (UserSettings, error) {
	var value string
	row := s.db.QueryRowContext(ctx,
		"SELECT value FROM user_settings WHERE key = ?", KeyAPIKey)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return UserSettings{}, nil
		}
		return UserSettings{}, NewStorageError(fmt.Sprintf("read settings: %v", err))
	}
	return UserSettings{APIKey: value}, nil
}

// SaveUserSettings upserts the API key.
func (s *SQLiteStore) SaveUserSettings(ctx context.Context, apiKey string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, KeyAPIKey, apiKey)
	if err != nil {
		return NewStorageError(fmt.Sprintf("write settings: %v", err))
	}
	return nil
}
