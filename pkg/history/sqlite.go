package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"NameForge/pkg/generate"
)

// SQLiteRepository implements Repository on the shared application database.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates the generation_results table if needed.
func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS generation_results (
			id         TEXT PRIMARY KEY,
			prompt     TEXT NOT NULL,
			name       TEXT NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			created_at TEXT NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("create generation_results table: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

// Save inserts one result.
func (r *SQLiteRepository) Save(ctx context.Context, result *generate.Result) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO generation_results (id, prompt, name, elapsed_ms, created_at)
		VALUES (?, ?, ?, ?, ?)
	`,
		result.ID, result.Prompt, result.Name,
		result.Elapsed.Milliseconds(),
		result.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save generation result: %w", err)
	}
	return nil
}

// List returns up to limit results, newest first.
func (r *SQLiteRepository) List(ctx context.Context, limit int) ([]generate.Result, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, prompt, name, elapsed_ms, created_at
		FROM generation_results
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list generation results: %w", err)
	}
	defer rows.Close()

	var results []generate.Result
	for rows.Next() {
		var (
			res       generate.Result
			elapsedMS int64
			createdAt string
		)
		if err := rows.Scan(&res.ID, &res.Prompt, &res.Name, &elapsedMS, &createdAt); err != nil {
			return nil, fmt.Errorf("scan generation result: %w", err)
		}
		res.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		if t, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			res.CreatedAt = t
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
