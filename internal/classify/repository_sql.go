package classify

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const cacheSchema = `
CREATE TABLE IF NOT EXISTS classifications (
	key        TEXT PRIMARY KEY,
	id         TEXT NOT NULL,
	title      TEXT NOT NULL,
	category   TEXT NOT NULL,
	confidence REAL NOT NULL,
	tags       TEXT NOT NULL,
	rationale  TEXT NOT NULL,
	source     TEXT NOT NULL,
	model      TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);
`

// SQLCacheRepository stores classification records in a libsql database.
// Every mutation is a single scoped statement.
type SQLCacheRepository struct {
	db *sql.DB
}

func NewSQLCacheRepository(db *sql.DB) (*SQLCacheRepository, error) {
	if _, err := db.Exec(cacheSchema); err != nil {
		return nil, fmt.Errorf("create classifications table: %w", err)
	}
	return &SQLCacheRepository{db: db}, nil
}

func (r *SQLCacheRepository) Get(ctx context.Context, key string) (*Record, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, category, confidence, tags, rationale, source, model, created_at
		FROM classifications WHERE key = ?`, key)

	var rec Record
	var tags, category, source, createdAt string
	err := row.Scan(&rec.ID, &rec.Title, &category, &rec.Confidence, &tags,
		&rec.Rationale, &source, &rec.Model, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read classification %s: %w", key, err)
	}

	rec.Category = Category(category)
	rec.Source = Source(source)
	if err := json.Unmarshal([]byte(tags), &rec.Tags); err != nil {
		// Corrupt row: treat as a cache miss so the entry gets rewritten.
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		rec.CreatedAt = t
	}
	return &rec, nil
}

func (r *SQLCacheRepository) Put(ctx context.Context, key string, rec *Record) error {
	tags, err := json.Marshal(rec.Tags)
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO classifications
			(key, id, title, category, confidence, tags, rationale, source, model, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		key, rec.ID, rec.Title, string(rec.Category), rec.Confidence, string(tags),
		rec.Rationale, string(rec.Source), rec.Model, rec.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("write classification %s: %w", key, err)
	}
	return nil
}

func (r *SQLCacheRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM classifications WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete classification %s: %w", key, err)
	}
	return nil
}
