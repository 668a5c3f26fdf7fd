package objectstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps objects as blobs in a SQLite database
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens the database and ensures the schema exists
func NewSQLiteStore(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	// in-memory databases are per connection
	db.SetMaxOpenConns(1)

	_, err = db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS objects (
		key TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		content_type TEXT NOT NULL DEFAULT '',
		metadata TEXT NOT NULL DEFAULT '{}',
		updated_at TIMESTAMP NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create objects table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Get returns the blob stored under key
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM objects WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite get %s: %w", key, err)
	}
	return data, nil
}

// Put inserts or replaces the blob stored under key
func (s *SQLiteStore) Put(ctx context.Context, key string, data []byte, contentType string, metadata map[string]string) error {
	if metadata == nil {
		metadata = map[string]string{}
	}
	meta, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("sqlite put %s: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO objects (key, data, content_type, metadata, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			data = excluded.data,
			content_type = excluded.content_type,
			metadata = excluded.metadata,
			updated_at = excluded.updated_at
	`, key, data, contentType, string(meta), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("sqlite put %s: %w", key, err)
	}
	return nil
}

// Metadata returns the content type and metadata recorded for key
func (s *SQLiteStore) Metadata(ctx context.Context, key string) (string, map[string]string, error) {
	var contentType, raw string
	err := s.db.QueryRowContext(ctx, `SELECT content_type, metadata FROM objects WHERE key = ?`, key).Scan(&contentType, &raw)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil, ErrNotFound
	}
	if err != nil {
		return "", nil, err
	}

	var metadata map[string]string
	if err := json.Unmarshal([]byte(raw), &metadata); err != nil {
		return "", nil, err
	}
	return contentType, metadata, nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
