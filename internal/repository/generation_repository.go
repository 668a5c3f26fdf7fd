package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/basel-ax/dalleimg/internal/config"
	"github.com/basel-ax/dalleimg/internal/domain"
)

// GenerationRepository defines the interface for run history access
type GenerationRepository interface {
	domain.GenerationRecorder
	Migrate(ctx context.Context) error
	Recent(ctx context.Context, limit int) ([]domain.Generation, error)
}

// PostgresGenerationRepository implements GenerationRepository for PostgreSQL
type PostgresGenerationRepository struct {
	db *sql.DB
}

// NewPostgresGenerationRepository creates a new PostgreSQL generation repository
func NewPostgresGenerationRepository(db *sql.DB) *PostgresGenerationRepository {
	return &PostgresGenerationRepository{db: db}
}

// Open connects to the database described by cfg and configures the pool
func Open(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Migrate creates the generations table if it does not exist
func (r *PostgresGenerationRepository) Migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS generations (
			id SERIAL PRIMARY KEY,
			run_id TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			image_key TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			error TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		)
	`

	_, err := r.db.ExecContext(ctx, query)
	return err
}

// Record inserts one run outcome
func (r *PostgresGenerationRepository) Record(ctx context.Context, g domain.Generation) error {
	query := `
		INSERT INTO generations (run_id, description, image_key, status, error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	createdAt := g.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query, g.RunID, g.Description, g.ImageKey, g.Status, g.Error, createdAt)
	return err
}

// Recent returns the latest runs, newest first
func (r *PostgresGenerationRepository) Recent(ctx context.Context, limit int) ([]domain.Generation, error) {
	query := `
		SELECT id, run_id, description, image_key, status, error, created_at
		FROM generations
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var generations []domain.Generation
	for rows.Next() {
		var g domain.Generation
		if err := rows.Scan(&g.ID, &g.RunID, &g.Description, &g.ImageKey, &g.Status, &g.Error, &g.CreatedAt); err != nil {
			return nil, err
		}
		generations = append(generations, g)
	}

	return generations, rows.Err()
}
