package objectstore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/basel-ax/dalleimg/internal/config"
	"github.com/basel-ax/dalleimg/internal/domain"
)

// ErrNotFound is returned by Get when the key does not exist
var ErrNotFound = domain.ErrObjectNotFound

// Store is an object store that holds resources until closed
type Store interface {
	domain.ObjectStore
	Close() error
}

// New returns the backend selected by cfg.StorageBackend
func New(ctx context.Context, cfg *config.Config) (store Store, err error) {
	switch cfg.StorageBackend {
	case "s3":
		store, err = NewS3Store(ctx, cfg.AWSRegion, cfg.ImageBucket, cfg.S3Endpoint)
	case "file":
		store, err = NewFileStore(cfg.StorageDir)
	case "sqlite":
		store, err = NewSQLiteStore(ctx, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.StorageBackend)
	}
	if err != nil {
		return nil, err
	}

	slog.Debug("object store ready", "backend", cfg.StorageBackend)
	return store, nil
}
