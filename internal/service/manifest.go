package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/basel-ax/dalleimg/internal/domain"
)

const manifestContentType = "application/json"

// ManifestUpdater maintains the newest-first JSON index of generated images
type ManifestUpdater struct {
	store    domain.ObjectStore
	key      string
	location *time.Location
	now      func() time.Time
	logger   *slog.Logger
}

// NewManifestUpdater creates an updater for the manifest stored under key
func NewManifestUpdater(store domain.ObjectStore, key string, location *time.Location, logger *slog.Logger) *ManifestUpdater {
	if location == nil {
		location = time.Local
	}
	return &ManifestUpdater{
		store:    store,
		key:      key,
		location: location,
		now:      time.Now,
		logger:   logger,
	}
}

// Load reads the manifest. Missing or unreadable manifests yield an empty list.
func (m *ManifestUpdater) Load(ctx context.Context) domain.Manifest {
	data, err := m.store.Get(ctx, m.key)
	if errors.Is(err, domain.ErrObjectNotFound) {
		m.logger.Info("manifest not found, starting a new one", "key", m.key)
		return domain.Manifest{}
	}
	if err != nil {
		m.logger.Warn("failed to read manifest, starting a new one", "key", m.key, "error", err)
		return domain.Manifest{}
	}

	var manifest domain.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		m.logger.Warn("failed to decode manifest, starting a new one", "key", m.key, "error", err)
		return domain.Manifest{}
	}
	return manifest
}

// Prepend adds a record for the archived image at the head of the manifest
// and writes the whole manifest back
func (m *ManifestUpdater) Prepend(ctx context.Context, key, quote, author, imageType string) (domain.Manifest, error) {
	manifest := m.Load(ctx)

	manifest = manifest.Prepend(domain.ManifestRecord{
		Key:       key,
		Quote:     quote,
		Author:    author,
		ImageType: imageType,
		Time:      m.now().In(m.location).Format(domain.ManifestTimeLayout),
	})

	data, err := json.Marshal(manifest)
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeStorageWrite, "failed to encode manifest", err)
	}

	if err := m.store.Put(ctx, m.key, data, manifestContentType, nil); err != nil {
		m.logger.Error("error writing image manifest", "key", m.key, "error", err)
		return nil, domain.NewDomainError(domain.ErrCodeStorageWrite, "failed to write manifest", err)
	}

	m.logger.Info("manifest updated", "key", m.key, "entries", len(manifest))
	return manifest, nil
}
