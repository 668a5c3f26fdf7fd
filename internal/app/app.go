package app

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"

	"github.com/basel-ax/dalleimg/internal/config"
	"github.com/basel-ax/dalleimg/internal/infrastructure/dalle"
	"github.com/basel-ax/dalleimg/internal/infrastructure/objectstore"
	"github.com/basel-ax/dalleimg/internal/infrastructure/zenquotes"
	"github.com/basel-ax/dalleimg/internal/logger"
	"github.com/basel-ax/dalleimg/internal/repository"
	"github.com/basel-ax/dalleimg/internal/service"
)

// App holds the wired pipeline and the resources it owns
type App struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Pipeline *service.Pipeline
	History  repository.GenerationRepository

	store objectstore.Store
	db    *sql.DB
}

// New wires every component from cfg
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	store, err := objectstore.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	a := &App{Cfg: cfg, Logger: log, store: store}

	archiver := service.NewImageArchiver(store, cfg.ImagePath, cfg.RequestTimeout, log)
	manifest := service.NewManifestUpdater(store, cfg.ManifestKey(), cfg.Location(), log)
	images := service.NewImageGenerationService(
		dalle.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.ImageModel, cfg.RequestTimeout),
		cfg,
	)

	a.Pipeline = service.NewPipeline(
		zenquotes.NewClient(cfg.QuoteAPIURL, cfg.RequestTimeout),
		service.NewStylePicker(nil),
		images,
		archiver,
		manifest,
		log,
	).WithTimeout(cfg.RequestTimeout)

	if cfg.HistoryEnabled() {
		if err := a.openHistory(ctx); err != nil {
			a.Close()
			return nil, err
		}
		a.Pipeline.WithRecorder(a.History)
	}

	log.Debug("application wired",
		"storage_backend", cfg.StorageBackend,
		"manifest", cfg.ManifestKey(),
		"image_size", cfg.ImageSize,
		"history", cfg.HistoryEnabled(),
	)

	return a, nil
}

func (a *App) openHistory(ctx context.Context) error {
	db, err := repository.Open(ctx, a.Cfg)
	if err != nil {
		return err
	}
	a.db = db

	history := repository.NewPostgresGenerationRepository(db)
	if err := history.Migrate(ctx); err != nil {
		return err
	}
	a.History = history
	return nil
}

// Close releases the object store and database
func (a *App) Close() error {
	var errs []error
	if a.store != nil {
		errs = append(errs, a.store.Close())
	}
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	return errors.Join(errs...)
}
