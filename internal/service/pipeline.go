package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/basel-ax/dalleimg/internal/domain"
)

// Pipeline runs quote → style → image → archive → manifest once per call
type Pipeline struct {
	quotes   domain.QuoteSource
	styles   *StylePicker
	images   *ImageGenerationService
	archiver *ImageArchiver
	manifest *ManifestUpdater
	recorder domain.GenerationRecorder
	timeout  time.Duration
	logger   *slog.Logger
}

// NewPipeline creates a new pipeline
func NewPipeline(
	quotes domain.QuoteSource,
	styles *StylePicker,
	images *ImageGenerationService,
	archiver *ImageArchiver,
	manifest *ManifestUpdater,
	logger *slog.Logger,
) *Pipeline {
	return &Pipeline{
		quotes:   quotes,
		styles:   styles,
		images:   images,
		archiver: archiver,
		manifest: manifest,
		logger:   logger,
	}
}

// WithRecorder records every run outcome through r
func (p *Pipeline) WithRecorder(r domain.GenerationRecorder) *Pipeline {
	p.recorder = r
	return p
}

// WithTimeout bounds each external call to d
func (p *Pipeline) WithTimeout(d time.Duration) *Pipeline {
	p.timeout = d
	return p
}

func (p *Pipeline) stepContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.timeout)
}

// Run executes the pipeline once. The result carries a non-200 status code
// and the error text when any step fails.
func (p *Pipeline) Run(ctx context.Context) domain.RunResult {
	result := domain.RunResult{RunID: uuid.NewString()}
	logger := p.logger.With("run_id", result.RunID)

	err := p.run(ctx, logger, &result)
	if err != nil {
		result.StatusCode = statusFor(err)
		result.Error = err.Error()
		if result.Description == "" {
			result.Message = "Failed to fetch quote"
		} else {
			result.Message = fmt.Sprintf("Failed to generate image for description: %s", result.Description)
		}
		logger.Error("image generation run failed", "code", errorCode(err), "error", err)
	} else {
		result.StatusCode = http.StatusOK
		result.Message = fmt.Sprintf("Generate image for description: %s", result.Description)
		logger.Info("image generation run complete", "key", result.Key)
	}

	p.record(ctx, logger, result)
	return result
}

func (p *Pipeline) run(ctx context.Context, logger *slog.Logger, result *domain.RunResult) error {
	// Fetch a quote
	stepCtx, cancel := p.stepContext(ctx)
	quote, err := p.quotes.RandomQuote(stepCtx)
	cancel()
	if err != nil {
		return err
	}
	result.Quote = quote.Text
	result.Author = quote.Author

	// Pick a style and build the description
	result.ImageType = p.styles.Pick()
	result.Description = domain.Describe(*quote, result.ImageType)
	logger.Info("image description built", "description", result.Description, "author", quote.Author)

	// Generate the image
	stepCtx, cancel = p.stepContext(ctx)
	imageURL, err := p.images.ImageURL(stepCtx, result.Description)
	cancel()
	if err != nil {
		return err
	}
	logger.Info("API returned image URL", "url", imageURL)

	// Archive it
	stepCtx, cancel = p.stepContext(ctx)
	stored, err := p.archiver.Archive(stepCtx, imageURL, result.Description)
	cancel()
	if err != nil {
		return err
	}
	result.Key = stored.Key

	// Record it in the manifest; the image stays in place if this fails
	stepCtx, cancel = p.stepContext(ctx)
	_, err = p.manifest.Prepend(stepCtx, stored.Key, quote.Text, quote.Author, result.ImageType)
	cancel()
	return err
}

func (p *Pipeline) record(ctx context.Context, logger *slog.Logger, result domain.RunResult) {
	if p.recorder == nil {
		return
	}

	status := domain.StatusSucceeded
	if result.StatusCode != http.StatusOK {
		status = domain.StatusFailed
	}

	// the run's own deadline may have expired
	recCtx, cancel := p.stepContext(context.WithoutCancel(ctx))
	defer cancel()

	err := p.recorder.Record(recCtx, domain.Generation{
		RunID:       result.RunID,
		Description: result.Description,
		ImageKey:    result.Key,
		Status:      status,
		Error:       result.Error,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		logger.Warn("failed to record generation", "error", err)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrQuote), errors.Is(err, domain.ErrGeneration), errors.Is(err, domain.ErrDownload):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func errorCode(err error) string {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return domain.ErrCodeInternal
}
