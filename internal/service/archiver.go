package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/basel-ax/dalleimg/internal/domain"
)

const imageContentType = "image/png"

// ImageKey derives the storage key from the source URL string, not the image bytes
func ImageKey(prefix, sourceURL string) string {
	sum := sha256.Sum256([]byte(sourceURL))
	return prefix + hex.EncodeToString(sum[:]) + ".png"
}

// ImageArchiver downloads generated images and stores them durably
type ImageArchiver struct {
	httpClient *http.Client
	store      domain.ObjectStore
	prefix     string
	logger     *slog.Logger
}

// NewImageArchiver creates a new archiver writing below prefix
func NewImageArchiver(store domain.ObjectStore, prefix string, timeout time.Duration, logger *slog.Logger) *ImageArchiver {
	return &ImageArchiver{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		store:  store,
		prefix: prefix,
		logger: logger,
	}
}

// Archive stores the image found at imageURL with description as headline
// metadata and returns its key
func (a *ImageArchiver) Archive(ctx context.Context, imageURL, description string) (*domain.StoredImage, error) {
	data, err := a.download(ctx, imageURL)
	if err != nil {
		return nil, err
	}

	key := ImageKey(a.prefix, imageURL)
	metadata := map[string]string{domain.MetadataHeadline: description}

	if err := a.store.Put(ctx, key, data, imageContentType, metadata); err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeStorageWrite, "failed to store image", err)
	}

	a.logger.Info("image archived", "key", key, "bytes", len(data))

	return &domain.StoredImage{
		Key:         key,
		SourceURL:   imageURL,
		Description: description,
		Size:        len(data),
	}, nil
}

func (a *ImageArchiver) download(ctx context.Context, imageURL string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeDownload, "failed to create request", err)
	}

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeDownload, "failed to download image", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.NewDomainError(domain.ErrCodeDownload,
			fmt.Sprintf("unexpected status code: %d", resp.StatusCode), nil)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeDownload, "failed to read image body", err)
	}

	return data, nil
}
