package domain

import (
	"context"
	"errors"
)

// ErrObjectNotFound is returned by an ObjectStore when the key does not exist
var ErrObjectNotFound = errors.New("object not found")

// MetadataHeadline is the metadata key holding the image description
const MetadataHeadline = "headline"

// StoredImage represents an archived image and where it came from
type StoredImage struct {
	Key         string
	SourceURL   string
	Description string
	Size        int
}

// ObjectStore is the durable storage used for images and the manifest
type ObjectStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte, contentType string, metadata map[string]string) error
}
