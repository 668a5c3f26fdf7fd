package objectstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const metaSuffix = ".meta.json"

// FileStore keeps objects as files below a root directory. Content type and
// metadata live in a JSON sidecar next to each object.
type FileStore struct {
	root string
}

type fileMeta struct {
	ContentType string            `json:"content_type"`
	Metadata    map[string]string `json:"metadata"`
}

// NewFileStore creates the root directory if needed
func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &FileStore{root: root}, nil
}

func (s *FileStore) path(key string) (string, error) {
	local := filepath.FromSlash(key)
	if !filepath.IsLocal(local) {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return filepath.Join(s.root, local), nil
}

// Get reads the object stored under key
func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("file get %s: %w", key, err)
	}
	return data, nil
}

// Put writes the object atomically, replacing any existing one
func (s *FileStore) Put(ctx context.Context, key string, data []byte, contentType string, metadata map[string]string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("file put %s: %w", key, err)
	}

	meta, err := json.Marshal(fileMeta{ContentType: contentType, Metadata: metadata})
	if err != nil {
		return fmt.Errorf("file put %s: %w", key, err)
	}

	if err := writeAtomic(p, data); err != nil {
		return fmt.Errorf("file put %s: %w", key, err)
	}
	if err := writeAtomic(p+metaSuffix, meta); err != nil {
		return fmt.Errorf("file put %s metadata: %w", key, err)
	}
	return nil
}

// Metadata returns the content type and metadata recorded for key
func (s *FileStore) Metadata(ctx context.Context, key string) (string, map[string]string, error) {
	p, err := s.path(key)
	if err != nil {
		return "", nil, err
	}

	raw, err := os.ReadFile(p + metaSuffix)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil, ErrNotFound
	}
	if err != nil {
		return "", nil, err
	}

	var m fileMeta
	if err := json.Unmarshal(raw, &m); err != nil {
		return "", nil, err
	}
	return m.ContentType, m.Metadata, nil
}

// Close is a no-op
func (s *FileStore) Close() error {
	return nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
