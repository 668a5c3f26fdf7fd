package objectstore

import (
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestFileStorePutGet(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	assert.Equal(t, nil, err)

	err = store.Put(t.Context(), "images/abc.png", []byte{0x89, 'P', 'N', 'G'}, "image/png", map[string]string{"headline": "Be kind. - Photo"})
	assert.Equal(t, nil, err)

	data, err := store.Get(t.Context(), "images/abc.png")
	assert.Equal(t, nil, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)

	contentType, metadata, err := store.Metadata(t.Context(), "images/abc.png")
	assert.Equal(t, nil, err)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, "Be kind. - Photo", metadata["headline"])
}

func TestFileStoreOverwrite(t *testing.T) {
	store, _ := NewFileStore(t.TempDir())

	store.Put(t.Context(), "images/manifest.json", []byte(`[]`), "application/json", nil)
	store.Put(t.Context(), "images/manifest.json", []byte(`[{"key":"k"}]`), "application/json", nil)

	data, err := store.Get(t.Context(), "images/manifest.json")
	assert.Equal(t, nil, err)
	assert.Equal(t, `[{"key":"k"}]`, string(data))
}

func TestFileStoreNotFound(t *testing.T) {
	store, _ := NewFileStore(t.TempDir())

	data, err := store.Get(t.Context(), "images/manifest.json")

	assert.Equal(t, true, errors.Is(err, ErrNotFound))
	assert.Equal(t, 0, len(data))
}

func TestFileStoreRejectsEscapingKeys(t *testing.T) {
	store, _ := NewFileStore(t.TempDir())

	err := store.Put(t.Context(), "../outside.png", []byte("x"), "image/png", nil)

	assert.NotEqual(t, nil, err)
}
