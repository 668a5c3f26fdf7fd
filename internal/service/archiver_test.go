package service

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"github.com/basel-ax/dalleimg/internal/domain"
)

func TestImageKey(t *testing.T) {
	url := "https://oaidalleapiprodscus.blob.core.windows.net/private/img-abc.png?st=1"

	k1 := ImageKey("images/", url)
	k2 := ImageKey("images/", url)
	other := ImageKey("images/", url+"&sig=2")

	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, other)
	assert.Equal(t, "images/", k1[:7])
	assert.Equal(t, ".png", k1[len(k1)-4:])
	assert.Equal(t, len("images/")+64+len(".png"), len(k1))
	// sha256("") is well known
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855.png", ImageKey("", ""))
}

func TestArchive(t *testing.T) {
	srv := newImageServer(http.StatusOK, []byte("png-bytes"))
	defer srv.Close()

	store := newMemStore()
	archiver := NewImageArchiver(store, "images/", 5*time.Second, discardLogger())

	stored, err := archiver.Archive(t.Context(), srv.URL+"/img.png", "Be kind. - Photo")

	assert.Equal(t, nil, err)
	assert.Equal(t, ImageKey("images/", srv.URL+"/img.png"), stored.Key)
	assert.Equal(t, 9, stored.Size)

	obj := store.objects[stored.Key]
	assert.Equal(t, "png-bytes", string(obj.data))
	assert.Equal(t, "image/png", obj.contentType)
	assert.Equal(t, "Be kind. - Photo", obj.metadata[domain.MetadataHeadline])
}

func TestArchiveSameBytesDifferentURLs(t *testing.T) {
	srv := newImageServer(http.StatusOK, []byte("same"))
	defer srv.Close()

	store := newMemStore()
	archiver := NewImageArchiver(store, "images/", 5*time.Second, discardLogger())

	a, _ := archiver.Archive(t.Context(), srv.URL+"/a.png", "x")
	b, _ := archiver.Archive(t.Context(), srv.URL+"/b.png", "x")

	assert.NotEqual(t, a.Key, b.Key)
	assert.Equal(t, 2, len(store.objects))
}

func TestArchiveDownloadError(t *testing.T) {
	srv := newImageServer(http.StatusForbidden, []byte("AuthenticationFailed"))
	defer srv.Close()

	store := newMemStore()
	archiver := NewImageArchiver(store, "images/", 5*time.Second, discardLogger())

	_, err := archiver.Archive(t.Context(), srv.URL+"/expired.png", "x")

	assert.Equal(t, true, errors.Is(err, domain.ErrDownload))
	assert.Equal(t, 0, len(store.puts))
}

func TestArchiveStorageWriteError(t *testing.T) {
	srv := newImageServer(http.StatusOK, []byte("png"))
	defer srv.Close()

	store := newMemStore()
	store.putErrs[ImageKey("images/", srv.URL+"/img.png")] = errStoreDown
	archiver := NewImageArchiver(store, "images/", 5*time.Second, discardLogger())

	_, err := archiver.Archive(t.Context(), srv.URL+"/img.png", "x")

	assert.Equal(t, true, errors.Is(err, domain.ErrStorageWrite))
	assert.Equal(t, true, errors.Is(err, errStoreDown))
}
