package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/basel-ax/dalleimg/internal/domain"
)

var errStoreDown = errors.New("store unavailable")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeQuoteSource struct {
	quote *domain.Quote
	err   error
	calls int
}

func (f *fakeQuoteSource) RandomQuote(ctx context.Context) (*domain.Quote, error) {
	f.calls++
	return f.quote, f.err
}

type fakeGenerator struct {
	urls []string
	err  error
	reqs []domain.ImageGenerationRequest
}

func (f *fakeGenerator) GenerateImage(ctx context.Context, req domain.ImageGenerationRequest) (*domain.ImageGenerationResponse, error) {
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return nil, f.err
	}
	return &domain.ImageGenerationResponse{URLs: f.urls}, nil
}

type storedObject struct {
	data        []byte
	contentType string
	metadata    map[string]string
}

type memStore struct {
	mu      sync.Mutex
	objects map[string]storedObject
	puts    []string
	getErr  error
	putErrs map[string]error
}

func newMemStore() *memStore {
	return &memStore{objects: map[string]storedObject{}, putErrs: map[string]error{}}
}

func (m *memStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	obj, ok := m.objects[key]
	if !ok {
		return nil, domain.ErrObjectNotFound
	}
	return obj.data, nil
}

func (m *memStore) Put(ctx context.Context, key string, data []byte, contentType string, metadata map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.putErrs[key]; err != nil {
		return err
	}
	m.puts = append(m.puts, key)
	m.objects[key] = storedObject{data: data, contentType: contentType, metadata: metadata}
	return nil
}

type fakeRecorder struct {
	generations []domain.Generation
	err         error
}

func (f *fakeRecorder) Record(ctx context.Context, g domain.Generation) error {
	f.generations = append(f.generations, g)
	return f.err
}

func newImageServer(status int, body []byte) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(status)
		w.Write(body)
	}))
}
