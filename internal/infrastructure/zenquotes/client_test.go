package zenquotes

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"github.com/basel-ax/dalleimg/internal/domain"
)

func newTestServer(status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestRandomQuote(t *testing.T) {
	srv := newTestServer(http.StatusOK, `[{"q":"Act as if what you do makes a difference.","a":"William James","h":"<blockquote>...</blockquote>"}]`)
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)

	quote, err := client.RandomQuote(t.Context())

	assert.Equal(t, nil, err)
	assert.Equal(t, "Act as if what you do makes a difference.", quote.Text)
	assert.Equal(t, "William James", quote.Author)
}

func TestRandomQuoteErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "missing author", status: http.StatusOK, body: `[{"q":"Only text"}]`},
		{name: "missing text", status: http.StatusOK, body: `[{"a":"Nobody"}]`},
		{name: "empty author", status: http.StatusOK, body: `[{"q":"Only text","a":""}]`},
		{name: "empty list", status: http.StatusOK, body: `[]`},
		{name: "object instead of list", status: http.StatusOK, body: `{"q":"x","a":"y"}`},
		{name: "malformed json", status: http.StatusOK, body: `[{"q":`},
		{name: "rate limited", status: http.StatusTooManyRequests, body: `Too many requests`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(tt.status, tt.body)
			defer srv.Close()

			client := NewClient(srv.URL, 5*time.Second)

			quote, err := client.RandomQuote(t.Context())

			assert.Equal(t, (*domain.Quote)(nil), quote)
			assert.Equal(t, true, errors.Is(err, domain.ErrQuote))
		})
	}
}

func TestRandomQuoteUnreachable(t *testing.T) {
	srv := newTestServer(http.StatusOK, `[]`)
	url := srv.URL
	srv.Close()

	client := NewClient(url, time.Second)

	_, err := client.RandomQuote(t.Context())

	assert.Equal(t, true, errors.Is(err, domain.ErrQuote))
}
