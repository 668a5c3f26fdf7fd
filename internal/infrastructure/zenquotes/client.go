package zenquotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/basel-ax/dalleimg/internal/domain"
)

const (
	// DefaultURL is the public random quote endpoint
	DefaultURL = "https://zenquotes.io/api/random"
)

// Client fetches random quotes from a ZenQuotes compatible endpoint
type Client struct {
	httpClient *http.Client
	url        string
	validate   *validator.Validate
}

// quoteResponse is one element of the JSON array returned by the API
type quoteResponse struct {
	Text   string `json:"q" validate:"required"`
	Author string `json:"a" validate:"required"`
}

// NewClient creates a new quote client
func NewClient(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		url:      url,
		validate: validator.New(),
	}
}

// RandomQuote implements domain.QuoteSource
func (c *Client) RandomQuote(ctx context.Context) (*domain.Quote, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeQuote, "failed to create request", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeQuote, "failed to send request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, domain.NewDomainError(domain.ErrCodeQuote,
			fmt.Sprintf("unexpected status code: %d, body: %s", resp.StatusCode, string(body)), nil)
	}

	var quotes []quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&quotes); err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeQuote, "failed to decode response", err)
	}

	if len(quotes) == 0 {
		return nil, domain.NewDomainError(domain.ErrCodeQuote, "empty quote list returned", nil)
	}

	if err := c.validate.Struct(quotes[0]); err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeQuote, "empty quote object returned", err)
	}

	return &domain.Quote{
		Text:   quotes[0].Text,
		Author: quotes[0].Author,
	}, nil
}
