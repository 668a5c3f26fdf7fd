package domain

import "context"

// Quote is a quotation with its author
type Quote struct {
	Text   string
	Author string
}

// QuoteSource fetches a random quote
type QuoteSource interface {
	RandomQuote(ctx context.Context) (*Quote, error)
}
