package providers

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"reporterfinder/types"
)

// SortOrder selects how an upstream API orders its results. Each adapter
// translates this into the provider's own sort vocabulary.
type SortOrder string

const (
	SortRelevancy  SortOrder = "relevancy"
	SortPopularity SortOrder = "popularity"
	SortDate       SortOrder = "date"
)

// Query describes one upstream search request.
type Query struct {
	Text       string
	MaxResults int
	Sort       SortOrder
	From       time.Time // zero value means unset
	To         time.Time
}

// Provider fetches and normalizes articles from one upstream search API.
// A failed fetch returns a *ProviderError; the caller decides whether to
// degrade to an empty result.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, q Query) ([]types.Article, error)
}

// Getter is the slice of the result cache the adapters depend on.
type Getter interface {
	Get(ctx context.Context, rawURL string, params url.Values, headers map[string]string) (int, []byte, error)
}

// ProviderError is a typed fetch failure carrying a safe, human-readable
// message. Messages never echo credentials or raw request parameters.
type ProviderError struct {
	Provider string
	Status   int // upstream HTTP status, or -1 for network/timeout failures
	Message  string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func networkError(provider string) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Status:   -1,
		Message:  "request failed due to a network/timeout error",
	}
}

func missingKeyError(provider string) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Status:   0,
		Message:  "API key is not configured; provider disabled",
	}
}
