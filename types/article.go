package types

import (
	"strings"
	"time"
)

// Provider identifiers attached to articles for evidence and audit.
const (
	ProviderNewsAPI = "newsapi"
	ProviderPerigon = "perigon"
	ProviderRSS     = "rss"
)

// Article is the canonical record every provider adapter normalizes into.
// Articles are rebuilt on every search and never persisted.
type Article struct {
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Source      string   `json:"source,omitempty"`
	Author      string   `json:"author,omitempty"`
	PublishedAt string   `json:"published_at,omitempty"`
	Description string   `json:"description,omitempty"`
	Content     string   `json:"content,omitempty"`
	Topics      []string `json:"topics,omitempty"`
	Sentiment   float64  `json:"sentiment,omitempty"`
	Provider    string   `json:"provider"`

	// Derived fields, populated by the search pipeline.
	IsPerson     bool     `json:"is_person"`
	IsWireOrPR   bool     `json:"is_wire_or_pr"`
	MatchedTerms []string `json:"matched_terms,omitempty"`
}

// DedupKey is the article's identity for merge deduplication. Two articles
// with URLs differing only by case or surrounding whitespace are the same.
func (a *Article) DedupKey() string {
	return strings.ToLower(strings.TrimSpace(a.URL))
}

// SearchText is the lowercased text surface scanned for keyword, topic and
// location matches.
func (a *Article) SearchText() string {
	return strings.ToLower(a.Title + " " + a.Description + " " + a.Content)
}

// publishedLayouts are tried in order when parsing provider timestamps.
// Providers disagree on formats, so parsing is tolerant: a timestamp that
// matches none of these is simply treated as unknown.
var publishedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// PublishedTime lazily parses the provider-native timestamp string.
// The second return value reports whether parsing succeeded.
func (a *Article) PublishedTime() (time.Time, bool) {
	s := strings.TrimSpace(a.PublishedAt)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
