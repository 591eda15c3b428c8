package providers

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"
)

// fakeGetter stands in for the HTTP result cache. It records the params of
// the last request and returns a canned response.
type fakeGetter struct {
	status int
	body   []byte
	err    error

	lastURL    string
	lastParams url.Values
}

func (f *fakeGetter) Get(ctx context.Context, rawURL string, params url.Values, headers map[string]string) (int, []byte, error) {
	f.lastURL = rawURL
	f.lastParams = params
	if f.err != nil {
		return -1, nil, f.err
	}
	return f.status, f.body, nil
}

func TestNewsAPIFetch(t *testing.T) {
	g := &fakeGetter{status: 200, body: []byte(`{
		"status": "ok",
		"articles": [
			{"source": {"name": "Reuters"}, "author": "Jane Doe", "title": "Chip makers expand",
			 "description": "d", "url": "https://example.com/a", "publishedAt": "2025-06-01T10:00:00Z", "content": "c"},
			{"source": {"name": "X"}, "author": "", "title": "", "url": "https://example.com/b"},
			{"source": {"name": "Y"}, "author": "", "title": "No URL", "url": ""}
		]
	}`)}
	n := NewNewsAPI("test-key", g)

	got, err := n.Fetch(context.Background(), Query{
		Text:       "semiconductors",
		MaxResults: 50,
		Sort:       SortRelevancy,
		From:       time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d articles, want 1 (blank title/URL dropped)", len(got))
	}
	a := got[0]
	if a.Title != "Chip makers expand" || a.Author != "Jane Doe" || a.Source != "Reuters" {
		t.Errorf("unexpected article: %+v", a)
	}
	if a.Provider != "newsapi" {
		t.Errorf("provider = %q, want newsapi", a.Provider)
	}

	if g.lastParams.Get("q") != "semiconductors" {
		t.Errorf("q = %q", g.lastParams.Get("q"))
	}
	if g.lastParams.Get("pageSize") != "50" {
		t.Errorf("pageSize = %q", g.lastParams.Get("pageSize"))
	}
	if g.lastParams.Get("sortBy") != "relevancy" {
		t.Errorf("sortBy = %q", g.lastParams.Get("sortBy"))
	}
	if g.lastParams.Get("from") != "2025-05-01T00:00:00Z" {
		t.Errorf("from = %q", g.lastParams.Get("from"))
	}
}

func TestNewsAPIMissingKey(t *testing.T) {
	n := NewNewsAPI("", &fakeGetter{})
	_, err := n.Fetch(context.Background(), Query{Text: "x", MaxResults: 20})
	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if perr.Provider != "newsapi" {
		t.Errorf("provider = %q", perr.Provider)
	}
}

func TestNewsAPIUnauthorized(t *testing.T) {
	g := &fakeGetter{status: 401, body: []byte(`{"status":"error","code":"apiKeyInvalid","message":"bad key"}`)}
	n := NewNewsAPI("wrong", g)
	_, err := n.Fetch(context.Background(), Query{Text: "x", MaxResults: 20})
	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if perr.Status != 401 {
		t.Errorf("status = %d, want 401", perr.Status)
	}
	if !strings.Contains(perr.Message, "NEWS_API_KEY") {
		t.Errorf("message should name the env var, got %q", perr.Message)
	}
	if strings.Contains(perr.Error(), "wrong") {
		t.Errorf("error leaked the credential: %q", perr.Error())
	}
}

func TestNewsAPIUpgradeRequired(t *testing.T) {
	g := &fakeGetter{status: 426, body: []byte(`{}`)}
	n := NewNewsAPI("k", g)
	_, err := n.Fetch(context.Background(), Query{Text: "x", MaxResults: 20})
	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Status != 426 {
		t.Fatalf("expected 426 ProviderError, got %v", err)
	}
}

func TestNewsAPINetworkError(t *testing.T) {
	g := &fakeGetter{err: errors.New("dial refused")}
	n := NewNewsAPI("k", g)
	_, err := n.Fetch(context.Background(), Query{Text: "x", MaxResults: 20})
	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if strings.Contains(perr.Error(), "dial refused") {
		t.Errorf("network detail should not surface: %q", perr.Error())
	}
}

func TestNewsAPISortMapping(t *testing.T) {
	cases := map[SortOrder]string{
		SortRelevancy:  "relevancy",
		SortPopularity: "popularity",
		SortDate:       "publishedAt",
	}
	for in, want := range cases {
		if got := newsapiSort(in); got != want {
			t.Errorf("newsapiSort(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTruncateAuthor(t *testing.T) {
	long := strings.Repeat("a", 300)
	if got := truncateAuthor(long); len(got) != 200 {
		t.Errorf("len = %d, want 200", len(got))
	}
	if got := truncateAuthor("short"); got != "short" {
		t.Errorf("got %q", got)
	}
}
