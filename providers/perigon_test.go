package providers

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPerigonFetch(t *testing.T) {
	g := &fakeGetter{status: 200, body: []byte(`{
		"numResults": 2,
		"articles": [
			{"title": "Grid upgrades", "url": "https://example.com/grid",
			 "source": {"name": "Bloomberg", "domain": "bloomberg.com"},
			 "authors": [{"name": "Ada Lovelace"}, {"name": "Grace Hopper"}],
			 "pubDate": "2025-06-02", "summary": "power",
			 "topics": [{"name": "Energy"}, {"name": "Policy"}],
			 "sentiment": {"positive": 0.6, "negative": 0.1}},
			{"headline": "Battery plant", "link": "https://example.com/battery",
			 "source": "example.com", "author": "Solo Writer",
			 "publishedAt": "2025-06-03T08:00:00Z",
			 "categories": ["Manufacturing"], "sentiment": 0.4}
		]
	}`)}
	p := NewPerigon("test-key", g)

	got, err := p.Fetch(context.Background(), Query{
		Text:       "grid",
		MaxResults: 100,
		Sort:       SortDate,
		From:       time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		To:         time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d articles, want 2", len(got))
	}

	a := got[0]
	if a.Author != "Ada Lovelace, Grace Hopper" {
		t.Errorf("joined authors = %q", a.Author)
	}
	if a.Source != "Bloomberg" {
		t.Errorf("source = %q", a.Source)
	}
	if len(a.Topics) != 2 || a.Topics[0] != "Energy" {
		t.Errorf("topics = %v", a.Topics)
	}
	if a.Sentiment < 0.49 || a.Sentiment > 0.51 {
		t.Errorf("sentiment = %v, want 0.5", a.Sentiment)
	}

	b := got[1]
	if b.Title != "Battery plant" || b.URL != "https://example.com/battery" {
		t.Errorf("fallback keys not honored: %+v", b)
	}
	if b.Author != "Solo Writer" || b.Source != "example.com" {
		t.Errorf("author/source = %q / %q", b.Author, b.Source)
	}
	if len(b.Topics) != 1 || b.Topics[0] != "Manufacturing" {
		t.Errorf("topics = %v", b.Topics)
	}

	if g.lastParams.Get("from") != "2025-05-01" || g.lastParams.Get("to") != "2025-06-04" {
		t.Errorf("date params = %q / %q", g.lastParams.Get("from"), g.lastParams.Get("to"))
	}
	if g.lastParams.Get("sortBy") != "date" {
		t.Errorf("sortBy = %q", g.lastParams.Get("sortBy"))
	}
	if g.lastParams.Get("showReprints") != "false" {
		t.Errorf("showReprints = %q", g.lastParams.Get("showReprints"))
	}
}

func TestPerigonEnvelopeFallbacks(t *testing.T) {
	for _, key := range []string{"articles", "data", "results"} {
		g := &fakeGetter{status: 200, body: []byte(`{"` + key + `": [{"title": "T", "url": "https://e.com/1"}]}`)}
		p := NewPerigon("k", g)
		got, err := p.Fetch(context.Background(), Query{Text: "x", MaxResults: 20})
		if err != nil {
			t.Fatalf("%s: Fetch failed: %v", key, err)
		}
		if len(got) != 1 {
			t.Errorf("%s: got %d articles, want 1", key, len(got))
		}
	}
}

func TestPerigonDropsIncompleteRecords(t *testing.T) {
	g := &fakeGetter{status: 200, body: []byte(`{"articles": [
		{"title": "", "url": "https://e.com/1"},
		{"title": "No link"},
		{"title": "Kept", "url": "https://e.com/2"}
	]}`)}
	p := NewPerigon("k", g)
	got, err := p.Fetch(context.Background(), Query{Text: "x", MaxResults: 20})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Kept" {
		t.Errorf("got %v", got)
	}
}

func TestPerigonStatusError(t *testing.T) {
	g := &fakeGetter{status: 403, body: []byte(`{"message": "plan does not allow this"}`)}
	p := NewPerigon("k", g)
	_, err := p.Fetch(context.Background(), Query{Text: "x", MaxResults: 20})
	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if perr.Status != 403 {
		t.Errorf("status = %d", perr.Status)
	}
}

func TestPerigonMissingKey(t *testing.T) {
	p := NewPerigon("", &fakeGetter{})
	if _, err := p.Fetch(context.Background(), Query{Text: "x", MaxResults: 20}); err == nil {
		t.Fatal("expected an error with no key configured")
	}
}

func TestPerigonSortMapping(t *testing.T) {
	if got := perigonSort(SortPopularity); got != "relevance" {
		t.Errorf("popularity maps to %q, want relevance", got)
	}
	if got := perigonSort(SortDate); got != "date" {
		t.Errorf("date maps to %q, want date", got)
	}
}
