package types

import (
	"testing"
	"time"
)

func TestDedupKey(t *testing.T) {
	a := Article{URL: "  HTTPS://Example.com/Story  "}
	b := Article{URL: "https://example.com/story"}
	if a.DedupKey() != b.DedupKey() {
		t.Errorf("expected identical keys, got %q and %q", a.DedupKey(), b.DedupKey())
	}
	empty := Article{}
	if empty.DedupKey() != "" {
		t.Errorf("expected empty key for empty URL, got %q", empty.DedupKey())
	}
}

func TestPublishedTime(t *testing.T) {
	cases := []struct {
		raw  string
		ok   bool
		want time.Time
	}{
		{"2025-06-01T12:30:00Z", true, time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)},
		{"2025-06-01T12:30:00", true, time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)},
		{"2025-06-01 12:30:00", true, time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)},
		{"2025-06-01", true, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"", false, time.Time{}},
		{"not a date", false, time.Time{}},
	}
	for _, c := range cases {
		a := Article{PublishedAt: c.raw}
		got, ok := a.PublishedTime()
		if ok != c.ok {
			t.Errorf("PublishedTime(%q) ok = %v, want %v", c.raw, ok, c.ok)
			continue
		}
		if ok && !got.Equal(c.want) {
			t.Errorf("PublishedTime(%q) = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestSearchText(t *testing.T) {
	a := Article{Title: "Big AI News", Description: "A Summary", Content: "Full TEXT"}
	got := a.SearchText()
	want := "big ai news a summary full text"
	if got != want {
		t.Errorf("SearchText() = %q, want %q", got, want)
	}
}
