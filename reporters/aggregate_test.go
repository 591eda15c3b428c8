package reporters

import (
	"reflect"
	"testing"

	"reporterfinder/scoring"
	"reporterfinder/types"
)

func art(author, source, url, published string, terms ...string) types.Article {
	return types.Article{
		Title:        "t",
		URL:          url,
		Source:       source,
		Author:       author,
		PublishedAt:  published,
		Provider:     types.ProviderNewsAPI,
		MatchedTerms: terms,
	}
}

func TestAggregateGroupsByAuthor(t *testing.T) {
	agg := New(scoring.New(nil), scoring.Frequency)
	articles := []types.Article{
		art("Jane Doe", "Reuters", "https://e.com/1", "2025-06-03T10:00:00Z", "chips"),
		art("Sam Roe", "Axios", "https://e.com/2", "2025-06-01T10:00:00Z", "chips"),
		art("Jane Doe", "Bloomberg", "https://e.com/3", "2025-06-05T10:00:00Z", "fabs", "chips"),
		art("", "Reuters", "https://e.com/4", "2025-06-01T10:00:00Z"),
		art("Nobody", "Reuters", "", "2025-06-01T10:00:00Z"),
	}

	got := agg.Aggregate(articles)
	if len(got) != 2 {
		t.Fatalf("got %d reporters, want 2 (blank author and blank URL dropped)", len(got))
	}

	jane := got[0]
	if jane.Author != "Jane Doe" {
		t.Fatalf("top reporter = %q, want Jane Doe", jane.Author)
	}
	if jane.ArticleCount != 2 || jane.Score != 2.0 {
		t.Errorf("count/score = %d/%v, want 2/2", jane.ArticleCount, jane.Score)
	}
	if !reflect.DeepEqual(jane.Outlets, []string{"Bloomberg", "Reuters"}) {
		t.Errorf("outlets = %v, want sorted [Bloomberg Reuters]", jane.Outlets)
	}
	if jane.LastSeen != "2025-06-05 10:00" {
		t.Errorf("LastSeen = %q", jane.LastSeen)
	}
	if len(jane.TopArticles) != 2 || jane.TopArticles[0].URL != "https://e.com/3" {
		t.Errorf("top articles not newest-first: %v", jane.TopArticles)
	}
	if !reflect.DeepEqual(jane.MatchedTerms, []string{"chips", "fabs"}) {
		t.Errorf("matched terms = %v", jane.MatchedTerms)
	}
}

func TestAggregateTopArticlesCapped(t *testing.T) {
	agg := New(scoring.New(nil), scoring.Frequency)
	var articles []types.Article
	days := []string{"01", "02", "03", "04", "05", "06", "07"}
	for _, d := range days {
		articles = append(articles, art("Jane Doe", "Reuters", "https://e.com/"+d, "2025-06-"+d+"T00:00:00Z"))
	}
	got := agg.Aggregate(articles)
	if len(got) != 1 {
		t.Fatalf("got %d reporters", len(got))
	}
	if len(got[0].TopArticles) != 5 {
		t.Errorf("top articles = %d, want 5", len(got[0].TopArticles))
	}
	if got[0].TopArticles[0].URL != "https://e.com/07" {
		t.Errorf("newest first, got %s", got[0].TopArticles[0].URL)
	}
	if len(got[0].Articles) != 7 {
		t.Errorf("full article list = %d, want 7", len(got[0].Articles))
	}
}

func TestAggregateUnparsableDatesSortOldest(t *testing.T) {
	agg := New(scoring.New(nil), scoring.Frequency)
	articles := []types.Article{
		art("Jane Doe", "Reuters", "https://e.com/undated", ""),
		art("Jane Doe", "Reuters", "https://e.com/dated", "2025-06-01T00:00:00Z"),
	}
	got := agg.Aggregate(articles)
	if got[0].TopArticles[0].URL != "https://e.com/dated" {
		t.Errorf("dated article should rank first, got %s", got[0].TopArticles[0].URL)
	}
	if got[0].LastSeen != "2025-06-01 00:00" {
		t.Errorf("LastSeen = %q", got[0].LastSeen)
	}
}

func TestAggregateSortsByScoreThenCount(t *testing.T) {
	// Prominence: one Reuters byline doubles the score, so two articles in
	// a top-tier outlet beat three in unknown outlets.
	agg := New(scoring.New(nil), scoring.Prominence)
	articles := []types.Article{
		art("Low Outlet", "Blogspot", "https://e.com/a1", "2025-06-01T00:00:00Z"),
		art("Low Outlet", "Blogspot", "https://e.com/a2", "2025-06-01T00:00:00Z"),
		art("Low Outlet", "Blogspot", "https://e.com/a3", "2025-06-01T00:00:00Z"),
		art("Top Outlet", "Reuters", "https://e.com/b1", "2025-06-01T00:00:00Z"),
		art("Top Outlet", "Reuters", "https://e.com/b2", "2025-06-01T00:00:00Z"),
	}
	got := agg.Aggregate(articles)
	if got[0].Author != "Top Outlet" {
		t.Errorf("order = %s, %s; want Top Outlet first", got[0].Author, got[1].Author)
	}
	if got[0].Score != 4.0 || got[1].Score != 3.0 {
		t.Errorf("scores = %v, %v", got[0].Score, got[1].Score)
	}
}

func TestAggregateWireFlagAndProviders(t *testing.T) {
	agg := New(scoring.New(nil), scoring.Frequency)
	a := art("Jane Doe", "Reuters", "https://e.com/1", "2025-06-01T00:00:00Z")
	b := art("Jane Doe", "Reuters", "https://e.com/2", "2025-06-02T00:00:00Z")
	b.Provider = types.ProviderPerigon
	b.IsWireOrPR = true

	got := agg.Aggregate([]types.Article{a, b})
	if !got[0].Wire {
		t.Error("wire flag should propagate to the reporter")
	}
	if !reflect.DeepEqual(got[0].Providers, []string{"newsapi", "perigon"}) {
		t.Errorf("providers = %v", got[0].Providers)
	}
}
