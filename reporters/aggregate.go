// Package reporters groups a merged article list by author and produces
// ranked per-reporter summaries.
package reporters

import (
	"sort"
	"strings"

	"reporterfinder/scoring"
	"reporterfinder/types"
)

const (
	topArticleCount = 5
	topTermCount    = 5
)

// Aggregator groups articles by author. Grouping is global by author
// rather than (author, outlet): a reporter writing for two outlets gets
// one row with the combined outlet set and article count.
type Aggregator struct {
	scorer *scoring.Engine
	method scoring.Method
}

// New creates an Aggregator scoring with the given method.
func New(scorer *scoring.Engine, method scoring.Method) *Aggregator {
	return &Aggregator{scorer: scorer, method: method}
}

type group struct {
	author     string
	articles   []types.Article
	outlets    map[string]struct{}
	providers  []string
	seenProv   map[string]struct{}
	termCounts map[string]int
	termOrder  []string
	wire       bool
}

// Aggregate builds one Reporter per distinct non-empty author, sorted by
// (score descending, article count descending).
func (g *Aggregator) Aggregate(articles []types.Article) []types.Reporter {
	groups := make(map[string]*group)
	var order []string

	for _, a := range articles {
		author := strings.TrimSpace(a.Author)
		if author == "" || a.URL == "" {
			continue
		}
		grp, ok := groups[author]
		if !ok {
			grp = &group{
				author:     author,
				outlets:    make(map[string]struct{}),
				seenProv:   make(map[string]struct{}),
				termCounts: make(map[string]int),
			}
			groups[author] = grp
			order = append(order, author)
		}
		grp.articles = append(grp.articles, a)
		if src := strings.TrimSpace(a.Source); src != "" {
			grp.outlets[src] = struct{}{}
		}
		if _, ok := grp.seenProv[a.Provider]; !ok && a.Provider != "" {
			grp.seenProv[a.Provider] = struct{}{}
			grp.providers = append(grp.providers, a.Provider)
		}
		for _, term := range a.MatchedTerms {
			if _, ok := grp.termCounts[term]; !ok {
				grp.termOrder = append(grp.termOrder, term)
			}
			grp.termCounts[term]++
		}
		if a.IsWireOrPR {
			grp.wire = true
		}
	}

	out := make([]types.Reporter, 0, len(order))
	for _, author := range order {
		out = append(out, g.finalize(groups[author]))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ArticleCount > out[j].ArticleCount
	})
	return out
}

func (g *Aggregator) finalize(grp *group) types.Reporter {
	outlets := make([]string, 0, len(grp.outlets))
	for o := range grp.outlets {
		outlets = append(outlets, o)
	}
	sort.Strings(outlets)

	recent := sortedByPublished(grp.articles)
	top := recent
	if len(top) > topArticleCount {
		top = top[:topArticleCount]
	}

	lastSeen := ""
	if len(recent) > 0 {
		if t, ok := recent[0].PublishedTime(); ok {
			lastSeen = t.Format("2006-01-02 15:04")
		}
	}

	return types.Reporter{
		Author:       grp.author,
		Outlets:      outlets,
		ArticleCount: len(grp.articles),
		Score:        g.scorer.Score(grp.articles, outlets, g.method),
		LastSeen:     lastSeen,
		Providers:    grp.providers,
		MatchedTerms: topTerms(grp.termCounts, grp.termOrder),
		Wire:         grp.wire,
		TopArticles:  top,
		Articles:     grp.articles,
	}
}

// sortedByPublished orders articles most-recent first. Unparsable dates
// sort as if oldest; ties keep the original merged-list order.
func sortedByPublished(articles []types.Article) []types.Article {
	sorted := append([]types.Article(nil), articles...)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, oki := sorted[i].PublishedTime()
		tj, okj := sorted[j].PublishedTime()
		if oki != okj {
			return oki
		}
		return ti.After(tj)
	})
	return sorted
}

// topTerms returns the most frequent matched terms, ties broken by
// first-seen order.
func topTerms(counts map[string]int, order []string) []string {
	terms := append([]string(nil), order...)
	sort.SliceStable(terms, func(i, j int) bool {
		return counts[terms[i]] > counts[terms[j]]
	})
	if len(terms) > topTermCount {
		terms = terms[:topTermCount]
	}
	return terms
}
