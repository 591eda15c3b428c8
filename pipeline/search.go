// Package pipeline runs the end-to-end search: fetch from each provider,
// merge and deduplicate, classify bylines, infer topics, filter, and
// aggregate into a ranked reporter list.
package pipeline

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"reporterfinder/hygiene"
	"reporterfinder/providers"
	"reporterfinder/reporters"
	"reporterfinder/scoring"
	"reporterfinder/topics"
	"reporterfinder/types"
)

// ErrNoQuery rejects a search with no usable topic or keywords before any
// network call is made.
var ErrNoQuery = errors.New("no topic or keywords given")

// Result is everything one search produced. Both tables are transient and
// recomputed per search.
type Result struct {
	Query     string           `json:"query"`
	Articles  []types.Article  `json:"articles"`
	Reporters []types.Reporter `json:"reporters"`
	Warnings  []string         `json:"warnings,omitempty"`
	Widened   bool             `json:"widened,omitempty"`
}

// Pipeline wires the provider adapters, hygiene classifier and scoring
// engine together. It holds no per-search state and is safe for
// concurrent searches.
type Pipeline struct {
	providers  []providers.Provider
	classifier *hygiene.Classifier
	scorer     *scoring.Engine
	now        func() time.Time
}

// New creates a Pipeline. Providers are queried in the given order, which
// also fixes dedup precedence.
func New(provs []providers.Provider, classifier *hygiene.Classifier, scorer *scoring.Engine) *Pipeline {
	return &Pipeline{
		providers:  provs,
		classifier: classifier,
		scorer:     scorer,
		now:        time.Now,
	}
}

// Search runs one search. Provider failures degrade to warnings; the only
// hard errors are an empty query and context cancellation. A non-strict
// search with zero hits widens the recency window once and retries.
func (p *Pipeline) Search(ctx context.Context, params Params) (*Result, error) {
	params.normalize(p.now().UTC())
	if len(params.Keywords) == 0 {
		return nil, ErrNoQuery
	}

	res := &Result{Query: strings.Join(params.Keywords, " ")}

	articles := p.run(ctx, &params, res)
	if len(articles) == 0 && !params.Strict && params.RecencyDays > 0 && params.RecencyDays < maxRecencyDays {
		widened := params
		widened.RecencyDays = min(params.RecencyDays*2, maxRecencyDays)
		widened.DateFrom = p.now().UTC().AddDate(0, 0, -widened.RecencyDays)
		log.Printf("no articles in %d days, widening window to %d days", params.RecencyDays, widened.RecencyDays)
		articles = p.run(ctx, &widened, res)
		res.Widened = true
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res.Articles = articles
	agg := reporters.New(p.scorer, params.Method)
	res.Reporters = agg.Aggregate(articles)
	if params.SeparateWires {
		separateWires(res.Reporters)
	}
	return res, nil
}

// run does one fetch/merge/annotate/filter attempt.
func (p *Pipeline) run(ctx context.Context, params *Params, res *Result) []types.Article {
	query := providers.Query{
		Text:       strings.Join(params.Keywords, " "),
		MaxResults: params.MaxResults,
		Sort:       params.SortBy,
		From:       params.DateFrom,
		To:         params.DateTo,
	}

	lists := make([][]types.Article, 0, len(p.providers))
	for _, prov := range p.providers {
		if params.disabled(prov.Name()) {
			continue
		}
		arts, err := prov.Fetch(ctx, query)
		if err != nil {
			// Degrade to empty: a misconfigured or rate-limited provider
			// must not sink the whole search.
			res.Warnings = append(res.Warnings, err.Error())
			log.Printf("provider %s failed: %v", prov.Name(), err)
			continue
		}
		lists = append(lists, arts)
	}

	merged := Merge(lists...)
	p.annotate(merged, params)
	return p.filter(merged, params)
}

// annotate fills the derived fields on each merged article.
func (p *Pipeline) annotate(articles []types.Article, params *Params) {
	for i := range articles {
		a := &articles[i]
		a.IsPerson = p.classifier.IsPerson(a.Author)
		a.IsWireOrPR = p.classifier.IsWireOrPR(a.Source, a.Author, a.Title)
		a.MatchedTerms = matchedTerms(a, params.Keywords)
		if len(a.Topics) == 0 {
			a.Topics = topics.Infer(a.Title+" "+a.Description+" "+a.Content, params.Topics, topics.DefaultMaxTopics)
		} else {
			a.Topics = topics.Normalize(a.Topics)
		}
	}
}

// filter applies the hygiene and strict/soft topic+location constraints.
// Strict mode hard-drops articles lacking any topic or location match;
// soft mode keeps everything but sorts matching articles earlier.
func (p *Pipeline) filter(articles []types.Article, params *Params) []types.Article {
	hints := append(append([]string(nil), params.Topics...), params.Locations...)

	out := articles[:0]
	for _, a := range articles {
		if params.HideNonPerson && !a.IsPerson {
			continue
		}
		if params.Strict && len(hints) > 0 && hintMatches(&a, hints) == 0 {
			continue
		}
		out = append(out, a)
	}

	if !params.Strict && len(hints) > 0 {
		sort.SliceStable(out, func(i, j int) bool {
			return hintMatches(&out[i], hints) > hintMatches(&out[j], hints)
		})
	}
	return out
}

// matchedTerms returns the subset of query terms found in the article
// text, case-insensitive.
func matchedTerms(a *types.Article, keywords []string) []string {
	text := a.SearchText()
	var matched []string
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			matched = append(matched, kw)
		}
	}
	return matched
}

// hintMatches counts how many topic/location hints occur in the article
// text.
func hintMatches(a *types.Article, hints []string) int {
	text := a.SearchText()
	n := 0
	for _, h := range hints {
		if h != "" && strings.Contains(text, strings.ToLower(h)) {
			n++
		}
	}
	return n
}

// separateWires stably moves wire/PR reporter rows after the original
// reporting rows.
func separateWires(reps []types.Reporter) {
	sort.SliceStable(reps, func(i, j int) bool {
		return !reps[i].Wire && reps[j].Wire
	})
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
