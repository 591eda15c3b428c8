package providers

import (
	"context"
	"strings"
	"sync"
	"time"

	"reporterfinder/types"

	readability "github.com/go-shiori/go-readability"
	"github.com/mmcdole/gofeed"
)

const (
	rssWorkerCount   = 5
	extractorTimeout = 30 * time.Second
)

// RSS is an optional extra provider that searches a fixed set of RSS/Atom
// feeds for items matching the query. Feeds carry no search endpoint, so
// matching happens client-side against item text.
type RSS struct {
	feeds   []string
	extract bool
	parser  *gofeed.Parser
}

// NewRSS creates an RSS adapter over the given feed URLs. When extract is
// set, full article content is fetched and extracted for matched items so
// keyword evidence can look beyond the feed summary.
func NewRSS(feeds []string, extract bool) *RSS {
	return &RSS{
		feeds:   feeds,
		extract: extract,
		parser:  gofeed.NewParser(),
	}
}

func (r *RSS) Name() string { return types.ProviderRSS }

func (r *RSS) Fetch(ctx context.Context, q Query) ([]types.Article, error) {
	if len(r.feeds) == 0 {
		return nil, &ProviderError{Provider: r.Name(), Status: 0, Message: "no feeds configured"}
	}

	terms := strings.Fields(strings.ToLower(q.Text))
	var out []types.Article
	failed := 0

	for _, feedURL := range r.feeds {
		feed, err := r.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			failed++
			continue
		}
		for _, item := range feed.Items {
			if len(out) >= q.MaxResults {
				break
			}
			a, ok := normalizeFeedItem(item)
			if !ok {
				continue
			}
			if a.Source == "" {
				a.Source = strings.TrimSpace(feed.Title)
			}
			if !itemMatches(&a, terms) {
				continue
			}
			if !withinWindow(&a, q.From, q.To) {
				continue
			}
			out = append(out, a)
		}
	}

	if failed == len(r.feeds) {
		return nil, &ProviderError{Provider: r.Name(), Status: -1, Message: "all configured feeds failed to fetch"}
	}

	if r.extract {
		extractAll(out)
	}
	return out, nil
}

func normalizeFeedItem(item *gofeed.Item) (types.Article, bool) {
	title := strings.TrimSpace(item.Title)
	if title == "" || item.Link == "" {
		return types.Article{}, false
	}

	author := ""
	if len(item.Authors) > 0 {
		names := make([]string, 0, len(item.Authors))
		for _, a := range item.Authors {
			if a != nil && a.Name != "" {
				names = append(names, a.Name)
			}
		}
		author = strings.Join(names, ", ")
	} else if item.Author != nil {
		author = item.Author.Name
	}

	published := item.Published
	if item.PublishedParsed != nil {
		published = item.PublishedParsed.Format(time.RFC3339)
	} else if item.UpdatedParsed != nil {
		published = item.UpdatedParsed.Format(time.RFC3339)
	}

	description := item.Description
	if description == "" {
		description = item.Content
	}

	source := ""
	if item.Custom != nil {
		source = item.Custom["source"]
	}

	return types.Article{
		Title:       title,
		URL:         item.Link,
		Source:      source,
		Author:      truncateAuthor(strings.TrimSpace(author)),
		PublishedAt: published,
		Description: description,
		Content:     item.Content,
		Topics:      append([]string(nil), item.Categories...),
		Provider:    types.ProviderRSS,
	}, true
}

// itemMatches reports whether any query term occurs in the item text.
// An empty term list matches everything.
func itemMatches(a *types.Article, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	text := a.SearchText()
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}

func withinWindow(a *types.Article, from, to time.Time) bool {
	t, ok := a.PublishedTime()
	if !ok {
		return true // unknown dates pass through; filtering happens downstream
	}
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !to.IsZero() && t.After(to) {
		return false
	}
	return true
}

// extractAll fetches and extracts full content for matched items using a
// small worker pool. Extraction failures leave the feed summary in place.
func extractAll(articles []types.Article) {
	var wg sync.WaitGroup
	jobs := make(chan int, len(articles))

	for w := 0; w < rssWorkerCount; w++ {
		go func() {
			for i := range jobs {
				extractContent(&articles[i])
				wg.Done()
			}
		}()
	}

	for i := range articles {
		wg.Add(1)
		jobs <- i
	}
	wg.Wait()
	close(jobs)
}

func extractContent(a *types.Article) {
	extracted, err := readability.FromURL(a.URL, extractorTimeout)
	if err != nil {
		return
	}
	if extracted.TextContent != "" {
		a.Content = extracted.TextContent
	}
	if a.Description == "" {
		a.Description = extracted.Excerpt
	}
	if a.Author == "" {
		a.Author = truncateAuthor(strings.TrimSpace(extracted.Byline))
	}
	if a.Source == "" {
		a.Source = extracted.SiteName
	}
}
