package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"reporterfinder/types"
)

const defaultPerigonEndpoint = "https://api.goperigon.com/v1/all"

// Perigon adapts the Perigon article search endpoint. Perigon's record
// shape varies more than NewsAPI's (author as string vs. list vs. object,
// source as string vs. object), so normalization works through ordered
// field fallbacks on loosely decoded records.
type Perigon struct {
	apiKey   string
	endpoint string
	http     Getter
}

// NewPerigon creates a Perigon adapter sharing the given result cache.
func NewPerigon(apiKey string, getter Getter) *Perigon {
	return &Perigon{
		apiKey:   apiKey,
		endpoint: defaultPerigonEndpoint,
		http:     getter,
	}
}

func (p *Perigon) Name() string { return types.ProviderPerigon }

type perigonEnvelope struct {
	Message  string            `json:"message"`
	Error    string            `json:"error"`
	Articles []json.RawMessage `json:"articles"`
	Data     []json.RawMessage `json:"data"`
	Results  []json.RawMessage `json:"results"`
}

func (p *Perigon) Fetch(ctx context.Context, q Query) ([]types.Article, error) {
	if p.apiKey == "" {
		return nil, missingKeyError(p.Name())
	}

	params := url.Values{}
	params.Set("q", q.Text)
	params.Set("language", "en")
	params.Set("size", strconv.Itoa(q.MaxResults))
	params.Set("sortBy", perigonSort(q.Sort))
	params.Set("showReprints", "false")
	params.Set("showNumResults", "true")
	params.Set("apiKey", p.apiKey)
	if !q.From.IsZero() {
		params.Set("from", q.From.UTC().Format("2006-01-02"))
	}
	if !q.To.IsZero() {
		params.Set("to", q.To.UTC().Format("2006-01-02"))
	}

	status, body, err := p.http.Get(ctx, p.endpoint, params, nil)
	if err != nil {
		return nil, networkError(p.Name())
	}
	if status != http.StatusOK {
		return nil, p.statusError(status, body)
	}

	var env perigonEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &ProviderError{Provider: p.Name(), Status: status, Message: "unexpected response payload"}
	}

	items := env.Articles
	if len(items) == 0 {
		items = env.Data
	}
	if len(items) == 0 {
		items = env.Results
	}

	out := make([]types.Article, 0, len(items))
	for _, raw := range items {
		var rec map[string]any
		if err := json.Unmarshal(raw, &rec); err != nil {
			continue // malformed record, expected upstream noise
		}
		a, ok := normalizePerigonRecord(rec)
		if !ok {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

// perigonSort maps the shared sort vocabulary onto Perigon's
// {relevance, date}.
func perigonSort(s SortOrder) string {
	if s == SortRelevancy || s == SortPopularity {
		return "relevance"
	}
	return "date"
}

func (p *Perigon) statusError(status int, body []byte) *ProviderError {
	msg := ""
	var env perigonEnvelope
	if err := json.Unmarshal(body, &env); err == nil {
		msg = strings.TrimSpace(env.Message)
		if msg == "" {
			msg = strings.TrimSpace(env.Error)
		}
	}
	return &ProviderError{Provider: p.Name(), Status: status,
		Message: strings.TrimSpace(fmt.Sprintf("request failed (%d). %s", status, msg))}
}

// normalizePerigonRecord maps one loosely typed Perigon record onto the
// canonical Article. Records lacking a title or URL are dropped.
func normalizePerigonRecord(rec map[string]any) (types.Article, bool) {
	title := strings.TrimSpace(stringField(rec, "title", "headline"))
	link := strings.TrimSpace(stringField(rec, "url", "link"))
	if title == "" || link == "" {
		return types.Article{}, false
	}

	return types.Article{
		Title:       title,
		URL:         link,
		Source:      sourceName(rec["source"]),
		Author:      truncateAuthor(authorField(rec)),
		PublishedAt: stringField(rec, "publishedAt", "pubDate", "date"),
		Description: stringField(rec, "description", "summary", "excerpt"),
		Content:     stringField(rec, "content"),
		Topics:      topicNames(rec, "topics", "categories"),
		Sentiment:   sentimentScore(rec["sentiment"]),
		Provider:    types.ProviderPerigon,
	}, true
}

// stringField returns the first non-empty string value among keys.
func stringField(rec map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := rec[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// sourceName accepts either an object with name/domain fields or a plain
// string.
func sourceName(v any) string {
	switch src := v.(type) {
	case map[string]any:
		if name, ok := src["name"].(string); ok && strings.TrimSpace(name) != "" {
			return strings.TrimSpace(name)
		}
		if domain, ok := src["domain"].(string); ok {
			return strings.TrimSpace(domain)
		}
	case string:
		return strings.TrimSpace(src)
	}
	return ""
}

// authorField handles author as a single string, a list of name strings,
// or a list of contributor objects with a "name" field. Multiple names are
// joined with ", ".
func authorField(rec map[string]any) string {
	if s, ok := rec["author"].(string); ok && strings.TrimSpace(s) != "" {
		return strings.TrimSpace(s)
	}
	list, ok := rec["authors"].([]any)
	if !ok {
		return ""
	}
	names := make([]string, 0, len(list))
	for _, v := range list {
		switch a := v.(type) {
		case string:
			if a != "" {
				names = append(names, a)
			}
		case map[string]any:
			if name, ok := a["name"].(string); ok && name != "" {
				names = append(names, name)
			}
		}
	}
	return strings.Join(names, ", ")
}

// topicNames extracts topic tags from any of the keys, where each entry is
// either an object with a "name" field or a plain string.
func topicNames(rec map[string]any, keys ...string) []string {
	for _, k := range keys {
		list, ok := rec[k].([]any)
		if !ok || len(list) == 0 {
			continue
		}
		names := make([]string, 0, len(list))
		for _, v := range list {
			switch t := v.(type) {
			case string:
				if t != "" {
					names = append(names, t)
				}
			case map[string]any:
				if name, ok := t["name"].(string); ok && name != "" {
					names = append(names, name)
				}
			}
		}
		if len(names) > 0 {
			return names
		}
	}
	return nil
}

// sentimentScore reduces Perigon's sentiment object to a single signed
// score (positive minus negative). A bare numeric value passes through.
func sentimentScore(v any) float64 {
	switch s := v.(type) {
	case float64:
		return s
	case map[string]any:
		pos, _ := s["positive"].(float64)
		neg, _ := s["negative"].(float64)
		return pos - neg
	}
	return 0
}
