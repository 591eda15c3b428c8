// Package enrich provides optional, best-effort point lookups for
// reporter rows: a journalist profile by name and a contact email by
// outlet domain. Failures are fully silent: a missing profile or email
// is a normal outcome, never an error.
package enrich

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"regexp"

	"reporterfinder/types"
)

const (
	defaultJournalistEndpoint = "https://api.goperigon.com/v1/journalists"
	defaultHunterEndpoint     = "https://api.hunter.io/v2/domain-search"
)

// Getter is the slice of the result cache the clients depend on. Profile
// lookups change rarely, so callers hand in a cache with a longer TTL
// than the search cache.
type Getter interface {
	Get(ctx context.Context, rawURL string, params url.Values, headers map[string]string) (int, []byte, error)
}

// Client performs both enrichment lookups. Either key may be empty; the
// corresponding lookup then returns nothing.
type Client struct {
	http               Getter
	perigonKey         string
	hunterKey          string
	journalistEndpoint string
	hunterEndpoint     string
}

// New creates an enrichment client sharing the given cache.
func New(getter Getter, perigonKey, hunterKey string) *Client {
	return &Client{
		http:               getter,
		perigonKey:         perigonKey,
		hunterKey:          hunterKey,
		journalistEndpoint: defaultJournalistEndpoint,
		hunterEndpoint:     defaultHunterEndpoint,
	}
}

type journalistEnvelope struct {
	Journalists []json.RawMessage `json:"journalists"`
	Data        []json.RawMessage `json:"data"`
	Results     []json.RawMessage `json:"results"`
}

// FindJournalist looks up a reporter profile by name, optionally scoped
// to a topic. Returns nil when nothing usable comes back.
func (c *Client) FindJournalist(ctx context.Context, name, topic string) *types.JournalistProfile {
	if c.perigonKey == "" || name == "" {
		return nil
	}

	params := url.Values{}
	params.Set("q", name)
	params.Set("size", "1")
	params.Set("apiKey", c.perigonKey)
	if topic != "" {
		params.Set("topic", topic)
	}

	status, body, err := c.http.Get(ctx, c.journalistEndpoint, params, nil)
	if err != nil || status != http.StatusOK {
		return nil
	}

	var env journalistEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil
	}
	items := env.Journalists
	if len(items) == 0 {
		items = env.Data
	}
	if len(items) == 0 {
		items = env.Results
	}
	if len(items) == 0 {
		return nil
	}

	var rec map[string]any
	if err := json.Unmarshal(items[0], &rec); err != nil {
		return nil
	}

	prof := &types.JournalistProfile{
		Name:     firstString(rec, "name"),
		Title:    firstString(rec, "title", "role"),
		Bio:      firstString(rec, "bio"),
		Twitter:  firstString(rec, "twitter", "twitter_handle"),
		LinkedIn: firstString(rec, "linkedin", "linkedin_url"),
		Location: firstString(rec, "location"),
		Topics:   stringList(rec, "topics", "top_topics"),
		Sources:  stringList(rec, "top_sources", "sources"),
	}
	if prof.Name == "" {
		prof.Name = name
	}
	return prof
}

type hunterResponse struct {
	Data struct {
		Emails []struct {
			Value string `json:"value"`
		} `json:"emails"`
	} `json:"data"`
}

// DomainEmail returns the first published email for a domain, or "".
func (c *Client) DomainEmail(ctx context.Context, domain string) string {
	if c.hunterKey == "" || domain == "" {
		return ""
	}

	params := url.Values{}
	params.Set("domain", domain)
	params.Set("api_key", c.hunterKey)
	params.Set("limit", "1")

	status, body, err := c.http.Get(ctx, c.hunterEndpoint, params, nil)
	if err != nil || status != http.StatusOK {
		return ""
	}

	var resp hunterResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return ""
	}
	if len(resp.Data.Emails) == 0 {
		return ""
	}
	return resp.Data.Emails[0].Value
}

// EnrichReporter fills the optional fields on one reporter row in place.
// The email domain comes from the reporter's most recent article.
func (c *Client) EnrichReporter(ctx context.Context, r *types.Reporter, topic string, emails, profiles bool) {
	if emails && r.Email == "" && len(r.TopArticles) > 0 {
		if domain := ExtractDomain(r.TopArticles[0].URL); domain != "" {
			r.Email = c.DomainEmail(ctx, domain)
		}
	}
	if profiles && r.Profile == nil {
		r.Profile = c.FindJournalist(ctx, r.Author, topic)
	}
}

var domainPattern = regexp.MustCompile(`^https?://([^/]+)/?`)

// ExtractDomain pulls the host part out of an article URL.
func ExtractDomain(rawURL string) string {
	m := domainPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return ""
	}
	return m[1]
}

func firstString(rec map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := rec[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func stringList(rec map[string]any, keys ...string) []string {
	for _, k := range keys {
		list, ok := rec[k].([]any)
		if !ok || len(list) == 0 {
			continue
		}
		out := make([]string, 0, len(list))
		for _, v := range list {
			switch s := v.(type) {
			case string:
				out = append(out, s)
			case map[string]any:
				if name, ok := s["name"].(string); ok && name != "" {
					out = append(out, name)
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}
