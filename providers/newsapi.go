package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"reporterfinder/types"
)

const defaultNewsAPIEndpoint = "https://newsapi.org/v2/everything"

// NewsAPI adapts the NewsAPI /v2/everything search endpoint into the
// canonical Article shape.
type NewsAPI struct {
	apiKey   string
	endpoint string
	http     Getter
}

// NewNewsAPI creates a NewsAPI adapter sharing the given result cache.
func NewNewsAPI(apiKey string, getter Getter) *NewsAPI {
	return &NewsAPI{
		apiKey:   apiKey,
		endpoint: defaultNewsAPIEndpoint,
		http:     getter,
	}
}

func (n *NewsAPI) Name() string { return types.ProviderNewsAPI }

type newsapiResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`

	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Author      string `json:"author"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
		Content     string `json:"content"`
	} `json:"articles"`
}

func (n *NewsAPI) Fetch(ctx context.Context, q Query) ([]types.Article, error) {
	if n.apiKey == "" {
		return nil, missingKeyError(n.Name())
	}

	params := url.Values{}
	params.Set("q", q.Text)
	params.Set("language", "en")
	params.Set("pageSize", strconv.Itoa(q.MaxResults))
	params.Set("sortBy", newsapiSort(q.Sort))
	params.Set("apiKey", n.apiKey)
	if !q.From.IsZero() {
		params.Set("from", q.From.UTC().Format(time.RFC3339))
	}
	if !q.To.IsZero() {
		params.Set("to", q.To.UTC().Format(time.RFC3339))
	}

	status, body, err := n.http.Get(ctx, n.endpoint, params, nil)
	if err != nil {
		return nil, networkError(n.Name())
	}
	if status != http.StatusOK {
		return nil, n.statusError(status, body)
	}

	var resp newsapiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ProviderError{Provider: n.Name(), Status: status, Message: "unexpected response payload"}
	}

	out := make([]types.Article, 0, len(resp.Articles))
	for _, it := range resp.Articles {
		title := strings.TrimSpace(it.Title)
		if title == "" || it.URL == "" {
			continue
		}
		out = append(out, types.Article{
			Title:       title,
			URL:         it.URL,
			Source:      strings.TrimSpace(it.Source.Name),
			Author:      truncateAuthor(strings.TrimSpace(it.Author)),
			PublishedAt: it.PublishedAt,
			Description: it.Description,
			Content:     it.Content,
			Provider:    n.Name(),
		})
	}
	return out, nil
}

// newsapiSort maps the shared sort vocabulary onto NewsAPI's
// {relevancy, popularity, publishedAt}.
func newsapiSort(s SortOrder) string {
	switch s {
	case SortPopularity:
		return "popularity"
	case SortDate:
		return "publishedAt"
	default:
		return "relevancy"
	}
}

// statusError turns an upstream failure into a typed, credential-free
// message. 401/426/429 get dedicated explanations since they are the
// failures operators actually hit on free plans.
func (n *NewsAPI) statusError(status int, body []byte) *ProviderError {
	msg := ""
	var resp newsapiResponse
	if err := json.Unmarshal(body, &resp); err == nil {
		msg = strings.TrimSpace(resp.Message)
		if msg == "" {
			msg = strings.TrimSpace(resp.Code)
		}
	}

	switch status {
	case http.StatusUnauthorized:
		return &ProviderError{Provider: n.Name(), Status: status,
			Message: "returned 401 (Unauthorized). Check NEWS_API_KEY."}
	case http.StatusUpgradeRequired:
		return &ProviderError{Provider: n.Name(), Status: status,
			Message: "returned 426 (Upgrade Required). On free/dev plans this often happens when the request isn't allowed (e.g., too old date range or production restrictions)."}
	case http.StatusTooManyRequests:
		return &ProviderError{Provider: n.Name(), Status: status,
			Message: "returned 429 (Rate limit). Try again later."}
	}
	return &ProviderError{Provider: n.Name(), Status: status,
		Message: strings.TrimSpace(fmt.Sprintf("request failed (%d). %s", status, msg))}
}

// truncateAuthor bounds runaway byline strings.
func truncateAuthor(s string) string {
	if len(s) > 200 {
		return s[:200]
	}
	return s
}
