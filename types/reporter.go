package types

// Reporter is the derived per-author aggregate produced from a merged
// article list. Like Article it is transient: recomputed per search,
// never persisted.
type Reporter struct {
	Author       string    `json:"author"`
	Outlets      []string  `json:"outlets"`
	ArticleCount int       `json:"article_count"`
	Score        float64   `json:"score"`
	LastSeen     string    `json:"last_seen,omitempty"`
	Providers    []string  `json:"providers,omitempty"`
	MatchedTerms []string  `json:"matched_terms,omitempty"`
	Wire         bool      `json:"wire"`
	TopArticles  []Article `json:"top_articles,omitempty"`
	Articles     []Article `json:"articles,omitempty"`

	// Enrichment fields, populated on demand only.
	Email   string             `json:"email,omitempty"`
	Profile *JournalistProfile `json:"profile,omitempty"`
}

// JournalistProfile is the optional enrichment record for a reporter,
// looked up by name against the journalist directory.
type JournalistProfile struct {
	Name     string   `json:"name"`
	Title    string   `json:"title,omitempty"`
	Bio      string   `json:"bio,omitempty"`
	Twitter  string   `json:"twitter,omitempty"`
	LinkedIn string   `json:"linkedin,omitempty"`
	Location string   `json:"location,omitempty"`
	Topics   []string `json:"topics,omitempty"`
	Sources  []string `json:"sources,omitempty"`
}
