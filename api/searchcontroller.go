package api

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"reporterfinder/enrich"
	"reporterfinder/export"
	"reporterfinder/pipeline"
	"reporterfinder/providers"
	"reporterfinder/scoring"
	"reporterfinder/types"
)

// enrichLimit bounds per-search enrichment lookups to the reporters a
// caller will actually look at first.
const enrichLimit = 10

// SearchController serves the search and export endpoints.
type SearchController struct {
	Pipeline  *pipeline.Pipeline
	Enricher  *enrich.Client
	Snapshots *export.Uploader // nil unless an S3 bucket is configured
}

// RegisterSearchRoutes registers search endpoints.
func RegisterSearchRoutes(r *gin.Engine, sc *SearchController) {
	g := r.Group("/api/search")
	g.POST("", sc.handleSearch)
	g.POST("/csv", sc.handleSearchCSV)
}

// SearchRequest carries the caller-chosen parameters for one search.
type SearchRequest struct {
	Topic     string   `json:"topic"`
	Keywords  string   `json:"keywords"`
	Topics    []string `json:"topics"`
	Locations string   `json:"locations"`

	RecencyDays int    `json:"recency_days"`
	DateFrom    string `json:"date_from"` // YYYY-MM-DD, inclusive
	DateTo      string `json:"date_to"`

	MaxResults    int    `json:"max_results"`
	SortBy        string `json:"sort_by"`
	ScoringMethod string `json:"scoring_method"`

	Strict        bool `json:"strict"`
	HideNonPerson bool `json:"hide_non_person"`
	SeparateWires bool `json:"separate_wires"`

	// Provider toggles default to enabled when omitted.
	UseNewsAPI *bool `json:"use_newsapi"`
	UsePerigon *bool `json:"use_perigon"`
	UseRSS     *bool `json:"use_rss"`

	EnrichEmails   bool `json:"enrich_emails"`
	EnrichProfiles bool `json:"enrich_profiles"`
}

// SearchResponse is the JSON shape of a completed search.
type SearchResponse struct {
	Query     string           `json:"query"`
	Articles  []types.Article  `json:"articles"`
	Reporters []types.Reporter `json:"reporters"`
	Warnings  []string         `json:"warnings,omitempty"`
	Widened   bool             `json:"widened,omitempty"`
}

func (sc *SearchController) handleSearch(c *gin.Context) {
	res, status, errMsg := sc.runSearch(c)
	if errMsg != "" {
		c.JSON(status, gin.H{"error": errMsg})
		return
	}
	c.JSON(http.StatusOK, SearchResponse{
		Query:     res.Query,
		Articles:  res.Articles,
		Reporters: res.Reporters,
		Warnings:  res.Warnings,
		Widened:   res.Widened,
	})
}

// handleSearchCSV runs the same search but responds with a CSV table
// selected by the "table" query parameter (articles or reporters). With
// upload=true and a configured bucket, the CSV is also snapshotted to S3;
// upload failures degrade to a log line, never a failed export.
func (sc *SearchController) handleSearchCSV(c *gin.Context) {
	res, status, errMsg := sc.runSearch(c)
	if errMsg != "" {
		c.JSON(status, gin.H{"error": errMsg})
		return
	}

	table := c.DefaultQuery("table", "reporters")
	var buf bytes.Buffer
	var err error
	switch table {
	case "articles":
		err = export.WriteArticlesCSV(&buf, res.Articles)
	case "reporters":
		err = export.WriteReportersCSV(&buf, res.Reporters)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "table must be articles or reporters"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build CSV: " + err.Error()})
		return
	}

	if c.Query("upload") == "true" && sc.Snapshots != nil {
		if key, err := sc.Snapshots.SnapshotCSV(c.Request.Context(), table, buf.Bytes()); err != nil {
			log.Printf("snapshot upload failed: %v", err)
		} else {
			c.Header("X-Snapshot-Key", key)
		}
	}

	c.Header("Content-Disposition", `attachment; filename="`+table+`.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// runSearch binds, validates and executes a search shared by the JSON and
// CSV endpoints. It returns a non-empty error message with a status code
// on failure.
func (sc *SearchController) runSearch(c *gin.Context) (*pipeline.Result, int, string) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, http.StatusBadRequest, err.Error()
	}

	params, err := req.toParams()
	if err != nil {
		return nil, http.StatusBadRequest, err.Error()
	}

	res, err := sc.Pipeline.Search(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, pipeline.ErrNoQuery) {
			return nil, http.StatusBadRequest, "please enter a topic or keywords"
		}
		return nil, http.StatusInternalServerError, err.Error()
	}

	if sc.Enricher != nil && (req.EnrichEmails || req.EnrichProfiles) {
		sc.enrichTop(c, res, &req)
	}
	return res, http.StatusOK, ""
}

func (sc *SearchController) enrichTop(c *gin.Context, res *pipeline.Result, req *SearchRequest) {
	n := len(res.Reporters)
	if n > enrichLimit {
		n = enrichLimit
	}
	for i := 0; i < n; i++ {
		sc.Enricher.EnrichReporter(c.Request.Context(), &res.Reporters[i], req.Topic, req.EnrichEmails, req.EnrichProfiles)
	}
}

func (r *SearchRequest) toParams() (pipeline.Params, error) {
	method, err := scoring.ParseMethod(r.ScoringMethod)
	if err != nil {
		return pipeline.Params{}, err
	}

	params := pipeline.Params{
		Topic:         r.Topic,
		Keywords:      pipeline.ParseKeywords(joinNonEmpty(r.Topic, r.Keywords)),
		Topics:        r.Topics,
		Locations:     pipeline.ParseLocations(r.Locations),
		RecencyDays:   r.RecencyDays,
		MaxResults:    r.MaxResults,
		SortBy:        providers.SortOrder(r.SortBy),
		Method:        method,
		Strict:        r.Strict,
		HideNonPerson: r.HideNonPerson,
		SeparateWires: r.SeparateWires,
	}

	if r.DateFrom != "" {
		t, err := time.Parse("2006-01-02", r.DateFrom)
		if err != nil {
			return pipeline.Params{}, errors.New("date_from must be YYYY-MM-DD")
		}
		params.DateFrom = t
	}
	if r.DateTo != "" {
		t, err := time.Parse("2006-01-02", r.DateTo)
		if err != nil {
			return pipeline.Params{}, errors.New("date_to must be YYYY-MM-DD")
		}
		params.DateTo = t.AddDate(0, 0, 1) // inclusive end date
	}

	if r.UseNewsAPI != nil && !*r.UseNewsAPI {
		params.Disable = append(params.Disable, types.ProviderNewsAPI)
	}
	if r.UsePerigon != nil && !*r.UsePerigon {
		params.Disable = append(params.Disable, types.ProviderPerigon)
	}
	if r.UseRSS != nil && !*r.UseRSS {
		params.Disable = append(params.Disable, types.ProviderRSS)
	}
	return params, nil
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}
