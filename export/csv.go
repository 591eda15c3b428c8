// Package export renders the search result tables as delimited text and
// optionally snapshots them to S3.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"reporterfinder/types"
)

// ArticlesHeader is the fixed column set of the articles table.
var ArticlesHeader = []string{"Title", "URL", "Outlet", "Author", "PublishedAt", "Topics", "Provider"}

// ReportersHeader is the fixed column set of the reporters table.
var ReportersHeader = []string{"Reporter", "Outlets", "ArticlesMatched", "Score", "Email", "ProfileTitle", "ProfileTopics"}

// WriteArticlesCSV writes one row per deduplicated article.
func WriteArticlesCSV(w io.Writer, articles []types.Article) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ArticlesHeader); err != nil {
		return err
	}
	for _, a := range articles {
		row := []string{
			a.Title,
			a.URL,
			a.Source,
			a.Author,
			a.PublishedAt,
			strings.Join(a.Topics, ", "),
			a.Provider,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteReportersCSV writes one row per aggregated reporter. Scores use
// the shortest exact decimal form so a re-parse recovers the same value.
func WriteReportersCSV(w io.Writer, reps []types.Reporter) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ReportersHeader); err != nil {
		return err
	}
	for _, r := range reps {
		profileTitle := ""
		var profileTopics []string
		if r.Profile != nil {
			profileTitle = r.Profile.Title
			profileTopics = r.Profile.Topics
			if len(profileTopics) > 10 {
				profileTopics = profileTopics[:10]
			}
		}
		row := []string{
			r.Author,
			strings.Join(r.Outlets, ", "),
			strconv.Itoa(r.ArticleCount),
			strconv.FormatFloat(r.Score, 'f', -1, 64),
			r.Email,
			profileTitle,
			strings.Join(profileTopics, ", "),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
