// Package main provides a one-shot command-line search that runs the
// pipeline in-process and writes the result tables as CSV.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"reporterfinder/config"
	"reporterfinder/export"
	"reporterfinder/httpcache"
	"reporterfinder/hygiene"
	"reporterfinder/pipeline"
	"reporterfinder/providers"
	"reporterfinder/scoring"
)

func main() {
	topic := flag.String("topic", "", "Topic or keywords to search for")
	method := flag.String("method", "prominence-weighted", "Scoring method (frequency, prominence-weighted, recency-weighted, hybrid)")
	days := flag.Int("days", 30, "Recency window in days (1-365)")
	maxResults := flag.Int("max", 100, "Articles to fetch per provider (20-200)")
	strict := flag.Bool("strict", false, "Hard-filter articles lacking a topic/location match")
	articlesOut := flag.String("articles", "articles.csv", "Articles CSV output path")
	reportersOut := flag.String("reporters", "reporters.csv", "Reporters CSV output path")
	flag.Parse()

	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()
	log.SetOutput(os.Stderr)

	m, err := scoring.ParseMethod(*method)
	if err != nil {
		log.Fatalf("invalid method: %v", err)
	}

	cfg := config.Load()
	cache := httpcache.New(5 * time.Minute)
	provs := []providers.Provider{
		providers.NewNewsAPI(cfg.NewsAPIKey, cache),
		providers.NewPerigon(cfg.PerigonKey, cache),
	}
	if len(cfg.RSSFeeds) > 0 {
		provs = append(provs, providers.NewRSS(cfg.RSSFeeds, cfg.RSSExtract))
	}

	p := pipeline.New(provs, hygiene.New(hygiene.Options{}), scoring.New(nil))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := p.Search(ctx, pipeline.Params{
		Topic:       *topic,
		RecencyDays: *days,
		MaxResults:  *maxResults,
		Method:      m,
		Strict:      *strict,
	})
	if err != nil {
		log.Fatalf("search failed: %v", err)
	}

	for _, w := range res.Warnings {
		log.Printf("Warning: %s", w)
	}
	if res.Widened {
		log.Printf("No articles in the requested window; widened once and retried")
	}
	log.Printf("Found %d articles, %d reporters", len(res.Articles), len(res.Reporters))

	if err := writeCSV(*articlesOut, func(f *os.File) error {
		return export.WriteArticlesCSV(f, res.Articles)
	}); err != nil {
		log.Fatalf("failed to write %s: %v", *articlesOut, err)
	}
	if err := writeCSV(*reportersOut, func(f *os.File) error {
		return export.WriteReportersCSV(f, res.Reporters)
	}); err != nil {
		log.Fatalf("failed to write %s: %v", *reportersOut, err)
	}
	log.Printf("Wrote %s and %s", *articlesOut, *reportersOut)
}

func writeCSV(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}
