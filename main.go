package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"reporterfinder/api"
	"reporterfinder/config"
	"reporterfinder/enrich"
	"reporterfinder/export"
	"reporterfinder/httpcache"
	"reporterfinder/hygiene"
	"reporterfinder/pipeline"
	"reporterfinder/providers"
	"reporterfinder/scoring"
)

const (
	searchCacheTTL = 5 * time.Minute
	enrichCacheTTL = 60 * time.Minute
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := config.Load()

	searchCache := newCache(cfg, searchCacheTTL)
	enrichCache := newCache(cfg, enrichCacheTTL)

	// Provider order fixes dedup precedence: first occurrence of a URL wins.
	provs := []providers.Provider{
		providers.NewNewsAPI(cfg.NewsAPIKey, searchCache),
		providers.NewPerigon(cfg.PerigonKey, searchCache),
	}
	if cfg.NewsAPIKey == "" {
		log.Println("Warning: NEWS_API_KEY not set, NewsAPI will return no results")
	}
	if cfg.PerigonKey == "" {
		log.Println("Warning: PERIGON_API_KEY not set, Perigon will return no results")
	}
	if len(cfg.RSSFeeds) > 0 {
		provs = append(provs, providers.NewRSS(cfg.RSSFeeds, cfg.RSSExtract))
		log.Printf("RSS provider enabled with %d feeds", len(cfg.RSSFeeds))
	}

	p := pipeline.New(provs, hygiene.New(hygiene.Options{}), scoring.New(nil))
	enricher := enrich.New(enrichCache, cfg.PerigonKey, cfg.HunterKey)

	var snapshots *export.Uploader
	if cfg.S3Bucket != "" {
		up, err := export.NewUploader(context.Background(), export.S3Config{Region: cfg.S3Region}, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			log.Printf("Warning: S3 snapshots disabled: %v", err)
		} else {
			snapshots = up
			log.Printf("CSV snapshots enabled for bucket %q", cfg.S3Bucket)
		}
	}

	r := api.NewRouter(p, enricher, snapshots)
	addr := ":" + cfg.Port
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  POST /api/search")
	log.Println("  POST /api/search/csv?table=articles|reporters")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// newCache prefers the shared Redis backend when one is configured and
// reachable, falling back to the in-memory store.
func newCache(cfg *config.Config, ttl time.Duration) *httpcache.Cache {
	if cfg.RedisAddr != "" {
		store, err := httpcache.NewRedisStore(httpcache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			log.Printf("Warning: Redis cache unavailable (%v), using in-memory cache", err)
		} else {
			return httpcache.NewWithStore(store, ttl)
		}
	}
	return httpcache.New(ttl)
}
