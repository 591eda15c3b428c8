package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds environment-driven settings for the server and pipeline.
// A missing provider key disables that provider; it never crashes the
// pipeline.
type Config struct {
	Port string

	NewsAPIKey string
	PerigonKey string
	HunterKey  string

	// Optional Redis backend for the HTTP result cache. Empty Addr means
	// the in-memory cache is used.
	RedisAddr string
	RedisPass string
	RedisDB   int

	// Optional RSS feeds registered as an extra provider.
	RSSFeeds   []string
	RSSExtract bool

	// Optional S3 destination for CSV export snapshots.
	S3Bucket string
	S3Prefix string
	S3Region string
}

// Load reads the configuration from environment variables. Callers load
// .env beforehand (godotenv) at the entrypoint.
func Load() *Config {
	cfg := &Config{
		Port:       GetEnvOrDefault("PORT", "8080"),
		NewsAPIKey: os.Getenv("NEWS_API_KEY"),
		PerigonKey: os.Getenv("PERIGON_API_KEY"),
		HunterKey:  os.Getenv("HUNTER_API_KEY"),
		RedisAddr:  os.Getenv("REDIS_ADDR"),
		RedisPass:  os.Getenv("REDIS_PASS"),
		S3Bucket:   os.Getenv("S3_BUCKET"),
		S3Prefix:   GetEnvOrDefault("S3_PREFIX", "exports/"),
		S3Region:   os.Getenv("AWS_REGION"),
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.RedisDB = db
		}
	}
	if v := os.Getenv("RSS_FEEDS"); v != "" {
		for _, f := range strings.Split(v, ",") {
			if f = strings.TrimSpace(f); f != "" {
				cfg.RSSFeeds = append(cfg.RSSFeeds, f)
			}
		}
	}
	if v := os.Getenv("RSS_EXTRACT"); v == "true" || v == "1" {
		cfg.RSSExtract = true
	}
	return cfg
}

// GetEnvOrDefault returns the value of an environment variable or a default value
func GetEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
