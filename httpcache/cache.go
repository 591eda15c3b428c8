package httpcache

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"
)

const requestTimeout = 20 * time.Second

// Entry is one memoized HTTP response.
type Entry struct {
	Status int    `json:"status"`
	Body   []byte `json:"body"`
}

// Store is a cache backend keyed by the exact (url, params) tuple.
// Implementations must be safe for concurrent use by multiple searches.
type Store interface {
	Get(ctx context.Context, key string) (Entry, bool)
	Set(ctx context.Context, key string, e Entry, ttl time.Duration)
}

// Cache memoizes outbound GET requests for a fixed TTL, bounding upstream
// API cost when a caller re-runs an unchanged search. Failures are returned
// with a sentinel status of -1 and a non-nil error; callers treat any
// non-200 status as "no data" rather than crashing.
type Cache struct {
	store  Store
	client *http.Client
	ttl    time.Duration
}

// New creates a Cache backed by an in-process map.
func New(ttl time.Duration) *Cache {
	return NewWithStore(newMemoryStore(), ttl)
}

// NewWithStore creates a Cache with an explicit backend, e.g. Redis.
func NewWithStore(store Store, ttl time.Duration) *Cache {
	return &Cache{
		store:  store,
		client: &http.Client{Timeout: requestTimeout},
		ttl:    ttl,
	}
}

// Get performs a memoized GET against rawURL with the given query params.
// Headers are applied to the outbound request but are not part of the
// cache key.
func (c *Cache) Get(ctx context.Context, rawURL string, params url.Values, headers map[string]string) (int, []byte, error) {
	key := cacheKey(rawURL, params)
	if e, ok := c.store.Get(ctx, key); ok {
		return e.Status, e.Body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return -1, nil, err
	}
	req.URL.RawQuery = params.Encode()
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return -1, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return -1, nil, err
	}

	c.store.Set(ctx, key, Entry{Status: resp.StatusCode, Body: body}, c.ttl)
	return resp.StatusCode, body, nil
}

// cacheKey joins url and encoded params. url.Values.Encode sorts keys, so
// logically identical requests always map to the same key.
func cacheKey(rawURL string, params url.Values) string {
	return rawURL + "?" + params.Encode()
}

type memoryEntry struct {
	entry     Entry
	expiresAt time.Time
}

type memoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *memoryStore) Get(ctx context.Context, key string) (Entry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return Entry{}, false
	}
	if m.now().After(e.expiresAt) {
		delete(m.entries, key)
		return Entry{}, false
	}
	return e.entry, true
}

func (m *memoryStore) Set(ctx context.Context, key string, e Entry, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{entry: e, expiresAt: m.now().Add(ttl)}
}
