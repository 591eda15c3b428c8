// Package scoring computes per-reporter relevance scores from one of
// several selectable formulas.
package scoring

import (
	"fmt"
	"math"
	"strings"
	"time"

	"reporterfinder/types"
)

// Method selects the scoring formula.
type Method string

const (
	Frequency  Method = "frequency"
	Prominence Method = "prominence"
	Recency    Method = "recency"
	Hybrid     Method = "hybrid"
)

// ParseMethod accepts the canonical method names plus the longer display
// labels used by clients.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "frequency", "frequency only":
		return Frequency, nil
	case "prominence", "prominence-weighted":
		return Prominence, nil
	case "recency", "recency-weighted":
		return Recency, nil
	case "hybrid", "hybrid (freq x prominence x recency)":
		return Hybrid, nil
	}
	return "", fmt.Errorf("unknown scoring method %q", s)
}

const (
	// TopTierWeight lifts reporters publishing in a top-tier outlet.
	TopTierWeight = 2.0
	// DefaultWeight applies to all other outlets.
	DefaultWeight = 1.0
	// HalfLifeDays is the recency decay half-life.
	HalfLifeDays = 30.0
)

// DefaultTopTierOutlets is the stock allowlist of major outlets. Operators
// curate their own list and pass it to New.
var DefaultTopTierOutlets = []string{
	"The New York Times", "The Washington Post", "Reuters", "Bloomberg",
	"BBC News", "CNN", "The Wall Street Journal", "Financial Times",
	"The Guardian", "Politico", "NPR", "Associated Press",
	"Los Angeles Times", "TIME", "Forbes", "Fortune", "Vox", "Axios",
	"The Atlantic", "NBC News",
}

// Engine scores reporters against one configured outlet allowlist.
type Engine struct {
	topTier map[string]struct{}
	now     func() time.Time
}

// New creates an Engine. A nil outlet list falls back to the defaults.
func New(topTierOutlets []string) *Engine {
	if topTierOutlets == nil {
		topTierOutlets = DefaultTopTierOutlets
	}
	set := make(map[string]struct{}, len(topTierOutlets))
	for _, o := range topTierOutlets {
		set[strings.ToLower(strings.TrimSpace(o))] = struct{}{}
	}
	return &Engine{topTier: set, now: time.Now}
}

// OutletWeight returns the prominence weight of a single outlet,
// case-insensitively matched against the allowlist.
func (e *Engine) OutletWeight(outlet string) float64 {
	outlet = strings.ToLower(strings.TrimSpace(outlet))
	if outlet == "" {
		return DefaultWeight
	}
	if _, ok := e.topTier[outlet]; ok {
		return TopTierWeight
	}
	return DefaultWeight
}

// ProminenceWeight takes the maximum weight across the reporter's
// outlets: one top-tier credit lifts the whole score.
func (e *Engine) ProminenceWeight(outlets []string) float64 {
	w := DefaultWeight
	for _, o := range outlets {
		if ow := e.OutletWeight(o); ow > w {
			w = ow
		}
	}
	return w
}

// RecencyWeight is exponential decay with a configurable half-life:
// 1.0 at publish time, 0.5 at one half-life, 0.25 at two. A missing or
// unparsable timestamp weighs 1.0, neutral rather than a penalty.
func (e *Engine) RecencyWeight(a *types.Article, halfLifeDays float64) float64 {
	if halfLifeDays <= 0 {
		halfLifeDays = HalfLifeDays
	}
	t, ok := a.PublishedTime()
	if !ok {
		return 1.0
	}
	days := e.now().UTC().Sub(t.UTC()).Hours() / 24
	if days < 0 {
		days = 0
	}
	return math.Pow(0.5, days/halfLifeDays)
}

// Score computes the reporter score for articles attributed to one author
// across the given outlets.
//
// Recency and Hybrid aggregate recency differently on purpose: Recency
// sums raw weights so volume still counts in pure-recency mode, while
// Hybrid divides by article count so recency cannot inflate sheer volume
// that the count factor already measures. Unifying the two would change
// existing rankings.
func (e *Engine) Score(articles []types.Article, outlets []string, m Method) float64 {
	count := float64(len(articles))
	switch m {
	case Prominence:
		return count * e.ProminenceWeight(outlets)
	case Recency:
		return e.recencySum(articles)
	case Hybrid:
		norm := e.recencySum(articles) / math.Max(1, count)
		return count * e.ProminenceWeight(outlets) * norm
	default:
		return count
	}
}

func (e *Engine) recencySum(articles []types.Article) float64 {
	sum := 0.0
	for i := range articles {
		sum += e.RecencyWeight(&articles[i], HalfLifeDays)
	}
	return sum
}
