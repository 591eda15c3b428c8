package pipeline

import (
	"strings"
	"time"

	"reporterfinder/providers"
	"reporterfinder/scoring"
)

const (
	minResultsPerProvider     = 20
	maxResultsPerProvider     = 200
	defaultResultsPerProvider = 100
	defaultRecencyDays        = 30
	maxRecencyDays            = 365
)

// Params carries the caller-chosen search inputs. The UI layer collects
// them; the pipeline owns validation and defaulting.
type Params struct {
	Topic     string
	Keywords  []string // derived from Topic when empty
	Topics    []string // beats; used as inference hints and strict filters
	Locations []string // substring ranking boost, not geocoded

	RecencyDays int       // used when DateFrom/DateTo are unset
	DateFrom    time.Time // explicit inclusive window, overrides RecencyDays
	DateTo      time.Time

	MaxResults int
	SortBy     providers.SortOrder
	Method     scoring.Method

	Strict        bool
	HideNonPerson bool
	SeparateWires bool

	// Provider toggles. The zero Params enables every registered provider;
	// Disable lists providers by name to skip.
	Disable []string
}

func (p *Params) disabled(name string) bool {
	for _, d := range p.Disable {
		if d == name {
			return true
		}
	}
	return false
}

// normalize fills defaults and clamps ranges in place.
func (p *Params) normalize(now time.Time) {
	if len(p.Keywords) == 0 {
		p.Keywords = ParseKeywords(p.Topic)
	}
	if p.MaxResults < minResultsPerProvider {
		if p.MaxResults == 0 {
			p.MaxResults = defaultResultsPerProvider
		} else {
			p.MaxResults = minResultsPerProvider
		}
	}
	if p.MaxResults > maxResultsPerProvider {
		p.MaxResults = maxResultsPerProvider
	}
	if p.SortBy == "" {
		p.SortBy = providers.SortRelevancy
	}
	if p.Method == "" {
		p.Method = scoring.Prominence
	}
	if p.DateFrom.IsZero() && p.DateTo.IsZero() {
		if p.RecencyDays <= 0 {
			p.RecencyDays = defaultRecencyDays
		}
		if p.RecencyDays > maxRecencyDays {
			p.RecencyDays = maxRecencyDays
		}
		p.DateFrom = now.AddDate(0, 0, -p.RecencyDays)
		p.DateTo = now.AddDate(0, 0, 1) // inclusive today
	}
}

// ParseKeywords splits a free-text query on commas and whitespace,
// deduplicating case-insensitively while preserving order and original
// casing.
func ParseKeywords(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	seen := make(map[string]struct{})
	for _, chunk := range strings.Split(s, ",") {
		for _, w := range strings.Fields(chunk) {
			lw := strings.ToLower(w)
			if _, ok := seen[lw]; ok {
				continue
			}
			seen[lw] = struct{}{}
			out = append(out, w)
		}
	}
	return out
}

// ParseLocations splits a comma-separated location list.
func ParseLocations(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, x := range strings.Split(s, ",") {
		if x = strings.TrimSpace(x); x != "" {
			out = append(out, x)
		}
	}
	return out
}
