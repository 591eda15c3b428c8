// Package hygiene decides whether a byline denotes an individual person
// and whether an article originates from a wire or press-release source.
// Every rule here is a best-effort heuristic over messy upstream byline
// strings, not an authoritative classification.
package hygiene

import (
	"strings"
	"unicode"
)

// Options holds the curated lists the classifier matches against. They are
// operator-maintained and expected to grow, so they are injected rather
// than hardcoded; tests substitute fixtures.
type Options struct {
	// Blocked are known non-person byline strings, matched exactly or as
	// substrings, case-insensitive.
	Blocked []string
	// OrgKeywords mark organizational bylines ("news desk", "staff", ...).
	OrgKeywords []string
	// CorporateSuffixes mark company names by their trailing token.
	CorporateSuffixes []string
	// WireHints are substrings identifying press-release distribution
	// services and syndication wires.
	WireHints []string
}

// DefaultOptions returns the stock curated lists.
func DefaultOptions() Options {
	return Options{
		Blocked: []string{
			"globenewswire", "pr newswire", "prnewswire", "business wire",
			"businesswire", "accesswire", "newsfile", "einpresswire",
			"associated press", "reuters", "afp", "upi", "bloomberg news",
			"cnn newsource", "marketwatch automation", "zacks",
			"benzinga insights", "investing.com", "cision",
		},
		OrgKeywords: []string{
			"press", "desk", "wire", "staff", "team", "newsroom", "editor",
			"editorial", "bureau", "contributor", "contributors",
			"correspondent", "correspondents", "insights", "report",
			"media", "communications", "agency", "news service",
		},
		CorporateSuffixes: []string{
			"llc", "inc", "ltd", "llp", "plc", "corp", "co", "gmbh",
			"group", "partners", "capital", "holdings", "advisors",
			"associates", "company", "solutions", "technologies",
			"ventures",
		},
		WireHints: []string{
			"globenewswire", "prnewswire", "businesswire", "accesswire",
			"newsfile", "einpresswire", "openpr", "prweb", "cision",
			"marketersmedia", "press release",
		},
	}
}

// Classifier applies the hygiene heuristics with one set of curated lists.
type Classifier struct {
	opts Options
}

// New creates a Classifier. Empty option slices fall back to the defaults,
// so callers can override just the lists they curate.
func New(opts Options) *Classifier {
	def := DefaultOptions()
	if opts.Blocked == nil {
		opts.Blocked = def.Blocked
	}
	if opts.OrgKeywords == nil {
		opts.OrgKeywords = def.OrgKeywords
	}
	if opts.CorporateSuffixes == nil {
		opts.CorporateSuffixes = def.CorporateSuffixes
	}
	if opts.WireHints == nil {
		opts.WireHints = def.WireHints
	}
	return &Classifier{opts: opts}
}

// IsBlocked reports whether name matches the denylist exactly or contains
// a denylisted string.
func (c *Classifier) IsBlocked(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return false
	}
	for _, b := range c.opts.Blocked {
		if lower == b || strings.Contains(lower, b) {
			return true
		}
	}
	return false
}

// IsPerson reports whether the byline plausibly names an individual.
func (c *Classifier) IsPerson(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	if c.IsBlocked(name) {
		return false
	}

	lower := strings.ToLower(name)
	normalized := normalizeWords(lower)
	for _, kw := range c.opts.OrgKeywords {
		if strings.Contains(normalized, " "+kw+" ") {
			return false
		}
	}
	if c.endsWithCorporateSuffix(lower) {
		return false
	}
	if strings.Contains(name, "@") || strings.Contains(lower, "http") || strings.Contains(lower, "www.") {
		return false
	}

	runes := []rune(name)
	letters := 0
	for _, r := range runes {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if letters < 4 || letters*2 < len(runes) {
		return false
	}

	tokens := strings.Fields(name)
	if len(tokens) > 5 {
		return false
	}
	if allUppercaseTokens(tokens) {
		return false
	}
	if len(tokens) == 1 {
		t := []rune(tokens[0])
		return len(t) >= 3 && unicode.IsUpper(t[0]) && isAlphabetic(t)
	}
	return true
}

// IsWireOrPR reports whether the article looks like wire or press-release
// output rather than original reporting.
func (c *Classifier) IsWireOrPR(source, author, title string) bool {
	text := strings.ToLower(source + " " + author + " " + title)
	for _, hint := range c.opts.WireHints {
		if strings.Contains(text, hint) {
			return true
		}
	}
	return c.endsWithCorporateSuffix(strings.ToLower(author))
}

// endsWithCorporateSuffix checks the final token against the suffix list,
// ignoring trailing punctuation ("Acme Inc." matches "inc").
func (c *Classifier) endsWithCorporateSuffix(lower string) bool {
	fields := strings.Fields(lower)
	if len(fields) < 2 {
		return false
	}
	last := strings.TrimRight(fields[len(fields)-1], ".,")
	for _, suffix := range c.opts.CorporateSuffixes {
		if last == suffix {
			return true
		}
	}
	return false
}

// normalizeWords maps punctuation to spaces and pads the ends so keyword
// containment checks stay on word boundaries.
func normalizeWords(lower string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, lower)
	return " " + strings.Join(strings.Fields(mapped), " ") + " "
}

// allUppercaseTokens is a heuristic for ALL-CAPS outlet names.
func allUppercaseTokens(tokens []string) bool {
	for _, t := range tokens {
		hasLetter := false
		for _, r := range t {
			if unicode.IsLetter(r) {
				hasLetter = true
				if unicode.IsLower(r) {
					return false
				}
			}
		}
		if !hasLetter {
			return false
		}
	}
	return len(tokens) > 0
}

func isAlphabetic(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
