// Package topics normalizes provider-supplied topic tags and infers
// topics from free text when a provider supplies none.
package topics

import "strings"

// DefaultMaxTopics bounds inferred topic lists.
const DefaultMaxTopics = 6

// keywordTopics maps in-text needles to canonical topic tags. Scanned in
// order, so broader needles sit after their specific variants.
var keywordTopics = []struct {
	needle string
	topic  string
}{
	{"ai", "ai"},
	{"artificial intelligence", "ai"},
	{"machine learning", "machine learning"},
	{"llm", "ai"},
	{"openai", "ai"},
	{"anthropic", "ai"},
	{"google", "technology"},
	{"microsoft", "technology"},
	{"apple", "technology"},
	{"startup", "startups"},
	{"startups", "startups"},
	{"venture", "finance"},
	{"vc", "finance"},
	{"antitrust", "antitrust"},
	{"doj", "politics"},
	{"sec", "finance"},
	{"congress", "politics"},
	{"supreme court", "politics"},
	{"election", "elections"},
	{"tariff", "finance"},
	{"inflation", "finance"},
	{"cyber", "cybersecurity"},
	{"ransomware", "cybersecurity"},
	{"breach", "cybersecurity"},
	{"climate", "climate"},
	{"vaccine", "health"},
	{"health", "health"},
	{"music", "culture"},
	{"sports", "sports"},
}

// Normalize lowercases, collapses internal whitespace, and deduplicates
// topic tags while preserving insertion order. It is a fixpoint: applying
// it to its own output changes nothing.
func Normalize(topics []string) []string {
	out := make([]string, 0, len(topics))
	seen := make(map[string]struct{}, len(topics))
	for _, t := range topics {
		n := strings.Join(strings.Fields(strings.ToLower(t)), " ")
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Infer scans text for known topic needles and for literal occurrences of
// the hint strings. If nothing matches, the normalized hints themselves
// are returned so the search intent is still represented.
func Infer(text string, hints []string, maxTopics int) []string {
	if maxTopics <= 0 {
		maxTopics = DefaultMaxTopics
	}
	if text == "" {
		return truncate(Normalize(hints), maxTopics)
	}

	t := strings.ToLower(text)
	var hits []string
	for _, kt := range keywordTopics {
		if strings.Contains(t, kt.needle) {
			hits = append(hits, kt.topic)
		}
	}
	for _, h := range hints {
		if h != "" && strings.Contains(t, strings.ToLower(h)) {
			hits = append(hits, h)
		}
	}
	hits = Normalize(hits)
	if len(hits) == 0 && len(hints) > 0 {
		hits = Normalize(hints)
	}
	return truncate(hits, maxTopics)
}

func truncate(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}
