package pipeline

import "reporterfinder/types"

// Merge combines per-provider article lists into one, dropping exact URL
// duplicates. Identity is the lowercased, trimmed URL; the first
// occurrence across the fixed provider iteration order wins and later
// duplicates are dropped entirely, not merged. Output order is provider
// order, then within-provider original order.
func Merge(lists ...[]types.Article) []types.Article {
	var combined []types.Article
	seen := make(map[string]struct{})
	for _, list := range lists {
		for _, a := range list {
			key := a.DedupKey()
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			combined = append(combined, a)
		}
	}
	return combined
}
