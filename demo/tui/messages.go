package tui

import "reporterfinder/api"

// searchCompleteMsg carries a finished search back into the update loop.
type searchCompleteMsg struct {
	result *api.SearchResponse
	err    error
}
