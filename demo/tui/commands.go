package tui

import (
	"context"
	"time"

	"reporterfinder/api"

	tea "github.com/charmbracelet/bubbletea"
)

// runSearch posts the search to the API server off the update loop.
func runSearch(m Model) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
		defer cancel()

		res, err := m.Client.Search(ctx, api.SearchRequest{
			Topic:         m.Topic,
			ScoringMethod: m.Method,
		})
		return searchCompleteMsg{result: res, err: err}
	}
}
