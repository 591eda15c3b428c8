package tui

import (
	"reporterfinder/api"
	"reporterfinder/demo/client"

	tea "github.com/charmbracelet/bubbletea"
)

// State represents the application state machine
type State string

const (
	StateInput     State = "input"
	StateSearching State = "searching"
	StateResults   State = "results"
	StateError     State = "error"
)

// Model represents the TUI client state (thin client)
type Model struct {
	Client *client.Client

	State  State
	Topic  string
	Method string

	Result   *api.SearchResponse
	Cursor   int
	Expanded map[int]bool
	Err      error
}

// NewModel creates the initial model pointing at the API server.
func NewModel(baseURL string) Model {
	return Model{
		Client:   client.NewClient(baseURL),
		State:    StateInput,
		Method:   "prominence-weighted",
		Expanded: make(map[int]bool),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
