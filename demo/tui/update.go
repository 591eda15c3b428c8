package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case searchCompleteMsg:
		if msg.err != nil {
			m.State = StateError
			m.Err = msg.err
			return m, nil
		}
		m.Result = msg.result
		m.Cursor = 0
		m.Expanded = make(map[int]bool)
		m.State = StateResults
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.State {
	case StateInput:
		switch key {
		case "enter":
			if strings.TrimSpace(m.Topic) == "" {
				return m, nil
			}
			m.State = StateSearching
			return m, runSearch(m)
		case "backspace":
			if len(m.Topic) > 0 {
				m.Topic = m.Topic[:len(m.Topic)-1]
			}
		case "esc":
			return m, tea.Quit
		default:
			if msg.Type == tea.KeyRunes || key == " " {
				m.Topic += string(msg.Runes)
			}
		}

	case StateResults:
		switch key {
		case "q", "esc":
			return m, tea.Quit
		case "n":
			// New search
			m.State = StateInput
			m.Topic = ""
			m.Result = nil
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Result != nil && m.Cursor < len(m.Result.Reporters)-1 {
				m.Cursor++
			}
		case "enter", " ":
			m.Expanded[m.Cursor] = !m.Expanded[m.Cursor]
		}

	case StateError:
		switch key {
		case "q", "esc":
			return m, tea.Quit
		case "n", "enter":
			m.State = StateInput
			m.Err = nil
		}
	}
	return m, nil
}
