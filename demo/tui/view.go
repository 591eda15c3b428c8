package tui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("📰 Reporter Finder"))
	b.WriteString("\n\n")

	switch m.State {
	case StateInput:
		b.WriteString(InfoStyle.Render("Search by topic to find relevant articles and rank reporters."))
		b.WriteString("\n\n")
		b.WriteString(BoxStyle.Render(fmt.Sprintf("Topic: %s▌", m.Topic)))
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("Press Enter to search | Esc to quit"))

	case StateSearching:
		b.WriteString(StatusStyle.Render(fmt.Sprintf("⏳ Searching for %q…", m.Topic)))

	case StateError:
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("❌ Error: %v", m.Err)))
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("Press 'n' for a new search | 'q' to quit"))

	case StateResults:
		m.renderResults(&b)
	}

	return b.String()
}

func (m Model) renderResults(b *strings.Builder) {
	res := m.Result
	for _, w := range res.Warnings {
		b.WriteString(ErrorStyle.Render("⚠ " + w))
		b.WriteString("\n")
	}
	if res.Widened {
		b.WriteString(InfoStyle.Render("No recent articles found; the date window was widened once."))
		b.WriteString("\n")
	}

	if len(res.Reporters) == 0 {
		b.WriteString(StatusStyle.Render("No reporters found."))
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("Press 'n' for a new search | 'q' to quit"))
		return
	}

	b.WriteString(HighlightStyle.Render(fmt.Sprintf("Found %d reporters across %d articles", len(res.Reporters), len(res.Articles))))
	b.WriteString("\n\n")

	for i, r := range res.Reporters {
		line := fmt.Sprintf("%-28s %-34s %3d  score %.2f",
			Truncate(r.Author, 28), Truncate(strings.Join(r.Outlets, ", "), 34), r.ArticleCount, r.Score)
		if i == m.Cursor {
			b.WriteString(SelectedStyle.Render("▶ " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")

		if m.Expanded[i] {
			for _, a := range r.TopArticles {
				b.WriteString(InfoStyle.Render(fmt.Sprintf("      · %s (%s)", Truncate(a.Title, 60), a.PublishedAt)))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("↑/↓ select | Enter expand | 'n' new search | 'q' quit"))
}
