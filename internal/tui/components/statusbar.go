package components

import (
	"github.com/theirongolddev/debtclock/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. right is typically the
// refresh cadence or a paused marker.
func RenderStatusBar(width int, right string, paused bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " [p]ause  [t]heme  [?]help  [q]uit"
	if paused {
		right = lipgloss.NewStyle().
			Foreground(t.Orange).
			Background(t.Surface).
			Bold(true).
			Render("PAUSED") + lipgloss.NewStyle().Background(t.Surface).Render(" ")
	} else if right != "" {
		right += " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	spaces := lipgloss.NewStyle().Background(t.Surface).Width(padding).Render("")
	return style.Render(left + spaces + right)
}
