package components

import (
	"fmt"

	"github.com/theirongolddev/debtclock/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// CentProgressBar renders progress toward the next cent with a percentage
// and a countdown, e.g. "next cent ████░░░░  42%  in 1.3s".
func CentProgressBar(pct float64, countdown string, width int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	const label = "next cent"
	barW := width - lipgloss.Width(label) - lipgloss.Width(countdown) - 10
	if barW < 4 {
		barW = 4
	}

	bar := progress.New(
		progress.WithSolidFill(string(t.Accent)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Background)
	pctStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Background).Bold(true)
	countdownStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Background)
	spaceStyle := lipgloss.NewStyle().Background(t.Background)

	return labelStyle.Render(label) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100)) +
		spaceStyle.Render("  ") +
		countdownStyle.Render("in "+countdown)
}
