// Package components provides reusable TUI widgets for the debtclock dashboard.
package components

import (
	"strings"

	"github.com/theirongolddev/debtclock/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// StatCard renders an icon, a muted label and a bold value.
// outerWidth is the total rendered width including border.
func StatCard(icon, label, value string, outerWidth int) string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		BorderBackground(t.Background).
		Background(t.Surface).
		Width(innerWidth(outerWidth)).
		Padding(0, 1)

	iconStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	content := iconStyle.Render(Icon(icon)) + spaceStyle.Render(" ") + labelStyle.Render(label) + "\n" +
		spaceStyle.Render("   ") + valueStyle.Render(value)

	return cardStyle.Render(content)
}

// Stat is one entry of a StatCardRow.
type Stat struct {
	Icon, Label, Value string
}

// StatCardRow renders stat cards side by side; card widths sum to totalWidth.
func StatCardRow(stats []Stat, totalWidth int) string {
	if len(stats) == 0 {
		return ""
	}

	widths := LayoutRow(totalWidth, len(stats))

	rendered := make([]string, len(stats))
	for i, s := range stats {
		rendered[i] = StatCard(s.Icon, s.Label, s.Value, widths[i])
	}

	return CardRow(rendered)
}

// EquivalenceCard renders a single "≈ N item" line in a bordered card.
func EquivalenceCard(icon, count, item string, outerWidth int) string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		BorderBackground(t.Background).
		Background(t.Surface).
		Width(innerWidth(outerWidth)).
		Padding(0, 1)

	iconStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	countStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	return cardStyle.Render(
		iconStyle.Render(Icon(icon)) + textStyle.Render(" ≈ ") + countStyle.Render(count) + textStyle.Render(" "+item),
	)
}

// ContentCard renders a bordered content card with an optional title.
// outerWidth controls the total rendered width including border.
func ContentCard(title, body string, outerWidth int) string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		BorderBackground(t.Background).
		Background(t.Surface).
		Width(innerWidth(outerWidth)).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	content := ""
	if title != "" {
		content = titleStyle.Render(title) + "\n"
	}
	content += body

	return cardStyle.Render(content)
}

// CardRow joins pre-rendered card strings horizontally. Shorter cards are
// padded with the theme background so the row stays a clean rectangle.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}

	maxH := 0
	for _, c := range cards {
		if h := lipgloss.Height(c); h > maxH {
			maxH = h
		}
	}

	fill := lipgloss.NewStyle().Background(theme.Active.Background)
	padded := make([]string, len(cards))
	for i, c := range cards {
		padded[i] = c
		missing := maxH - lipgloss.Height(c)
		if missing <= 0 {
			continue
		}
		blank := fill.Width(lipgloss.Width(c)).Render("")
		padded[i] = c + strings.Repeat("\n"+blank, missing)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, padded...)
}

func innerWidth(outerWidth int) int {
	w := outerWidth - 2 // subtract border
	if w < 10 {
		w = 10
	}
	return w
}
