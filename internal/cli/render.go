package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorOrange    = lipgloss.Color("#DA702C")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorRed).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorRed)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	amountStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderPairs renders a titled, aligned two-column list.
func RenderPairs(title string, pairs [][2]string) string {
	labelW := 0
	for _, p := range pairs {
		if n := utf8.RuneCountInString(p[0]); n > labelW {
			labelW = n
		}
	}

	var b strings.Builder
	if title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(title))
		b.WriteString("\n")
	}
	for _, p := range pairs {
		b.WriteString("    ")
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%-*s", labelW, p[0])))
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(p[1]))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderReport renders a report as static terminal text.
func RenderReport(r Report) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(RenderTitle(r.Title))
	b.WriteString("\n")
	if r.Subtitle != "" {
		b.WriteString("  " + mutedStyle.Render(r.Subtitle) + "\n")
	}
	b.WriteString("  " + dimStyle.Render("Draining money since: "+r.Since) + "\n\n")

	b.WriteString("  " + amountStyle.Render(r.Amount) + "\n\n")

	stats := make([][2]string, len(r.Stats))
	for i, s := range r.Stats {
		stats[i] = [2]string{s.Label, s.Value}
	}
	b.WriteString(RenderPairs("Statistics", stats))
	b.WriteString("\n")

	alts := make([][2]string, len(r.Alternatives))
	for i, a := range r.Alternatives {
		alts[i] = [2]string{"≈ " + a.Text(), a.Label}
	}
	b.WriteString(RenderPairs("Instead, this could have bought", alts))
	b.WriteString("\n")

	b.WriteString("  " + headerStyle.Render("Monthly burden: "+r.MonthlyBurden) + "\n")
	b.WriteString("  " + dimStyle.Render(fmt.Sprintf("That's %s every second", r.PerSecond)) + "\n")

	return b.String()
}
