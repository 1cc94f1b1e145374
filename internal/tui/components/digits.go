package components

import (
	"strings"

	"github.com/theirongolddev/debtclock/internal/cli"
	"github.com/theirongolddev/debtclock/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// DigitTile renders one digit as a bordered tile. A changed digit is drawn
// on the flash face so the flip is visible for one refresh.
func DigitTile(digit byte, changed bool) string {
	t := theme.Active

	face := t.SurfaceBright
	fg := t.TextPrimary
	if changed {
		face = t.Flash
		fg = t.Accent
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		BorderBackground(t.Background).
		Background(face).
		Foreground(fg).
		Bold(true).
		Padding(0, 1).
		Render(string(digit))
}

// separator renders a glyph on the middle line of a tile-high column.
func separator(glyph string, color lipgloss.Color) string {
	t := theme.Active
	blank := lipgloss.NewStyle().Background(t.Background).Render(" ")
	mid := lipgloss.NewStyle().Foreground(color).Background(t.Background).Bold(true).Render(glyph)
	return blank + "\n" + mid + "\n" + blank
}

func tileGroup(digits string, changed []bool) []string {
	tiles := make([]string, len(digits))
	for i := 0; i < len(digits); i++ {
		tiles[i] = DigitTile(digits[i], i < len(changed) && changed[i])
	}
	return tiles
}

// DigitRow lays out a formatted amount as tiles: integer groups split by
// the thousands separator, the decimal separator, the two decimals and the
// currency symbol.
func DigitRow(fn cli.FormattedNumber, cs cli.ChangeSet, seps cli.Separators, currency string) string {
	t := theme.Active

	var parts []string
	if fn.Negative {
		parts = append(parts, separator("-", t.TextPrimary))
	}
	for gi, g := range fn.Groups {
		if gi > 0 {
			parts = append(parts, separator(seps.Thousands, t.TextDim))
		}
		var changed []bool
		if gi < len(cs.Groups) {
			changed = cs.Groups[gi]
		}
		parts = append(parts, tileGroup(g, changed)...)
	}
	parts = append(parts, separator(seps.Decimal, t.Accent))
	parts = append(parts, tileGroup(fn.Decimal, cs.Decimal)...)
	if currency != "" {
		parts = append(parts, separator(" "+currency, t.Accent))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// DigitRowPlain is the one-line fallback for terminals too narrow for tiles.
func DigitRowPlain(fn cli.FormattedNumber, cs cli.ChangeSet, seps cli.Separators, currency string) string {
	t := theme.Active
	normal := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Background).Bold(true)
	flash := normal.Foreground(t.Accent)
	sep := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Background)

	var b strings.Builder
	if fn.Negative {
		b.WriteString(normal.Render("-"))
	}
	writeGroup := func(digits string, changed []bool) {
		for i := 0; i < len(digits); i++ {
			st := normal
			if i < len(changed) && changed[i] {
				st = flash
			}
			b.WriteString(st.Render(string(digits[i])))
		}
	}
	for gi, g := range fn.Groups {
		if gi > 0 {
			b.WriteString(sep.Render(seps.Thousands))
		}
		var changed []bool
		if gi < len(cs.Groups) {
			changed = cs.Groups[gi]
		}
		writeGroup(g, changed)
	}
	b.WriteString(sep.Render(seps.Decimal))
	writeGroup(fn.Decimal, cs.Decimal)
	if currency != "" {
		b.WriteString(sep.Render(" " + currency))
	}
	return b.String()
}
