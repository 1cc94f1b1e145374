// Package tui provides the interactive Bubble Tea dashboard for debtclock.
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/theirongolddev/debtclock/internal/accrual"
	"github.com/theirongolddev/debtclock/internal/cli"
	"github.com/theirongolddev/debtclock/internal/model"
	"github.com/theirongolddev/debtclock/internal/tui/components"
	"github.com/theirongolddev/debtclock/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"
)

// Options configures the dashboard.
type Options struct {
	Params  model.Params
	Report  cli.ReportOptions
	Refresh time.Duration
	Clock   func() time.Time // defaults to time.Now
	Log     log.FieldLogger  // defaults to a discarding logger
}

// App is the root Bubble Tea model. It owns the refresh loop and the pair
// of formatted values used for change detection.
type App struct {
	params  model.Params
	report  cli.ReportOptions
	refresh time.Duration
	clock   func() time.Time
	log     log.FieldLogger

	// Current render state. previous is always the value shown immediately
	// before current.
	snapshot model.Snapshot
	current  cli.FormattedNumber
	previous cli.FormattedNumber
	changes  cli.ChangeSet
	ticks    int64

	// Loop state. Only a tickMsg carrying gen re-arms the timer, so at most
	// one live tick exists at a time.
	gen      int
	paused   bool
	quitting bool

	// UI state
	width    int
	height   int
	showHelp bool
	keys     keyMap
}

const (
	minTerminalWidth = 60
	compactWidth     = 90
	maxContentWidth  = 110
	minContentHeight = 5
)

type keyMap struct {
	Pause key.Binding
	Theme key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Pause: key.NewBinding(key.WithKeys("p", " "), key.WithHelp("p / space", "Pause / resume counter")),
		Theme: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "Next color theme")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "Toggle help")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "Quit")),
	}
}

// NewApp creates the dashboard model and computes the first frame. The
// previous value starts at zero, so the first frame flags every non-zero
// digit as changed.
func NewApp(opts Options) App {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := opts.Log
	if logger == nil {
		l := log.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	a := App{
		params:  opts.Params,
		report:  opts.Report,
		refresh: opts.Refresh,
		clock:   clock,
		log:     logger,
		current: cli.FormatAmount(0),
		keys:    defaultKeyMap(),
	}
	if a.refresh <= 0 {
		a.refresh = model.DefaultRefresh
	}
	a.refresh = model.ClampRefresh(a.refresh)
	a.advance()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	a.log.WithFields(log.Fields{
		"start":   a.params.Start.Format("2006-01-02"),
		"rate":    a.params.MonthlyRate,
		"refresh": a.refresh.String(),
	}).Info("counter started")
	return tickCmd(a.gen, a.refresh)
}

// advance shifts the displayed value into previous and recomputes.
func (a *App) advance() {
	a.previous = a.current
	a.snapshot = accrual.Compute(a.clock(), a.params)
	a.current = cli.FormatAmount(a.snapshot.Total)
	a.changes = cli.DiffDigits(a.previous, a.current)
	a.ticks++
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a.quit()

		case a.showHelp:
			// Any other key closes help.
			a.showHelp = false
			return a, nil

		case key.Matches(msg, a.keys.Help):
			a.showHelp = true
			return a, nil

		case key.Matches(msg, a.keys.Theme):
			theme.Active = theme.Next(theme.Active.Name)
			a.log.WithField("theme", theme.Active.Name).Debug("theme changed")
			return a, nil

		case key.Matches(msg, a.keys.Pause):
			return a.togglePause()
		}
		return a, nil

	case tickMsg:
		if msg.gen != a.gen || a.paused || a.quitting {
			// Stale tick from before a pause; let it die.
			return a, nil
		}
		a.advance()
		return a, tickCmd(a.gen, a.refresh)
	}

	return a, nil
}

func (a App) togglePause() (tea.Model, tea.Cmd) {
	a.gen++
	a.paused = !a.paused
	a.log.WithFields(log.Fields{
		"paused": a.paused,
		"ticks":  a.ticks,
	}).Debug("refresh loop toggled")

	if a.paused {
		return a, nil
	}
	a.advance()
	return a, tickCmd(a.gen, a.refresh)
}

func (a App) quit() (tea.Model, tea.Cmd) {
	a.quitting = true
	a.gen++
	a.log.WithFields(log.Fields{
		"ticks": a.ticks,
		"total": a.snapshot.Total,
	}).Info("counter stopped")
	return a, tea.Quit
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.quitting || a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  debtclock needs at least %d columns.\n\n  %s\n",
		a.width,
		minTerminalWidth,
		cli.FormatMoney(a.snapshot.Total, a.report.Currency, a.report.Separators),
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range []key.Binding{a.keys.Pause, a.keys.Theme, a.keys.Help, a.keys.Quit} {
		h := bind.Help()
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", h.Key)),
			descStyle.Render(h.Desc))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Theme: %s · refresh every %s", t.Name, a.refresh)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	statusRight := fmt.Sprintf("every %s · %s frames", a.refresh, cli.FormatNumber(a.ticks, ","))
	statusBar := components.RenderStatusBar(w, statusRight, a.paused)

	contentH := h - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	content := a.renderCounter(cw)
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) renderCounter(cw int) string {
	t := theme.Active
	r := a.report
	s := a.snapshot

	center := func(str string) string {
		return lipgloss.PlaceHorizontal(cw, lipgloss.Center, str,
			lipgloss.WithWhitespaceBackground(t.Background))
	}
	on := func(st lipgloss.Style) lipgloss.Style { return st.Background(t.Background) }

	titleStyle := on(lipgloss.NewStyle().Foreground(t.Accent).Bold(true))
	subtitleStyle := on(lipgloss.NewStyle().Foreground(t.TextMuted))
	dimStyle := on(lipgloss.NewStyle().Foreground(t.TextDim))
	burdenStyle := on(lipgloss.NewStyle().Foreground(t.Accent).Bold(true))

	var b strings.Builder

	// Header
	b.WriteString("\n")
	b.WriteString(center(titleStyle.Render(r.Title)))
	b.WriteString("\n")
	if r.Subtitle != "" {
		b.WriteString(center(subtitleStyle.Render(r.Subtitle)))
		b.WriteString("\n")
	}
	b.WriteString(center(dimStyle.Render("Draining money since: " + cli.FormatSince(a.params.Start))))
	b.WriteString("\n\n")

	// Counter
	row := components.DigitRow(a.current, a.changes, r.Separators, r.Currency)
	if lipgloss.Width(row) > cw {
		row = components.DigitRowPlain(a.current, a.changes, r.Separators, r.Currency)
	}
	b.WriteString(center(row))
	b.WriteString("\n\n")

	barW := cw / 2
	if barW < 36 {
		barW = 36
	}
	b.WriteString(center(components.CentProgressBar(
		accrual.CentProgress(s),
		cli.FormatCountdown(accrual.UntilNextCent(s)),
		barW,
	)))
	b.WriteString("\n\n")

	// Stat cards
	statCards := cli.StatCards(s, r.PlannedSemesters)
	stats := make([]components.Stat, len(statCards))
	for i, st := range statCards {
		stats[i] = components.Stat{Icon: "clock", Label: st.Label, Value: st.Value}
	}
	if a.isCompactLayout() {
		for _, st := range stats {
			b.WriteString(components.StatCard(st.Icon, st.Label, st.Value, cw))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(components.StatCardRow(stats, cw))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Alternative spending
	alts := r.Equivalences.Evaluate(s.Total)
	if len(alts) > 0 {
		b.WriteString(center(titleStyle.Render("Instead, this could have bought:")))
		b.WriteString("\n")
		halves := components.LayoutRow(cw, 2)
		for i := 0; i < len(alts); i += 2 {
			cards := []string{components.EquivalenceCard(alts[i].Icon, alts[i].Text(), alts[i].Label, halves[0])}
			if i+1 < len(alts) {
				cards = append(cards, components.EquivalenceCard(alts[i+1].Icon, alts[i+1].Text(), alts[i+1].Label, halves[1]))
			}
			b.WriteString(components.CardRow(cards))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Footer
	b.WriteString(center(burdenStyle.Render("Monthly Burden: " + cli.FormatMoney(a.params.MonthlyRate, r.Currency, r.Separators))))
	b.WriteString("\n")
	b.WriteString(center(dimStyle.Render(fmt.Sprintf("That's %s%s every second",
		cli.FormatRate(s.PerSecond, r.Separators), r.Currency))))

	return b.String()
}

// ─── Helpers ────────────────────────────────────────────────────

type tickMsg struct {
	gen int
}

func tickCmd(gen int, every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
