package cmd

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/debtclock/internal/config"
	"github.com/theirongolddev/debtclock/internal/tui/theme"

	"github.com/charmbracelet/huh"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// setupValues holds the form fields before they are folded into a Config.
type setupValues struct {
	startDate string
	rate      string
	semesters string
	refreshMs int
	theme     string
}

func runSetup(_ *cobra.Command, _ []string) error {
	closeLog, err := setupLogging(false)
	if err != nil {
		return err
	}
	defer closeLog()

	// Existing config or defaults
	cfg, err := loadConfig()
	if err != nil {
		log.WithError(err).Warn("existing config unusable, starting from defaults")
		cfg = config.DefaultConfig()
	}

	vals := setupValues{
		startDate: cfg.Counter.StartDate,
		rate:      strconv.FormatFloat(cfg.Counter.MonthlyRate, 'f', -1, 64),
		semesters: strconv.Itoa(cfg.Counter.PlannedSemesters),
		refreshMs: cfg.Display.RefreshMs,
		theme:     cfg.Appearance.Theme,
	}

	if err := newSetupForm(&vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup aborted, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	if err := applySetup(&cfg, vals); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	path := flagConfig
	if path == "" {
		path = config.Path()
	}
	if err := config.SaveTo(path, cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", path)
	fmt.Println("  Run `debtclock setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

func newSetupForm(vals *setupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to debtclock").
				Description("A few settings for the counter. Press Enter to keep a value."),
			huh.NewInput().
				Title("Start date").
				Description("When the money started draining (YYYY-MM-DD)").
				Value(&vals.startDate).
				Validate(validateDate),
			huh.NewInput().
				Title("Monthly rate").
				Description("Cost accrued per calendar month").
				Value(&vals.rate).
				Validate(validatePositive),
			huh.NewInput().
				Title("Planned semesters").
				Value(&vals.semesters).
				Validate(validateSemesters),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Refresh interval").
				Options(
					huh.NewOption("10 ms (smoothest)", 10),
					huh.NewOption("50 ms [default]", 50),
					huh.NewOption("100 ms (lightest)", 100),
				).
				Value(&vals.refreshMs),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.theme),
		),
	).WithTheme(huh.ThemeCharm())
}

func applySetup(cfg *config.Config, vals setupValues) error {
	rate, err := strconv.ParseFloat(strings.TrimSpace(vals.rate), 64)
	if err != nil {
		return fmt.Errorf("monthly rate: %w", err)
	}
	semesters, err := strconv.Atoi(strings.TrimSpace(vals.semesters))
	if err != nil {
		return fmt.Errorf("planned semesters: %w", err)
	}

	cfg.Counter.StartDate = strings.TrimSpace(vals.startDate)
	cfg.Counter.MonthlyRate = rate
	cfg.Counter.PlannedSemesters = semesters
	cfg.Display.RefreshMs = vals.refreshMs
	cfg.Appearance.Theme = vals.theme
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse(config.DateLayout, strings.TrimSpace(s)); err != nil {
		return errors.New("expected YYYY-MM-DD")
	}
	return nil
}

func validatePositive(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !(v > 0) || math.IsInf(v, 1) {
		return errors.New("must be a number greater than zero")
	}
	return nil
}

func validateSemesters(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return errors.New("must be a whole number greater than zero")
	}
	return nil
}
