// Package config loads debtclock settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/theirongolddev/debtclock/internal/accrual"
	"github.com/theirongolddev/debtclock/internal/cli"
	"github.com/theirongolddev/debtclock/internal/model"
)

// DateLayout is the format of CounterConfig.StartDate.
const DateLayout = "2006-01-02"

// Refresh interval bounds, in the unit of DisplayConfig.RefreshMs.
const (
	MinRefreshMs = int(model.MinRefresh / time.Millisecond)
	MaxRefreshMs = int(model.MaxRefresh / time.Millisecond)
)

// Config holds all debtclock configuration.
type Config struct {
	Counter      CounterConfig       `toml:"counter"`
	Display      DisplayConfig       `toml:"display"`
	Appearance   AppearanceConfig    `toml:"appearance"`
	Equivalences []model.Equivalence `toml:"equivalences"`
}

// CounterConfig holds what is being accrued and how it is labelled.
type CounterConfig struct {
	Title            string  `toml:"title"`
	Subtitle         string  `toml:"subtitle"`
	StartDate        string  `toml:"start_date"`
	MonthlyRate      float64 `toml:"monthly_rate"`
	PlannedSemesters int     `toml:"planned_semesters"`
}

// DisplayConfig holds number formatting and refresh cadence.
type DisplayConfig struct {
	Currency     string `toml:"currency"`
	ThousandsSep string `toml:"thousands_sep"`
	DecimalSep   string `toml:"decimal_sep"`
	RefreshMs    int    `toml:"refresh_ms"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the compiled-in configuration.
func DefaultConfig() Config {
	return Config{
		Counter: CounterConfig{
			Title:            "THE ETERNAL STUDENT DEBT",
			Subtitle:         "The Bachelor Degree That Never Ends",
			StartDate:        "2017-08-01",
			MonthlyRate:      270,
			PlannedSemesters: 6,
		},
		Display: DisplayConfig{
			Currency:     "€",
			ThousandsSep: ".",
			DecimalSep:   ",",
			RefreshMs:    50,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Equivalences: DefaultEquivalences(),
	}
}

// DefaultEquivalences is the compiled-in "could have bought instead" table.
func DefaultEquivalences() []model.Equivalence {
	return []model.Equivalence{
		{Label: "months of rent in a luxury apartment", Icon: "home", UnitCost: 600, Rule: model.RuleOneDecimal},
		{Label: "cappuccinos", Icon: "coffee", UnitCost: 2.5, Rule: model.RuleWhole},
		{Label: "round-trip flights to Bali", Icon: "plane", UnitCost: 1000, Rule: model.RuleOneDecimal},
		{Label: "used cars", Icon: "car", UnitCost: 10000, Rule: model.RuleOneDecimal},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "debtclock")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "debtclock")
}

// Path returns the full path to the config file. DEBTCLOCK_CONFIG overrides it.
func Path() string {
	if p := os.Getenv("DEBTCLOCK_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(Dir(), "config.toml")
}

// LoadEnv reads a .env file from the working directory if one exists.
func LoadEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// Load reads the config file at Path, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config file at path, returning defaults if it doesn't
// exist. Environment overrides are applied last.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // user-chosen config path
	switch {
	case err == nil:
		// A file that lists equivalences replaces the default table.
		cfg.Equivalences = nil
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
		}
		if len(cfg.Equivalences) == 0 {
			cfg.Equivalences = DefaultEquivalences()
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if th := os.Getenv("DEBTCLOCK_THEME"); th != "" {
		cfg.Appearance.Theme = th
	}
	return cfg, nil
}

// Save writes the config to Path.
func Save(cfg Config) error {
	return SaveTo(Path(), cfg)
}

// SaveTo writes the config to path, creating its directory.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // user-chosen config path
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing config: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing config file: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Validate checks every value that the counter depends on.
func (c Config) Validate() error {
	if _, err := c.Params(); err != nil {
		return err
	}
	if _, err := c.EquivalenceTable(); err != nil {
		return err
	}
	if c.Counter.PlannedSemesters < 0 {
		return fmt.Errorf("planned_semesters must not be negative, got %d", c.Counter.PlannedSemesters)
	}
	if ms := c.Display.RefreshMs; ms < MinRefreshMs || ms > MaxRefreshMs {
		return fmt.Errorf("refresh_ms must be between %d and %d, got %d", MinRefreshMs, MaxRefreshMs, ms)
	}
	return nil
}

// Params builds the accrual parameters. The start date is local midnight.
func (c Config) Params() (model.Params, error) {
	start, err := time.ParseInLocation(DateLayout, c.Counter.StartDate, time.Local)
	if err != nil {
		return model.Params{}, fmt.Errorf("start_date %q: %w", c.Counter.StartDate, err)
	}
	p := model.Params{Start: start, MonthlyRate: c.Counter.MonthlyRate}
	if err := p.Validate(); err != nil {
		return model.Params{}, fmt.Errorf("counter: %w", err)
	}
	return p, nil
}

// EquivalenceTable validates and returns the equivalence table.
func (c Config) EquivalenceTable() (accrual.Equivalences, error) {
	eq, err := accrual.NewEquivalences(c.Equivalences)
	if err != nil {
		return accrual.Equivalences{}, fmt.Errorf("equivalences: %w", err)
	}
	return eq, nil
}

// Separators returns the number punctuation.
func (c Config) Separators() cli.Separators {
	return cli.Separators{Thousands: c.Display.ThousandsSep, Decimal: c.Display.DecimalSep}
}

// RefreshInterval returns the tick cadence, clamped to the allowed bounds.
func (c Config) RefreshInterval() time.Duration {
	return model.ClampRefresh(time.Duration(c.Display.RefreshMs) * time.Millisecond)
}

// ReportOptions bundles the display settings needed to build a report.
func (c Config) ReportOptions() (cli.ReportOptions, error) {
	eq, err := c.EquivalenceTable()
	if err != nil {
		return cli.ReportOptions{}, err
	}
	return cli.ReportOptions{
		Title:            c.Counter.Title,
		Subtitle:         c.Counter.Subtitle,
		Currency:         c.Display.Currency,
		Separators:       c.Separators(),
		PlannedSemesters: c.Counter.PlannedSemesters,
		Equivalences:     eq,
	}, nil
}
