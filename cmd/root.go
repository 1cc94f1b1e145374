// Package cmd implements the debtclock CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/debtclock/internal/config"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagTheme   string
	flagLogFile string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "debtclock",
	Short: "A live counter of what an unfinished degree has cost so far",
	Long: "debtclock renders a continuously growing cost counter: a fixed monthly\n" +
		"rate accrued since a fixed start date, with digit-flip tiles, study\n" +
		"statistics and what the money could have bought instead.",
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Config file (default "+config.Path()+")")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme (flexoki-dark, catppuccin-mocha, tokyo-night, terminal)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")
}

// loadConfig is the shared config path used by all commands: .env, then the
// TOML file, then flag overrides. The result is validated.
func loadConfig() (config.Config, error) {
	if err := config.LoadEnv(); err != nil {
		log.WithError(err).Warn("ignoring .env")
	}

	path := flagConfig
	if path == "" {
		path = config.Path()
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		return cfg, err
	}
	if flagTheme != "" {
		cfg.Appearance.Theme = flagTheme
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	log.WithFields(log.Fields{
		"path":  path,
		"start": cfg.Counter.StartDate,
		"rate":  cfg.Counter.MonthlyRate,
		"theme": cfg.Appearance.Theme,
	}).Debug("config loaded")
	return cfg, nil
}

// setupLogging points logrus at --log-file, or at stderr for plain commands.
// The TUI owns the terminal, so without a log file its logs are discarded.
// The returned func closes the log file.
func setupLogging(interactive bool) (func(), error) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.WarnLevel)
	if flagVerbose {
		log.SetLevel(log.DebugLevel)
	}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // user-chosen log path
		if err != nil {
			return func() {}, fmt.Errorf("opening log file: %w", err)
		}
		log.SetOutput(f)
		if !flagVerbose {
			log.SetLevel(log.InfoLevel)
		}
		return func() { _ = f.Close() }, nil
	case interactive:
		log.SetOutput(io.Discard)
	default:
		log.SetOutput(os.Stderr)
	}
	return func() {}, nil
}
