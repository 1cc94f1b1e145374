package cmd

import (
	"fmt"

	"github.com/theirongolddev/debtclock/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	closeLog, err := setupLogging(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := flagConfig
	if path == "" {
		path = config.Path()
	}
	fmt.Printf("  Config file: %s\n", path)
	if config.Exists() || flagConfig != "" {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Counter]")
	fmt.Printf("    Title:             %s\n", cfg.Counter.Title)
	fmt.Printf("    Start date:        %s\n", cfg.Counter.StartDate)
	fmt.Printf("    Monthly rate:      %.2f %s\n", cfg.Counter.MonthlyRate, cfg.Display.Currency)
	fmt.Printf("    Planned semesters: %d\n", cfg.Counter.PlannedSemesters)
	fmt.Println()

	fmt.Println("  [Display]")
	fmt.Printf("    Format:  1%s234%s56 %s\n", cfg.Display.ThousandsSep, cfg.Display.DecimalSep, cfg.Display.Currency)
	fmt.Printf("    Refresh: %s\n", cfg.RefreshInterval())
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Equivalences]")
	for _, e := range cfg.Equivalences {
		fmt.Printf("    %-40s %10.2f  (%s)\n", e.Label, e.UnitCost, e.Rule)
	}
	fmt.Println()

	fmt.Println("  Run `debtclock setup` to reconfigure.")
	return nil
}
