package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/debtclock/internal/cli"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	flagOutput string
	flagAt     string
)

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the counter once and exit",
	RunE:  runNow,
}

func init() {
	nowCmd.Flags().StringVarP(&flagOutput, "output", "o", "text", "Output format: text, json or yaml")
	nowCmd.Flags().StringVar(&flagAt, "at", "", "Evaluate at this RFC 3339 instant instead of now")
	rootCmd.AddCommand(nowCmd)
}

func runNow(_ *cobra.Command, _ []string) error {
	closeLog, err := setupLogging(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}
	opts, err := cfg.ReportOptions()
	if err != nil {
		return err
	}

	at := time.Now()
	if flagAt != "" {
		at, err = time.Parse(time.RFC3339, flagAt)
		if err != nil {
			return fmt.Errorf("--at: %w", err)
		}
	}
	if at.Before(params.Start) {
		fmt.Fprintf(os.Stderr, "  %s is before the start date; nothing has accrued yet\n", at.Format(time.RFC3339))
	}

	return writeReport(cli.BuildReport(at, params, opts), flagOutput)
}

func writeReport(r cli.Report, format string) error {
	switch format {
	case "text", "":
		fmt.Print(cli.RenderReport(r))
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}
