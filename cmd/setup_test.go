package cmd

import (
	"testing"

	"github.com/theirongolddev/debtclock/internal/cli"
	"github.com/theirongolddev/debtclock/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupValidators(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(string) error
		in      string
		wantErr bool
	}{
		{"date ok", validateDate, "2017-08-01", false},
		{"date padded", validateDate, " 2017-08-01 ", false},
		{"date bad", validateDate, "01.08.2017", true},
		{"rate ok", validatePositive, "270", false},
		{"rate decimal", validatePositive, "270.50", false},
		{"rate zero", validatePositive, "0", true},
		{"rate text", validatePositive, "lots", true},
		{"rate infinite", validatePositive, "inf", true},
		{"rate signed infinite", validatePositive, "+Inf", true},
		{"rate nan", validatePositive, "NaN", true},
		{"semesters ok", validateSemesters, "6", false},
		{"semesters negative", validateSemesters, "-1", true},
		{"semesters fraction", validateSemesters, "6.5", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplySetup(t *testing.T) {
	cfg := config.DefaultConfig()
	err := applySetup(&cfg, setupValues{
		startDate: "2019-10-01",
		rate:      " 310.5",
		semesters: "8",
		refreshMs: 100,
		theme:     "tokyo-night",
	})
	require.NoError(t, err)

	assert.Equal(t, "2019-10-01", cfg.Counter.StartDate)
	assert.InDelta(t, 310.5, cfg.Counter.MonthlyRate, 1e-9)
	assert.Equal(t, 8, cfg.Counter.PlannedSemesters)
	assert.Equal(t, 100, cfg.Display.RefreshMs)
	assert.Equal(t, "tokyo-night", cfg.Appearance.Theme)
	assert.NoError(t, cfg.Validate())
}

func TestApplySetupRejectsBadRate(t *testing.T) {
	cfg := config.DefaultConfig()
	err := applySetup(&cfg, setupValues{rate: "x", semesters: "6"})
	assert.Error(t, err)
	assert.InDelta(t, 270, cfg.Counter.MonthlyRate, 1e-9)
}

func TestWriteReportUnknownFormat(t *testing.T) {
	cfg := config.DefaultConfig()
	params, err := cfg.Params()
	require.NoError(t, err)
	opts, err := cfg.ReportOptions()
	require.NoError(t, err)

	r := cli.BuildReport(params.Start.AddDate(1, 0, 0), params, opts)
	err = writeReport(r, "xml")
	assert.ErrorContains(t, err, "unknown output format")
}
