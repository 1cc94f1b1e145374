package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/theirongolddev/debtclock/internal/accrual"
	"github.com/theirongolddev/debtclock/internal/model"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in, ","), "FormatNumber(%d)", tt.in)
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "9.720,00 €", FormatMoney(9720, "€", European))
	assert.Equal(t, "270,00 €", FormatMoney(270, "€", European))
	assert.Equal(t, "1,234.50", FormatMoney(1234.5, "", Separators{Thousands: ",", Decimal: "."}))
}

func TestFormatRate(t *testing.T) {
	// The classic 270 per 30-day month.
	assert.Equal(t, "0,000104", FormatRate(270.0/30/24/60/60, European))
}

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, "now", FormatCountdown(0))
	assert.Equal(t, "80ms", FormatCountdown(80*time.Millisecond))
	assert.Equal(t, "2.5s", FormatCountdown(2500*time.Millisecond))
	assert.Equal(t, "1m 15s", FormatCountdown(75*time.Second))
}

func TestStatCards(t *testing.T) {
	s := model.Snapshot{Months: 36, Days: 1096, Semesters: 6}
	stats := StatCards(s, 6)

	assert.Equal(t, []Stat{
		{Label: "Time as Student", Value: "36 months (1,096 days)"},
		{Label: "Semesters Passed", Value: "6.0 of 6 planned"},
		{Label: "Study Duration Exceeded By", Value: "0.0 semesters"},
	}, stats)
}

func TestBuildReport(t *testing.T) {
	p := model.Params{
		Start:       time.Date(2017, time.August, 1, 0, 0, 0, 0, time.UTC),
		MonthlyRate: 270,
	}
	r := BuildReport(time.Date(2020, time.August, 1, 0, 0, 0, 0, time.UTC), p, ReportOptions{
		Title:            "ETERNAL STUDENT DEBT",
		Currency:         "€",
		Separators:       European,
		PlannedSemesters: 6,
		Equivalences: accrual.MustEquivalences([]model.Equivalence{
			{Label: "months of rent", UnitCost: 600, Rule: model.RuleOneDecimal},
		}),
	})

	assert.Equal(t, "9.720,00 €", r.Amount)
	assert.Equal(t, "August 2017", r.Since)
	assert.Equal(t, "270,00 €", r.MonthlyBurden)
	assert.Len(t, r.Stats, 3)
	if assert.Len(t, r.Alternatives, 1) {
		assert.Equal(t, "16.2", r.Alternatives[0].Text())
	}

	out := RenderReport(r)
	assert.Contains(t, out, "ETERNAL STUDENT DEBT")
	assert.Contains(t, out, "16.2")
	assert.Contains(t, out, "months of rent")
}
