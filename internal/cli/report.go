package cli

import (
	"time"

	"github.com/theirongolddev/debtclock/internal/accrual"
	"github.com/theirongolddev/debtclock/internal/model"
)

// ReportOptions carries the labels and formatting the report needs besides
// the accrual itself.
type ReportOptions struct {
	Title            string
	Subtitle         string
	Currency         string
	Separators       Separators
	PlannedSemesters int
	Equivalences     accrual.Equivalences
}

// Report is the complete dashboard content for one instant, shared by the
// plain-text, JSON and YAML renderers.
type Report struct {
	Title         string                   `json:"title" yaml:"title"`
	Subtitle      string                   `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Since         string                   `json:"since" yaml:"since"`
	Amount        string                   `json:"amount" yaml:"amount"`
	Snapshot      model.Snapshot           `json:"snapshot" yaml:"snapshot"`
	Stats         []Stat                   `json:"stats" yaml:"stats"`
	Alternatives  []model.EquivalenceValue `json:"alternatives" yaml:"alternatives"`
	MonthlyBurden string                   `json:"monthly_burden" yaml:"monthly_burden"`
	PerSecond     string                   `json:"per_second" yaml:"per_second"`
	NextCentIn    time.Duration            `json:"next_cent_in_ns" yaml:"next_cent_in"`
}

// BuildReport computes the accrual at now and assembles every display value.
func BuildReport(now time.Time, p model.Params, opts ReportOptions) Report {
	s := accrual.Compute(now, p)
	return Report{
		Title:         opts.Title,
		Subtitle:      opts.Subtitle,
		Since:         FormatSince(p.Start),
		Amount:        FormatMoney(s.Total, opts.Currency, opts.Separators),
		Snapshot:      s,
		Stats:         StatCards(s, opts.PlannedSemesters),
		Alternatives:  opts.Equivalences.Evaluate(s.Total),
		MonthlyBurden: FormatMoney(p.MonthlyRate, opts.Currency, opts.Separators),
		PerSecond:     FormatRate(s.PerSecond, opts.Separators) + opts.Currency,
		NextCentIn:    accrual.UntilNextCent(s),
	}
}
