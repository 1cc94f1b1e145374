package cli

import (
	"fmt"

	"github.com/theirongolddev/debtclock/internal/model"
)

// Stat is a labelled value shown on a stat card.
type Stat struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// StatCards derives the three study statistics from a snapshot.
func StatCards(s model.Snapshot, plannedSemesters int) []Stat {
	return []Stat{
		{
			Label: "Time as Student",
			Value: fmt.Sprintf("%d months (%s days)", s.Months, FormatNumber(int64(s.Days), ",")),
		},
		{
			Label: "Semesters Passed",
			Value: fmt.Sprintf("%.1f of %d planned", s.Semesters, plannedSemesters),
		},
		{
			Label: "Study Duration Exceeded By",
			Value: fmt.Sprintf("%.1f semesters", s.Overage(plannedSemesters)),
		},
	}
}
