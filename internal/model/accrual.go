// Package model defines the value types shared by the accrual engine and the dashboard.
package model

import (
	"errors"
	"math"
	"time"
)

var (
	// ErrMissingStart is returned when Params has no start instant.
	ErrMissingStart = errors.New("start date is required")
	// ErrInvalidRate is returned when the monthly rate is not positive.
	ErrInvalidRate = errors.New("monthly rate must be a positive finite number")
)

// Params fixes the accrual: a start instant and a monthly rate.
type Params struct {
	Start       time.Time
	MonthlyRate float64
}

// Validate reports whether p can drive an accrual.
func (p Params) Validate() error {
	if p.Start.IsZero() {
		return ErrMissingStart
	}
	if !(p.MonthlyRate > 0) || math.IsInf(p.MonthlyRate, 1) {
		return ErrInvalidRate
	}
	return nil
}

// Snapshot is the accrual state at one instant.
type Snapshot struct {
	At    time.Time `json:"at" yaml:"at"`
	Total float64   `json:"total" yaml:"total"`

	// Coarse calendar-month difference, not adjusted for day-of-month.
	Months    int     `json:"months" yaml:"months"`
	Days      int     `json:"days" yaml:"days"`
	Semesters float64 `json:"semesters" yaml:"semesters"`

	FractionalMonths float64 `json:"fractional_months" yaml:"fractional_months"`
	PeriodDays       int     `json:"period_days" yaml:"period_days"`
	PerSecond        float64 `json:"per_second" yaml:"per_second"`
}

// Overage returns semesters beyond the planned count. Negative while on schedule.
func (s Snapshot) Overage(planned int) float64 {
	return s.Semesters - float64(planned)
}
