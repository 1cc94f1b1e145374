// Package accrual computes the running cost of an open-ended monthly charge.
package accrual

import (
	"math"
	"time"

	"github.com/theirongolddev/debtclock/internal/model"
)

const (
	msPerDay   = 24 * 60 * 60 * 1000
	secsPerDay = 24 * 60 * 60
)

// Compute returns the accrual snapshot for p at now.
//
// Whole months come from the calendar year/month difference. The partial
// month is measured inside the anniversary period containing now (previous
// anniversary to next), so months of 28 to 31 days each accrue exactly one
// monthly rate. Both the day fraction and the sub-day correction divide by
// the same period length, which keeps the total continuous at midnight and
// at every anniversary.
//
// Calendar fields are read in the start's location, so the result depends
// only on the instant. An instant before the start yields a zero snapshot.
func Compute(now time.Time, p model.Params) model.Snapshot {
	start := p.Start
	now = now.In(start.Location())
	if now.Before(start) {
		return model.Snapshot{At: now}
	}

	ny, nm, nd := now.Date()
	sy, sm, sd := start.Date()
	months := (ny-sy)*12 + int(nm) - int(sm)

	whole := months
	var intoPeriod, periodDays int
	anchor := anniversary(ny, nm, sd)
	if nd < anchor {
		// Borrow: the period began in the previous month.
		py, pm := ny, nm-1
		prevAnchor := anniversary(py, pm, sd)
		prevLen := daysIn(py, pm)
		whole--
		intoPeriod = prevLen - prevAnchor + nd
		periodDays = prevLen - prevAnchor + anchor
	} else {
		cur := daysIn(ny, nm)
		intoPeriod = nd - anchor
		periodDays = cur - anchor + anniversary(ny, nm+1, sd)
	}

	fractional := float64(whole) + float64(intoPeriod)/float64(periodDays)

	total := fractional*p.MonthlyRate + dayFraction(now)*p.MonthlyRate/float64(periodDays)

	return model.Snapshot{
		At:               now,
		Total:            total,
		Months:           months,
		Days:             civilDays(start, now),
		Semesters:        float64(months) / 6,
		FractionalMonths: fractional,
		PeriodDays:       periodDays,
		PerSecond:        PerSecond(p.MonthlyRate, periodDays),
	}
}

// PerSecond is the accrual rate per second for a period of periodDays days.
func PerSecond(monthlyRate float64, periodDays int) float64 {
	if periodDays <= 0 {
		return 0
	}
	return monthlyRate / float64(periodDays) / secsPerDay
}

// CentProgress returns how far s.Total has travelled toward the next 0.01.
func CentProgress(s model.Snapshot) float64 {
	cents := s.Total * 100
	return cents - math.Floor(cents)
}

// UntilNextCent estimates the wait until the displayed total ticks up by 0.01.
func UntilNextCent(s model.Snapshot) time.Duration {
	if s.PerSecond <= 0 {
		return 0
	}
	remaining := (1 - CentProgress(s)) / 100
	return time.Duration(remaining / s.PerSecond * float64(time.Second))
}

// dayFraction is the share of t's calendar day already elapsed, measured
// against that day's real length. 23 and 25 hour days still run from 0 to 1.
func dayFraction(t time.Time) float64 {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	next := time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
	return float64(t.Sub(midnight)) / float64(next.Sub(midnight))
}

// civilDays counts whole calendar days from start to now (now >= start),
// ignoring any DST shift between the two.
func civilDays(start, now time.Time) int {
	sy, sm, sd := start.Date()
	ny, nm, nd := now.Date()
	from := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	to := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	days := int(to.Sub(from).Hours() / 24)
	if dayFraction(now) < dayFraction(start) {
		days--
	}
	return days
}

// anniversary is the day of (year, month) on which a period starting on
// startDay rolls over, clamped to the month's length.
func anniversary(year int, month time.Month, startDay int) int {
	if n := daysIn(year, month); startDay > n {
		return n
	}
	return startDay
}

// daysIn handles month overflow the way time.Date does (month 0 is the
// previous December).
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
