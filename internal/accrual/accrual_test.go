package accrual

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/debtclock/internal/model"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t.Fatalf("parse time %q: %v", s, err)
	}
	return d
}

func studyParams(t *testing.T) model.Params {
	t.Helper()
	return model.Params{
		Start:       mustTime(t, "2017-08-01T00:00:00Z"),
		MonthlyRate: 270,
	}
}

func TestCompute_AnniversaryScenario(t *testing.T) {
	s := Compute(mustTime(t, "2020-08-01T00:00:00Z"), studyParams(t))

	assert.Equal(t, 36, s.Months)
	assert.InDelta(t, 6.0, s.Semesters, 1e-12)
	assert.InDelta(t, 9720.0, s.Total, 1e-9)
	assert.Equal(t, 1096, s.Days)
	assert.Equal(t, 31, s.PeriodDays)
}

func TestCompute_AtStartIsZero(t *testing.T) {
	p := studyParams(t)
	s := Compute(p.Start, p)

	assert.Zero(t, s.Total)
	assert.Zero(t, s.Months)
	assert.Zero(t, s.Days)
}

func TestCompute_BeforeStartIsZeroSnapshot(t *testing.T) {
	now := mustTime(t, "2017-07-15T12:00:00Z")
	s := Compute(now, studyParams(t))

	assert.Zero(t, s.Total)
	assert.Zero(t, s.Months)
	assert.True(t, s.At.Equal(now))
}

func TestCompute_MonthlyCoarseCountIgnoresDay(t *testing.T) {
	p := model.Params{Start: mustTime(t, "2017-08-20T00:00:00Z"), MonthlyRate: 270}
	s := Compute(mustTime(t, "2017-09-05T00:00:00Z"), p)

	assert.Equal(t, 1, s.Months, "display months are a plain calendar difference")
	assert.Less(t, s.FractionalMonths, 1.0, "accrual borrows a month before the anniversary")
	assert.InDelta(t, 16.0/31.0, s.FractionalMonths, 1e-12)
}

func TestCompute_HalfMonth(t *testing.T) {
	// September has 30 days: the 16th at midnight is exactly 15 days in.
	p := model.Params{Start: mustTime(t, "2017-08-01T00:00:00Z"), MonthlyRate: 300}
	s := Compute(mustTime(t, "2017-09-16T00:00:00Z"), p)

	assert.InDelta(t, 1.5, s.FractionalMonths, 1e-12)
	assert.InDelta(t, 450.0, s.Total, 1e-9)
}

func TestCompute_Monotonic(t *testing.T) {
	p := studyParams(t)
	prev := Compute(p.Start, p).Total
	at := p.Start
	end := mustTime(t, "2021-03-05T00:00:00Z")
	for at.Before(end) {
		at = at.Add(7*time.Hour + 13*time.Minute + 17*time.Second)
		cur := Compute(at, p).Total
		require.GreaterOrEqualf(t, cur, prev, "total decreased at %s", at)
		prev = cur
	}
}

func TestCompute_ContinuousAtMidnight(t *testing.T) {
	p := studyParams(t)
	before := Compute(mustTime(t, "2020-02-14T23:59:59.999Z"), p)
	after := Compute(mustTime(t, "2020-02-15T00:00:00Z"), p)

	perMs := p.MonthlyRate / float64(after.PeriodDays) / msPerDay
	assert.InDelta(t, perMs, after.Total-before.Total, 1e-9)
}

func TestCompute_ContinuousAtBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		start string
		edge  string
	}{
		{"month rollover, first of month start", "2017-08-01T00:00:00Z", "2018-03-01T00:00:00Z"},
		{"leap February rollover", "2017-08-01T00:00:00Z", "2020-03-01T00:00:00Z"},
		{"year rollover", "2017-08-01T00:00:00Z", "2019-01-01T00:00:00Z"},
		{"mid-month anniversary", "2017-08-20T00:00:00Z", "2019-04-20T00:00:00Z"},
		{"mid-month start, month rollover", "2017-08-20T00:00:00Z", "2019-05-01T00:00:00Z"},
		{"31st start, clamped to February", "2018-01-31T00:00:00Z", "2018-02-28T00:00:00Z"},
		{"31st start, after short February", "2018-01-31T00:00:00Z", "2018-03-01T00:00:00Z"},
		{"31st start, 30-day month anniversary", "2018-01-31T00:00:00Z", "2018-04-30T00:00:00Z"},
		{"31st start, into 31-day month", "2018-01-31T00:00:00Z", "2018-05-01T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := model.Params{Start: mustTime(t, tt.start), MonthlyRate: 270}
			edge := mustTime(t, tt.edge)

			before := Compute(edge.Add(-time.Millisecond), p)
			after := Compute(edge, p)

			diff := after.Total - before.Total
			assert.GreaterOrEqual(t, diff, 0.0)
			// One millisecond never accrues more than a thousandth of a cent here.
			assert.Less(t, diff, 1e-5)
		})
	}
}

func berlin(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	return loc
}

func berlinParams(t *testing.T) model.Params {
	t.Helper()
	return model.Params{
		Start:       time.Date(2017, time.August, 1, 0, 0, 0, 0, berlin(t)),
		MonthlyRate: 270,
	}
}

func TestCompute_ContinuousAcrossDST(t *testing.T) {
	p := berlinParams(t)
	loc := berlin(t)

	tests := []struct {
		name string
		edge time.Time
	}{
		{"midnight after 25h fall-back day", time.Date(2020, time.October, 26, 0, 0, 0, 0, loc)},
		{"midnight before fall-back day", time.Date(2020, time.October, 25, 0, 0, 0, 0, loc)},
		{"midnight after 23h spring-forward day", time.Date(2020, time.March, 30, 0, 0, 0, 0, loc)},
		{"midnight before spring-forward day", time.Date(2020, time.March, 29, 0, 0, 0, 0, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := Compute(tt.edge.Add(-time.Millisecond), p)
			after := Compute(tt.edge, p)

			diff := after.Total - before.Total
			assert.GreaterOrEqual(t, diff, 0.0)
			assert.Less(t, diff, 1e-5)
		})
	}
}

func TestCompute_MonotonicThroughDSTDays(t *testing.T) {
	p := berlinParams(t)
	loc := berlin(t)

	for _, day := range []time.Time{
		time.Date(2020, time.October, 25, 0, 0, 0, 0, loc),
		time.Date(2020, time.March, 29, 0, 0, 0, 0, loc),
	} {
		// Instants, not wall-clock times: the repeated 02:00-03:00 hour
		// is walked twice on the fall-back day.
		prev := Compute(day.Add(-time.Minute), p).Total
		for at := day; at.Before(day.Add(26 * time.Hour)); at = at.Add(5 * time.Minute) {
			cur := Compute(at, p).Total
			require.Greaterf(t, cur, prev, "total did not grow at %s", at)
			prev = cur
		}
	}
}

func TestCompute_SameInstantAnyZone(t *testing.T) {
	p := berlinParams(t)
	at := time.Date(2020, time.August, 1, 2, 0, 0, 0, berlin(t))

	local := Compute(at, p)
	utc := Compute(at.UTC(), p)
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	far := Compute(at.In(tokyo), p)

	assert.Equal(t, 36, local.Months)
	assert.Equal(t, local.Months, utc.Months)
	assert.Equal(t, local.Days, utc.Days)
	assert.InDelta(t, local.Total, utc.Total, 1e-9)
	assert.InDelta(t, local.Total, far.Total, 1e-9)
	assert.InDelta(t, 9720+270.0/31*(2.0/24), local.Total, 1e-9)
}

func TestCompute_DaysAreCalendarDays(t *testing.T) {
	loc := berlin(t)
	// Winter start, summer reading: only 182*24-1 hours elapse.
	p := model.Params{Start: time.Date(2020, time.January, 1, 0, 0, 0, 0, loc), MonthlyRate: 270}
	s := Compute(time.Date(2020, time.July, 1, 0, 0, 0, 0, loc), p)

	assert.Equal(t, 182, s.Days)
	assert.Equal(t, 6, s.Months)
}

func TestCompute_EachMonthAccruesOneRate(t *testing.T) {
	p := model.Params{Start: mustTime(t, "2018-01-31T00:00:00Z"), MonthlyRate: 100}
	for i, edge := range []string{
		"2018-02-28T00:00:00Z",
		"2018-03-31T00:00:00Z",
		"2018-04-30T00:00:00Z",
		"2018-05-31T00:00:00Z",
	} {
		s := Compute(mustTime(t, edge), p)
		assert.InDeltaf(t, float64(i+1)*100, s.Total, 1e-9, "anniversary %s", edge)
	}
}

func TestPerSecond(t *testing.T) {
	assert.InDelta(t, 270.0/30/24/60/60, PerSecond(270, 30), 1e-15)
	assert.Zero(t, PerSecond(270, 0))
}

func TestCentProgress(t *testing.T) {
	s := model.Snapshot{Total: 12.3425, PerSecond: 0.0001}
	assert.InDelta(t, 0.25, CentProgress(s), 1e-6)

	wait := UntilNextCent(s)
	// 0.0075 remaining at 0.0001/s is 75 seconds.
	assert.InDelta(t, float64(75*time.Second), float64(wait), float64(10*time.Millisecond))
}

func TestUntilNextCent_NoRate(t *testing.T) {
	assert.Zero(t, UntilNextCent(model.Snapshot{Total: 5}))
}
