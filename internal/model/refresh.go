package model

import "time"

// Refresh cadence bounds. Digit changes must stay perceptible, so the
// counter never refreshes slower than MaxRefresh.
const (
	MinRefresh     = 10 * time.Millisecond
	MaxRefresh     = 100 * time.Millisecond
	DefaultRefresh = 50 * time.Millisecond
)

// ClampRefresh bounds d to [MinRefresh, MaxRefresh].
func ClampRefresh(d time.Duration) time.Duration {
	return min(max(d, MinRefresh), MaxRefresh)
}
