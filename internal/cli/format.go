// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Separators controls how money amounts are punctuated.
type Separators struct {
	Thousands string
	Decimal   string
}

// European is the 1.234,56 convention.
var European = Separators{Thousands: ".", Decimal: ","}

// FormatMoney formats an amount with two decimals and a currency suffix.
// e.g., 9720 -> "9.720,00 €"
func FormatMoney(v float64, currency string, seps Separators) string {
	s := FormatAmount(v).String(seps.Thousands, seps.Decimal)
	if currency == "" {
		return s
	}
	return s + " " + currency
}

// FormatRate formats a per-second accrual rate with six decimals.
// e.g., 0.000104166 -> "0,000104"
func FormatRate(perSecond float64, seps Separators) string {
	s := strconv.FormatFloat(perSecond, 'f', 6, 64)
	return strings.Replace(s, ".", seps.Decimal, 1)
}

// FormatNumber adds separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64, sep string) string {
	if n < 0 {
		return "-" + FormatNumber(-n, sep)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteString(sep)
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatCountdown formats a short wait.
// e.g., 75s -> "1m 15s", 2.4s -> "2.4s", 80ms -> "80ms"
func FormatCountdown(d time.Duration) string {
	switch {
	case d <= 0:
		return "now"
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm %ds", m, s)
}

// FormatSince formats a start date the way the header shows it.
// e.g., 2017-08-01 -> "August 2017"
func FormatSince(t time.Time) string {
	return t.Format("January 2006")
}
