package util

import (
	"fmt"
	"time"
)

// FormatSeconds renders a second count for report output.
// Examples: 45 -> "45s", 750 -> "12m", 8100 -> "2.2h"
func FormatSeconds(sec int64) string {
	switch {
	case sec < 60:
		return fmt.Sprintf("%ds", sec)
	case sec < 3600:
		return fmt.Sprintf("%dm", sec/60)
	default:
		return fmt.Sprintf("%.1fh", float64(sec)/3600)
	}
}

// FormatClock formats a timestamp as HH:MM:SS for log views.
func FormatClock(t time.Time) string {
	return t.Format("15:04:05")
}

// FormatDateTime formats a timestamp as 2006-01-02 15:04.
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// Truncate shortens s to max runes with a trailing ellipsis character.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
