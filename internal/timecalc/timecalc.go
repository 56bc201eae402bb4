package timecalc

import (
	"fmt"
	"time"
)

// FormatMinutes formats a minute count as "1h 40m", "1h 0m" or "45m".
func FormatMinutes(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatClock formats remaining seconds as MM:SS. Minutes are not wrapped at 60.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// TimeOfDay formats the wall-clock part of t as HH:MM:SS.
func TimeOfDay(t time.Time) string {
	return t.Format("15:04:05")
}
