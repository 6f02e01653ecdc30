package prayer

import (
	"fmt"
	"time"
)

// FormatTime renders a 24-hour clock value as 12-hour time with a localized
// AM/PM marker, e.g. "1:05 PM" or "1:05 م".
func FormatTime(hour, minute int, lang Language) string {
	am, pm := "AM", "PM"
	if lang == Arabic {
		am, pm = "ص", "م"
	}

	period := am
	if hour >= 12 {
		period = pm
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, period)
}

// FormatCountdown formats a duration as HH:MM:SS. Negative durations render as
// zero and hours are not wrapped at 24.
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
