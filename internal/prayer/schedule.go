package prayer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BuildSchedule converts a day's timings into an ordered, localized schedule.
// Every instant is anchor midnight plus the HH:MM offset; the result always
// follows CanonicalOrder.
func BuildSchedule(timings Timings, anchor DateAnchor, lang Language) ([]Prayer, error) {
	midnight := anchor.Midnight()

	schedule := make([]Prayer, 0, len(CanonicalOrder))
	for _, name := range CanonicalOrder {
		raw, ok := timings[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing %s", ErrMalformedTimings, name)
		}

		hour, minute, err := parseClock(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedTimings, name, err)
		}

		offset := time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute
		schedule = append(schedule, Prayer{
			Name:          name,
			DisplayName:   DisplayName(name, lang),
			FormattedTime: FormatTime(hour, minute, lang),
			Instant:       midnight.Add(offset),
		})
	}

	return schedule, nil
}

// FindNextPrayer returns the first prayer strictly after now. Once the last
// prayer of the day has passed it returns a copy of Fajr moved forward by one
// day. It returns nil for an empty schedule or one without Fajr.
func FindNextPrayer(schedule []Prayer, now time.Time) *Prayer {
	for i := range schedule {
		if schedule[i].Instant.After(now) {
			next := schedule[i]
			return &next
		}
	}

	for _, p := range schedule {
		if p.Name == Fajr {
			p.Instant = p.Instant.Add(24 * time.Hour)
			return &p
		}
	}
	return nil
}

// parseClock parses "HH:MM". The provider sometimes appends a zone
// abbreviation such as "05:17 (BST)", which is dropped.
func parseClock(raw string) (int, int, error) {
	s := strings.TrimSpace(raw)
	if idx := strings.IndexByte(s, ' '); idx != -1 {
		s = s[:idx]
	}

	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q", raw)
	}

	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 || !isDigits(hh) {
		return 0, 0, fmt.Errorf("invalid hour in %q", raw)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 || !isDigits(mm) {
		return 0, 0, fmt.Errorf("invalid minute in %q", raw)
	}
	return hour, minute, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
