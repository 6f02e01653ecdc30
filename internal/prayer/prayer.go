// Package prayer turns one day of provider timings into absolute prayer instants
// and answers "what is the next prayer" for a given moment.
package prayer

import (
	"errors"
	"strings"
	"time"
)

// ErrMalformedTimings is returned when a day's timings are missing a canonical
// prayer or carry a value that is not a valid "HH:MM" time.
var ErrMalformedTimings = errors.New("malformed timings")

// Language selects display names and AM/PM markers.
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

// ParseLanguage maps "ar"/"en" (any case) to a Language. Unknown values
// report false.
func ParseLanguage(s string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, true
	case Arabic:
		return Arabic, true
	}
	return "", false
}

// Timings maps a prayer name to its "HH:MM" 24-hour time for one day at one
// location. Extra keys (Imsak, Midnight, Firstthird, Lastthird) are ignored.
type Timings map[string]string

// DateAnchor grounds the HH:MM strings of a day in absolute time.
type DateAnchor struct {
	// Timestamp is the UNIX time (seconds) of local midnight at the location.
	Timestamp int64
	// Timezone is the IANA name of the location's zone, informational only.
	Timezone string
}

// Midnight returns the anchor as a time.Time.
func (a DateAnchor) Midnight() time.Time {
	return time.Unix(a.Timestamp, 0).UTC()
}

// Prayer is one entry of a day's schedule.
type Prayer struct {
	Name          string    `json:"name"`
	DisplayName   string    `json:"display_name"`
	FormattedTime string    `json:"time"`
	Instant       time.Time `json:"instant"`
}

// Until returns the time left until the prayer, relative to now.
func (p Prayer) Until(now time.Time) time.Duration {
	return p.Instant.Sub(now)
}

const (
	Fajr    = "Fajr"
	Sunrise = "Sunrise"
	Dhuhr   = "Dhuhr"
	Asr     = "Asr"
	Sunset  = "Sunset"
	Maghrib = "Maghrib"
	Isha    = "Isha"
)

// CanonicalOrder is the fixed display and rollover order of a schedule.
var CanonicalOrder = []string{Fajr, Sunrise, Dhuhr, Asr, Sunset, Maghrib, Isha}

var arabicNames = map[string]string{
	Fajr:    "الفجر",
	Sunrise: "الشروق",
	Dhuhr:   "الظهر",
	Asr:     "العصر",
	Sunset:  "الغروب",
	Maghrib: "المغرب",
	Isha:    "العشاء",
}

// DisplayName returns the localized name of a prayer. Unknown names are
// returned unchanged.
func DisplayName(name string, lang Language) string {
	if lang == Arabic {
		if ar, ok := arabicNames[name]; ok {
			return ar
		}
	}
	return name
}
