package aladhan

import "github.com/Nixie-Tech-LLC/athan/internal/prayer"

// Response is the envelope of every Al Adhan API reply.
type Response struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   Data   `json:"data"`
}

// Data holds one day of timings plus date and calculation metadata.
type Data struct {
	Timings Timings  `json:"timings"`
	Date    DateInfo `json:"date"`
	Meta    Meta     `json:"meta"`
}

// Timings contains all prayer and event times as "HH:MM" strings.
type Timings struct {
	Fajr       string `json:"Fajr"`
	Sunrise    string `json:"Sunrise"`
	Dhuhr      string `json:"Dhuhr"`
	Asr        string `json:"Asr"`
	Sunset     string `json:"Sunset"`
	Maghrib    string `json:"Maghrib"`
	Isha       string `json:"Isha"`
	Imsak      string `json:"Imsak"`
	Midnight   string `json:"Midnight"`
	Firstthird string `json:"Firstthird"`
	Lastthird  string `json:"Lastthird"`
}

// Map converts the timings into the keyed form the schedule builder consumes.
// Empty fields are left out so a missing prayer is reported as such.
func (t Timings) Map() prayer.Timings {
	all := map[string]string{
		"Fajr":       t.Fajr,
		"Sunrise":    t.Sunrise,
		"Dhuhr":      t.Dhuhr,
		"Asr":        t.Asr,
		"Sunset":     t.Sunset,
		"Maghrib":    t.Maghrib,
		"Isha":       t.Isha,
		"Imsak":      t.Imsak,
		"Midnight":   t.Midnight,
		"Firstthird": t.Firstthird,
		"Lastthird":  t.Lastthird,
	}

	out := make(prayer.Timings, len(all))
	for name, value := range all {
		if value != "" {
			out[name] = value
		}
	}
	return out
}

// DateInfo contains the date representations of the requested day.
type DateInfo struct {
	Readable  string        `json:"readable"`
	Timestamp string        `json:"timestamp"`
	Hijri     HijriDate     `json:"hijri"`
	Gregorian GregorianDate `json:"gregorian"`
}

// HijriDate is the Islamic calendar date of the requested day.
type HijriDate struct {
	Date        string      `json:"date"`
	Day         string      `json:"day"`
	Weekday     LocalName   `json:"weekday"`
	Month       HijriMonth  `json:"month"`
	Year        string      `json:"year"`
	Designation Designation `json:"designation"`
}

type HijriMonth struct {
	Number int    `json:"number"`
	En     string `json:"en"`
	Ar     string `json:"ar"`
}

type LocalName struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

type Designation struct {
	Abbreviated string `json:"abbreviated"`
	Expanded    string `json:"expanded"`
}

// Format returns the Hijri date as "DD Month YYYY AH", using the Arabic month
// name when arabic is set.
func (h HijriDate) Format(arabic bool) string {
	month := h.Month.En
	if arabic && h.Month.Ar != "" {
		month = h.Month.Ar
	}
	if h.Day == "" || month == "" || h.Year == "" {
		return ""
	}
	abbr := h.Designation.Abbreviated
	if abbr == "" {
		abbr = "AH"
	}
	return h.Day + " " + month + " " + h.Year + " " + abbr
}

type GregorianDate struct {
	Date    string    `json:"date"`
	Day     string    `json:"day"`
	Weekday LocalName `json:"weekday"`
	Month   struct {
		Number int    `json:"number"`
		En     string `json:"en"`
	} `json:"month"`
	Year string `json:"year"`
}

// Meta describes how the timings were computed.
type Meta struct {
	Latitude                 float64            `json:"latitude"`
	Longitude                float64            `json:"longitude"`
	Timezone                 string             `json:"timezone"`
	Method                   MethodInfo         `json:"method"`
	LatitudeAdjustmentMethod string             `json:"latitudeAdjustmentMethod"`
	MidnightMode             string             `json:"midnightMode"`
	School                   string             `json:"school"`
	Offset                   map[string]float64 `json:"offset"`
}

type MethodInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
