package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidSettings = errors.New("invalid settings")

// SettingsLocation is the city picked by the client.
type SettingsLocation struct {
	Country string `json:"country"`
	City    string `json:"city"`
}

// PrayerAdjustments are per-prayer minute offsets.
type PrayerAdjustments struct {
	Fajr    int `json:"fajr"`
	Dhuhr   int `json:"dhuhr"`
	Asr     int `json:"asr"`
	Maghrib int `json:"maghrib"`
	Isha    int `json:"isha"`
}

// Settings is what a client persists between sessions.
type Settings struct {
	Location               *SettingsLocation `json:"location"`
	Notifications          bool              `json:"notifications"`
	CalculationMethod      string            `json:"calculationMethod"`
	JuristicMethod         string            `json:"juristicMethod"`
	HighLatitudeAdjustment string            `json:"highLatitudeAdjustment"`
	HourAdjustment         int               `json:"hourAdjustment"`
	PrayerAdjustments      PrayerAdjustments `json:"prayerAdjustments"`
	Language               string            `json:"language"`
	Theme                  string            `json:"theme"`
}

// MaxPrayerAdjustment bounds a single per-prayer offset, in minutes.
const MaxPrayerAdjustment = 60

// Provider method codes. "default" defers to the country's method.
var calculationMethods = map[string]int{
	"default": -1,
	"jafari":  0,
	"karachi": 1,
	"isna":    2,
	"mwl":     3,
	"makkah":  4,
	"egypt":   5,
	"tehran":  7,
}

var juristicMethods = map[string]int{
	"standard": 0,
	"hanafi":   1,
}

var latitudeAdjustments = map[string]int{
	"none":       -1,
	"midnight":   1,
	"oneseventh": 2,
	"anglebased": 3,
}

var themes = map[string]bool{"light": true, "dark": true}

func DefaultSettings() Settings {
	return Settings{
		Notifications:          false,
		CalculationMethod:      "default",
		JuristicMethod:         "standard",
		HighLatitudeAdjustment: "none",
		HourAdjustment:         0,
		Language:               "ar",
		Theme:                  "light",
	}
}

// Normalize lowercases enum fields and fills empty ones with defaults.
func (s *Settings) Normalize() {
	def := DefaultSettings()
	fill := func(v *string, d string) {
		*v = strings.ToLower(strings.TrimSpace(*v))
		if *v == "" {
			*v = d
		}
	}
	fill(&s.CalculationMethod, def.CalculationMethod)
	fill(&s.JuristicMethod, def.JuristicMethod)
	fill(&s.HighLatitudeAdjustment, def.HighLatitudeAdjustment)
	fill(&s.Language, def.Language)
	fill(&s.Theme, def.Theme)
}

func (s Settings) Validate() error {
	if _, ok := calculationMethods[s.CalculationMethod]; !ok {
		return fmt.Errorf("%w: unknown calculation method %q", ErrInvalidSettings, s.CalculationMethod)
	}
	if _, ok := juristicMethods[s.JuristicMethod]; !ok {
		return fmt.Errorf("%w: unknown juristic method %q", ErrInvalidSettings, s.JuristicMethod)
	}
	if _, ok := latitudeAdjustments[s.HighLatitudeAdjustment]; !ok {
		return fmt.Errorf("%w: unknown high latitude adjustment %q", ErrInvalidSettings, s.HighLatitudeAdjustment)
	}
	if s.HourAdjustment < -1 || s.HourAdjustment > 1 {
		return fmt.Errorf("%w: hour adjustment must be -1, 0 or 1", ErrInvalidSettings)
	}
	if s.Language != "ar" && s.Language != "en" {
		return fmt.Errorf("%w: unknown language %q", ErrInvalidSettings, s.Language)
	}
	if !themes[s.Theme] {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidSettings, s.Theme)
	}
	for _, m := range s.PrayerAdjustments.values() {
		if m < -MaxPrayerAdjustment || m > MaxPrayerAdjustment {
			return fmt.Errorf("%w: prayer adjustment %d out of range", ErrInvalidSettings, m)
		}
	}
	return nil
}

func (p PrayerAdjustments) values() []int {
	return []int{p.Fajr, p.Dhuhr, p.Asr, p.Maghrib, p.Isha}
}

// MethodCode is the provider method, -1 for the country default.
func (s Settings) MethodCode() int {
	if code, ok := calculationMethods[s.CalculationMethod]; ok {
		return code
	}
	return -1
}

func (s Settings) SchoolCode() int {
	return juristicMethods[s.JuristicMethod]
}

// LatitudeAdjustmentCode is the provider's latitudeAdjustmentMethod, -1 for none.
func (s Settings) LatitudeAdjustmentCode() int {
	if code, ok := latitudeAdjustments[s.HighLatitudeAdjustment]; ok {
		return code
	}
	return -1
}

// Tune renders the provider's tune parameter
// (Imsak,Fajr,Sunrise,Dhuhr,Asr,Maghrib,Sunset,Isha,Midnight). The hour
// adjustment shifts every entry. Returns "" when nothing is adjusted.
func (s Settings) Tune() string {
	shift := s.HourAdjustment * 60
	p := s.PrayerAdjustments
	offsets := []int{0, p.Fajr, 0, p.Dhuhr, p.Asr, p.Maghrib, 0, p.Isha, 0}

	zero := true
	parts := make([]string, len(offsets))
	for i, m := range offsets {
		m += shift
		if m != 0 {
			zero = false
		}
		parts[i] = strconv.Itoa(m)
	}
	if zero {
		return ""
	}
	return strings.Join(parts, ",")
}
