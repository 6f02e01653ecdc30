// Package locations is the static country/city directory used to resolve a
// subscriber's "City, Country" string into provider query parameters.
package locations

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Nixie-Tech-LLC/athan/internal/prayer"
)

// ErrUnresolved is returned when a location string does not map to a known
// country and city.
var ErrUnresolved = errors.New("location unresolved")

type City struct {
	Name       string `json:"name"`
	ArabicName string `json:"arabic_name"`
	// Timezone overrides the country zone when set.
	Timezone string `json:"timezone,omitempty"`
}

type Country struct {
	Name       string `json:"name"`
	ArabicName string `json:"arabic_name"`
	Code       string `json:"code"`
	Timezone   string `json:"timezone"`
	Method     int    `json:"method"`
	Cities     []City `json:"cities"`
}

// FindCity looks a city up by its English (case-insensitive) or Arabic name.
func (c Country) FindCity(name string) (City, bool) {
	name = strings.TrimSpace(name)
	for _, city := range c.Cities {
		if strings.EqualFold(city.Name, name) || city.ArabicName == name {
			return city, true
		}
	}
	return City{}, false
}

// Location is a resolved directory entry.
type Location struct {
	Country Country
	City    City
}

// Method returns the country's calculation method code.
func (l Location) Method() int { return l.Country.Method }

// Timezone returns the IANA zone of the city.
func (l Location) Timezone() string {
	if l.City.Timezone != "" {
		return l.City.Timezone
	}
	return l.Country.Timezone
}

// Key is the canonical English "City, Country" form.
func (l Location) Key() string {
	return l.City.Name + ", " + l.Country.Name
}

// Display returns "City, Country" in the given language.
func (l Location) Display(lang prayer.Language) string {
	if lang == prayer.Arabic {
		return l.City.ArabicName + "، " + l.Country.ArabicName
	}
	return l.Key()
}

// Countries returns the whole directory. Callers must not modify it.
func Countries() []Country {
	return countries
}

// FindCountry looks a country up by English (case-insensitive) or Arabic name.
func FindCountry(name string) (Country, bool) {
	name = strings.TrimSpace(name)
	for _, c := range countries {
		if strings.EqualFold(c.Name, name) || c.ArabicName == name {
			return c, true
		}
	}
	return Country{}, false
}

// FindCountryByCode looks a country up by ISO 3166-1 alpha-2 code.
func FindCountryByCode(code string) (Country, bool) {
	for _, c := range countries {
		if strings.EqualFold(c.Code, code) {
			return c, true
		}
	}
	return Country{}, false
}

// Resolve maps "City, Country" (English or Arabic, "," or "،") to a Location.
func Resolve(location string) (Location, error) {
	city, country, ok := splitLocation(location)
	if !ok {
		return Location{}, fmt.Errorf("%w: %q", ErrUnresolved, location)
	}

	c, ok := FindCountry(country)
	if !ok {
		return Location{}, fmt.Errorf("%w: unknown country %q", ErrUnresolved, country)
	}
	ct, ok := c.FindCity(city)
	if !ok {
		return Location{}, fmt.Errorf("%w: unknown city %q in %s", ErrUnresolved, city, c.Name)
	}
	return Location{Country: c, City: ct}, nil
}

func splitLocation(location string) (string, string, bool) {
	s := strings.ReplaceAll(location, "،", ",")
	city, country, ok := strings.Cut(s, ",")
	if !ok {
		return "", "", false
	}
	city, country = strings.TrimSpace(city), strings.TrimSpace(country)
	if city == "" || country == "" {
		return "", "", false
	}
	return city, country, true
}

// Match finds the directory entry for a reverse-geocoded place: the country
// by ISO code, then the first of names that is a known city of it.
func Match(countryCode string, names ...string) (Location, error) {
	c, ok := FindCountryByCode(countryCode)
	if !ok {
		return Location{}, fmt.Errorf("%w: unknown country code %q", ErrUnresolved, countryCode)
	}
	for _, name := range names {
		if name == "" {
			continue
		}
		if city, ok := c.FindCity(name); ok {
			return Location{Country: c, City: city}, nil
		}
	}
	return Location{}, fmt.Errorf("%w: no known city of %s among %q", ErrUnresolved, c.Name, names)
}
