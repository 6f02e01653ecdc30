package locations

import (
	"testing"
	"time"

	"github.com/Nixie-Tech-LLC/athan/internal/prayer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		in      string
		city    string
		country string
		method  int
	}{
		{"Cairo, Egypt", "Cairo", "Egypt", 5},
		{"  riyadh ,saudi arabia ", "Riyadh", "Saudi Arabia", 4},
		{"القاهرة, مصر", "Cairo", "Egypt", 5},
		{"الدوحة، قطر", "Doha", "Qatar", 10},
		{"Tripoli, Libya", "Tripoli", "Libya", 5},
		{"Tripoli, Lebanon", "Tripoli", "Lebanon", 3},
		{"Sana'a, Yemen", "Sana'a", "Yemen", 3},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			loc, err := Resolve(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.city, loc.City.Name)
			assert.Equal(t, tt.country, loc.Country.Name)
			assert.Equal(t, tt.method, loc.Method())
		})
	}
}

func TestResolve_Unresolved(t *testing.T) {
	for _, in := range []string{"", "Cairo", "Cairo,", ", Egypt", "Paris, France", "Paris, Egypt"} {
		_, err := Resolve(in)
		assert.ErrorIs(t, err, ErrUnresolved, in)
	}
}

func TestLocationTimezone(t *testing.T) {
	gaza, err := Resolve("Gaza, Palestine")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Gaza", gaza.Timezone())

	hebron, err := Resolve("Hebron, Palestine")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Hebron", hebron.Timezone())
}

func TestLocationDisplay(t *testing.T) {
	loc, err := Resolve("Dubai, United Arab Emirates")
	require.NoError(t, err)
	assert.Equal(t, "Dubai, United Arab Emirates", loc.Display(prayer.English))
	assert.Equal(t, "دبي، الإمارات العربية المتحدة", loc.Display(prayer.Arabic))
	assert.Equal(t, loc.Key(), loc.Display(prayer.English))
}

func TestFindCountryByCode(t *testing.T) {
	c, ok := FindCountryByCode("ma")
	require.True(t, ok)
	assert.Equal(t, "Morocco", c.Name)

	_, ok = FindCountryByCode("FR")
	assert.False(t, ok)
}

func TestDirectoryIntegrity(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Countries() {
		assert.False(t, seen[c.Code], "duplicate code %s", c.Code)
		seen[c.Code] = true
		assert.NotEmpty(t, c.Cities, c.Name)
		assert.GreaterOrEqual(t, c.Method, 0, c.Name)

		for _, city := range c.Cities {
			loc := Location{Country: c, City: city}
			_, err := time.LoadLocation(loc.Timezone())
			assert.NoError(t, err, loc.Key())

			resolved, err := Resolve(loc.Key())
			require.NoError(t, err, loc.Key())
			assert.Equal(t, city.Name, resolved.City.Name)
		}
	}
}

func TestMatch(t *testing.T) {
	loc, err := Match("EG", "", "Giza")
	require.NoError(t, err)
	assert.Equal(t, "Giza, Egypt", loc.Key())

	loc, err = Match("ae", "Unknown Town", "dubai")
	require.NoError(t, err)
	assert.Equal(t, "Dubai", loc.City.Name)

	_, err = Match("EG", "Paris")
	assert.ErrorIs(t, err, ErrUnresolved)

	_, err = Match("FR", "Paris")
	assert.ErrorIs(t, err, ErrUnresolved)
}
