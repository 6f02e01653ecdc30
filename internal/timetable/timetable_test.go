package timetable

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/athan/internal/aladhan"
	"github.com/Nixie-Tech-LLC/athan/internal/locations"
	"github.com/Nixie-Tech-LLC/athan/internal/model"
	"github.com/Nixie-Tech-LLC/athan/internal/prayer"
)

type stubFetcher struct {
	date  time.Time
	query aladhan.CityQuery
	resp  *aladhan.Response
	err   error
}

func (f *stubFetcher) FetchByCity(ctx context.Context, date time.Time, q aladhan.CityQuery) (*aladhan.Response, error) {
	f.date, f.query = date, q
	return f.resp, f.err
}

func riyadhResponse() *aladhan.Response {
	return &aladhan.Response{
		Code: 200,
		Data: aladhan.Data{
			Timings: aladhan.Timings{
				Fajr: "04:30", Sunrise: "05:50", Dhuhr: "12:00", Asr: "15:20",
				Sunset: "18:05", Maghrib: "18:05", Isha: "19:35",
			},
			Date: aladhan.DateInfo{
				Readable: "11 Mar 2026",
				Hijri: aladhan.HijriDate{
					Day:         "22",
					Month:       aladhan.HijriMonth{En: "Ramaḍān", Ar: "رَمَضان"},
					Year:        "1447",
					Designation: aladhan.Designation{Abbreviated: "AH"},
				},
			},
			Meta: aladhan.Meta{Timezone: "Asia/Riyadh"},
		},
	}
}

func riyadh(t *testing.T) locations.Location {
	t.Helper()
	loc, err := locations.Resolve("Riyadh, Saudi Arabia")
	require.NoError(t, err)
	return loc
}

func TestToday_UsesLocalDateAndArabicNames(t *testing.T) {
	f := &stubFetcher{resp: riyadhResponse()}
	svc := NewService(f)

	// 22:30 UTC on the 10th is already the 11th in Riyadh (UTC+3).
	now := time.Date(2026, 3, 10, 22, 30, 0, 0, time.UTC)
	day, err := svc.Today(context.Background(), riyadh(t), prayer.English, DefaultOptions(), now)
	require.NoError(t, err)

	assert.Equal(t, 11, f.date.Day())
	assert.Equal(t, "الرياض", f.query.City)
	assert.Equal(t, "المملكة العربية السعودية", f.query.Country)
	assert.Equal(t, 4, f.query.Method)
	assert.Equal(t, -1, f.query.School)

	wantMidnight := time.Date(2026, 3, 10, 21, 0, 0, 0, time.UTC)
	assert.Equal(t, wantMidnight.Unix(), day.Anchor.Timestamp)
	require.Len(t, day.Schedule, 7)
	assert.True(t, day.Schedule[0].Instant.Equal(wantMidnight.Add(4*time.Hour+30*time.Minute)))
	assert.Equal(t, "22 Ramaḍān 1447 AH", day.Hijri)
	assert.Equal(t, "Asia/Riyadh", day.ProviderTimezone)
}

func TestToday_OptionsOverride(t *testing.T) {
	f := &stubFetcher{resp: riyadhResponse()}
	svc := NewService(f)

	s := model.DefaultSettings()
	s.CalculationMethod = "mwl"
	s.JuristicMethod = "hanafi"
	s.PrayerAdjustments.Fajr = 2

	_, err := svc.Today(context.Background(), riyadh(t), prayer.Arabic, FromSettings(s), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 3, f.query.Method)
	assert.Equal(t, 1, f.query.School)
	assert.Equal(t, "0,2,0,0,0,0,0,0,0", f.query.Tune)
}

func TestToday_Errors(t *testing.T) {
	upstream := &stubFetcher{err: aladhan.ErrUpstream}
	_, err := NewService(upstream).Today(context.Background(), riyadh(t), prayer.English, DefaultOptions(), time.Now())
	assert.ErrorIs(t, err, aladhan.ErrUpstream)

	bad := riyadhResponse()
	bad.Data.Timings.Isha = "7pm"
	_, err = NewService(&stubFetcher{resp: bad}).Today(context.Background(), riyadh(t), prayer.English, DefaultOptions(), time.Now())
	assert.ErrorIs(t, err, prayer.ErrMalformedTimings)

	loc := riyadh(t)
	loc.Country.Timezone = "Mars/Olympus"
	_, err = NewService(&stubFetcher{resp: riyadhResponse()}).Today(context.Background(), loc, prayer.English, DefaultOptions(), time.Now())
	require.Error(t, err)
	assert.False(t, errors.Is(err, aladhan.ErrUpstream))
}

func TestDayNextAndStale(t *testing.T) {
	svc := NewService(&stubFetcher{resp: riyadhResponse()})
	// 13:00 Riyadh.
	now := time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)
	day, err := svc.Today(context.Background(), riyadh(t), prayer.English, DefaultOptions(), now)
	require.NoError(t, err)

	next := day.Next(now)
	require.NotNil(t, next)
	assert.Equal(t, prayer.Asr, next.Name)

	// After Isha the next prayer is tomorrow's Fajr.
	late := time.Date(2026, 3, 11, 20, 0, 0, 0, time.UTC)
	next = day.Next(late)
	require.NotNil(t, next)
	assert.Equal(t, prayer.Fajr, next.Name)
	assert.True(t, next.Instant.After(late))

	assert.False(t, day.Stale(now))
	assert.True(t, day.Stale(late.Add(2*time.Hour)))
}

func TestToday_RejectsTimesWrappedPastMidnight(t *testing.T) {
	resp := riyadhResponse()
	// Isha 23:35 tuned by +60 comes back as 00:35.
	resp.Data.Timings.Isha = "00:35"
	svc := NewService(&stubFetcher{resp: resp})

	s := model.DefaultSettings()
	s.HourAdjustment = 1
	_, err := svc.Today(context.Background(), riyadh(t), prayer.English, FromSettings(s), time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCrossesMidnight)
	assert.Contains(t, err.Error(), "Isha")
}
