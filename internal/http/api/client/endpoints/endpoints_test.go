package endpoints

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/athan/internal/aladhan"
	"github.com/Nixie-Tech-LLC/athan/internal/db"
	"github.com/Nixie-Tech-LLC/athan/internal/geocode"
	"github.com/Nixie-Tech-LLC/athan/internal/http/api"
	"github.com/Nixie-Tech-LLC/athan/internal/http/api/client/packets"
	"github.com/Nixie-Tech-LLC/athan/internal/locations"
	"github.com/Nixie-Tech-LLC/athan/internal/model"
	"github.com/Nixie-Tech-LLC/athan/internal/prayer"
	"github.com/Nixie-Tech-LLC/athan/internal/timetable"
)

type memStore struct {
	subs    map[string]model.Subscription
	saveErr error
}

func newMemStore() *memStore { return &memStore{subs: map[string]model.Subscription{}} }

func (m *memStore) ListSubscriptions(ctx context.Context) ([]model.Subscription, error) {
	out := make([]model.Subscription, 0, len(m.subs))
	for _, s := range m.subs {
		out = append(out, s)
	}
	return out, nil
}

func (m *memStore) GetSubscription(ctx context.Context, token string) (*model.Subscription, error) {
	s, ok := m.subs[token]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &s, nil
}

func (m *memStore) SaveSubscription(ctx context.Context, sub model.Subscription) (*model.Subscription, error) {
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	if prev, ok := m.subs[sub.Token]; ok {
		sub.ID = prev.ID
	} else {
		sub.ID = fmt.Sprintf("id-%d", len(m.subs)+1)
	}
	m.subs[sub.Token] = sub
	return &sub, nil
}

func (m *memStore) DeleteSubscription(ctx context.Context, token string) error {
	delete(m.subs, token)
	return nil
}

func (m *memStore) DeleteSubscriptions(ctx context.Context, tokens []string) (int64, error) {
	for _, t := range tokens {
		delete(m.subs, t)
	}
	return int64(len(tokens)), nil
}

type stubSource struct {
	opts timetable.Options
	err  error
}

func (s *stubSource) Today(ctx context.Context, loc locations.Location, lang prayer.Language, opts timetable.Options, now time.Time) (*timetable.Day, error) {
	s.opts = opts
	if s.err != nil {
		return nil, s.err
	}
	zone, _ := time.LoadLocation(loc.Timezone())
	anchor := prayer.AnchorFor(now, zone)
	schedule, err := prayer.BuildSchedule(prayer.Timings{
		"Fajr": "04:58", "Sunrise": "06:20", "Dhuhr": "12:10", "Asr": "15:40",
		"Sunset": "18:52", "Maghrib": "18:55", "Isha": "20:15",
	}, anchor, lang)
	if err != nil {
		return nil, err
	}
	return &timetable.Day{Location: loc, Zone: zone, Anchor: anchor, Schedule: schedule, Readable: "10 Mar 2026"}, nil
}

type stubGeocoder struct {
	place *geocode.Place
	err   error
}

func (g stubGeocoder) Reverse(ctx context.Context, lat, lon float64) (*geocode.Place, error) {
	return g.place, g.err
}

// 15:00 in Cairo (UTC+2).
var fixedNow = time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC)

func newRouter(store db.Store, source timetable.Source, geocoder Geocoder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{Prefix: "/api"},
		TokensModule(store),
		PrayerTimesModule(source, func() time.Time { return fixedNow }),
		LocationsModule(geocoder),
		HealthModule(),
	)
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSaveToken(t *testing.T) {
	store := newMemStore()
	r := newRouter(store, &stubSource{}, stubGeocoder{})

	w := do(t, r, http.MethodPost, "/api/save-token", gin.H{"token": "tok", "location": "القاهرة، مصر", "language": "ar"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp packets.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	saved := store.subs["tok"]
	assert.Equal(t, "Cairo, Egypt", saved.Location)
	assert.Equal(t, "ar", saved.Language)

	w = do(t, r, http.MethodPost, "/api/save-token", gin.H{"token": "tok", "location": "Doha, Qatar", "language": "en"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, store.subs, 1)
	assert.Equal(t, "Doha, Qatar", store.subs["tok"].Location)
}

func TestSaveToken_BadRequests(t *testing.T) {
	r := newRouter(newMemStore(), &stubSource{}, stubGeocoder{})

	for name, body := range map[string]gin.H{
		"missing token":    {"location": "Cairo, Egypt"},
		"missing location": {"token": "t"},
		"unknown location": {"token": "t", "location": "Paris, France"},
		"bad language":     {"token": "t", "location": "Cairo, Egypt", "language": "fr"},
	} {
		t.Run(name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/api/save-token", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestSaveToken_StoreFailure(t *testing.T) {
	store := newMemStore()
	store.saveErr = errors.New("db down")
	r := newRouter(store, &stubSource{}, stubGeocoder{})

	w := do(t, r, http.MethodPost, "/api/save-token", gin.H{"token": "t", "location": "Cairo, Egypt"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDeleteToken_Idempotent(t *testing.T) {
	store := newMemStore()
	store.subs["tok"] = model.Subscription{Token: "tok"}
	r := newRouter(store, &stubSource{}, stubGeocoder{})

	for i := 0; i < 2; i++ {
		w := do(t, r, http.MethodPost, "/api/delete-token", gin.H{"token": "tok"})
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.Empty(t, store.subs)

	w := do(t, r, http.MethodPost, "/api/delete-token", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPrayerTimes(t *testing.T) {
	source := &stubSource{}
	r := newRouter(newMemStore(), source, stubGeocoder{})

	w := do(t, r, http.MethodGet, "/api/prayer-times?location=Cairo,%20Egypt&lang=en&method=mwl&fajr=2", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp packets.PrayerTimesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Cairo, Egypt", resp.Location)
	assert.Equal(t, "Africa/Cairo", resp.Timezone)
	require.Len(t, resp.Prayers, 7)
	assert.Equal(t, "4:58 AM", resp.Prayers[0].Time)
	assert.Equal(t, prayer.Asr, resp.Next.Name)
	assert.Equal(t, "00:40:00", resp.Next.Countdown)
	assert.EqualValues(t, 2400, resp.Next.Seconds)

	assert.Equal(t, 3, source.opts.Method)
	assert.Equal(t, "0,2,0,0,0,0,0,0,0", source.opts.Tune)
}

func TestPrayerTimes_Arabic(t *testing.T) {
	r := newRouter(newMemStore(), &stubSource{}, stubGeocoder{})

	w := do(t, r, http.MethodGet, "/api/prayer-times?location=Cairo,%20Egypt", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp packets.PrayerTimesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "القاهرة، مصر", resp.DisplayLocation)
	assert.Equal(t, "العصر", resp.Next.DisplayName)
	assert.Equal(t, "3:40 م", resp.Next.Time)
}

func TestPrayerTimes_Errors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		source *stubSource
		want   int
	}{
		{"missing location", "/api/prayer-times", &stubSource{}, http.StatusBadRequest},
		{"unknown location", "/api/prayer-times?location=Paris,France", &stubSource{}, http.StatusBadRequest},
		{"bad method", "/api/prayer-times?location=Cairo,Egypt&method=moon", &stubSource{}, http.StatusBadRequest},
		{"upstream", "/api/prayer-times?location=Cairo,Egypt", &stubSource{err: fmt.Errorf("x: %w", aladhan.ErrUpstream)}, http.StatusBadGateway},
		{"malformed", "/api/prayer-times?location=Cairo,Egypt", &stubSource{err: prayer.ErrMalformedTimings}, http.StatusInternalServerError},
		{"past midnight", "/api/prayer-times?location=Cairo,Egypt&hour_adjustment=1&isha=60", &stubSource{err: fmt.Errorf("x: %w", timetable.ErrCrossesMidnight)}, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(newMemStore(), tt.source, stubGeocoder{})
			w := do(t, r, http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestLocations(t *testing.T) {
	r := newRouter(newMemStore(), &stubSource{}, stubGeocoder{})
	w := do(t, r, http.MethodGet, "/api/locations", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []packets.CountryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, len(locations.Countries()))
	assert.NotEmpty(t, resp[0].Cities)
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name  string
		geo   stubGeocoder
		path  string
		want  int
		match string
	}{
		{"city match", stubGeocoder{place: &geocode.Place{City: "Cairo", CountryCode: "EG"}}, "/api/locate?lat=30.04&lon=31.23", http.StatusOK, "Cairo, Egypt"},
		{"locality fallback", stubGeocoder{place: &geocode.Place{Locality: "Giza", CountryCode: "EG"}}, "/api/locate?lat=30&lon=31", http.StatusOK, "Giza, Egypt"},
		{"no match", stubGeocoder{place: &geocode.Place{City: "Paris", CountryCode: "FR"}}, "/api/locate?lat=48.8&lon=2.3", http.StatusNotFound, ""},
		{"upstream down", stubGeocoder{err: geocode.ErrUpstream}, "/api/locate?lat=0&lon=0", http.StatusBadGateway, ""},
		{"missing coords", stubGeocoder{}, "/api/locate?lat=1", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(newMemStore(), &stubSource{}, tt.geo)
			w := do(t, r, http.MethodGet, tt.path, nil)
			require.Equal(t, tt.want, w.Code, w.Body.String())
			if tt.match == "" {
				return
			}
			var resp packets.LocateResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.match, resp.Location)
		})
	}
}

func TestHealth(t *testing.T) {
	r := newRouter(newMemStore(), &stubSource{}, stubGeocoder{})
	w := do(t, r, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
