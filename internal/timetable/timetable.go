// Package timetable joins the location directory, the prayer times provider
// and the schedule builder into "today's prayers at this place".
package timetable

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Nixie-Tech-LLC/athan/internal/aladhan"
	"github.com/Nixie-Tech-LLC/athan/internal/locations"
	"github.com/Nixie-Tech-LLC/athan/internal/model"
	"github.com/Nixie-Tech-LLC/athan/internal/prayer"
)

// Options override the provider calculation parameters. Negative values
// keep the default: the country method, and the provider's school and
// latitude rule.
type Options struct {
	Method             int
	School             int
	LatitudeAdjustment int
	Tune               string
}

func DefaultOptions() Options {
	return Options{Method: -1, School: -1, LatitudeAdjustment: -1}
}

// FromSettings derives provider options from client settings.
func FromSettings(s model.Settings) Options {
	return Options{
		Method:             s.MethodCode(),
		School:             s.SchoolCode(),
		LatitudeAdjustment: s.LatitudeAdjustmentCode(),
		Tune:               s.Tune(),
	}
}

// Source produces the schedule of the current local day at a location.
type Source interface {
	Today(ctx context.Context, loc locations.Location, lang prayer.Language, opts Options, now time.Time) (*Day, error)
}

// Day is one local day of prayers at a location.
type Day struct {
	Location         locations.Location
	Zone             *time.Location
	Anchor           prayer.DateAnchor
	Schedule         []prayer.Prayer
	Readable         string
	Hijri            string
	ProviderTimezone string
}

// Next is the upcoming prayer at now, rolling over to tomorrow's Fajr.
func (d *Day) Next(now time.Time) *prayer.Prayer {
	return prayer.FindNextPrayer(d.Schedule, now.In(d.Zone))
}

// Stale reports whether now has moved past the local day d was built for.
func (d *Day) Stale(now time.Time) bool {
	return prayer.AnchorFor(now, d.Zone).Timestamp != d.Anchor.Timestamp
}

// ErrCrossesMidnight is returned when the provider's times are out of
// canonical order, which happens when adjustments push a prayer past midnight
// and the provider wraps it to the start of the day.
var ErrCrossesMidnight = errors.New("prayer times cross a day boundary")

type Service struct {
	fetcher aladhan.Fetcher
}

var _ Source = (*Service)(nil)

func NewService(fetcher aladhan.Fetcher) *Service {
	return &Service{fetcher: fetcher}
}

func (s *Service) Today(ctx context.Context, loc locations.Location, lang prayer.Language, opts Options, now time.Time) (*Day, error) {
	zone, err := time.LoadLocation(loc.Timezone())
	if err != nil {
		return nil, fmt.Errorf("load timezone of %s: %w", loc.Key(), err)
	}
	anchor := prayer.AnchorFor(now, zone)

	method := opts.Method
	if method < 0 {
		method = loc.Method()
	}

	// Arabic names resolve reliably with the provider.
	resp, err := s.fetcher.FetchByCity(ctx, now.In(zone), aladhan.CityQuery{
		City:               loc.City.ArabicName,
		Country:            loc.Country.ArabicName,
		Method:             method,
		School:             opts.School,
		LatitudeAdjustment: opts.LatitudeAdjustment,
		Tune:               opts.Tune,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch timings for %s: %w", loc.Key(), err)
	}

	schedule, err := prayer.BuildSchedule(resp.Data.Timings.Map(), anchor, lang)
	if err != nil {
		return nil, fmt.Errorf("build schedule for %s: %w", loc.Key(), err)
	}
	if err := checkOrder(schedule); err != nil {
		return nil, fmt.Errorf("build schedule for %s (tune %q): %w", loc.Key(), opts.Tune, err)
	}

	return &Day{
		Location:         loc,
		Zone:             zone,
		Anchor:           anchor,
		Schedule:         schedule,
		Readable:         resp.Data.Date.Readable,
		Hijri:            resp.Data.Date.Hijri.Format(lang == prayer.Arabic),
		ProviderTimezone: resp.Data.Meta.Timezone,
	}, nil
}

func checkOrder(schedule []prayer.Prayer) error {
	for i := 1; i < len(schedule); i++ {
		if schedule[i].Instant.Before(schedule[i-1].Instant) {
			return fmt.Errorf("%w: %s %s before %s %s", ErrCrossesMidnight,
				schedule[i].Name, schedule[i].FormattedTime, schedule[i-1].Name, schedule[i-1].FormattedTime)
		}
	}
	return nil
}
