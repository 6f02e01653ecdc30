package endpoints

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/athan/internal/aladhan"
	"github.com/Nixie-Tech-LLC/athan/internal/http/api"
	"github.com/Nixie-Tech-LLC/athan/internal/http/api/client/packets"
	"github.com/Nixie-Tech-LLC/athan/internal/locations"
	"github.com/Nixie-Tech-LLC/athan/internal/model"
	"github.com/Nixie-Tech-LLC/athan/internal/prayer"
	"github.com/Nixie-Tech-LLC/athan/internal/timetable"
)

// PrayerTimesModule mounts the schedule endpoint.
func PrayerTimesModule(source timetable.Source, now func() time.Time) api.Module {
	if now == nil {
		now = time.Now
	}
	ctl := &PrayerTimesController{source: source, now: now}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/prayer-times", ctl.getPrayerTimes)
	})
}

type PrayerTimesController struct {
	source timetable.Source
	now    func() time.Time
}

// GET /api/prayer-times
func (p *PrayerTimesController) getPrayerTimes(ctx *gin.Context) (any, *api.APIError) {
	var query packets.PrayerTimesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		return nil, api.BadRequest("location is required")
	}

	settings := model.Settings{
		CalculationMethod:      query.CalculationMethod,
		JuristicMethod:         query.JuristicMethod,
		HighLatitudeAdjustment: query.HighLatitudeAdjustment,
		HourAdjustment:         query.HourAdjustment,
		PrayerAdjustments: model.PrayerAdjustments{
			Fajr:    query.Fajr,
			Dhuhr:   query.Dhuhr,
			Asr:     query.Asr,
			Maghrib: query.Maghrib,
			Isha:    query.Isha,
		},
		Language: query.Language,
	}
	settings.Normalize()
	if err := settings.Validate(); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	lang, _ := prayer.ParseLanguage(settings.Language)

	loc, err := locations.Resolve(query.Location)
	if err != nil {
		return nil, api.BadRequest("unknown location: " + query.Location)
	}

	now := p.now()
	day, err := p.source.Today(ctx.Request.Context(), loc, lang, timetable.FromSettings(settings), now)
	if err != nil {
		log.Error().Err(err).Str("location", loc.Key()).Msg("failed to get prayer times")
		if errors.Is(err, aladhan.ErrUpstream) {
			return nil, &api.APIError{Code: http.StatusBadGateway, Message: "prayer times service unavailable"}
		}
		if errors.Is(err, timetable.ErrCrossesMidnight) {
			return nil, &api.APIError{Code: http.StatusUnprocessableEntity, Message: "adjustments move a prayer past midnight"}
		}
		return nil, api.Internal("failed to get prayer times")
	}

	resp := packets.PrayerTimesResponse{
		Location:        loc.Key(),
		DisplayLocation: loc.Display(lang),
		Timezone:        loc.Timezone(),
		Date:            day.Readable,
		Hijri:           day.Hijri,
		Prayers:         make([]packets.PrayerResponse, 0, len(day.Schedule)),
	}
	for _, pr := range day.Schedule {
		resp.Prayers = append(resp.Prayers, toPrayerResponse(pr))
	}
	if next := day.Next(now); next != nil {
		until := next.Until(now)
		resp.Next = packets.NextPrayerResponse{
			PrayerResponse: toPrayerResponse(*next),
			Countdown:      prayer.FormatCountdown(until),
			Seconds:        int64(until / time.Second),
		}
	}
	return resp, nil
}

func toPrayerResponse(p prayer.Prayer) packets.PrayerResponse {
	return packets.PrayerResponse{
		Name:        p.Name,
		DisplayName: p.DisplayName,
		Time:        p.FormattedTime,
		Instant:     p.Instant.Format(time.RFC3339),
	}
}
