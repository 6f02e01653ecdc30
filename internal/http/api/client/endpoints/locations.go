package endpoints

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/athan/internal/geocode"
	"github.com/Nixie-Tech-LLC/athan/internal/http/api"
	"github.com/Nixie-Tech-LLC/athan/internal/http/api/client/packets"
	"github.com/Nixie-Tech-LLC/athan/internal/locations"
	"github.com/Nixie-Tech-LLC/athan/internal/prayer"
)

// Geocoder reverse-geocodes coordinates.
type Geocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (*geocode.Place, error)
}

// LocationsModule mounts the directory and the coordinates lookup.
func LocationsModule(geocoder Geocoder) api.Module {
	ctl := &LocationsController{geocoder: geocoder}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/locations", ctl.listLocations)
		c.GET("/locate", ctl.locate)
	})
}

type LocationsController struct {
	geocoder Geocoder
}

// GET /api/locations
func (l *LocationsController) listLocations(ctx *gin.Context) (any, *api.APIError) {
	countries := locations.Countries()
	out := make([]packets.CountryResponse, 0, len(countries))
	for _, c := range countries {
		cr := packets.CountryResponse{
			Name:       c.Name,
			ArabicName: c.ArabicName,
			Code:       c.Code,
			Cities:     make([]packets.CityResponse, 0, len(c.Cities)),
		}
		for _, city := range c.Cities {
			cr.Cities = append(cr.Cities, packets.CityResponse{Name: city.Name, ArabicName: city.ArabicName})
		}
		out = append(out, cr)
	}
	return out, nil
}

// GET /api/locate
func (l *LocationsController) locate(ctx *gin.Context) (any, *api.APIError) {
	var query packets.LocateQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		return nil, api.BadRequest("lat and lon are required")
	}
	lang, ok := prayer.ParseLanguage(query.Language)
	if !ok {
		lang = prayer.English
	}

	place, err := l.geocoder.Reverse(ctx.Request.Context(), *query.Latitude, *query.Longitude)
	if err != nil {
		log.Error().Err(err).Msg("reverse geocoding failed")
		if errors.Is(err, geocode.ErrUpstream) {
			return nil, &api.APIError{Code: http.StatusBadGateway, Message: "Failed to use reverse geocoding service."}
		}
		return nil, api.BadRequest(err.Error())
	}

	loc, err := locations.Match(place.CountryCode, place.City, place.Locality)
	if err != nil {
		city := place.City
		if city == "" {
			city = place.Locality
		}
		return nil, api.NotFound(fmt.Sprintf("Could not automatically match your city %q. Please select it manually.", city))
	}

	return packets.LocateResponse{
		Location: loc.Key(),
		City:     loc.City.Name,
		Country:  loc.Country.Name,
		Display:  loc.Display(lang),
	}, nil
}
