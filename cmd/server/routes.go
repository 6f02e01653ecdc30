package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/athan/internal/config"
	"github.com/Nixie-Tech-LLC/athan/internal/db"
	"github.com/Nixie-Tech-LLC/athan/internal/http/api"
	clientapi "github.com/Nixie-Tech-LLC/athan/internal/http/api/client/endpoints"
	cronapi "github.com/Nixie-Tech-LLC/athan/internal/http/api/cron/endpoints"
	"github.com/Nixie-Tech-LLC/athan/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/athan/internal/timetable"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	store db.Store,
	source timetable.Source,
	geocoder clientapi.Geocoder,
	trigger cronapi.Trigger,
) {
	r.Use(middleware.RequestLogger())

	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
			http.MethodHead,
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
	},
		clientapi.HealthModule(),
		clientapi.TokensModule(store),
		clientapi.PrayerTimesModule(source, time.Now),
		clientapi.LocationsModule(geocoder),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:     "/api",
		Auth:       true,
		SecretKey:  cfg.CronSecret,
		BypassAuth: cfg.IsDevelopment(),
	},
		cronapi.NotificationsModule(trigger),
	)
}
