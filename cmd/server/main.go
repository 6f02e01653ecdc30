package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/athan/internal/aladhan"
	"github.com/Nixie-Tech-LLC/athan/internal/cache"
	"github.com/Nixie-Tech-LLC/athan/internal/db"
	"github.com/Nixie-Tech-LLC/athan/internal/geocode"
	"github.com/Nixie-Tech-LLC/athan/internal/notify"
	"github.com/Nixie-Tech-LLC/athan/internal/timetable"
)

func main() {
	cfg := LoadEnvironment()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// initialize PostgreSQL
	if err := db.Init(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init")
	}
	defer db.DB.Close()

	// run pending migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}
	store := db.NewStore(db.DB)

	provider := aladhan.NewClient(cfg.HTTPTimeout)
	provider.BaseURL = cfg.AladhanBaseURL

	var fetcher aladhan.Fetcher = provider
	rdb, err := cache.NewClient(ctx, cfg.RedisAddress, cfg.RedisUsername, cfg.RedisPassword)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, timings cache disabled")
	}
	if rdb != nil {
		defer rdb.Close()
		fetcher = cache.NewTimingsCache(rdb, provider, cfg.TimingsCacheTTL)
		log.Info().Str("address", cfg.RedisAddress).Dur("ttl", cfg.TimingsCacheTTL).Msg("timings cache enabled")
	}
	source := timetable.NewService(fetcher)

	geocoder := geocode.NewClient(cfg.HTTPTimeout)
	geocoder.BaseURL = cfg.GeocodeBaseURL

	sender, closeSender := InitPushSender(ctx, cfg)
	defer closeSender()

	dispatcher := notify.NewDispatcher(store, source, sender, notify.Config{
		Window:      cfg.NotifyWindow,
		PassTimeout: cfg.NotifyPassTimeout,
		Icon:        cfg.NotificationIcon,
		Link:        cfg.NotificationLink,
	})
	if cfg.NotifyInterval > 0 {
		go dispatcher.RunEvery(ctx, cfg.NotifyInterval)
	}

	// set up gin router
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	RegisterRoutes(r, cfg, store, source, geocoder, dispatcher)

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("address", cfg.ServerAddress).Str("env", cfg.Environment).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
