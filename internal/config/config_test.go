package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_ENV", "SERVER_ADDRESS", "MIGRATIONS_PATH", "LOG_LEVEL", "REDIS_ADDRESS",
		"TIMINGS_CACHE_TTL", "HTTP_TIMEOUT", "NOTIFY_WINDOW_MINUTES", "NOTIFY_INTERVAL",
		"NOTIFY_PASS_TIMEOUT", "PUSH_PROVIDER", "FIREBASE_PROJECT_ID", "ALADHAN_BASE_URL",
		"NOTIFICATION_LINK",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("DATABASE_URL", "postgres://localhost/athan?sslmode=disable")
	t.Setenv("CRON_SECRET", "s3cret")
}

func TestLoad_Defaults(t *testing.T) {
	baseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, EnvProduction, cfg.Environment)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "./migrations", cfg.MigrationsPath)
	assert.Equal(t, 5*time.Minute, cfg.NotifyWindow)
	assert.Zero(t, cfg.NotifyInterval)
	assert.Equal(t, 2*time.Minute, cfg.NotifyPassTimeout)
	assert.Equal(t, 6*time.Hour, cfg.TimingsCacheTTL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, ProviderLog, cfg.PushProvider)
	assert.Equal(t, "https://api.aladhan.com/v1", cfg.AladhanBaseURL)
	assert.Equal(t, "/icon-192x192.png", cfg.NotificationIcon)
	assert.Empty(t, cfg.NotificationLink)
}

func TestLoad_Overrides(t *testing.T) {
	baseEnv(t)
	t.Setenv("NOTIFY_WINDOW_MINUTES", "10")
	t.Setenv("NOTIFY_INTERVAL", "1m")
	t.Setenv("PUSH_PROVIDER", "FCM")
	t.Setenv("FIREBASE_PROJECT_ID", "athan-app")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, cfg.NotifyWindow)
	assert.Equal(t, time.Minute, cfg.NotifyInterval)
	assert.Equal(t, ProviderFCM, cfg.PushProvider)
}

func TestLoad_DevelopmentWithoutSecret(t *testing.T) {
	baseEnv(t)
	t.Setenv("APP_ENV", "development")
	t.Setenv("CRON_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{"missing database", "DATABASE_URL", "", "DATABASE_URL"},
		{"missing secret", "CRON_SECRET", "", "CRON_SECRET"},
		{"bad window", "NOTIFY_WINDOW_MINUTES", "five", "NOTIFY_WINDOW_MINUTES"},
		{"zero window", "NOTIFY_WINDOW_MINUTES", "0", "NOTIFY_WINDOW_MINUTES"},
		{"bad duration", "HTTP_TIMEOUT", "soon", "HTTP_TIMEOUT"},
		{"unknown provider", "PUSH_PROVIDER", "pigeon", "PUSH_PROVIDER"},
		{"fcm without project", "PUSH_PROVIDER", "fcm", "FIREBASE_PROJECT_ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_FCMLink(t *testing.T) {
	tests := []struct {
		link string
		ok   bool
	}{
		{"", true},
		{"https://athan.example.com/", true},
		{"/", false},
		{"http://athan.example.com/", false},
		{"athan.example.com", false},
		{"https://", false},
	}

	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			baseEnv(t)
			t.Setenv("PUSH_PROVIDER", "fcm")
			t.Setenv("FIREBASE_PROJECT_ID", "athan-app")
			t.Setenv("NOTIFICATION_LINK", tt.link)

			cfg, err := Load()
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.link, cfg.NotificationLink)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "NOTIFICATION_LINK")
		})
	}
}

func TestLoad_RelativeLinkAllowedOutsideFCM(t *testing.T) {
	baseEnv(t)
	t.Setenv("PUSH_PROVIDER", "mqtt")
	t.Setenv("NOTIFICATION_LINK", "/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/", cfg.NotificationLink)
}
