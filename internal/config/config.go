package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	ProviderLog  = "log"
	ProviderFCM  = "fcm"
	ProviderMQTT = "mqtt"
)

// Config holds environment-based settings
type Config struct {
	Environment    string
	ServerAddress  string
	DatabaseURL    string
	MigrationsPath string
	LogLevel       string

	RedisAddress    string
	RedisUsername   string
	RedisPassword   string
	TimingsCacheTTL time.Duration

	AladhanBaseURL string
	GeocodeBaseURL string
	HTTPTimeout    time.Duration

	CronSecret        string
	NotifyWindow      time.Duration
	NotifyInterval    time.Duration
	NotifyPassTimeout time.Duration

	PushProvider            string
	FirebaseProjectID       string
	FirebaseCredentialsFile string
	MQTTBrokerURL           string
	MQTTClientID            string
	NotificationIcon        string
	NotificationLink        string
}

// IsDevelopment reports whether the development conveniences are on:
// console logs and no cron secret.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Environment:    strings.ToLower(getenv("APP_ENV", EnvProduction)),
		ServerAddress:  getenv("SERVER_ADDRESS", ":8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: getenv("MIGRATIONS_PATH", "./migrations"),
		LogLevel:       getenv("LOG_LEVEL", "info"),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		AladhanBaseURL: getenv("ALADHAN_BASE_URL", "https://api.aladhan.com/v1"),
		GeocodeBaseURL: getenv("GEOCODE_BASE_URL", "https://api.bigdatacloud.net/data"),

		CronSecret: os.Getenv("CRON_SECRET"),

		PushProvider:            strings.ToLower(getenv("PUSH_PROVIDER", ProviderLog)),
		FirebaseProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
		FirebaseCredentialsFile: os.Getenv("FIREBASE_CREDENTIALS_FILE"),
		MQTTBrokerURL:           getenv("MQTT_BROKER_URL", "tcp://localhost:1883"),
		MQTTClientID:            getenv("MQTT_CLIENT_ID", "athan-server"),
		NotificationIcon:        getenv("NOTIFICATION_ICON", "/icon-192x192.png"),
		NotificationLink:        os.Getenv("NOTIFICATION_LINK"),
	}

	var errs []error
	var err error

	if cfg.TimingsCacheTTL, err = duration("TIMINGS_CACHE_TTL", 6*time.Hour); err != nil {
		errs = append(errs, err)
	}
	if cfg.HTTPTimeout, err = duration("HTTP_TIMEOUT", 10*time.Second); err != nil {
		errs = append(errs, err)
	}
	if cfg.NotifyInterval, err = duration("NOTIFY_INTERVAL", 0); err != nil {
		errs = append(errs, err)
	}
	if cfg.NotifyPassTimeout, err = duration("NOTIFY_PASS_TIMEOUT", 2*time.Minute); err != nil {
		errs = append(errs, err)
	}

	minutes, err := integer("NOTIFY_WINDOW_MINUTES", 5)
	if err != nil {
		errs = append(errs, err)
	} else if minutes <= 0 {
		errs = append(errs, fmt.Errorf("NOTIFY_WINDOW_MINUTES must be positive"))
	}
	cfg.NotifyWindow = time.Duration(minutes) * time.Minute

	if cfg.DatabaseURL == "" {
		errs = append(errs, fmt.Errorf("DATABASE_URL is required"))
	}
	if cfg.CronSecret == "" && !cfg.IsDevelopment() {
		errs = append(errs, fmt.Errorf("CRON_SECRET is required outside development"))
	}

	switch cfg.PushProvider {
	case ProviderLog, ProviderMQTT:
	case ProviderFCM:
		if cfg.FirebaseProjectID == "" {
			errs = append(errs, fmt.Errorf("FIREBASE_PROJECT_ID is required for the fcm provider"))
		}
		if err := checkWebpushLink(cfg.NotificationLink); err != nil {
			errs = append(errs, err)
		}
	default:
		errs = append(errs, fmt.Errorf("unknown PUSH_PROVIDER %q", cfg.PushProvider))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

// checkWebpushLink rejects links FCM refuses: webpush click links must be
// absolute https URLs.
func checkWebpushLink(link string) error {
	if link == "" {
		return nil
	}
	u, err := url.ParseRequestURI(link)
	if err != nil || u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("NOTIFICATION_LINK must be an absolute https URL for the fcm provider, got %q", link)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func duration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}

func integer(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return n, nil
}
