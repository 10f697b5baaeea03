package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/i474232898/weather-dashboard/internal/weather"
	"github.com/i474232898/weather-dashboard/internal/weather/providers"
)

type AppConfig struct {
	Port string

	// DefaultPlace pre-fills the place input when no query is given.
	DefaultPlace string

	// Language is used for geocoding results and weather condition labels.
	Language string

	GeocodingBaseURL string
	ForecastBaseURL  string
	HTTPTimeout      time.Duration

	// GoogleGeocoderAPIKey switches geocoding to Google when set.
	GoogleGeocoderAPIKey string

	// ProbeInterval controls how often the geocoding upstream is probed (0 = disabled).
	ProbeInterval time.Duration

	LogLevel string
}

// Load reads configuration from environment with sensible defaults.
// A .env file in the working directory is loaded first when present.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := &AppConfig{
		Port:                 getenvDefault("PORT", "8080"),
		DefaultPlace:         getenvDefault("DEFAULT_PLACE", "Berlin"),
		Language:             strings.ToLower(getenvDefault("LANGUAGE", "en")),
		GeocodingBaseURL:     getenvDefault("GEOCODING_BASE_URL", providers.DefaultGeocodingBaseURL),
		ForecastBaseURL:      getenvDefault("FORECAST_BASE_URL", providers.DefaultForecastBaseURL),
		GoogleGeocoderAPIKey: os.Getenv("GOOGLE_GEOCODER_API_KEY"),
		LogLevel:             getenvDefault("LOG_LEVEL", "info"),
	}

	timeout, err := time.ParseDuration(getenvDefault("HTTP_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %q", os.Getenv("HTTP_TIMEOUT"))
	}
	cfg.HTTPTimeout = timeout

	probe, err := time.ParseDuration(getenvDefault("PROBE_INTERVAL", "5m"))
	if err != nil || probe < 0 {
		return nil, fmt.Errorf("invalid PROBE_INTERVAL: %q", os.Getenv("PROBE_INTERVAL"))
	}
	cfg.ProbeInterval = probe

	if !weather.SupportedLanguage(cfg.Language) {
		return nil, fmt.Errorf("unsupported LANGUAGE %q (use en or de)", cfg.Language)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
