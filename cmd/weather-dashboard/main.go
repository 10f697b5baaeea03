package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // forecast time zones must resolve in minimal containers

	"go.uber.org/zap"

	httpapi "github.com/i474232898/weather-dashboard/internal/api/http"
	"github.com/i474232898/weather-dashboard/internal/config"
	"github.com/i474232898/weather-dashboard/internal/observability"
	"github.com/i474232898/weather-dashboard/internal/scheduler"
	"github.com/i474232898/weather-dashboard/internal/weather"
	"github.com/i474232898/weather-dashboard/internal/weather/providers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		observability.NewLogger("error", "weather-dashboard").Fatal("failed to load config", zap.Error(err))
	}

	logger := observability.NewLogger(cfg.LogLevel, "weather-dashboard")
	defer func() { _ = logger.Sync() }()

	metrics := observability.NewMetrics()

	// Shared HTTP client for outbound calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	var geocoder weather.Geocoder
	if cfg.GoogleGeocoderAPIKey != "" {
		geocoder = providers.NewGoogleGeocoder(cfg.GoogleGeocoderAPIKey, metrics)
		logger.Info("geocoding via google")
	} else {
		geocoder = providers.NewOpenMeteoGeocoder(httpClient, cfg.GeocodingBaseURL, cfg.Language, metrics)
		logger.Info("geocoding via open-meteo", zap.String("base_url", cfg.GeocodingBaseURL))
	}
	fetcher := providers.NewOpenMeteoProvider(httpClient, cfg.ForecastBaseURL, metrics)

	service := weather.NewService(geocoder, fetcher,
		weather.WithLogger(logger),
		weather.WithLanguage(cfg.Language))

	sched := scheduler.New(geocoder, cfg.DefaultPlace, cfg.ProbeInterval, cfg.HTTPTimeout, metrics, logger)
	if err := sched.Start(); err != nil {
		logger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	app := httpapi.NewApp(logger)
	httpapi.RegisterRoutes(app, service, httpapi.RouteOptions{
		DefaultPlace: cfg.DefaultPlace,
		Metrics:      metrics,
		Probe:        sched,
	})

	go func() {
		logger.Info("http server starting", zap.String("port", cfg.Port))
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("fiber server stopped", zap.Error(err))
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("error during shutdown", zap.Error(err))
	}
}
