package providers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kelvins/geocoder"

	"github.com/i474232898/weather-dashboard/internal/observability"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

// GoogleGeocoder implements weather.Geocoder with the Google Geocoding API.
// It is used instead of Open-Meteo geocoding when an API key is configured.
type GoogleGeocoder struct {
	lookup  func(geocoder.Address) (geocoder.Location, error)
	metrics *observability.Metrics
}

// NewGoogleGeocoder configures the geocoder package with apiKey.
// The key is process-wide in that package, so only one instance should exist.
func NewGoogleGeocoder(apiKey string, metrics *observability.Metrics) *GoogleGeocoder {
	geocoder.ApiKey = apiKey
	return &GoogleGeocoder{
		lookup:  geocoder.Geocoding,
		metrics: metrics,
	}
}

func (g *GoogleGeocoder) Geocode(ctx context.Context, name string) (weather.Place, error) {
	if err := ctx.Err(); err != nil {
		return weather.Place{}, fmt.Errorf("%w: %w", weather.ErrPlaceNotFound, err)
	}

	start := time.Now()
	loc, err := g.lookup(geocoder.Address{City: name})
	if err != nil {
		g.metrics.ObserveUpstream("google", observability.OutcomeError, time.Since(start))
		return weather.Place{}, fmt.Errorf("%w: google geocode: %w", weather.ErrPlaceNotFound, err)
	}
	g.metrics.ObserveUpstream("google", observability.OutcomeSuccess, time.Since(start))

	// The package reports a miss as a zero location rather than an error.
	if loc.Latitude == 0 && loc.Longitude == 0 {
		return weather.Place{}, fmt.Errorf("%w: %w", weather.ErrPlaceNotFound, errors.New("google geocode: empty location"))
	}

	return weather.Place{
		Name: name,
		Coordinates: weather.Coordinates{
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
		},
	}, nil
}
