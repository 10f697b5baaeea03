package weather

import (
	"context"
	"errors"
)

var (
	// ErrEmptyPlace is returned when the place name is blank.
	ErrEmptyPlace = errors.New("place name is empty")

	// ErrPlaceNotFound covers every geocoding failure.
	ErrPlaceNotFound = errors.New("place not found")

	// ErrForecastUnavailable covers every forecast retrieval failure.
	ErrForecastUnavailable = errors.New("could not retrieve forecast data")

	// ErrMalformedResponse marks a decodable body that lacks expected fields.
	// It is always wrapped together with one of the two categories above.
	ErrMalformedResponse = errors.New("malformed response")
)

// Geocoder resolves a free-text place name (e.g. Open-Meteo geocoding, Google).
type Geocoder interface {
	Geocode(ctx context.Context, name string) (Place, error)
}

// ForecastFetcher retrieves the hourly and daily forecast for a coordinate pair.
type ForecastFetcher interface {
	FetchForecast(ctx context.Context, coords Coordinates) (Forecast, error)
}
