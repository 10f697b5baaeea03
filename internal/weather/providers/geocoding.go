package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/i474232898/weather-dashboard/internal/observability"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

// DefaultGeocodingBaseURL is the public Open-Meteo geocoding host.
const DefaultGeocodingBaseURL = "https://geocoding-api.open-meteo.com"

// OpenMeteoGeocoder implements weather.Geocoder with the Open-Meteo geocoding API.
type OpenMeteoGeocoder struct {
	baseURL  string
	language string
	http     *upstream
}

func NewOpenMeteoGeocoder(client *http.Client, baseURL, language string, metrics *observability.Metrics) *OpenMeteoGeocoder {
	if baseURL == "" {
		baseURL = DefaultGeocodingBaseURL
	}
	if language == "" {
		language = "en"
	}
	return &OpenMeteoGeocoder{
		baseURL:  strings.TrimRight(baseURL, "/") + "/v1/search",
		language: language,
		http:     newUpstream("geocoding", client, metrics),
	}
}

// Geocode returns the best match for name. Every failure, including an empty
// result list, wraps weather.ErrPlaceNotFound.
func (g *OpenMeteoGeocoder) Geocode(ctx context.Context, name string) (weather.Place, error) {
	values := url.Values{}
	values.Set("name", name)
	values.Set("count", "1")
	values.Set("language", g.language)
	values.Set("format", "json")

	var payload geocodingResponse
	if err := g.http.getJSON(ctx, g.baseURL+"?"+values.Encode(), &payload); err != nil {
		return weather.Place{}, fmt.Errorf("%w: %w", weather.ErrPlaceNotFound, err)
	}

	if len(payload.Results) == 0 {
		return weather.Place{}, fmt.Errorf("%w: no results for %q", weather.ErrPlaceNotFound, name)
	}

	r := payload.Results[0]
	if r.Latitude == nil || r.Longitude == nil {
		return weather.Place{}, fmt.Errorf("%w: %w: result without coordinates",
			weather.ErrPlaceNotFound, weather.ErrMalformedResponse)
	}

	return weather.Place{
		Name:     r.Name,
		Country:  r.Country,
		Timezone: r.Timezone,
		Coordinates: weather.Coordinates{
			Latitude:  *r.Latitude,
			Longitude: *r.Longitude,
		},
	}, nil
}

// Open-Meteo geocoding response types. The results key is absent when nothing matches.

type geocodingResponse struct {
	Results []geocodingResult `json:"results"`
}

type geocodingResult struct {
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Country   string   `json:"country"`
	Timezone  string   `json:"timezone"`
}
