package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/i474232898/weather-dashboard/internal/observability"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

const (
	// DefaultForecastBaseURL is the public Open-Meteo forecast host.
	DefaultForecastBaseURL = "https://api.open-meteo.com"

	hourlyFields = "temperature_2m,precipitation_probability,weathercode"
	dailyFields  = "temperature_2m_max,temperature_2m_min,precipitation_sum"
)

// OpenMeteoProvider implements weather.ForecastFetcher for Open-Meteo.
type OpenMeteoProvider struct {
	baseURL string
	http    *upstream
}

func NewOpenMeteoProvider(client *http.Client, baseURL string, metrics *observability.Metrics) *OpenMeteoProvider {
	if baseURL == "" {
		baseURL = DefaultForecastBaseURL
	}
	return &OpenMeteoProvider{
		baseURL: strings.TrimRight(baseURL, "/") + "/v1/forecast",
		http:    newUpstream("forecast", client, metrics),
	}
}

// FetchForecast requests the 7-day hourly and daily forecast for coords.
// All failures wrap weather.ErrForecastUnavailable.
func (p *OpenMeteoProvider) FetchForecast(ctx context.Context, coords weather.Coordinates) (weather.Forecast, error) {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	values.Set("hourly", hourlyFields)
	values.Set("daily", dailyFields)
	values.Set("timezone", "auto")
	values.Set("forecast_days", strconv.Itoa(weather.ForecastDays))

	var payload weather.Forecast
	if err := p.http.getJSON(ctx, p.baseURL+"?"+values.Encode(), &payload); err != nil {
		return weather.Forecast{}, fmt.Errorf("%w: %w", weather.ErrForecastUnavailable, err)
	}

	if payload.Hourly == nil || payload.Daily == nil {
		return weather.Forecast{}, fmt.Errorf("%w: %w: hourly or daily object missing",
			weather.ErrForecastUnavailable, weather.ErrMalformedResponse)
	}

	return payload, nil
}
