package providers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

const forecastBody = `{
  "latitude": 52.52,
  "longitude": 13.419998,
  "timezone": "Europe/Berlin",
  "timezone_abbreviation": "CEST",
  "utc_offset_seconds": 7200,
  "hourly": {
    "time": ["2024-06-01T00:00", "2024-06-01T01:00"],
    "temperature_2m": [14.2, 13.9],
    "precipitation_probability": [0, 10],
    "weathercode": [0, 61]
  },
  "daily": {
    "time": ["2024-06-01"],
    "temperature_2m_max": [22.1],
    "temperature_2m_min": [11.4],
    "precipitation_sum": [0.3]
  }
}`

func TestOpenMeteoProvider_FetchForecast(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, forecastBody, func(r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		assert.Equal(t, "52.52", q.Get("latitude"))
		assert.Equal(t, "13.405", q.Get("longitude"))
		assert.Equal(t, "temperature_2m,precipitation_probability,weathercode", q.Get("hourly"))
		assert.Equal(t, "temperature_2m_max,temperature_2m_min,precipitation_sum", q.Get("daily"))
		assert.Equal(t, "auto", q.Get("timezone"))
		assert.Equal(t, "7", q.Get("forecast_days"))
	})

	p := NewOpenMeteoProvider(testHTTPClient(), srv.URL, nil)
	f, err := p.FetchForecast(context.Background(), weather.Coordinates{Latitude: 52.52, Longitude: 13.405})
	require.NoError(t, err)

	assert.Equal(t, "Europe/Berlin", f.Timezone)
	assert.Equal(t, 7200, f.UTCOffsetSeconds)
	require.NotNil(t, f.Hourly)
	require.NotNil(t, f.Daily)
	assert.Equal(t, []float64{14.2, 13.9}, f.Hourly.Temperature)
	assert.Equal(t, []int{0, 61}, f.Hourly.WeatherCode)
	assert.Equal(t, []string{"2024-06-01"}, f.Daily.Time)
	assert.Equal(t, []float64{0.3}, f.Daily.PrecipitationSum)
}

func TestOpenMeteoProvider_NonOKStatus(t *testing.T) {
	srv := jsonServer(t, http.StatusInternalServerError, `{"error":true}`, nil)
	p := NewOpenMeteoProvider(testHTTPClient(), srv.URL, nil)

	_, err := p.FetchForecast(context.Background(), weather.Coordinates{Latitude: 1, Longitude: 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, weather.ErrForecastUnavailable)
	assert.NotErrorIs(t, err, weather.ErrMalformedResponse)
}

func TestOpenMeteoProvider_MissingSeries(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{"latitude":52.5,"longitude":13.4,"hourly":{"time":[]}}`, nil)
	p := NewOpenMeteoProvider(testHTTPClient(), srv.URL, nil)

	_, err := p.FetchForecast(context.Background(), weather.Coordinates{Latitude: 52.5, Longitude: 13.4})
	assert.ErrorIs(t, err, weather.ErrForecastUnavailable)
	assert.ErrorIs(t, err, weather.ErrMalformedResponse)
}

func TestOpenMeteoProvider_MalformedJSON(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `not json`, nil)
	p := NewOpenMeteoProvider(testHTTPClient(), srv.URL, nil)

	_, err := p.FetchForecast(context.Background(), weather.Coordinates{})
	assert.ErrorIs(t, err, weather.ErrForecastUnavailable)
}

func TestOpenMeteoProvider_CircuitOpensAfterRepeatedFailures(t *testing.T) {
	calls := 0
	srv := jsonServer(t, http.StatusServiceUnavailable, `{}`, func(*http.Request) { calls++ })
	p := NewOpenMeteoProvider(testHTTPClient(), srv.URL, nil)

	for i := 0; i < 5; i++ {
		_, err := p.FetchForecast(context.Background(), weather.Coordinates{})
		require.ErrorIs(t, err, weather.ErrForecastUnavailable)
	}

	_, err := p.FetchForecast(context.Background(), weather.Coordinates{})
	assert.ErrorIs(t, err, weather.ErrForecastUnavailable)
	assert.ErrorIs(t, err, errCircuitOpen)
	assert.Equal(t, 5, calls)
}
