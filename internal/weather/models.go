package weather

import (
	"time"
)

const (
	// ForecastDays is the fixed forecast horizon requested from the provider.
	ForecastDays = 7

	// HourlyWindow is the number of hourly entries shown on the dashboard.
	HourlyWindow = 24
)

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Place is the result of resolving a free-text place name.
type Place struct {
	Name        string      `json:"name"`
	Country     string      `json:"country,omitempty"`
	Timezone    string      `json:"timezone,omitempty"`
	Coordinates Coordinates `json:"coordinates"`
}

// Label returns the human-readable place name, including the country when known.
func (p Place) Label() string {
	if p.Country == "" {
		return p.Name
	}
	return p.Name + ", " + p.Country
}

// Forecast mirrors the forecast provider's response body.
// Hourly and Daily are pointers so an absent object can be told apart from an empty one.
type Forecast struct {
	Latitude             float64       `json:"latitude"`
	Longitude            float64       `json:"longitude"`
	Timezone             string        `json:"timezone"`
	TimezoneAbbreviation string        `json:"timezone_abbreviation"`
	UTCOffsetSeconds     int           `json:"utc_offset_seconds"`
	Hourly               *HourlySeries `json:"hourly"`
	Daily                *DailySeries  `json:"daily"`
}

// HourlySeries holds parallel time-indexed arrays, ordered by time ascending.
type HourlySeries struct {
	Time                     []string  `json:"time"`
	Temperature              []float64 `json:"temperature_2m"`
	PrecipitationProbability []float64 `json:"precipitation_probability"`
	WeatherCode              []int     `json:"weathercode"`
}

// DailySeries holds parallel date-indexed arrays, ordered by date ascending.
type DailySeries struct {
	Time             []string  `json:"time"`
	TemperatureMax   []float64 `json:"temperature_2m_max"`
	TemperatureMin   []float64 `json:"temperature_2m_min"`
	PrecipitationSum []float64 `json:"precipitation_sum"`
}

// DailyRow is one row of the daily summary table.
type DailyRow struct {
	Date            time.Time `json:"date"`
	MaxTempC        float64   `json:"maxTempC"`
	MinTempC        float64   `json:"minTempC"`
	PrecipitationMM float64   `json:"precipitationMm"`
}

// HourlyRow is one row of the hourly table.
type HourlyRow struct {
	Time                     time.Time `json:"time"`
	TemperatureC             float64   `json:"temperatureC"`
	PrecipitationProbability float64   `json:"precipitationProbability"`
	Code                     int       `json:"weatherCode"`
	Condition                string    `json:"condition"`
}

// Current describes the conditions for the current local hour.
type Current struct {
	Time         time.Time `json:"time"`
	TemperatureC float64   `json:"temperatureC"`
	Condition    string    `json:"condition"`
	Index        int       `json:"index"`
	// Clamped is set when the local hour fell outside the hourly window.
	Clamped bool `json:"clamped,omitempty"`
}

// Dashboard is everything one render pass needs.
type Dashboard struct {
	Place   Place       `json:"place"`
	Daily   []DailyRow  `json:"daily"`
	Hourly  []HourlyRow `json:"hourly"`
	Current Current     `json:"current"`
}
