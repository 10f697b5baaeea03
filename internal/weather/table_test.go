package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDaily_PreservesOrder(t *testing.T) {
	f := newForecast(168, 7)

	rows, err := BuildDaily(f)
	require.NoError(t, err)
	require.Len(t, rows, 7)

	for i, r := range rows {
		assert.Equal(t, f.Daily.Time[i], r.Date.Format(dayLayout))
		assert.Equal(t, f.Daily.TemperatureMax[i], r.MaxTempC)
		assert.Equal(t, f.Daily.TemperatureMin[i], r.MinTempC)
		assert.Equal(t, f.Daily.PrecipitationSum[i], r.PrecipitationMM)
	}
}

func TestBuildDaily_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Forecast)
	}{
		{"missing daily", func(f *Forecast) { f.Daily = nil }},
		{"missing time", func(f *Forecast) { f.Daily.Time = nil }},
		{"length mismatch", func(f *Forecast) { f.Daily.TemperatureMin = f.Daily.TemperatureMin[:3] }},
		{"bad date", func(f *Forecast) { f.Daily.Time[2] = "yesterday" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newForecast(24, 7)
			tt.mutate(&f)

			_, err := BuildDaily(f)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestBuildHourly_FirstWindowOnly(t *testing.T) {
	f := newForecast(168, 7)

	rows, err := BuildHourly(f, "en")
	require.NoError(t, err)
	require.Len(t, rows, HourlyWindow)

	for i, r := range rows {
		assert.Equal(t, f.Hourly.Time[i], r.Time.Format(hourLayout))
		assert.Equal(t, f.Hourly.Temperature[i], r.TemperatureC)
		assert.Equal(t, f.Hourly.PrecipitationProbability[i], r.PrecipitationProbability)
		assert.Equal(t, f.Hourly.WeatherCode[i], r.Code)
		assert.Equal(t, Describe(f.Hourly.WeatherCode[i]), r.Condition)
	}
}

func TestBuildHourly_ShortSeries(t *testing.T) {
	rows, err := BuildHourly(newForecast(10, 7), "de")
	require.NoError(t, err)
	require.Len(t, rows, 10)
	assert.Equal(t, "Klar", rows[0].Condition)
}

func TestBuildHourly_Malformed(t *testing.T) {
	f := newForecast(48, 7)
	f.Hourly.WeatherCode = f.Hourly.WeatherCode[:47]

	_, err := BuildHourly(f, "en")
	assert.ErrorIs(t, err, ErrMalformedResponse)

	f = newForecast(48, 7)
	f.Hourly = nil
	_, err = BuildHourly(f, "en")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestCurrentIndex(t *testing.T) {
	tests := []struct {
		hour, n     int
		wantIdx     int
		wantClamped bool
	}{
		{14, 24, 14, false},
		{0, 24, 0, false},
		{23, 24, 23, false},
		{23, 10, 9, true},
		{-3, 24, 0, true},
		{5, 0, -1, false},
	}
	for _, tt := range tests {
		idx, clamped := CurrentIndex(tt.hour, tt.n)
		assert.Equal(t, tt.wantIdx, idx, "hour=%d n=%d", tt.hour, tt.n)
		assert.Equal(t, tt.wantClamped, clamped, "hour=%d n=%d", tt.hour, tt.n)
	}
}

func TestCurrentConditions_Hour14(t *testing.T) {
	f := newForecast(24, 7)
	rows, err := BuildHourly(f, "en")
	require.NoError(t, err)

	cur, err := CurrentConditions(rows, 14)
	require.NoError(t, err)
	assert.Equal(t, f.Hourly.Temperature[14], cur.TemperatureC)
	assert.Equal(t, rows[14].Condition, cur.Condition)
	assert.Equal(t, 14, cur.Index)
	assert.False(t, cur.Clamped)
}

func TestCurrentConditions_Empty(t *testing.T) {
	_, err := CurrentConditions(nil, 3)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestLocation_FallsBackToOffset(t *testing.T) {
	f := Forecast{Timezone: "Not/AZone", TimezoneAbbreviation: "CEST", UTCOffsetSeconds: 7200}

	loc := Location(f)
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC).In(loc)
	assert.Equal(t, 14, ts.Hour())
	assert.Equal(t, "CEST", loc.String())
}
