package weather

import (
	"fmt"
	"time"
)

const (
	hourLayout = "2006-01-02T15:04"
	dayLayout  = "2006-01-02"
)

// Location returns the forecast's local time zone. The IANA name is preferred;
// when it cannot be loaded the UTC offset reported by the provider is used.
func Location(f Forecast) *time.Location {
	if f.Timezone != "" {
		if loc, err := time.LoadLocation(f.Timezone); err == nil {
			return loc
		}
	}
	name := f.TimezoneAbbreviation
	if name == "" {
		name = "UTC"
	}
	return time.FixedZone(name, f.UTCOffsetSeconds)
}

// BuildDaily turns the daily series into table rows, preserving input order.
func BuildDaily(f Forecast) ([]DailyRow, error) {
	d := f.Daily
	if d == nil || d.Time == nil {
		return nil, fmt.Errorf("%w: daily series missing", ErrMalformedResponse)
	}
	n := len(d.Time)
	if len(d.TemperatureMax) != n || len(d.TemperatureMin) != n || len(d.PrecipitationSum) != n {
		return nil, fmt.Errorf("%w: daily series lengths differ", ErrMalformedResponse)
	}

	loc := Location(f)
	rows := make([]DailyRow, 0, n)
	for i := 0; i < n; i++ {
		date, err := time.ParseInLocation(dayLayout, d.Time[i], loc)
		if err != nil {
			return nil, fmt.Errorf("%w: daily time %q: %v", ErrMalformedResponse, d.Time[i], err)
		}
		rows = append(rows, DailyRow{
			Date:            date,
			MaxTempC:        d.TemperatureMax[i],
			MinTempC:        d.TemperatureMin[i],
			PrecipitationMM: d.PrecipitationSum[i],
		})
	}
	return rows, nil
}

// BuildHourly returns the first HourlyWindow hourly entries in original order,
// with weather codes translated into lang.
func BuildHourly(f Forecast, lang string) ([]HourlyRow, error) {
	h := f.Hourly
	if h == nil || h.Time == nil {
		return nil, fmt.Errorf("%w: hourly series missing", ErrMalformedResponse)
	}
	n := len(h.Time)
	if len(h.Temperature) != n || len(h.PrecipitationProbability) != n || len(h.WeatherCode) != n {
		return nil, fmt.Errorf("%w: hourly series lengths differ", ErrMalformedResponse)
	}
	if n > HourlyWindow {
		n = HourlyWindow
	}

	loc := Location(f)
	rows := make([]HourlyRow, 0, n)
	for i := 0; i < n; i++ {
		ts, err := time.ParseInLocation(hourLayout, h.Time[i], loc)
		if err != nil {
			return nil, fmt.Errorf("%w: hourly time %q: %v", ErrMalformedResponse, h.Time[i], err)
		}
		rows = append(rows, HourlyRow{
			Time:                     ts,
			TemperatureC:             h.Temperature[i],
			PrecipitationProbability: h.PrecipitationProbability[i],
			Code:                     h.WeatherCode[i],
			Condition:                DescribeIn(lang, h.WeatherCode[i]),
		})
	}
	return rows, nil
}

// CurrentIndex bounds-checks hour against a window of n entries.
// The second result reports whether the hour had to be clamped.
// For an empty window it returns -1.
func CurrentIndex(hour, n int) (int, bool) {
	switch {
	case n <= 0:
		return -1, false
	case hour < 0:
		return 0, true
	case hour >= n:
		return n - 1, true
	default:
		return hour, false
	}
}

// CurrentConditions picks the row for the given local hour out of rows.
func CurrentConditions(rows []HourlyRow, hour int) (Current, error) {
	idx, clamped := CurrentIndex(hour, len(rows))
	if idx < 0 {
		return Current{}, fmt.Errorf("%w: no hourly entries", ErrMalformedResponse)
	}
	r := rows[idx]
	return Current{
		Time:         r.Time,
		TemperatureC: r.TemperatureC,
		Condition:    r.Condition,
		Index:        idx,
		Clamped:      clamped,
	}, nil
}
