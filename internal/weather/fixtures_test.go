package weather

import (
	"time"
)

var fixtureStart = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

// newForecast builds a forecast with the given number of hourly and daily
// entries. Hourly temperature at index i is i+0.5 and the code cycles through
// a few known values.
func newForecast(hours, days int) Forecast {
	codes := []int{0, 1, 2, 3, 61}
	h := &HourlySeries{
		Time:                     make([]string, 0, hours),
		Temperature:              make([]float64, 0, hours),
		PrecipitationProbability: make([]float64, 0, hours),
		WeatherCode:              make([]int, 0, hours),
	}
	for i := 0; i < hours; i++ {
		h.Time = append(h.Time, fixtureStart.Add(time.Duration(i)*time.Hour).Format(hourLayout))
		h.Temperature = append(h.Temperature, float64(i)+0.5)
		h.PrecipitationProbability = append(h.PrecipitationProbability, float64(i%100))
		h.WeatherCode = append(h.WeatherCode, codes[i%len(codes)])
	}

	d := &DailySeries{
		Time:             make([]string, 0, days),
		TemperatureMax:   make([]float64, 0, days),
		TemperatureMin:   make([]float64, 0, days),
		PrecipitationSum: make([]float64, 0, days),
	}
	for i := 0; i < days; i++ {
		d.Time = append(d.Time, fixtureStart.AddDate(0, 0, i).Format(dayLayout))
		d.TemperatureMax = append(d.TemperatureMax, 20+float64(i))
		d.TemperatureMin = append(d.TemperatureMin, 10+float64(i))
		d.PrecipitationSum = append(d.PrecipitationSum, float64(i)/2)
	}

	return Forecast{
		Latitude:             52.52,
		Longitude:            13.405,
		Timezone:             "UTC",
		TimezoneAbbreviation: "UTC",
		Hourly:               h,
		Daily:                d,
	}
}
