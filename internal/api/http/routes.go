package httpapi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/i474232898/weather-dashboard/internal/observability"
	"github.com/i474232898/weather-dashboard/internal/scheduler"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

var validate = validator.New()

const (
	msgPlaceNotFound = "Place not found. Please try another city."
	msgForecastError = "Could not retrieve weather data."
	msgInvalidPlace  = "Please enter a shorter place name."
)

// Render outcomes recorded in metrics.
const (
	renderOK                  = "ok"
	renderEmpty               = "empty"
	renderInvalid             = "invalid"
	renderPlaceNotFound       = "place_not_found"
	renderForecastUnavailable = "forecast_unavailable"
)

// ProbeReporter exposes the latest upstream probe for /health.
type ProbeReporter interface {
	Last() (scheduler.ProbeStatus, bool)
}

// RouteOptions carries the collaborators the handlers need besides the service.
type RouteOptions struct {
	DefaultPlace string
	Metrics      *observability.Metrics
	Probe        ProbeReporter
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, opts RouteOptions) {
	app.Get("/health", func(c *fiber.Ctx) error {
		body := fiber.Map{
			"status":  "ok",
			"service": "weather-dashboard",
		}
		if opts.Probe != nil {
			if st, ok := opts.Probe.Last(); ok {
				body["upstream"] = st
			}
		}
		return c.JSON(body)
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/", func(c *fiber.Ctx) error {
		place := placeParam(c, opts.DefaultPlace)
		view := pageView{
			Title: "Weather Forecast",
			Lang:  service.Language(),
			Place: place,
		}

		q := dashboardQuery{Place: strings.TrimSpace(place)}
		if q.Place == "" {
			opts.Metrics.ObserveRender(renderEmpty)
			return c.Render("index", view)
		}
		if err := validate.Struct(q); err != nil {
			opts.Metrics.ObserveRender(renderInvalid)
			view.Error = msgInvalidPlace
			return c.Status(fiber.StatusBadRequest).Render("index", view)
		}

		dash, err := service.Dashboard(c.UserContext(), q.Place)
		if err != nil {
			status, outcome, msg := classify(err)
			opts.Metrics.ObserveRender(outcome)
			view.Error = msg
			return c.Status(status).Render("index", view)
		}

		opts.Metrics.ObserveRender(renderOK)
		view.Dashboard = newDashboardView(dash)
		return c.Render("index", view)
	})

	v1 := app.Group("/api/v1")

	v1.Get("/dashboard", func(c *fiber.Ctx) error {
		q := dashboardQuery{Place: strings.TrimSpace(c.Query("place"))}
		if err := validate.Struct(q); err != nil {
			if q.Place == "" {
				opts.Metrics.ObserveRender(renderEmpty)
			} else {
				opts.Metrics.ObserveRender(renderInvalid)
			}
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		dash, err := service.Dashboard(c.UserContext(), q.Place)
		if err != nil {
			status, outcome, msg := classify(err)
			opts.Metrics.ObserveRender(outcome)
			return fiber.NewError(status, msg)
		}

		opts.Metrics.ObserveRender(renderOK)
		return c.JSON(dash)
	})
}

// dashboardQuery holds the place input.
type dashboardQuery struct {
	Place string `validate:"required,max=100"`
}

// placeParam returns the place query parameter, or def when the parameter is absent.
// A present but empty parameter stays empty.
func placeParam(c *fiber.Ctx, def string) string {
	if !c.Context().QueryArgs().Has("place") {
		return def
	}
	return c.Query("place")
}

// classify maps a service error to a status code, metrics outcome and user message.
func classify(err error) (int, string, string) {
	switch {
	case errors.Is(err, weather.ErrPlaceNotFound):
		return fiber.StatusNotFound, renderPlaceNotFound, msgPlaceNotFound
	case errors.Is(err, weather.ErrEmptyPlace):
		return fiber.StatusBadRequest, renderEmpty, weather.ErrEmptyPlace.Error()
	default:
		return fiber.StatusBadGateway, renderForecastUnavailable, msgForecastError
	}
}

// pageView is the template binding for views/index.html.
type pageView struct {
	Title     string
	Lang      string
	Place     string
	Error     string
	Dashboard *dashboardView
}

type dashboardView struct {
	Heading          string
	Chart            chartData
	CurrentTemp      string
	CurrentCondition string
	Hourly           []hourlyView
	Daily            []dailyView
}

// chartData is serialised into the page script for the temperature chart.
type chartData struct {
	Labels []string  `json:"labels"`
	Max    []float64 `json:"max"`
	Min    []float64 `json:"min"`
}

type hourlyView struct {
	Time                     string
	Temperature              string
	PrecipitationProbability string
	Condition                string
	Current                  bool
}

type dailyView struct {
	Date          string
	Max           string
	Min           string
	Precipitation string
}

func newDashboardView(d weather.Dashboard) *dashboardView {
	v := &dashboardView{
		Heading:          d.Place.Label(),
		CurrentTemp:      fmt.Sprintf("%.1f°C", d.Current.TemperatureC),
		CurrentCondition: d.Current.Condition,
		Chart: chartData{
			Labels: make([]string, 0, len(d.Daily)),
			Max:    make([]float64, 0, len(d.Daily)),
			Min:    make([]float64, 0, len(d.Daily)),
		},
	}

	for _, r := range d.Daily {
		date := r.Date.Format("2006-01-02")
		v.Chart.Labels = append(v.Chart.Labels, date)
		v.Chart.Max = append(v.Chart.Max, r.MaxTempC)
		v.Chart.Min = append(v.Chart.Min, r.MinTempC)
		v.Daily = append(v.Daily, dailyView{
			Date:          date,
			Max:           fmt.Sprintf("%.1f°C", r.MaxTempC),
			Min:           fmt.Sprintf("%.1f°C", r.MinTempC),
			Precipitation: fmt.Sprintf("%.1f mm", r.PrecipitationMM),
		})
	}

	for i, r := range d.Hourly {
		v.Hourly = append(v.Hourly, hourlyView{
			Time:                     r.Time.Format("2006-01-02 15:04"),
			Temperature:              fmt.Sprintf("%.1f°C", r.TemperatureC),
			PrecipitationProbability: fmt.Sprintf("%.0f%%", r.PrecipitationProbability),
			Condition:                r.Condition,
			Current:                  i == d.Current.Index,
		})
	}

	return v
}
