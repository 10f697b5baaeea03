package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Service runs one dashboard render pass: geocode, fetch, reshape.
// It holds no per-request state.
type Service struct {
	geocoder Geocoder
	fetcher  ForecastFetcher
	clock    clockwork.Clock
	logger   *zap.Logger
	lang     string
}

// Option customises a Service.
type Option func(*Service)

// WithClock overrides the time source used to find the current hour.
func WithClock(c clockwork.Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLanguage selects the label table for weather conditions.
func WithLanguage(lang string) Option {
	return func(s *Service) {
		s.lang = lang
	}
}

// NewService creates a new Service.
func NewService(geocoder Geocoder, fetcher ForecastFetcher, opts ...Option) *Service {
	s := &Service{
		geocoder: geocoder,
		fetcher:  fetcher,
		clock:    clockwork.NewRealClock(),
		logger:   zap.NewNop(),
		lang:     "en",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Language returns the configured label language.
func (s *Service) Language() string {
	return s.lang
}

// Dashboard resolves place and builds the full dashboard for it.
// Every failure is reported as ErrEmptyPlace, ErrPlaceNotFound or ErrForecastUnavailable.
func (s *Service) Dashboard(ctx context.Context, place string) (Dashboard, error) {
	place = strings.TrimSpace(place)
	if place == "" {
		return Dashboard{}, ErrEmptyPlace
	}

	resolved, err := s.geocoder.Geocode(ctx, place)
	if err != nil {
		s.logger.Warn("geocoding failed", zap.String("place", place), zap.Error(err))
		return Dashboard{}, categorize(err, ErrPlaceNotFound)
	}
	if resolved.Name == "" {
		resolved.Name = place
	}

	forecast, err := s.fetcher.FetchForecast(ctx, resolved.Coordinates)
	if err != nil {
		s.logger.Warn("forecast fetch failed",
			zap.String("place", place),
			zap.Float64("latitude", resolved.Coordinates.Latitude),
			zap.Float64("longitude", resolved.Coordinates.Longitude),
			zap.Error(err))
		return Dashboard{}, categorize(err, ErrForecastUnavailable)
	}

	dash, err := s.build(resolved, forecast)
	if err != nil {
		s.logger.Warn("forecast response rejected", zap.String("place", place), zap.Error(err))
		return Dashboard{}, categorize(err, ErrForecastUnavailable)
	}

	s.logger.Debug("dashboard built",
		zap.String("place", resolved.Label()),
		zap.Int("daily", len(dash.Daily)),
		zap.Int("hourly", len(dash.Hourly)),
		zap.Int("current_index", dash.Current.Index))
	return dash, nil
}

func (s *Service) build(place Place, f Forecast) (Dashboard, error) {
	if place.Timezone == "" {
		place.Timezone = f.Timezone
	}

	daily, err := BuildDaily(f)
	if err != nil {
		return Dashboard{}, err
	}
	hourly, err := BuildHourly(f, s.lang)
	if err != nil {
		return Dashboard{}, err
	}

	hour := s.clock.Now().In(Location(f)).Hour()
	current, err := CurrentConditions(hourly, hour)
	if err != nil {
		return Dashboard{}, err
	}
	if current.Clamped {
		s.logger.Info("current hour outside hourly window; clamped",
			zap.Int("hour", hour), zap.Int("index", current.Index))
	}

	return Dashboard{
		Place:   place,
		Daily:   daily,
		Hourly:  hourly,
		Current: current,
	}, nil
}

// categorize makes sure err matches category without losing the cause.
func categorize(err, category error) error {
	if errors.Is(err, category) {
		return err
	}
	return fmt.Errorf("%w: %w", category, err)
}
