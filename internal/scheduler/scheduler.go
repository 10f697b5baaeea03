package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/i474232898/weather-dashboard/internal/observability"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

// ProbeStatus is the result of the most recent upstream probe.
type ProbeStatus struct {
	CheckedAt time.Time `json:"checkedAt"`
	OK        bool      `json:"ok"`
	Error     string    `json:"error,omitempty"`
}

// Scheduler periodically checks that the geocoding upstream answers for a known place.
// Results are only kept for health reporting; nothing fetched is reused.
type Scheduler struct {
	scheduler *gocron.Scheduler
	geocoder  weather.Geocoder
	place     string
	interval  time.Duration
	timeout   time.Duration
	clock     clockwork.Clock
	metrics   *observability.Metrics
	logger    *zap.Logger

	mu   sync.RWMutex
	last ProbeStatus
}

// New creates a new Scheduler.
func New(geocoder weather.Geocoder, place string, interval, timeout time.Duration, metrics *observability.Metrics, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		geocoder:  geocoder,
		place:     place,
		interval:  interval,
		timeout:   timeout,
		clock:     clockwork.NewRealClock(),
		metrics:   metrics,
		logger:    logger,
	}
}

// Start schedules the probe job and starts the underlying scheduler.
// A zero interval disables probing.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		s.logger.Info("scheduler: probe interval is zero; upstream probing disabled")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).Do(func() {
		s.Probe(context.Background())
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

// Probe geocodes the configured place once and records the outcome.
func (s *Scheduler) Probe(ctx context.Context) ProbeStatus {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	status := ProbeStatus{CheckedAt: s.clock.Now().UTC(), OK: true}
	if _, err := s.geocoder.Geocode(ctx, s.place); err != nil {
		status.OK = false
		status.Error = err.Error()
		s.logger.Warn("scheduler: upstream probe failed", zap.String("place", s.place), zap.Error(err))
	} else {
		s.logger.Debug("scheduler: upstream probe ok", zap.String("place", s.place))
	}

	s.metrics.SetProbe(status.OK)

	s.mu.Lock()
	s.last = status
	s.mu.Unlock()
	return status
}

// Last returns the most recent probe result; ok is false when no probe has run yet.
func (s *Scheduler) Last() (ProbeStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, !s.last.CheckedAt.IsZero()
}
