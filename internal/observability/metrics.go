package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "weather_dashboard"

// Upstream outcomes recorded by ObserveUpstream.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeStatus  = "bad_status"
	OutcomeOpen    = "circuit_open"
)

// Metrics holds the Prometheus collectors for upstream calls and render passes.
type Metrics struct {
	UpstreamRequests *prometheus.CounterVec   // labels: upstream={geocoding,forecast,google}, outcome
	UpstreamDuration *prometheus.HistogramVec // labels: upstream
	Renders          *prometheus.CounterVec   // labels: outcome={ok,empty,place_not_found,forecast_unavailable}
	ProbeUp          prometheus.Gauge
}

func newMetrics() *Metrics {
	return &Metrics{
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Outbound requests to the geocoding and forecast services by outcome.",
		}, []string{"upstream", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Outbound request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"upstream"}),
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dashboard_renders_total",
			Help:      "Dashboard render passes by outcome.",
		}, []string{"outcome"}),
		ProbeUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "upstream_probe_up",
			Help:      "1 when the last geocoding probe succeeded, 0 otherwise.",
		}),
	}
}

// NewMetrics creates the collectors and registers them with the default registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.Renders,
		m.ProbeUp,
	)
	return m
}

// NewMetricsForTesting creates unregistered collectors so tests can build
// as many instances as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

// ObserveUpstream records one outbound call. Safe on a nil receiver.
func (m *Metrics) ObserveUpstream(upstream, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.UpstreamRequests.WithLabelValues(upstream, outcome).Inc()
	m.UpstreamDuration.WithLabelValues(upstream).Observe(elapsed.Seconds())
}

// ObserveRender records the outcome of one render pass. Safe on a nil receiver.
func (m *Metrics) ObserveRender(outcome string) {
	if m == nil {
		return
	}
	m.Renders.WithLabelValues(outcome).Inc()
}

// SetProbe records the last probe result. Safe on a nil receiver.
func (m *Metrics) SetProbe(ok bool) {
	if m == nil {
		return
	}
	if ok {
		m.ProbeUp.Set(1)
		return
	}
	m.ProbeUp.Set(0)
}
