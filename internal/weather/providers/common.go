package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-dashboard/internal/observability"
)

var (
	errUnexpectedStatus = errors.New("unexpected status code")
	errCircuitOpen      = errors.New("circuit breaker open")
	errNoHTTPClient     = errors.New("http client not configured")
)

// upstream performs single JSON GET requests against one remote service.
// Calls go through a circuit breaker so a dead upstream fails fast; nothing is retried.
type upstream struct {
	name    string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
	metrics *observability.Metrics
}

func newUpstream(name string, client *http.Client, metrics *observability.Metrics) *upstream {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &upstream{
		name:    name,
		client:  client,
		circuit: cb,
		metrics: metrics,
	}
}

// getJSON issues one GET to rawURL and decodes a 200 response body into dst.
func (u *upstream) getJSON(ctx context.Context, rawURL string, dst any) error {
	if u.client == nil {
		return errNoHTTPClient
	}

	start := time.Now()
	outcome := observability.OutcomeError
	defer func() {
		u.metrics.ObserveUpstream(u.name, outcome, time.Since(start))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	result, err := u.circuit.Execute(func() (interface{}, error) {
		resp, execErr := u.client.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		if resp.StatusCode != http.StatusOK {
			// Drain so the connection can be reused.
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return nil, fmt.Errorf("%w: %d", errUnexpectedStatus, resp.StatusCode)
		}
		return resp, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			outcome = observability.OutcomeOpen
			return fmt.Errorf("%s: %w: %v", u.name, errCircuitOpen, err)
		case errors.Is(err, errUnexpectedStatus):
			outcome = observability.OutcomeStatus
		}
		return fmt.Errorf("%s request: %w", u.name, err)
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return fmt.Errorf("unexpected result type from circuit breaker")
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%s decode response: %w", u.name, err)
	}

	outcome = observability.OutcomeSuccess
	return nil
}
