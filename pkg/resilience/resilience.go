package resilience

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"pivotchat-backend/pkg/logger"
)

// CircuitBreakerState represents the state of the circuit breaker
type CircuitBreakerState string

const (
	CircuitBreakerClosed   CircuitBreakerState = "closed"
	CircuitBreakerHalfOpen CircuitBreakerState = "half_open"
	CircuitBreakerOpen     CircuitBreakerState = "open"
)

const (
	// failureThreshold opens the circuit after this many consecutive failures.
	failureThreshold = 3
	// cooldownPeriod is how long the circuit stays open before a probe is allowed.
	cooldownPeriod = 10 * time.Second
	// maxAttempts bounds retries per Execute call. Chat input is latency
	// sensitive, so one retry only.
	maxAttempts = 2
	// attemptTimeout caps a single Execute call end to end.
	attemptTimeout = 8 * time.Second
	// backoffInterval is the pause before the retry attempt.
	backoffInterval = 150 * time.Millisecond
)

// BackendResilience wraps translation-backend calls with retry, timeout,
// and a circuit breaker. An open circuit converts calls into immediate
// failures so the pipeline can degrade to passthrough without waiting on a
// dead backend.
type BackendResilience struct {
	mu                  sync.RWMutex
	state               CircuitBreakerState
	consecutiveFailures int
	lastFailureTime     time.Time
	metrics             *backendMetrics
}

// backendMetrics tracks resilience-layer metrics
type backendMetrics struct {
	requestsTotal       *prometheus.CounterVec
	errorsTotal         *prometheus.CounterVec
	circuitBreakerState prometheus.Gauge
}

var (
	backendMetricsInstance *backendMetrics
	backendMetricsOnce     sync.Once
)

// init registers resilience metrics with Prometheus
func init() {
	backendMetricsOnce.Do(func() {
		backendMetricsInstance = &backendMetrics{
			requestsTotal: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "translation_backend_resilience_requests_total",
					Help: "Total number of guarded translation backend requests",
				},
				[]string{"operation", "status"},
			),
			errorsTotal: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "translation_backend_resilience_errors_total",
					Help: "Total number of guarded translation backend errors",
				},
				[]string{"operation", "error_type"},
			),
			circuitBreakerState: prometheus.NewGauge(prometheus.GaugeOpts{
				Name: "translation_backend_circuit_breaker_state",
				Help: "State of translation backend circuit breaker (0=closed, 1=half_open, 2=open)",
			}),
		}
		prometheus.MustRegister(backendMetricsInstance.requestsTotal)
		prometheus.MustRegister(backendMetricsInstance.errorsTotal)
		prometheus.MustRegister(backendMetricsInstance.circuitBreakerState)
	})
}

// NewBackendResilience creates a new resilience wrapper for the translation backend
func NewBackendResilience() *BackendResilience {
	return &BackendResilience{
		state:   CircuitBreakerClosed,
		metrics: backendMetricsInstance,
	}
}

// Execute runs a backend operation with retry, timeout, and circuit breaker.
// The returned error is always a soft failure for the caller: the engine
// maps it to a degraded passthrough result, never a raised exception.
func (r *BackendResilience) Execute(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
	defer cancel()

	if !r.allowRequest() {
		r.metrics.requestsTotal.WithLabelValues(operation, "circuit_breaker_open").Inc()
		logger.Warn("Translation backend circuit breaker is OPEN - request rejected",
			zap.String("operation", operation),
		)
		return fmt.Errorf("translation backend temporarily unavailable (circuit breaker open)")
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-timeoutCtx.Done():
				r.recordFailure(operation, timeoutCtx.Err())
				return fmt.Errorf("%s timed out: %w", operation, timeoutCtx.Err())
			case <-time.After(backoffInterval):
			}
			logger.Warn("Translation backend retry",
				zap.String("operation", operation),
				zap.Int("attempt", attempt),
				zap.Error(lastErr),
			)
		}

		err := fn(timeoutCtx)
		if err == nil {
			r.recordSuccess(operation)
			return nil
		}
		lastErr = err
	}

	r.recordFailure(operation, lastErr)
	return fmt.Errorf("%s failed after %d attempts: %w", operation, maxAttempts, lastErr)
}

// allowRequest checks the circuit state, transitioning open→half-open after
// the cooldown period.
func (r *BackendResilience) allowRequest() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.state {
	case CircuitBreakerClosed, CircuitBreakerHalfOpen:
		return true
	case CircuitBreakerOpen:
		if time.Since(r.lastFailureTime) > cooldownPeriod {
			r.state = CircuitBreakerHalfOpen
			r.metrics.circuitBreakerState.Set(1)
			logger.Info("Translation backend circuit breaker HALF-OPEN - allowing probe")
			return true
		}
		return false
	}
	return true
}

func (r *BackendResilience) recordSuccess(operation string) {
	r.mu.Lock()
	if r.state != CircuitBreakerClosed {
		logger.Info("Translation backend circuit breaker CLOSED - backend recovered",
			zap.String("operation", operation),
		)
	}
	r.state = CircuitBreakerClosed
	r.consecutiveFailures = 0
	r.lastFailureTime = time.Time{}
	r.mu.Unlock()

	r.metrics.circuitBreakerState.Set(0)
	r.metrics.requestsTotal.WithLabelValues(operation, "success").Inc()
}

func (r *BackendResilience) recordFailure(operation string, err error) {
	r.mu.Lock()
	r.consecutiveFailures++
	r.lastFailureTime = time.Now()

	if r.state == CircuitBreakerHalfOpen || r.consecutiveFailures >= failureThreshold {
		r.state = CircuitBreakerOpen
		r.metrics.circuitBreakerState.Set(2)
		logger.Error("Translation backend circuit breaker OPEN",
			zap.String("operation", operation),
			zap.Int("consecutive_failures", r.consecutiveFailures),
		)
	}
	r.mu.Unlock()

	r.metrics.errorsTotal.WithLabelValues(operation, classifyError(err)).Inc()
	r.metrics.requestsTotal.WithLabelValues(operation, "failure").Inc()
}

// GetCircuitBreakerState returns the current circuit breaker state
func (r *BackendResilience) GetCircuitBreakerState() CircuitBreakerState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// classifyError classifies errors for better metrics
func classifyError(err error) string {
	if err == nil {
		return "none"
	}

	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "deadline exceeded"):
		return "timeout"
	case strings.Contains(errMsg, "connection refused") || strings.Contains(errMsg, "network unreachable"):
		return "network"
	case strings.Contains(errMsg, "no such host") || strings.Contains(errMsg, "dns"):
		return "dns"
	case strings.Contains(errMsg, "status"):
		return "http_status"
	case strings.Contains(errMsg, "circuit breaker"):
		return "circuit_breaker"
	default:
		return "unknown"
	}
}
