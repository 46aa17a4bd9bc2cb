package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"pivotchat-backend/internal/domain"
	"pivotchat-backend/pkg/errors"
	"pivotchat-backend/pkg/logger"
	"pivotchat-backend/pkg/metrics"
)

const (
	// DefaultBackendTimeout caps a single backend HTTP call. Chat input is
	// latency sensitive; slow translations degrade to passthrough instead.
	DefaultBackendTimeout = 6 * time.Second
)

// Backend is the external translation service boundary. Implementations
// must be safe for concurrent use. Language identifiers are lowercase,
// trimmed, registry names or codes.
type Backend interface {
	// Translate performs one hop of token-level translation.
	Translate(ctx context.Context, req domain.TranslateRequest) (*domain.TranslateResponse, error)

	// Bidirectional asks the backend for a full dual-view result in one
	// round trip. Optional fast path; the engine can compose the same
	// result from Translate hops.
	Bidirectional(ctx context.Context, req domain.BidirectionalRequest) (*domain.BidirectionalResponse, error)
}

// HTTPBackend talks to the translation backend over JSON HTTP. All calls
// POST to a single invoke endpoint with a mode discriminator; each mode has
// its own typed payload and result.
type HTTPBackend struct {
	baseURL    string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

// invokeEnvelope is the wire envelope for backend calls.
type invokeEnvelope struct {
	Mode    domain.BackendMode `json:"mode"`
	Payload any                `json:"payload"`
}

// NewHTTPBackend creates an HTTP translation backend client.
// metrics may be nil.
func NewHTTPBackend(baseURL string, timeout time.Duration, m *metrics.Metrics) *HTTPBackend {
	if timeout <= 0 {
		timeout = DefaultBackendTimeout
	}
	return &HTTPBackend{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		metrics:    m,
	}
}

// Translate performs a single translation hop.
func (b *HTTPBackend) Translate(ctx context.Context, req domain.TranslateRequest) (*domain.TranslateResponse, error) {
	var result domain.TranslateResponse
	if err := b.invoke(ctx, domain.ModeTranslate, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Bidirectional requests a dual-view result in one round trip.
func (b *HTTPBackend) Bidirectional(ctx context.Context, req domain.BidirectionalRequest) (*domain.BidirectionalResponse, error) {
	var result domain.BidirectionalResponse
	if err := b.invoke(ctx, domain.ModeBidirectional, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// invoke executes one backend call and decodes the typed result.
func (b *HTTPBackend) invoke(ctx context.Context, mode domain.BackendMode, payload, result any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(invokeEnvelope{Mode: mode, Payload: payload}); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "encode backend request", err)
	}

	url := b.baseURL + "/invoke"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, buf)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "create backend request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := b.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		if b.metrics != nil {
			b.metrics.RecordBackendError(string(mode), "transport")
		}
		if ctx.Err() == context.DeadlineExceeded {
			return errors.BackendTimeoutError(err)
		}
		return errors.BackendUnavailableError(err)
	}
	defer resp.Body.Close()

	if b.metrics != nil {
		b.metrics.RecordBackendRequest(string(mode), resp.StatusCode, duration)
	}
	logger.Debug("Backend call completed",
		zap.String("mode", string(mode)),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if b.metrics != nil {
			b.metrics.RecordBackendError(string(mode), "http_status")
		}
		return errors.BackendResponseError(resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		if b.metrics != nil {
			b.metrics.RecordBackendError(string(mode), "decode")
		}
		return errors.Wrap(errors.ErrCodeBackendResponse, fmt.Sprintf("decode %s response", mode), err)
	}
	return nil
}
