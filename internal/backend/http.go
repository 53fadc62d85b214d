package backend

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/paperwatch/paperwatch/internal/buildinfo"
	"github.com/paperwatch/paperwatch/internal/models"
)

// StatusError reports a non-2xx response from the log-list endpoint.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned %s", e.Status)
}

// HTTPClient polls the backend's log-list endpoint with a parameterless GET.
type HTTPClient struct {
	endpoint string
	client   *http.Client
	timeout  time.Duration
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) {
		h.client = c
	}
}

// WithTimeout bounds each request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTPClient) {
		h.timeout = d
	}
}

// NewHTTPClient creates a client for the given log-list URL.
func NewHTTPClient(endpoint string, opts ...Option) *HTTPClient {
	h := &HTTPClient{
		endpoint: endpoint,
		client:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Endpoint returns the log-list URL.
func (h *HTTPClient) Endpoint() string {
	return h.endpoint
}

// FetchLogs issues one GET and decodes the JSON array in the response.
func (h *HTTPClient) FetchLogs(ctx context.Context) (models.LogList, error) {
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	requestID := uuid.New().String()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "paperwatch/"+buildinfo.Version)
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch logs (request %s): %w", requestID, err)
	}
	defer resp.Body.Close()

	log.WithFields(log.Fields{
		"request_id": requestID,
		"status":     resp.StatusCode,
		"elapsed":    time.Since(start).Round(time.Millisecond),
	}).Debug("log list response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch logs (request %s): %w", requestID, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		})
	}

	list, err := decodeList(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch logs (request %s): %w", requestID, err)
	}
	return list, nil
}
