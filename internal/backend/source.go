// Package backend fetches the processed-file log list from the extraction service.
package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/paperwatch/paperwatch/internal/models"
)

// ErrDecode marks a response body that is not a JSON array of log entries.
var ErrDecode = errors.New("malformed log list")

// Source returns the backend's current log list, oldest first.
type Source interface {
	FetchLogs(ctx context.Context) (models.LogList, error)
	// Endpoint describes where the list comes from, for logs and the header.
	Endpoint() string
}

// NewSource picks an implementation for endpoint: http(s) URLs are polled
// over HTTP, file:// URLs and bare paths are read from disk.
func NewSource(endpoint string, opts ...Option) (Source, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("no endpoint configured")
	}

	u, err := url.Parse(endpoint)
	if err == nil {
		switch u.Scheme {
		case "http", "https":
			return NewHTTPClient(endpoint, opts...), nil
		case "file":
			return NewFileSource(u.Path), nil
		}
	}
	if strings.Contains(endpoint, "://") {
		return nil, fmt.Errorf("unsupported endpoint %q", endpoint)
	}
	return NewFileSource(endpoint), nil
}

// decodeList decodes a JSON array of entries. An empty body, a JSON null, a
// non-array document or trailing data after the array is a decode failure.
func decodeList(r io.Reader) (models.LogList, error) {
	dec := json.NewDecoder(r)
	var list models.LogList
	if err := dec.Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if list == nil {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrDecode)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after the log list", ErrDecode)
	}
	return list, nil
}
