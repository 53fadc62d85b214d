package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperwatch/paperwatch/internal/models"
)

const twoEntries = `[
	{"timestamp": "2024-03-01 10:00:00", "original_path": "/docs/a.pdf", "status": "success",
	 "new_path": "/docs/A_2020.pdf", "processing_time": 1.5, "metadata": {"author": "A"}},
	{"timestamp": "2024-03-01 10:01:00", "original_path": "/docs/b.pdf", "status": "error",
	 "error": "boom", "processing_time": 0.1}
]`

func TestHTTPClientFetchLogs(t *testing.T) {
	var gotMethod, gotAccept, gotRequestID, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotAccept = r.Header.Get("Accept")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(twoEntries))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL + "/get_logs")
	list, err := c.FetchLogs(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "application/json", gotAccept)
	assert.NotEmpty(t, gotRequestID)
	assert.Empty(t, gotQuery)

	require.Len(t, list, 2)
	assert.Equal(t, "/docs/a.pdf", list[0].OriginalPath, "order must be preserved")
	assert.Equal(t, models.StatusError, list[1].Status)
}

func TestHTTPClientFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr func(t *testing.T, err error)
	}{
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   `{"error": "db down"}`,
			wantErr: func(t *testing.T, err error) {
				var se *StatusError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
			},
		},
		{
			name:   "not found",
			status: http.StatusNotFound,
			body:   "missing",
			wantErr: func(t *testing.T, err error) {
				var se *StatusError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, http.StatusNotFound, se.StatusCode)
			},
		},
		{
			name:   "html body",
			status: http.StatusOK,
			body:   "<html>login</html>",
			wantErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrDecode)
			},
		},
		{
			name:   "object instead of array",
			status: http.StatusOK,
			body:   `{"logs": []}`,
			wantErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrDecode)
			},
		},
		{
			name:   "null",
			status: http.StatusOK,
			body:   "null",
			wantErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrDecode)
			},
		},
		{
			name:   "trailing garbage",
			status: http.StatusOK,
			body:   `[{"status": "success"}] trailing garbage`,
			wantErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrDecode)
			},
		},
		{
			name:   "two arrays",
			status: http.StatusOK,
			body:   `[] []`,
			wantErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrDecode)
			},
		},
		{
			name:   "empty body",
			status: http.StatusOK,
			body:   "",
			wantErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrDecode)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewHTTPClient(srv.URL).FetchLogs(context.Background())
			require.Error(t, err)
			tt.wantErr(t, err)
		})
	}
}

func TestHTTPClientEmptyArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	list, err := NewHTTPClient(srv.URL).FetchLogs(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestHTTPClientTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := NewHTTPClient(srv.URL, WithTimeout(50*time.Millisecond))
	_, err := c.FetchLogs(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHTTPClientNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPClient(url).FetchLogs(context.Background())
	assert.Error(t, err)
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "logs.json")
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(good, []byte(twoEntries), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("not json"), 0o644))

	list, err := NewFileSource(good).FetchLogs(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = NewFileSource(bad).FetchLogs(context.Background())
	assert.ErrorIs(t, err, ErrDecode)

	_, err = NewFileSource(filepath.Join(dir, "absent.json")).FetchLogs(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewSource(t *testing.T) {
	tests := []struct {
		endpoint string
		wantHTTP bool
		wantFile string
		wantErr  bool
	}{
		{endpoint: "http://localhost:5100/get_logs", wantHTTP: true},
		{endpoint: "https://papers.example.org/get_logs", wantHTTP: true},
		{endpoint: "file:///var/lib/papers/logs.json", wantFile: "/var/lib/papers/logs.json"},
		{endpoint: "./logs.json", wantFile: "./logs.json"},
		{endpoint: "ftp://host/logs", wantErr: true},
		{endpoint: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			src, err := NewSource(tt.endpoint)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantHTTP {
				assert.IsType(t, &HTTPClient{}, src)
				return
			}
			fs, ok := src.(*FileSource)
			require.True(t, ok)
			assert.Equal(t, tt.wantFile, fs.Path())
		})
	}
}

func TestHTTPClientTolerantOfOddEntryValues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"original_path": "/in/a.pdf", "status": "success", "metadata": {"author": true}},
			{"original_path": "/in/b.pdf", "status": "error", "processing_time": "n/a"}
		]`))
	}))
	defer srv.Close()

	list, err := NewHTTPClient(srv.URL).FetchLogs(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "true", list[0].Metadata.Author.String())
	assert.Nil(t, list[1].ProcessingTime)
}
