package metrics

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperwatch/paperwatch/internal/models"
)

type stubSource struct {
	list models.LogList
	err  error
}

func (s *stubSource) FetchLogs(context.Context) (models.LogList, error) {
	return s.list, s.err
}

func (s *stubSource) Endpoint() string { return "stub" }

func counterValue(t *testing.T, m *Metrics, result string) float64 {
	t.Helper()
	var out dto.Metric
	require.NoError(t, m.fetches.WithLabelValues(result).Write(&out))
	return out.GetCounter().GetValue()
}

func TestInstrumentCountsResults(t *testing.T) {
	m := New()
	ok := m.Instrument(&stubSource{list: models.LogList{{}, {}, {}}})
	bad := m.Instrument(&stubSource{err: errors.New("down")})

	_, err := ok.FetchLogs(context.Background())
	require.NoError(t, err)
	_, err = ok.FetchLogs(context.Background())
	require.NoError(t, err)
	_, err = bad.FetchLogs(context.Background())
	require.Error(t, err)

	assert.Equal(t, 2.0, counterValue(t, m, ResultOK))
	assert.Equal(t, 1.0, counterValue(t, m, ResultError))

	var gauge dto.Metric
	require.NoError(t, m.entries.Write(&gauge))
	assert.Equal(t, 3.0, gauge.GetGauge().GetValue())

	assert.Equal(t, "stub", ok.Endpoint())
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	_, _ = m.Instrument(&stubSource{}).FetchLogs(context.Background())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "paperwatch_fetch_total")
	assert.Contains(t, string(body), "paperwatch_log_entries")
}
