package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperwatch/paperwatch/internal/models"
	"github.com/paperwatch/paperwatch/internal/store"
)

type stubSource struct {
	logs models.LogList
	err  error
}

func (s *stubSource) FetchLogs(context.Context) (models.LogList, error) {
	return s.logs, s.err
}

func (s *stubSource) Endpoint() string {
	return "stub://logs"
}

func entry(status models.Status, path string) models.LogEntry {
	return models.LogEntry{
		Timestamp:    "2024-01-01 10:00:00",
		OriginalPath: path,
		Status:       status,
	}
}

func TestPollerArm(t *testing.T) {
	manual := NewPoller(&stubSource{}, models.Session{}, 0, false)
	assert.Nil(t, manual.Arm())
	assert.Equal(t, models.DefaultPollInterval, manual.Interval())

	monitoring := NewPoller(&stubSource{}, models.Session{MonitoringActive: true}, time.Second, false)
	assert.NotNil(t, monitoring.Arm())
	assert.True(t, monitoring.Monitoring())
}

func TestPollerRefreshDeliversResult(t *testing.T) {
	logs := models.LogList{entry(models.StatusSuccess, "/in/a.pdf")}
	p := NewPoller(&stubSource{logs: logs}, models.Session{}, 0, false)

	cmd := p.Refresh()
	require.NotNil(t, cmd)
	assert.True(t, p.InFlight())

	msg, ok := cmd().(LogsFetchedMsg)
	require.True(t, ok)
	assert.Equal(t, uint64(1), msg.Seq)
	assert.Equal(t, logs, msg.Logs)

	s := store.New()
	assert.True(t, p.Apply(msg, s))
	assert.False(t, p.InFlight())
	assert.Equal(t, 1, s.Len())
}

func TestPollerRefreshFailure(t *testing.T) {
	p := NewPoller(&stubSource{err: errors.New("connection refused")}, models.Session{}, 0, false)

	msg, ok := p.Refresh()().(FetchFailedMsg)
	require.True(t, ok)
	require.Error(t, msg.Err)

	s := store.New()
	s.Replace(models.LogList{entry(models.StatusError, "/in/b.pdf")})
	before := s.Snapshot()

	p.Fail(msg)
	assert.False(t, p.InFlight())
	assert.Equal(t, before, s.Snapshot())
}

func TestPollerOutOfOrderResponses(t *testing.T) {
	older := models.LogList{entry(models.StatusSuccess, "/in/a.pdf")}
	newer := models.LogList{
		entry(models.StatusSuccess, "/in/a.pdf"),
		entry(models.StatusSkipped, "/in/b.pdf"),
	}

	tests := []struct {
		name         string
		discardStale bool
		wantLen      int
	}{
		{name: "last callback wins", discardStale: false, wantLen: len(older)},
		{name: "stale response discarded", discardStale: true, wantLen: len(newer)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPoller(&stubSource{}, models.Session{}, 0, tt.discardStale)
			s := store.New()

			p.Refresh() // A
			p.Refresh() // B

			// B completes first, then A.
			assert.True(t, p.Apply(LogsFetchedMsg{Seq: 2, Logs: newer}, s))
			applied := p.Apply(LogsFetchedMsg{Seq: 1, Logs: older}, s)
			assert.Equal(t, !tt.discardStale, applied)

			assert.Equal(t, tt.wantLen, s.Len())
			assert.False(t, p.InFlight())
		})
	}
}
