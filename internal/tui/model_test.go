package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperwatch/paperwatch/internal/models"
	"github.com/paperwatch/paperwatch/internal/present"
	"github.com/paperwatch/paperwatch/internal/store"
)

func newTestModel(t *testing.T, seed models.LogList, session models.Session, discardStale bool) Model {
	t.Helper()
	s := store.New()
	if seed != nil {
		s.Replace(seed)
	}
	poller := NewPoller(&stubSource{}, session, 0, discardStale)
	m := NewModel(s, poller, session, seed == nil, &programRef{})
	return update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

var (
	enterKey   = tea.KeyMsg{Type: tea.KeyEnter}
	escKey     = tea.KeyMsg{Type: tea.KeyEsc}
	refreshKey = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}
	downKey    = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}
	helpKey    = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}
)

func TestModelEmptyList(t *testing.T) {
	m := newTestModel(t, nil, models.Session{}, false)
	require.NotNil(t, m.Init())

	m = update(t, m, LogsFetchedMsg{Seq: 1, Logs: models.LogList{}})

	view := m.View()
	assert.Contains(t, view, "0 Files")
	assert.Contains(t, view, present.EmptyMessage)
	assert.Equal(t, 0, m.table.Len())

	// No row means nothing to open.
	m = update(t, m, enterKey)
	assert.Equal(t, overlayNone, m.activeOverlay)
	_, ok := m.table.IndexAt(1)
	assert.False(t, ok)
}

func TestModelSuccessDetails(t *testing.T) {
	e := models.LogEntry{
		Timestamp:      "2024-01-01 10:00:00",
		OriginalPath:   "/docs/paper.pdf",
		Status:         models.StatusSuccess,
		NewPath:        "/docs/Smith_2020.pdf",
		ProcessingTime: models.Seconds(1.23),
		Metadata:       &models.Metadata{Author: "Smith", Title: "T", Journal: "J", Year: "2020"},
	}
	m := newTestModel(t, models.LogList{e}, models.Session{}, false)

	assert.Contains(t, m.View(), "1 Files")

	m = update(t, m, enterKey)
	require.Equal(t, overlayDetail, m.activeOverlay)

	d, ok := m.detail.Detail()
	require.True(t, ok)
	assert.Equal(t, present.ToneSuccess, d.Tone)
	assert.Equal(t, present.BannerSuccess, d.Banner)

	view := m.View()
	for _, want := range []string{"File renamed successfully", "paper.pdf", "Smith_2020.pdf", "/docs", "1.23 seconds", "Smith", "2020"} {
		assert.Contains(t, view, want)
	}

	m = update(t, m, escKey)
	assert.Equal(t, overlayNone, m.activeOverlay)
}

func TestModelSkippedDetails(t *testing.T) {
	e := models.LogEntry{
		Timestamp:      "2024-01-02 09:30:00",
		OriginalPath:   "/in/dup.pdf",
		Status:         models.StatusSkipped,
		Reason:         "duplicate",
		ProcessingTime: models.Seconds(0.5),
		Metadata:       &models.Metadata{},
	}
	m := newTestModel(t, models.LogList{e}, models.Session{}, false)

	m = update(t, m, enterKey)
	require.Equal(t, overlayDetail, m.activeOverlay)

	d, _ := m.detail.Detail()
	assert.Equal(t, present.ToneWarning, d.Tone)
	reason, ok := d.Block(present.TitleReason)
	require.True(t, ok)
	assert.Equal(t, "duplicate", reason.Text)
	assert.Contains(t, m.View(), present.BannerSkipped)

	for label, want := range map[string]string{"Author": "Unknown", "Title": "Unknown", "Journal": "Unknown", "Year": "Unknown"} {
		got, ok := d.Lookup(present.TitleMetadata, label)
		require.True(t, ok, label)
		assert.Equal(t, want, got, label)
	}
}

func TestModelOutOfOrderRefresh(t *testing.T) {
	older := models.LogList{entry(models.StatusSuccess, "/in/a.pdf")}
	newer := models.LogList{entry(models.StatusSuccess, "/in/a.pdf"), entry(models.StatusError, "/in/b.pdf")}

	tests := []struct {
		name         string
		discardStale bool
		wantCount    string
	}{
		{name: "last callback wins", wantCount: "1 Files"},
		{name: "stale response discarded", discardStale: true, wantCount: "2 Files"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, models.LogList{}, models.Session{}, tt.discardStale)

			m = update(t, m, refreshKey) // A, seq 1
			m = update(t, m, refreshKey) // B, seq 2
			assert.True(t, m.poller.InFlight())

			m = update(t, m, LogsFetchedMsg{Seq: 2, Logs: newer})
			m = update(t, m, LogsFetchedMsg{Seq: 1, Logs: older})

			assert.False(t, m.poller.InFlight())
			assert.Contains(t, m.View(), tt.wantCount)

			// Row bindings always match the store that is displayed.
			assert.Equal(t, m.store.Len(), m.table.Len())
		})
	}
}

func TestModelFetchFailureKeepsView(t *testing.T) {
	seed := models.LogList{entry(models.StatusSuccess, "/in/a.pdf")}
	m := newTestModel(t, seed, models.Session{}, false)
	before := m.View()

	m = update(t, m, refreshKey)
	m = update(t, m, FetchFailedMsg{Seq: 1, Err: assert.AnError})

	assert.Equal(t, 1, m.store.Len())
	assert.Equal(t, before, m.View())
}

func TestModelPollTick(t *testing.T) {
	t.Run("monitoring refreshes and re-arms", func(t *testing.T) {
		m := newTestModel(t, models.LogList{}, models.Session{MonitoringActive: true}, false)
		next, cmd := m.Update(PollTickMsg{})
		assert.NotNil(t, cmd)
		assert.True(t, next.(Model).poller.InFlight())
	})

	t.Run("manual session has no timer", func(t *testing.T) {
		m := newTestModel(t, models.LogList{}, models.Session{}, false)
		assert.Nil(t, m.Init())
	})
}

func TestModelSourceChangedRefreshes(t *testing.T) {
	m := newTestModel(t, models.LogList{}, models.Session{}, false)
	m = update(t, m, SourceChangedMsg{Path: "/tmp/logs.json"})
	assert.True(t, m.poller.InFlight())
}

func TestModelDetailsFollowDisplayIndex(t *testing.T) {
	seed := models.LogList{
		entry(models.StatusSuccess, "/in/first.pdf"),
		entry(models.StatusSkipped, "/in/second.pdf"),
		entry(models.StatusError, "/in/third.pdf"),
	}

	t.Run("keyboard", func(t *testing.T) {
		m := newTestModel(t, seed, models.Session{}, false)
		m = update(t, m, downKey)
		m = update(t, m, enterKey)
		require.Equal(t, overlayDetail, m.activeOverlay)
		assert.Equal(t, 1, m.detail.Index())

		d, _ := m.detail.Detail()
		got, _ := d.Lookup(present.TitleFileInfo, "Filename")
		assert.Equal(t, "second.pdf", got)
	})

	t.Run("mouse click", func(t *testing.T) {
		m := newTestModel(t, seed, models.Session{}, false)
		// First data row sits right under the column header.
		m = update(t, m, tea.MouseMsg{X: 10, Y: tableTop + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		require.Equal(t, overlayDetail, m.activeOverlay)
		assert.Equal(t, 0, m.detail.Index())

		d, _ := m.detail.Detail()
		assert.Equal(t, present.ToneDanger, d.Tone)
	})

	t.Run("stale index is a no-op", func(t *testing.T) {
		m := newTestModel(t, seed, models.Session{}, false)
		m.showDetails(len(seed))
		assert.Equal(t, overlayNone, m.activeOverlay)
		_, ok := m.detail.Detail()
		assert.False(t, ok)
	})
}

func TestModelHelpOverlay(t *testing.T) {
	m := newTestModel(t, models.LogList{}, models.Session{}, false)
	m = update(t, m, helpKey)
	require.Equal(t, overlayHelp, m.activeOverlay)
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	m = update(t, m, helpKey)
	assert.Equal(t, overlayNone, m.activeOverlay)
}

func TestModelTooSmall(t *testing.T) {
	m := newTestModel(t, models.LogList{}, models.Session{}, false)
	m = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.View(), "Terminal too small")
}
