package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/paperwatch/paperwatch/internal/backend"
	"github.com/paperwatch/paperwatch/internal/watcher"
)

// fetchLogsCmd requests the full log list once. There is no cancellation:
// a fetch that outlives a newer one still delivers its result.
func fetchLogsCmd(src backend.Source, seq uint64) tea.Cmd {
	return func() tea.Msg {
		logs, err := src.FetchLogs(context.Background())
		if err != nil {
			return FetchFailedMsg{Seq: seq, Err: err}
		}
		return LogsFetchedMsg{Seq: seq, Logs: logs}
	}
}

func pollTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return PollTickMsg{}
	})
}

// forwardSourceChanges relays watcher events to the program until the
// watcher is stopped.
func forwardSourceChanges(w *watcher.Watcher, program *programRef) {
	for {
		select {
		case <-w.Done():
			return
		case ev := <-w.Events():
			program.Send(SourceChangedMsg{Path: ev.Path})
		}
	}
}
