package tui

import (
	"github.com/paperwatch/paperwatch/internal/models"
)

// LogsFetchedMsg carries a completed fetch of the log list.
type LogsFetchedMsg struct {
	Seq  uint64
	Logs models.LogList
}

// FetchFailedMsg reports a fetch that did not produce a log list.
type FetchFailedMsg struct {
	Seq uint64
	Err error
}

// PollTickMsg fires every poll interval while monitoring is active.
type PollTickMsg struct{}

// SourceChangedMsg is sent when a file endpoint is written.
type SourceChangedMsg struct {
	Path string
}
