// Package store holds the dashboard's single log-list snapshot.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/paperwatch/paperwatch/internal/models"
)

// ErrIndexOutOfRange is returned by Resolve when a display index no longer
// addresses an entry, typically because the snapshot was replaced after the
// index was rendered.
var ErrIndexOutOfRange = errors.New("display index out of range")

// LogStore caches the most recently fetched log list. It is replaced
// wholesale on every successful poll and never patched.
type LogStore struct {
	mu   sync.RWMutex
	list models.LogList
}

// New creates an empty store.
func New() *LogStore {
	return &LogStore{}
}

// Replace swaps in a new snapshot.
func (s *LogStore) Replace(list models.LogList) {
	s.mu.Lock()
	s.list = list
	s.mu.Unlock()
}

// Len returns the number of entries in the current snapshot.
func (s *LogStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.list)
}

// Snapshot returns a copy of the current list in storage order (oldest first).
func (s *LogStore) Snapshot() models.LogList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(models.LogList, len(s.list))
	copy(out, s.list)
	return out
}

// Newest returns the current list in display order (newest first).
func (s *LogStore) Newest() models.LogList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list.Reversed()
}

// Resolve maps a newest-first display index to its entry.
func (s *LogStore) Resolve(displayIndex int) (models.LogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.list)
	if displayIndex < 0 || displayIndex >= n {
		return models.LogEntry{}, fmt.Errorf("%w: index %d, %d entries", ErrIndexOutOfRange, displayIndex, n)
	}
	return s.list[n-1-displayIndex], nil
}
