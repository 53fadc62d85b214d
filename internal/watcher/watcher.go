// Package watcher signals when a file-backed log list changes on disk.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// DebounceInterval collapses bursts of writes into one change event.
const DebounceInterval = 100 * time.Millisecond

// Event reports that the watched file was written, created or renamed into place.
type Event struct {
	Path string
	Op   fsnotify.Op
}

// Watcher watches a single file through its parent directory, so atomic
// replace-by-rename is seen as well as in-place writes.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	path       string
	eventsChan chan Event
	done       chan struct{}
	stopOnce   sync.Once
	debounceMu sync.Mutex
	debounce   *time.Timer
}

// New creates a watcher for path. Call Start to begin delivering events.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		fsWatcher:  fsWatcher,
		path:       abs,
		eventsChan: make(chan Event, 16),
		done:       make(chan struct{}),
	}, nil
}

// Events returns the channel for receiving change events.
func (w *Watcher) Events() <-chan Event {
	return w.eventsChan
}

// Done is closed once Stop has been called.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Start begins watching.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.path)
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	log.WithField("path", w.path).Debug("[watcher] watching log file")

	go w.processEvents()
	return nil
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		_ = w.fsWatcher.Close()

		w.debounceMu.Lock()
		if w.debounce != nil {
			w.debounce.Stop()
		}
		w.debounceMu.Unlock()
	})
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.WithError(err).Warn("[watcher] fsnotify error")
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(DebounceInterval, func() {
		select {
		case <-w.done:
		case w.eventsChan <- Event{Path: w.path, Op: event.Op}:
		}
	})
}
