// Package tui implements the interactive dashboard for paperwatch.
package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/paperwatch/paperwatch/internal/backend"
	"github.com/paperwatch/paperwatch/internal/models"
	"github.com/paperwatch/paperwatch/internal/store"
	"github.com/paperwatch/paperwatch/internal/watcher"
)

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// Options configure a dashboard run.
type Options struct {
	Source       backend.Source
	Session      models.Session
	Interval     time.Duration
	DiscardStale bool

	// Seed is rendered before any fetch. A nil Seed triggers an initial fetch.
	Seed models.LogList

	// WatchPath, when set, refreshes the list whenever that file is written.
	WatchPath string
}

// Run launches the dashboard and blocks until the user quits.
func Run(opts Options) error {
	s := store.New()
	if opts.Seed != nil {
		s.Replace(opts.Seed)
	}

	ref := &programRef{}
	poller := NewPoller(opts.Source, opts.Session, opts.Interval, opts.DiscardStale)
	model := NewModel(s, poller, opts.Session, opts.Seed == nil, ref)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	// Store program reference for goroutine sends
	ref.Set(p)
	defer ref.Clear()

	if opts.WatchPath != "" {
		w, err := watcher.New(opts.WatchPath)
		if err != nil {
			log.WithError(err).Warn("File watch disabled")
		} else if err := w.Start(); err != nil {
			w.Stop()
			log.WithError(err).Warn("File watch disabled")
		} else {
			defer w.Stop()
			go forwardSourceChanges(w, ref)
		}
	}

	log.WithFields(log.Fields{
		"endpoint":   opts.Source.Endpoint(),
		"monitoring": opts.Session.MonitoringActive,
		"interval":   poller.Interval(),
	}).Info("Dashboard started")

	_, err := p.Run()
	return err
}
