package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/paperwatch/paperwatch/internal/backend"
	"github.com/paperwatch/paperwatch/internal/models"
	"github.com/paperwatch/paperwatch/internal/store"
)

// Poller issues log-list fetches and applies their results to the store.
// It is owned by the update loop and is not safe for concurrent use.
type Poller struct {
	source       backend.Source
	interval     time.Duration
	monitoring   bool
	discardStale bool

	issued   uint64 // sequence of the last fetch started
	applied  uint64 // sequence of the last result written to the store
	inFlight int
}

// NewPoller creates a poller for src. A non-positive interval falls back to
// the default poll interval.
func NewPoller(src backend.Source, session models.Session, interval time.Duration, discardStale bool) *Poller {
	if interval <= 0 {
		interval = models.DefaultPollInterval
	}
	return &Poller{
		source:       src,
		interval:     interval,
		monitoring:   session.MonitoringActive,
		discardStale: discardStale,
	}
}

// Refresh starts one fetch. Overlapping fetches are allowed.
func (p *Poller) Refresh() tea.Cmd {
	p.issued++
	p.inFlight++
	return fetchLogsCmd(p.source, p.issued)
}

// Arm schedules the next poll tick, or nothing when monitoring is off.
func (p *Poller) Arm() tea.Cmd {
	if !p.monitoring {
		return nil
	}
	return pollTick(p.interval)
}

// Apply writes a fetched list to the store and reports whether it did.
// Results are applied in arrival order unless stale discarding is enabled,
// in which case a result older than the last applied one is dropped.
func (p *Poller) Apply(msg LogsFetchedMsg, s *store.LogStore) bool {
	p.settle()
	if p.discardStale && msg.Seq < p.applied {
		log.WithFields(log.Fields{
			"seq":     msg.Seq,
			"applied": p.applied,
		}).Debug("Discarding stale log list")
		return false
	}
	s.Replace(msg.Logs)
	if msg.Seq > p.applied {
		p.applied = msg.Seq
	}
	return true
}

// Fail records a failed fetch. The store is left untouched.
func (p *Poller) Fail(msg FetchFailedMsg) {
	p.settle()
	log.WithError(msg.Err).WithFields(log.Fields{
		"seq":      msg.Seq,
		"endpoint": p.source.Endpoint(),
	}).Error("Error fetching logs")
}

// InFlight reports whether any fetch is outstanding.
func (p *Poller) InFlight() bool {
	return p.inFlight > 0
}

// Monitoring reports whether timed polling is active.
func (p *Poller) Monitoring() bool {
	return p.monitoring
}

// Interval returns the poll period.
func (p *Poller) Interval() time.Duration {
	return p.interval
}

func (p *Poller) settle() {
	if p.inFlight > 0 {
		p.inFlight--
	}
}
