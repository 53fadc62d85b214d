// Package metrics exposes poll statistics for Prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/paperwatch/paperwatch/internal/backend"
	"github.com/paperwatch/paperwatch/internal/models"
)

// Fetch results used as the "result" label.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics holds the collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry
	fetches  *prometheus.CounterVec
	duration prometheus.Histogram
	entries  prometheus.Gauge
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "paperwatch_fetch_total",
			Help: "Log-list fetches by result.",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "paperwatch_fetch_duration_seconds",
			Help:    "Time to fetch and decode the log list.",
			Buckets: prometheus.DefBuckets,
		}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "paperwatch_log_entries",
			Help: "Entries in the last fetched log list.",
		}),
	}
	m.registry.MustRegister(m.fetches, m.duration, m.entries)
	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Instrument wraps src so every fetch is counted and timed.
func (m *Metrics) Instrument(src backend.Source) backend.Source {
	return &instrumented{Source: src, m: m}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve listens on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.WithField("addr", addr).Info("serving metrics")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type instrumented struct {
	backend.Source
	m *Metrics
}

func (i *instrumented) FetchLogs(ctx context.Context) (models.LogList, error) {
	start := time.Now()
	list, err := i.Source.FetchLogs(ctx)
	i.m.duration.Observe(time.Since(start).Seconds())
	if err != nil {
		i.m.fetches.WithLabelValues(ResultError).Inc()
		return nil, err
	}
	i.m.fetches.WithLabelValues(ResultOK).Inc()
	i.m.entries.Set(float64(len(list)))
	return list, nil
}
