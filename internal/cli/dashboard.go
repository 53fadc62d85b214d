package cli

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/paperwatch/paperwatch/internal/backend"
	"github.com/paperwatch/paperwatch/internal/metrics"
	"github.com/paperwatch/paperwatch/internal/models"
	"github.com/paperwatch/paperwatch/internal/tui"
)

// Dashboard flags.
var (
	flagMonitoring   bool
	flagMonitorDir   string
	flagInterval     time.Duration
	flagDiscardStale bool
	flagSeed         string
	flagMetricsAddr  string
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"ui"},
	Short:   "Open the interactive dashboard",
	RunE:    runDashboard,
}

func init() {
	addDashboardFlags(dashboardCmd)
}

func addDashboardFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolVarP(&flagMonitoring, "monitoring", "m", false, "monitoring session is active (enables timed refresh)")
	f.StringVar(&flagMonitorDir, "monitor-dir", "", "directory being monitored, shown in the header")
	f.DurationVar(&flagInterval, "interval", 0, "refresh interval while monitoring (default 10s)")
	f.BoolVar(&flagDiscardStale, "discard-stale", false, "ignore responses older than the one already shown")
	f.StringVar(&flagSeed, "seed", "", "JSON log list to show before the first fetch")
	f.StringVar(&flagMetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
}

func applyDashboardFlags(cmd *cobra.Command, s *models.Settings) {
	flags := cmd.Flags()
	if flags.Lookup("monitoring") == nil {
		return
	}
	if flags.Changed("monitoring") {
		s.Session.MonitoringActive = flagMonitoring
	}
	if flags.Changed("monitor-dir") {
		s.Session.MonitorDir = flagMonitorDir
	}
	if flags.Changed("interval") {
		s.Poll.Interval = flagInterval
	}
	if flags.Changed("discard-stale") {
		s.Poll.DiscardStale = flagDiscardStale
	}
	if flags.Changed("metrics-addr") {
		s.Metrics.Addr = flagMetricsAddr
	}
}

func runDashboard(cmd *cobra.Command, args []string) error {
	src, err := newSource(settings)
	if err != nil {
		return err
	}

	var watchPath string
	if fs, ok := src.(*backend.FileSource); ok {
		watchPath = fs.Path()
	}

	var seed models.LogList
	if flagSeed != "" {
		seed, err = backend.NewFileSource(flagSeed).FetchLogs(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load seed: %w", err)
		}
	}

	// The terminal belongs to the dashboard from here on.
	logFile, err := openLogFile(settings.Log.File)
	if err != nil {
		return err
	}
	defer logFile.Close()
	if err := setupLogging(settings.Log.Level, logFile); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if settings.Metrics.Addr != "" {
		m := metrics.New()
		src = m.Instrument(src)
		go func() {
			if err := m.Serve(ctx, settings.Metrics.Addr); err != nil {
				log.WithError(err).Error("Metrics server stopped")
			}
		}()
	}

	return tui.Run(tui.Options{
		Source:       src,
		Session:      settings.Session,
		Interval:     settings.Poll.Interval,
		DiscardStale: settings.Poll.DiscardStale,
		Seed:         seed,
		WatchPath:    watchPath,
	})
}
