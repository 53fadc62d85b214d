package cli

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/paperwatch/paperwatch/internal/backend"
	"github.com/paperwatch/paperwatch/internal/config"
	"github.com/paperwatch/paperwatch/internal/models"
)

// Global flags.
var (
	flagConfig         string
	flagEndpoint       string
	flagRequestTimeout time.Duration
	flagLogLevel       string
)

// settings is loaded once per invocation before any command runs.
var settings *models.Settings

func loadSettings(cmd *cobra.Command, _ []string) error {
	s, err := config.LoadSettings(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		s.Endpoint = flagEndpoint
	}
	if flags.Changed("request-timeout") {
		s.RequestTimeout = flagRequestTimeout
	}
	if flags.Changed("log-level") {
		s.Log.Level = flagLogLevel
	}
	applyDashboardFlags(cmd, s)

	if err := config.Normalize(s); err != nil {
		return err
	}
	settings = s

	return setupLogging(s.Log.Level, os.Stderr)
}

// newSource builds the backend for the configured endpoint.
func newSource(s *models.Settings) (backend.Source, error) {
	src, err := backend.NewSource(s.Endpoint, backend.WithTimeout(s.RequestTimeout))
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}
	return src, nil
}

// fetchOnce retrieves the current log list for one-shot commands.
func fetchOnce(cmd *cobra.Command) (models.LogList, error) {
	src, err := newSource(settings)
	if err != nil {
		return nil, err
	}
	logs, err := src.FetchLogs(cmd.Context())
	if err != nil {
		log.WithError(err).WithField("endpoint", src.Endpoint()).Debug("Fetch failed")
		return nil, fmt.Errorf("failed to fetch logs from %s: %w", src.Endpoint(), err)
	}
	return logs, nil
}
