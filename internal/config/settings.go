package config

import (
	"fmt"
	"strings"

	"github.com/paperwatch/paperwatch/internal/models"
)

// LoadSettings loads settings from path, or from ~/.paperwatch/config.yaml
// when path is empty. A missing file yields the defaults.
func LoadSettings(path string) (*models.Settings, error) {
	if path == "" {
		var err error
		path, err = GlobalConfigFile()
		if err != nil {
			return nil, err
		}
	}

	settings, err := LoadYAMLOrDefault(path, models.NewSettings)
	if err != nil {
		return nil, err
	}
	if err := Normalize(settings); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return settings, nil
}

// SaveSettings saves settings to path, or to ~/.paperwatch/config.yaml when path is empty.
func SaveSettings(path string, settings *models.Settings) error {
	if path == "" {
		var err error
		path, err = GlobalConfigFile()
		if err != nil {
			return err
		}
	}
	return SaveYAML(path, settings)
}

// Normalize fills zero values with defaults and rejects values that cannot work.
func Normalize(s *models.Settings) error {
	s.Endpoint = strings.TrimSpace(s.Endpoint)
	if s.Endpoint == "" {
		s.Endpoint = models.DefaultEndpoint
	}
	if s.Poll.Interval == 0 {
		s.Poll.Interval = models.DefaultPollInterval
	}
	if s.Poll.Interval < 0 {
		return fmt.Errorf("poll.interval must be positive, got %s", s.Poll.Interval)
	}
	if s.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative, got %s", s.RequestTimeout)
	}
	if s.Log.Level == "" {
		s.Log.Level = "info"
	}
	if s.Log.File == "" {
		path, err := GlobalLogFile()
		if err != nil {
			return err
		}
		s.Log.File = path
	}
	return nil
}
