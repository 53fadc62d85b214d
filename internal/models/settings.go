package models

import "time"

// DefaultEndpoint is the backend's log-list route on its default local port.
const DefaultEndpoint = "http://localhost:5100/get_logs"

// DefaultPollInterval is the refresh period while a monitoring session is active.
const DefaultPollInterval = 10 * time.Second

// PollConfig controls automatic refresh.
type PollConfig struct {
	Interval time.Duration `yaml:"interval"`
	// DiscardStale drops fetch results that complete after a newer one
	// has already been applied. Off by default: the last response wins.
	DiscardStale bool `yaml:"discard_stale"`
}

// LogConfig controls the operator log.
type LogConfig struct {
	Level string `yaml:"level"` // "debug" | "info" | "warn" | "error"
	File  string `yaml:"file,omitempty"`
}

// MetricsConfig controls the optional Prometheus endpoint.
type MetricsConfig struct {
	Addr string `yaml:"addr,omitempty"` // empty = disabled
}

// Settings represents the client configuration.
// This corresponds to ~/.paperwatch/config.yaml.
type Settings struct {
	Version        int           `yaml:"version"`
	Endpoint       string        `yaml:"endpoint"`
	RequestTimeout time.Duration `yaml:"request_timeout"` // 0 = no timeout
	Poll           PollConfig    `yaml:"poll"`
	Session        Session       `yaml:"session"`
	Log            LogConfig     `yaml:"log"`
	Metrics        MetricsConfig `yaml:"metrics"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:  1,
		Endpoint: DefaultEndpoint,
		Poll: PollConfig{
			Interval: DefaultPollInterval,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
