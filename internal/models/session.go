package models

// Session describes the monitoring context the dashboard was opened in.
// When MonitoringActive is false only manual refresh is available.
type Session struct {
	MonitoringActive bool   `yaml:"monitoring"`
	MonitorDir       string `yaml:"monitor_dir,omitempty"`
}
