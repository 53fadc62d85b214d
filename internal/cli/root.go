// Package cli implements the paperwatch CLI commands.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "paperwatch",
	Short: "Watch the processing log of a PDF renaming service",
	Long: `paperwatch polls a PDF rename/metadata-extraction service for its processing
log and shows every file it handled, newest first, with per-file details.

Run without a subcommand to open the dashboard.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	RunE:              runDashboard,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ~/.paperwatch/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&flagEndpoint, "endpoint", "e", "", "log-list endpoint URL or JSON file path")
	rootCmd.PersistentFlags().DurationVar(&flagRequestTimeout, "request-timeout", 0, "per-request timeout (0 waits indefinitely)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")

	addDashboardFlags(rootCmd)

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(versionCmd)
}
