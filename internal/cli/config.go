package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/paperwatch/paperwatch/internal/config"
	"github.com/paperwatch/paperwatch/internal/models"
)

var flagForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&flagForce, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := flagConfig
	if path == "" {
		var err error
		if path, err = config.GlobalConfigFile(); err != nil {
			return err
		}
	}
	if config.FileExists(path) && !flagForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.SaveSettings(path, models.NewSettings()); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", styleLabel.Render("Wrote"), styleValue.Render(path))
	return nil
}
