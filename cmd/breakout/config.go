package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, after the config
file, preset and --fps have been applied, as YAML.

Config files are searched in this order:
  --config / BREAKOUT_CONFIG
  ~/.breakout/breakout.yaml (or .yml, .toml)
  ./configs/breakout.yaml
  built-in defaults

Examples:
  breakout config
  breakout config --preset hard
  breakout config --defaults > ~/.breakout/breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, source, preset, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.MarshalYAML(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "# source: %s\n", source)
	if preset != "" {
		fmt.Fprintf(out, "# preset: %s\n", preset)
	}
	_, err = out.Write(data)
	return err
}
