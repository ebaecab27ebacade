// breakout is the classic brick-breaking arcade game for the terminal and
// the desktop.
//
// Usage:
//
//	breakout                 - Play in the terminal
//	breakout play            - Play in the terminal
//	breakout window          - Play in a desktop window
//	breakout autoplay        - Let the autopilot play headless
//	breakout config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (.yaml, .yml or .toml)
//	--preset <name>     - Difficulty preset: easy, normal, hard
//	--seed <value>      - RNG seed for reproducible serves
//	--fps <rate>        - Override the frame rate
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
//
// A .env file in the working directory may set BREAKOUT_CONFIG,
// BREAKOUT_PRESET and BREAKOUT_LOG_LEVEL.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagPreset   string
	flagSeed     int64
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: could not read .env: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - bounce the ball, clear the bricks",
	Long: `Breakout is the classic arcade game: keep the ball in play with the
paddle and destroy every brick. Three lives, ten points a brick.

Available commands:
  play      - Play in the terminal (default)
  window    - Play in a desktop window
  autoplay  - Run the autopilot headless
  config    - Print the effective configuration

Examples:
  breakout
  breakout window --preset easy
  breakout autoplay --seed 42 --log-level debug
  breakout config --defaults > breakout.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (env BREAKOUT_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard (env BREAKOUT_PRESET)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use the configured frame interval)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (env BREAKOUT_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(autoplayCmd)
	rootCmd.AddCommand(configCmd)
}
