package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and play with the keyboard.

Controls:
  Left/A     - Move paddle left (hold to repeat)
  Right/D    - Move paddle right (hold to repeat)
  Esc        - Quit (or close the window)

Examples:
  breakout window
  breakout window --preset easy --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, _ []string) error {
	s, err := newSession(os.Stderr, 0, 0)
	if err != nil {
		return err
	}
	defer s.close()

	g, err := s.newGame()
	if err != nil {
		return err
	}

	phase, err := window.Run(g, s.loopOptions()...)
	if err != nil {
		return err
	}
	s.logger.Info("game finished", "phase", phase, "score", g.Score())
	printResult(cmd.OutOrStdout(), phase, g)
	return nil
}
