package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  Q/Esc      - Quit

Logs are discarded unless --log-file is set, so they never draw over the
game.

Examples:
  breakout play
  breakout play --preset hard
  breakout play --config ./breakout.toml --log-file breakout.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	s, err := newSession(io.Discard, width, height)
	if err != nil {
		return err
	}
	defer s.close()

	g, err := s.newGame()
	if err != nil {
		return err
	}

	phase, err := tui.Run(g, s.runtime.ScreenW, s.runtime.ScreenH, s.loopOptions()...)
	if err != nil {
		return err
	}
	s.logger.Info("game finished", "phase", phase, "score", g.Score())
	printResult(cmd.OutOrStdout(), phase, g)
	return nil
}
