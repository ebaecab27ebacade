package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	flagFrames   uint64
	flagRealtime bool
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Let the autopilot play headless",
	Long: `Run a game with no display while the autopilot moves the paddle.
Useful for checking a config or preset and for reproducing a seed.

By default frames run as fast as possible on virtual time. With
--realtime the run is paced like a real game.

Examples:
  breakout autoplay
  breakout autoplay --seed 7 --frames 5000 --log-level debug
  breakout autoplay --preset hard --realtime`,
	Args: cobra.NoArgs,
	RunE: runAutoplay,
}

func init() {
	autoplayCmd.Flags().Uint64Var(&flagFrames, "frames", 100000, "Stop after this many frames (0 = until the game ends)")
	autoplayCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames on the wall clock")
}

func runAutoplay(cmd *cobra.Command, _ []string) error {
	s, err := newSession(os.Stderr, 0, 0)
	if err != nil {
		return err
	}
	defer s.close()

	g, err := s.newGame()
	if err != nil {
		return err
	}

	var clock breakout.Clock = breakout.NewVirtualClock(time.Now())
	if flagRealtime {
		clock = breakout.SystemClock{}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	opts := append(s.loopOptions(), breakout.WithClock(clock), breakout.WithMaxFrames(flagFrames))
	loop := breakout.NewLoop(g, breakout.NopDisplay{}, opts...)

	phase, err := loop.Run(ctx, breakout.Autopilot{})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "phase:  %s\n", phase)
	fmt.Fprintf(out, "score:  %d\n", g.Score())
	fmt.Fprintf(out, "lives:  %d\n", g.Lives())
	fmt.Fprintf(out, "bricks: %d\n", g.AliveBricks())
	fmt.Fprintf(out, "frames: %d\n", g.Frame())
	return nil
}
