package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// Environment variables that provide flag defaults.
const (
	envConfig   = "BREAKOUT_CONFIG"
	envPreset   = "BREAKOUT_PRESET"
	envLogLevel = "BREAKOUT_LOG_LEVEL"
)

// session holds everything a command needs to start a game.
type session struct {
	cfg     config.BreakoutConfig
	source  string
	preset  config.Preset
	runtime core.RuntimeConfig
	logger  *log.Logger
	logFile *os.File
}

// flagOrEnv returns the flag value, or the environment variable when the
// flag is empty.
func flagOrEnv(flag, env string) string {
	if flag != "" {
		return flag
	}
	return os.Getenv(env)
}

// loadConfig resolves the config file, preset and frame rate overrides.
func loadConfig() (config.BreakoutConfig, string, config.Preset, error) {
	cfg, source, err := config.LoadBreakout(flagOrEnv(flagConfig, envConfig))
	if err != nil {
		return cfg, source, "", fmt.Errorf("load config %s: %w", source, err)
	}

	preset, err := config.ParsePreset(flagOrEnv(flagPreset, envPreset))
	if err != nil {
		return cfg, source, "", err
	}
	config.ApplyPreset(&cfg, preset)

	rt := core.RuntimeConfig{TickRate: flagFPS}
	cfg.Timing.FrameInterval = rt.FrameInterval(cfg.Timing.FrameInterval)

	if err := config.Validate(cfg); err != nil {
		return cfg, source, preset, err
	}
	return cfg, source, preset, nil
}

// newSession loads the configuration and builds the logger. Logs go to
// --log-file when set, otherwise to defaultOut.
func newSession(defaultOut io.Writer, width, height int) (*session, error) {
	cfg, source, preset, err := loadConfig()
	if err != nil {
		return nil, err
	}

	rt := core.DefaultConfig()
	if width > 0 && height > 0 {
		rt.ScreenW = width
		rt.ScreenH = height
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	s := &session{
		cfg:     cfg,
		source:  source,
		preset:  preset,
		runtime: rt,
	}

	out := defaultOut
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		s.logFile = f
		out = f
	}

	level := log.InfoLevel
	if name := flagOrEnv(flagLogLevel, envLogLevel); name != "" {
		level, err = log.ParseLevel(name)
		if err != nil {
			s.close()
			return nil, fmt.Errorf("log level: %w", err)
		}
	}

	s.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
		Level:           level,
	})
	return s, nil
}

// newGame starts a game with the session's config and seed.
func (s *session) newGame() (*breakout.Game, error) {
	seed := s.runtime.ResolveSeed()
	g, err := breakout.New(s.cfg, seed)
	if err != nil {
		return nil, err
	}

	s.logger.Info("game started",
		"config", s.source,
		"preset", s.preset,
		"seed", seed,
		"frame_interval", s.cfg.Timing.FrameInterval,
	)
	return g, nil
}

func (s *session) loopOptions() []breakout.LoopOption {
	return []breakout.LoopOption{breakout.WithLogger(s.logger)}
}

func (s *session) close() {
	if s.logFile != nil {
		//nolint:errcheck // Best-effort close on exit
		s.logFile.Close()
	}
}

// printResult reports how a game ended.
func printResult(w io.Writer, phase breakout.Phase, g *breakout.Game) {
	switch phase {
	case breakout.PhaseWon:
		fmt.Fprintf(w, "You win! Final score: %d\n", g.Score())
	case breakout.PhaseLost:
		fmt.Fprintf(w, "Game over. Final score: %d\n", g.Score())
	default:
		fmt.Fprintf(w, "Quit with %d points and %d lives left.\n", g.Score(), g.Lives())
	}
}
