package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in Breakout configuration.
// It must stay in sync with defaults/breakout.yaml.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Ball: BallConfig{
			StartX:   0,
			StartY:   -100,
			Speed:    3,
			Radius:   10,
			Accel:    0.03,
			MinSpeed: 0.6,
			Color:    "red",
		},
		Paddle: PaddleConfig{
			OffsetY:  50,
			Margin:   50,
			Step:     40,
			Width:    120,
			Height:   20,
			HalfSpan: 60,
			HitBand:  10,
			HitReach: 90,
			English:  2,
			Color:    "white",
		},
		Bricks: BricksConfig{
			Rows:      5,
			Cols:      10,
			Width:     60,
			Height:    20,
			Gap:       10,
			TopOffset: 120,
			Tolerance: 10,
			Colors:    []string{"#ff4d4d", "#ff944d", "#ffe44d", "#9fff4d", "#4ddaff"},
		},
		Gameplay: GameplayConfig{
			Lives:       3,
			BrickPoints: 10,
		},
		Timing: TimingConfig{
			FrameInterval: 10 * time.Millisecond,
			ResetPause:    700 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
