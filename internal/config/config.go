// Package config provides the tuning constants for Breakout: embedded YAML
// defaults, optional YAML/TOML overrides, difficulty presets and validation.
package config

import "time"

// BreakoutConfig contains every tunable constant of a Breakout session.
// Coordinates are arena units with the origin at the arena center and y up.
type BreakoutConfig struct {
	Arena    ArenaConfig    `yaml:"arena" toml:"arena"`
	Ball     BallConfig     `yaml:"ball" toml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle" toml:"paddle"`
	Bricks   BricksConfig   `yaml:"bricks" toml:"bricks"`
	Gameplay GameplayConfig `yaml:"gameplay" toml:"gameplay"`
	Timing   TimingConfig   `yaml:"timing" toml:"timing"`
}

// ArenaConfig defines the fixed playfield bounds [-W/2, W/2] x [-H/2, H/2].
type ArenaConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// BallConfig defines the ball start state and speed rules.
type BallConfig struct {
	StartX   float64 `yaml:"start_x" toml:"start_x"`
	StartY   float64 `yaml:"start_y" toml:"start_y"`
	Speed    float64 `yaml:"speed" toml:"speed"`         // |dx| and dy on (re)launch
	Radius   float64 `yaml:"radius" toml:"radius"`       // Wall inset for side/top clamps
	Accel    float64 `yaml:"accel" toml:"accel"`         // Added to |dx| and |dy| per hit
	MinSpeed float64 `yaml:"min_speed" toml:"min_speed"` // Floor for |dx| and |dy|
	Color    string  `yaml:"color" toml:"color"`
}

// PaddleConfig defines paddle geometry, movement and hit tolerances.
type PaddleConfig struct {
	OffsetY  float64 `yaml:"offset_y" toml:"offset_y"`   // Distance above the bottom bound
	Margin   float64 `yaml:"margin" toml:"margin"`       // Clamp inset from side bounds
	Step     float64 `yaml:"step" toml:"step"`           // Movement per command
	Width    float64 `yaml:"width" toml:"width"`         // Drawn width
	Height   float64 `yaml:"height" toml:"height"`       // Drawn height
	HalfSpan float64 `yaml:"half_span" toml:"half_span"` // Divisor for the hit offset
	HitBand  float64 `yaml:"hit_band" toml:"hit_band"`   // Vertical tolerance around paddle y
	HitReach float64 `yaml:"hit_reach" toml:"hit_reach"` // Horizontal tolerance from paddle x
	English  float64 `yaml:"english" toml:"english"`     // dx change per unit of hit offset
	Color    string  `yaml:"color" toml:"color"`
}

// BricksConfig defines the brick grid laid out once at session start.
type BricksConfig struct {
	Rows      int      `yaml:"rows" toml:"rows"`
	Cols      int      `yaml:"cols" toml:"cols"`
	Width     float64  `yaml:"width" toml:"width"`
	Height    float64  `yaml:"height" toml:"height"`
	Gap       float64  `yaml:"gap" toml:"gap"`
	TopOffset float64  `yaml:"top_offset" toml:"top_offset"` // First row center below the top bound
	Tolerance float64  `yaml:"tolerance" toml:"tolerance"`   // Added to both half extents for hits
	Colors    []string `yaml:"colors" toml:"colors"`         // Cycled per row
}

// GameplayConfig defines scoring and lives.
type GameplayConfig struct {
	Lives       int `yaml:"lives" toml:"lives"`
	BrickPoints int `yaml:"brick_points" toml:"brick_points"`
}

// TimingConfig defines frame pacing.
type TimingConfig struct {
	FrameInterval time.Duration `yaml:"frame_interval" toml:"frame_interval"`
	ResetPause    time.Duration `yaml:"reset_pause" toml:"reset_pause"` // Freeze after a lost life
}

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ParsePreset converts a CLI/env string to a Preset.
// An empty string yields "" with no error, meaning "leave the config alone".
func ParsePreset(s string) (Preset, error) {
	switch Preset(s) {
	case "", PresetEasy, PresetNormal, PresetHard:
		return Preset(s), nil
	default:
		return "", ValidationError{Code: "UNKNOWN_PRESET", Message: "unknown preset " + s + " (want easy, normal or hard)"}
	}
}
