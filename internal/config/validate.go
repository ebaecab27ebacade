package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// ErrInvalid is wrapped by every configuration precondition violation.
var ErrInvalid = errors.New("invalid configuration")

// ValidationError contains details about a validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap lets callers match any validation failure with errors.Is(err, ErrInvalid).
func (e ValidationError) Unwrap() error {
	return ErrInvalid
}

func invalid(code, format string, args ...any) error {
	return ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Validate checks the startup preconditions of a Breakout session.
// A config that passes produces a well-defined simulation.
func Validate(cfg BreakoutConfig) error {
	if err := validateArena(cfg.Arena); err != nil {
		return err
	}
	if err := validateBall(cfg); err != nil {
		return err
	}
	if err := validatePaddle(cfg); err != nil {
		return err
	}
	if err := validateBricks(cfg); err != nil {
		return err
	}

	if cfg.Gameplay.Lives < 1 {
		return invalid("LIVES", "lives must be at least 1, got %d", cfg.Gameplay.Lives)
	}
	if cfg.Gameplay.BrickPoints < 0 {
		return invalid("BRICK_POINTS", "brick points must not be negative, got %d", cfg.Gameplay.BrickPoints)
	}
	if cfg.Timing.FrameInterval <= 0 {
		return invalid("FRAME_INTERVAL", "frame interval must be positive, got %s", cfg.Timing.FrameInterval)
	}
	if cfg.Timing.ResetPause < 0 {
		return invalid("RESET_PAUSE", "reset pause must not be negative, got %s", cfg.Timing.ResetPause)
	}
	return nil
}

func validateArena(a ArenaConfig) error {
	if a.Width <= 0 || a.Height <= 0 {
		return invalid("ARENA_SIZE", "arena must have positive dimensions, got %gx%g", a.Width, a.Height)
	}
	return nil
}

func validateBall(cfg BreakoutConfig) error {
	b := cfg.Ball
	halfW, halfH := cfg.Arena.Width/2, cfg.Arena.Height/2

	if b.Speed <= 0 {
		return invalid("BALL_SPEED", "ball speed must be positive, got %g", b.Speed)
	}
	if b.MinSpeed <= 0 || b.MinSpeed > b.Speed {
		return invalid("BALL_MIN_SPEED", "min speed must be in (0, speed], got %g", b.MinSpeed)
	}
	if b.Accel < 0 {
		return invalid("BALL_ACCEL", "accel must not be negative, got %g", b.Accel)
	}
	if b.Radius < 0 || b.Radius >= halfW || b.Radius >= halfH {
		return invalid("BALL_RADIUS", "radius %g does not fit the arena", b.Radius)
	}
	if b.StartX < -halfW || b.StartX > halfW || b.StartY < -halfH || b.StartY > halfH {
		return invalid("BALL_START", "start point (%g, %g) is outside the arena", b.StartX, b.StartY)
	}
	if _, err := parseColor("ball", b.Color); err != nil {
		return err
	}
	return nil
}

func validatePaddle(cfg BreakoutConfig) error {
	p := cfg.Paddle
	halfW := cfg.Arena.Width / 2

	if p.Margin < 0 || p.Margin >= halfW {
		return invalid("PADDLE_MARGIN", "margin must be in [0, %g), got %g", halfW, p.Margin)
	}
	if p.OffsetY <= 0 || p.OffsetY >= cfg.Arena.Height {
		return invalid("PADDLE_OFFSET", "paddle offset must be inside the arena, got %g", p.OffsetY)
	}
	if p.Step <= 0 {
		return invalid("PADDLE_STEP", "paddle step must be positive, got %g", p.Step)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return invalid("PADDLE_SIZE", "paddle must have positive dimensions, got %gx%g", p.Width, p.Height)
	}
	if p.HalfSpan <= 0 {
		return invalid("PADDLE_HALF_SPAN", "half span must be positive, got %g", p.HalfSpan)
	}
	if p.HitBand < 0 || p.HitReach < 0 {
		return invalid("PADDLE_TOLERANCE", "hit tolerances must not be negative")
	}
	if _, err := parseColor("paddle", p.Color); err != nil {
		return err
	}
	return nil
}

func validateBricks(cfg BreakoutConfig) error {
	b := cfg.Bricks

	if b.Rows <= 0 || b.Cols <= 0 {
		return invalid("BRICK_GRID", "brick grid must have at least one row and column, got %dx%d", b.Rows, b.Cols)
	}
	if b.Width <= 0 || b.Height <= 0 {
		return invalid("BRICK_SIZE", "bricks must have positive dimensions, got %gx%g", b.Width, b.Height)
	}
	if b.Gap < 0 || b.Tolerance < 0 {
		return invalid("BRICK_SPACING", "gap and tolerance must not be negative")
	}
	if span := float64(b.Cols) * (b.Width + b.Gap); span > cfg.Arena.Width {
		return invalid("BRICK_GRID", "brick grid needs %g units, arena is %g wide", span, cfg.Arena.Width)
	}
	top := cfg.Arena.Height/2 - b.TopOffset
	bottom := top - float64(b.Rows-1)*(b.Height+b.Gap)
	if top+b.Height/2 > cfg.Arena.Height/2 || bottom <= -cfg.Arena.Height/2+cfg.Paddle.OffsetY {
		return invalid("BRICK_GRID", "brick rows span y in [%g, %g], which leaves the playfield", bottom, top)
	}
	if len(b.Colors) == 0 {
		return invalid("BRICK_COLORS", "at least one brick color is required")
	}
	for _, c := range b.Colors {
		if _, err := parseColor("brick", c); err != nil {
			return err
		}
	}
	return nil
}

func parseColor(what, s string) (core.Color, error) {
	c, err := core.ParseColor(s)
	if err != nil {
		return c, invalid("COLOR", "%s color: %v", what, err)
	}
	return c, nil
}
