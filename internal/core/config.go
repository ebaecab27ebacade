package core

import "time"

// RuntimeConfig contains settings the platform layer passes to a game session.
// The simulation itself works in arena units; only drivers care about screen size.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (ignored by the window driver)
	ScreenH  int   // Terminal height in characters
	TickRate int   // Frames per second; 0 keeps the configured frame interval
	Seed     int64 // RNG seed; 0 means derive one from the current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 0,
		Seed:     0,
	}
}

// FrameInterval converts TickRate to a frame duration, falling back to def
// when no tick rate is set.
func (c RuntimeConfig) FrameInterval(def time.Duration) time.Duration {
	if c.TickRate <= 0 {
		return def
	}
	return time.Second / time.Duration(c.TickRate)
}

// ResolveSeed returns Seed, or a time-derived seed when Seed is 0.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
