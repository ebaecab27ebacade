package breakout

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Clock supplies time to the Loop. Tests inject a fake that records sleeps.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is done, whichever comes first.
	Sleep(ctx context.Context, d time.Duration) error
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep waits for d, returning ctx.Err if the context ends first.
func (SystemClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// VirtualClock is a Clock whose sleeps return at once and only advance its
// own time. Headless runs use it to simulate as fast as possible.
type VirtualClock struct {
	now time.Time
}

// NewVirtualClock creates a virtual clock starting at start.
func NewVirtualClock(start time.Time) *VirtualClock {
	return &VirtualClock{now: start}
}

// Now returns the virtual time.
func (c *VirtualClock) Now() time.Time { return c.now }

// Sleep advances the virtual time by d.
func (c *VirtualClock) Sleep(ctx context.Context, d time.Duration) error {
	if d > 0 {
		c.now = c.now.Add(d)
	}
	return ctx.Err()
}

// Controller is the Input Source for headless runs. Commands is called once
// before every frame and must not modify the game.
type Controller interface {
	Commands(g *Game) []core.Action
}

// ControllerFunc adapts a function to Controller.
type ControllerFunc func(g *Game) []core.Action

// Commands calls f.
func (f ControllerFunc) Commands(g *Game) []core.Action { return f(g) }

// Loop drives a Game against a Display: step, log, render, present, wait.
type Loop struct {
	game    *Game
	display Display
	clock   Clock
	logger  *log.Logger

	interval  time.Duration
	pause     time.Duration
	maxFrames uint64
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithClock replaces the wall clock.
func WithClock(c Clock) LoopOption {
	return func(l *Loop) { l.clock = c }
}

// WithLogger sets the event logger.
func WithLogger(logger *log.Logger) LoopOption {
	return func(l *Loop) { l.logger = logger }
}

// WithFrameInterval overrides the configured frame interval.
func WithFrameInterval(d time.Duration) LoopOption {
	return func(l *Loop) {
		if d > 0 {
			l.interval = d
		}
	}
}

// WithResetPause overrides the configured pause after a lost life.
func WithResetPause(d time.Duration) LoopOption {
	return func(l *Loop) {
		if d >= 0 {
			l.pause = d
		}
	}
}

// WithMaxFrames makes Run return after n simulated frames. Zero means no
// limit.
func WithMaxFrames(n uint64) LoopOption {
	return func(l *Loop) { l.maxFrames = n }
}

// NewLoop creates a loop for g drawing to d. Timing defaults come from the
// game's configuration.
func NewLoop(g *Game, d Display, opts ...LoopOption) *Loop {
	if d == nil {
		d = NopDisplay{}
	}
	timing := g.Config().Timing
	l := &Loop{
		game:     g,
		display:  d,
		clock:    SystemClock{},
		logger:   log.New(io.Discard),
		interval: timing.FrameInterval,
		pause:    timing.ResetPause,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Game returns the driven game.
func (l *Loop) Game() *Game { return l.game }

// Draw renders the current state and presents it without stepping.
func (l *Loop) Draw() {
	l.game.Render(l.display)
	l.display.Present()
}

// Frame simulates one frame, logs its events and presents the result.
func (l *Loop) Frame() StepResult {
	res := l.game.Step()
	l.logEvents(res)
	l.Draw()
	return res
}

// Delay returns how long to wait after the frame that produced res.
func (l *Loop) Delay(res StepResult) time.Duration {
	d := l.interval
	if res.Has(EventLifeLost) {
		d += l.pause
	}
	return d
}

// Run drives the game until it reaches a terminal phase, the controller
// asks to quit, the frame limit is hit, or ctx is done. Frames are paced
// on a fixed schedule; a late frame resets the schedule rather than
// bursting to catch up.
// The returned phase is the game phase at exit. A quit or frame limit
// returns PhasePlaying with a nil error.
func (l *Loop) Run(ctx context.Context, c Controller) (Phase, error) {
	l.Draw()
	next := l.clock.Now()

	for {
		if err := ctx.Err(); err != nil {
			return l.game.Phase(), err
		}

		if c != nil {
			for _, a := range c.Commands(l.game) {
				if a == core.ActionQuit {
					l.logger.Info("quit requested", "frame", l.game.Frame())
					return l.game.Phase(), nil
				}
				l.game.Apply(a)
			}
		}

		res := l.Frame()
		if res.Phase.Terminal() {
			return res.Phase, nil
		}
		if l.maxFrames > 0 && res.Frame >= l.maxFrames {
			return res.Phase, nil
		}

		next = next.Add(l.Delay(res))
		now := l.clock.Now()
		wait := next.Sub(now)
		if wait < 0 {
			next = now
			wait = 0
		}
		if err := l.clock.Sleep(ctx, wait); err != nil {
			return l.game.Phase(), err
		}
	}
}

func (l *Loop) logEvents(res StepResult) {
	for _, ev := range res.Events {
		switch ev.Kind {
		case EventBrickDestroyed:
			b := l.game.bricks[ev.Brick]
			l.logger.Debug("brick destroyed", "frame", res.Frame, "row", b.Row, "col", b.Col, "score", res.Score)
		case EventPaddleHit:
			l.logger.Debug("paddle hit", "frame", res.Frame, "offset", ev.Offset)
		case EventLifeLost:
			l.logger.Info("life lost", "frame", res.Frame, "lives", res.Lives)
		case EventWon:
			l.logger.Info("board cleared", "frame", res.Frame, "score", res.Score)
		case EventLost:
			l.logger.Info("game over", "frame", res.Frame, "score", res.Score)
		}
	}
}
