package breakout

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// fakeClock advances only when slept on.
type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
	cancel context.CancelFunc // Called on the first sleep when set.
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	if c.cancel != nil {
		c.cancel()
	}
	return ctx.Err()
}

// recordingDisplay keeps the draws of the last presented frame.
type recordingDisplay struct {
	entities []Entity
	texts    []Text
	pending  []Entity
	pendText []Text
	presents int
}

func (d *recordingDisplay) DrawEntity(e Entity) { d.pending = append(d.pending, e) }
func (d *recordingDisplay) DrawText(t Text)     { d.pendText = append(d.pendText, t) }

func (d *recordingDisplay) Present() {
	d.entities, d.pending = d.pending, nil
	d.texts, d.pendText = d.pendText, nil
	d.presents++
}

func (d *recordingDisplay) textBodies() []string {
	out := make([]string, len(d.texts))
	for i, t := range d.texts {
		out[i] = t.Body
	}
	return out
}

func TestRenderPlaying(t *testing.T) {
	g := newTestGame(t)
	g.bricks[3].Alive = false
	d := &recordingDisplay{}

	NewLoop(g, d).Draw()

	if len(d.entities) != 52 {
		t.Fatalf("expected 50 bricks + paddle + ball, got %d entities", len(d.entities))
	}
	if d.entities[3].Visible {
		t.Error("expected destroyed brick hidden")
	}
	if !d.entities[4].Visible || d.entities[4].Kind != KindBrick {
		t.Error("expected alive brick visible")
	}

	paddle := d.entities[50]
	if paddle.Kind != KindPaddle || paddle.Size != core.V(120, 20) || paddle.Shape != ShapeRect {
		t.Errorf("unexpected paddle entity %+v", paddle)
	}
	ball := d.entities[51]
	if ball.Kind != KindBall || ball.Shape != ShapeCircle || ball.Size != core.V(20, 20) {
		t.Errorf("unexpected ball entity %+v", ball)
	}
	if ball.Color != core.ColorRed {
		t.Errorf("expected red ball, got %v", ball.Color)
	}

	bodies := d.textBodies()
	if len(bodies) != 1 || bodies[0] != "Score: 0    Lives: 3" {
		t.Errorf("expected HUD only, got %q", bodies)
	}
	if d.texts[0].Pos != core.V(0, 260) {
		t.Errorf("expected HUD at (0,260), got %v", d.texts[0].Pos)
	}
}

func TestRenderBanners(t *testing.T) {
	tests := []struct {
		name  string
		phase Phase
		want  string
	}{
		{"lost", PhaseLost, "GAME OVER"},
		{"won", PhaseWon, "YOU WIN!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			g.phase = tt.phase
			g.score = 120
			d := &recordingDisplay{}

			NewLoop(g, d).Draw()

			bodies := d.textBodies()
			if len(bodies) != 3 {
				t.Fatalf("expected HUD and two banner lines, got %q", bodies)
			}
			if bodies[1] != tt.want || d.texts[1].Pos != core.V(0, 0) || d.texts[1].Style != TextBanner {
				t.Errorf("expected banner %q at origin, got %+v", tt.want, d.texts[1])
			}
			if bodies[2] != "Final Score: 120" || d.texts[2].Pos != core.V(0, -40) {
				t.Errorf("expected final score below banner, got %+v", d.texts[2])
			}
		})
	}
}

func TestDelay(t *testing.T) {
	g := newTestGame(t)
	l := NewLoop(g, nil)

	if d := l.Delay(StepResult{}); d != 10*time.Millisecond {
		t.Errorf("expected 10ms, got %v", d)
	}
	lost := StepResult{Events: []Event{{Kind: EventLifeLost}}}
	if d := l.Delay(lost); d != 710*time.Millisecond {
		t.Errorf("expected 710ms after a lost life, got %v", d)
	}

	l = NewLoop(g, nil, WithFrameInterval(time.Millisecond), WithResetPause(0))
	if d := l.Delay(lost); d != time.Millisecond {
		t.Errorf("expected overrides applied, got %v", d)
	}
}

func TestRunFrameLimit(t *testing.T) {
	g := newTestGame(t)
	clock := &fakeClock{now: time.Unix(0, 0)}
	d := &recordingDisplay{}
	l := NewLoop(g, d, WithClock(clock), WithMaxFrames(5))

	phase, err := l.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if phase != PhasePlaying {
		t.Errorf("expected playing, got %v", phase)
	}
	if g.Frame() != 5 {
		t.Errorf("expected 5 frames, got %d", g.Frame())
	}
	if d.presents != 6 {
		t.Errorf("expected initial frame plus 5 presents, got %d", d.presents)
	}
	if len(clock.sleeps) != 4 {
		t.Fatalf("expected 4 sleeps, got %d", len(clock.sleeps))
	}
	for i, s := range clock.sleeps {
		if s != 10*time.Millisecond {
			t.Errorf("sleep %d: expected 10ms, got %v", i, s)
		}
	}
}

func TestRunUntilLost(t *testing.T) {
	g := newTestGame(t)
	g.lives = 2
	clock := &fakeClock{now: time.Unix(0, 0)}
	var logs bytes.Buffer
	logger := log.New(&logs)
	logger.SetLevel(log.DebugLevel)

	// Drop the ball straight out of play every frame.
	drop := ControllerFunc(func(g *Game) []core.Action {
		g.ball = Ball{Pos: core.V(300, -299), DX: 3, DY: -3}
		return nil
	})

	l := NewLoop(g, nil, WithClock(clock), WithLogger(logger))
	phase, err := l.Run(context.Background(), drop)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if phase != PhaseLost {
		t.Errorf("expected lost, got %v", phase)
	}
	if len(clock.sleeps) != 1 || clock.sleeps[0] != 710*time.Millisecond {
		t.Errorf("expected one reset pause sleep, got %v", clock.sleeps)
	}

	out := logs.String()
	for _, want := range []string{"life lost", "game over"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected log to contain %q, got %q", want, out)
		}
	}
}

func TestRunQuit(t *testing.T) {
	g := newTestGame(t)
	calls := 0
	quit := ControllerFunc(func(*Game) []core.Action {
		calls++
		if calls == 3 {
			return []core.Action{core.ActionRight, core.ActionQuit}
		}
		return nil
	})

	l := NewLoop(g, nil, WithClock(&fakeClock{}))
	phase, err := l.Run(context.Background(), quit)
	if err != nil || phase != PhasePlaying {
		t.Fatalf("expected clean quit while playing, got %v %v", phase, err)
	}
	if g.Frame() != 2 {
		t.Errorf("expected 2 frames before quit, got %d", g.Frame())
	}
	if g.Paddle().Pos.X != 40 {
		t.Errorf("expected commands before quit applied, got %v", g.Paddle().Pos.X)
	}
}

func TestRunCancelled(t *testing.T) {
	g := newTestGame(t)
	ctx, cancel := context.WithCancel(context.Background())
	clock := &fakeClock{cancel: cancel}

	_, err := NewLoop(g, nil, WithClock(clock)).Run(ctx, Autopilot{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if g.Frame() != 1 {
		t.Errorf("expected to stop after the first sleep, got %d frames", g.Frame())
	}
}

func TestSystemClockSleepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := SystemClock{}.Sleep(ctx, time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("expected cancelled sleep to return promptly")
	}
}

func TestAutopilotTracksBall(t *testing.T) {
	g := newTestGame(t)

	g.ball = Ball{Pos: core.V(200, 0), DX: 3, DY: -3}
	if got := (Autopilot{}).Commands(g); len(got) != 1 || got[0] != core.ActionRight {
		t.Errorf("expected right, got %v", got)
	}

	g.ball = Ball{Pos: core.V(-200, 0), DX: -3, DY: -3}
	if got := (Autopilot{}).Commands(g); len(got) != 1 || got[0] != core.ActionLeft {
		t.Errorf("expected left, got %v", got)
	}

	g.ball = Ball{Pos: core.V(5, 0), DX: 3, DY: -3}
	if got := (Autopilot{}).Commands(g); len(got) != 0 {
		t.Errorf("expected no move when aligned, got %v", got)
	}
}

func TestVirtualClock(t *testing.T) {
	start := time.Unix(0, 0)
	c := NewVirtualClock(start)

	if err := c.Sleep(context.Background(), 3*time.Second); err != nil {
		t.Fatal(err)
	}
	if got := c.Now().Sub(start); got != 3*time.Second {
		t.Errorf("expected 3s elapsed, got %v", got)
	}
}

func TestAutopilotRunEnds(t *testing.T) {
	g := newTestGame(t)
	clock := NewVirtualClock(time.Unix(0, 0))
	l := NewLoop(g, nil, WithClock(clock), WithMaxFrames(50000))

	phase, err := l.Run(context.Background(), Autopilot{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if phase == PhasePlaying && g.Frame() != 50000 {
		t.Errorf("expected run to end on a terminal phase or the frame limit, stopped at %d", g.Frame())
	}
	if elapsed := clock.Now().Sub(time.Unix(0, 0)); elapsed < time.Duration(g.Frame()-1)*10*time.Millisecond {
		t.Errorf("expected virtual time to cover every frame interval, got %v for %d frames", elapsed, g.Frame())
	}
}
