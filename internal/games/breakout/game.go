package breakout

import (
	"fmt"
	"math/rand/v2"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// HUD layout in arena units.
const (
	hudInset  = 40 // HUD baseline below the top bound
	bannerGap = 40 // Distance between banner and final score
)

// Game owns every piece of session state: ball, paddle, bricks, score,
// lives and phase. It is not safe for concurrent use; drivers call Apply and
// Step from a single goroutine.
type Game struct {
	cfg config.BreakoutConfig
	src *rand.PCG
	rng *rand.Rand

	ball   Ball
	paddle Paddle
	bricks []Brick
	alive  int

	score int
	lives int
	phase Phase
	frame uint64

	halfW, halfH float64
	brickSize    core.Vec
	brickTol     float64
	ballColor    core.Color
	paddleColor  core.Color
}

// New creates a game session from cfg. The seed drives the serve direction.
// An invalid cfg is a precondition violation and returns an error wrapping
// config.ErrInvalid.
func New(cfg config.BreakoutConfig, seed int64) (*Game, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("breakout: %w", err)
	}

	ballColor, err := core.ParseColor(cfg.Ball.Color)
	if err != nil {
		return nil, fmt.Errorf("breakout: ball color: %w", err)
	}
	paddleColor, err := core.ParseColor(cfg.Paddle.Color)
	if err != nil {
		return nil, fmt.Errorf("breakout: paddle color: %w", err)
	}

	s := uint64(seed) //#nosec G115 -- seed bits are reinterpreted, not range-checked
	src := rand.NewPCG(s, s^0x9e3779b97f4a7c15)
	g := &Game{
		cfg:         cfg,
		src:         src,
		rng:         rand.New(src),
		halfW:       cfg.Arena.Width / 2,
		halfH:       cfg.Arena.Height / 2,
		ballColor:   ballColor,
		paddleColor: paddleColor,
		brickSize:   core.V(cfg.Bricks.Width, cfg.Bricks.Height),
		brickTol:    cfg.Bricks.Tolerance,
	}

	if err := g.layoutBricks(); err != nil {
		return nil, err
	}

	g.lives = cfg.Gameplay.Lives
	g.phase = PhasePlaying
	g.resetPaddle()
	g.serve()
	return g, nil
}

// layoutBricks builds the brick grid once, row-major from the top-left.
// The slice order is the collision scan order.
func (g *Game) layoutBricks() error {
	b := g.cfg.Bricks

	colors := make([]core.Color, len(b.Colors))
	for i, s := range b.Colors {
		c, err := core.ParseColor(s)
		if err != nil {
			return fmt.Errorf("breakout: brick color %d: %w", i, err)
		}
		colors[i] = c
	}

	startX := -(float64(b.Cols)/2)*(b.Width+b.Gap) + b.Width/2 + b.Gap
	startY := g.halfH - b.TopOffset

	g.bricks = make([]Brick, 0, b.Rows*b.Cols)
	for row := range b.Rows {
		y := startY - float64(row)*(b.Height+b.Gap)
		for col := range b.Cols {
			x := startX + float64(col)*(b.Width+b.Gap)
			g.bricks = append(g.bricks, Brick{
				Pos:   core.V(x, y),
				Row:   row,
				Col:   col,
				Color: colors[row%len(colors)],
				Alive: true,
			})
		}
	}
	g.alive = len(g.bricks)
	return nil
}

// serve puts the ball at the start point heading up, with a random
// horizontal direction.
func (g *Game) serve() {
	speed := g.cfg.Ball.Speed
	dx := speed
	if g.rng.IntN(2) == 0 {
		dx = -speed
	}
	g.ball = Ball{
		Pos: core.V(g.cfg.Ball.StartX, g.cfg.Ball.StartY),
		DX:  dx,
		DY:  speed,
	}
}

// resetPaddle centers the paddle on its fixed row.
func (g *Game) resetPaddle() {
	g.paddle = Paddle{Pos: core.V(0, -g.halfH+g.cfg.Paddle.OffsetY)}
}

// Apply handles one input command. Left and right nudge the paddle by the
// configured step, clamped to the arena margins. Commands are ignored once
// the session is over.
func (g *Game) Apply(a core.Action) {
	if g.phase.Terminal() {
		return
	}

	switch a {
	case core.ActionLeft:
		g.movePaddle(-g.cfg.Paddle.Step)
	case core.ActionRight:
		g.movePaddle(g.cfg.Paddle.Step)
	}
}

func (g *Game) movePaddle(dx float64) {
	limit := g.halfW - g.cfg.Paddle.Margin
	g.paddle.Pos.X = core.ClampF(g.paddle.Pos.X+dx, -limit, limit)
}

// Step advances the simulation by one frame.
// Collision checks run in a fixed order: side walls, top wall, floor,
// paddle, bricks, then the minimum speed correction. A lost life or a
// cleared grid ends the frame early. Terminal sessions do not change.
func (g *Game) Step() StepResult {
	if g.phase.Terminal() {
		return g.result(nil)
	}

	g.frame++
	var events []Event
	b := &g.ball
	r := g.cfg.Ball.Radius

	b.Move()

	if wall := BounceSideWalls(b, g.halfW, r); wall != WallNone {
		events = append(events, Event{Kind: EventWallBounce, Wall: wall, Brick: -1})
	}
	if BounceTopWall(b, g.halfH, r) {
		events = append(events, Event{Kind: EventWallBounce, Wall: WallTop, Brick: -1})
	}

	if BelowFloor(*b, g.halfH) {
		g.lives--
		if g.lives <= 0 {
			g.phase = PhaseLost
			events = append(events, Event{Kind: EventLost, Brick: -1})
			return g.result(events)
		}
		g.serve()
		g.resetPaddle()
		events = append(events, Event{Kind: EventLifeLost, Brick: -1})
		return g.result(events)
	}

	p := g.cfg.Paddle
	if PaddleContact(*b, g.paddle, p.HitBand, p.HitReach) {
		offset := DeflectOffPaddle(b, g.paddle, p.HalfSpan, p.English, g.cfg.Ball.Accel)
		events = append(events, Event{Kind: EventPaddleHit, Brick: -1, Offset: offset})
	}

	if i := FindBrick(g.bricks, b.Pos, g.brickSize, g.brickTol); i >= 0 {
		g.bricks[i].Alive = false
		g.alive--
		b.BounceY()
		g.score += g.cfg.Gameplay.BrickPoints
		b.Ramp(g.cfg.Ball.Accel)
		events = append(events, Event{Kind: EventBrickDestroyed, Brick: i})

		if g.alive == 0 {
			g.phase = PhaseWon
			events = append(events, Event{Kind: EventWon, Brick: -1})
			return g.result(events)
		}
	}

	b.EnforceMinSpeed(g.cfg.Ball.MinSpeed)
	return g.result(events)
}

func (g *Game) result(events []Event) StepResult {
	return StepResult{
		Frame:  g.frame,
		Phase:  g.phase,
		Score:  g.score,
		Lives:  g.lives,
		Events: events,
	}
}

// Render issues draw calls for every brick, the paddle, the ball, the HUD
// and, once the session is over, the result banner. It does not Present.
func (g *Game) Render(d Display) {
	bc := g.cfg.Bricks
	for i, brick := range g.bricks {
		d.DrawEntity(Entity{
			Kind:    KindBrick,
			Index:   i,
			Center:  brick.Pos,
			Size:    core.V(bc.Width, bc.Height),
			Shape:   ShapeRect,
			Color:   brick.Color,
			Visible: brick.Alive,
		})
	}

	d.DrawEntity(Entity{
		Kind:    KindPaddle,
		Center:  g.paddle.Pos,
		Size:    core.V(g.cfg.Paddle.Width, g.cfg.Paddle.Height),
		Shape:   ShapeRect,
		Color:   g.paddleColor,
		Visible: true,
	})

	r := g.cfg.Ball.Radius
	d.DrawEntity(Entity{
		Kind:    KindBall,
		Center:  g.ball.Pos,
		Size:    core.V(2*r, 2*r),
		Shape:   ShapeCircle,
		Color:   g.ballColor,
		Visible: true,
	})

	d.DrawText(Text{
		Pos:   core.V(0, g.halfH-hudInset),
		Body:  fmt.Sprintf("Score: %d    Lives: %d", g.score, g.lives),
		Style: TextHUD,
		Color: core.ColorWhite,
	})

	if banner := g.banner(); banner != "" {
		d.DrawText(Text{Pos: core.V(0, 0), Body: banner, Style: TextBanner, Color: core.ColorWhite})
		d.DrawText(Text{
			Pos:   core.V(0, -bannerGap),
			Body:  fmt.Sprintf("Final Score: %d", g.score),
			Style: TextSubtitle,
			Color: core.ColorWhite,
		})
	}
}

func (g *Game) banner() string {
	switch g.phase {
	case PhaseLost:
		return "GAME OVER"
	case PhaseWon:
		return "YOU WIN!"
	default:
		return ""
	}
}

// Phase returns the current session phase.
func (g *Game) Phase() Phase { return g.phase }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Frame returns the number of frames simulated so far.
func (g *Game) Frame() uint64 { return g.frame }

// Ball returns a copy of the ball state.
func (g *Game) Ball() Ball { return g.ball }

// Paddle returns a copy of the paddle state.
func (g *Game) Paddle() Paddle { return g.paddle }

// Bricks returns a copy of the brick grid in scan order.
func (g *Game) Bricks() []Brick {
	out := make([]Brick, len(g.bricks))
	copy(out, g.bricks)
	return out
}

// AliveBricks returns the number of bricks still standing.
func (g *Game) AliveBricks() int { return g.alive }

// Config returns the configuration the session was built from.
func (g *Game) Config() config.BreakoutConfig { return g.cfg }
