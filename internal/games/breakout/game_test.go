package breakout

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(config.DefaultBreakoutConfig(), 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

// keepOnly destroys every brick except the listed indices.
func keepOnly(g *Game, keep ...int) {
	for i := range g.bricks {
		g.bricks[i].Alive = false
	}
	for _, i := range keep {
		g.bricks[i].Alive = true
	}
	g.alive = len(keep)
}

func TestNewLayout(t *testing.T) {
	g := newTestGame(t)

	if g.Phase() != PhasePlaying {
		t.Errorf("expected playing, got %v", g.Phase())
	}
	if g.Score() != 0 || g.Lives() != 3 {
		t.Errorf("expected score 0 lives 3, got %d/%d", g.Score(), g.Lives())
	}

	bricks := g.Bricks()
	if len(bricks) != 50 || g.AliveBricks() != 50 {
		t.Fatalf("expected 50 alive bricks, got %d/%d", len(bricks), g.AliveBricks())
	}

	corners := []struct {
		idx      int
		x, y     float64
		row, col int
	}{
		{0, -310, 180, 0, 0},
		{9, 320, 180, 0, 9},
		{40, -310, 60, 4, 0},
		{49, 320, 60, 4, 9},
	}
	for _, c := range corners {
		b := bricks[c.idx]
		if b.Pos != core.V(c.x, c.y) || b.Row != c.row || b.Col != c.col {
			t.Errorf("brick %d: expected (%v,%v) r%d c%d, got %v r%d c%d",
				c.idx, c.x, c.y, c.row, c.col, b.Pos, b.Row, b.Col)
		}
	}

	rowColors := []string{"#ff4d4d", "#ff944d", "#ffe44d", "#9fff4d", "#4ddaff"}
	for i, b := range bricks {
		if want := rowColors[b.Row]; b.Color.Hex() != want {
			t.Errorf("brick %d: expected color %s, got %s", i, want, b.Color.Hex())
		}
	}

	if p := g.Paddle(); p.Pos != core.V(0, -250) {
		t.Errorf("expected paddle at (0,-250), got %v", p.Pos)
	}
	assertServed(t, g)
}

func assertServed(t *testing.T, g *Game) {
	t.Helper()
	b := g.Ball()
	if b.Pos != core.V(0, -100) {
		t.Errorf("expected ball at start point, got %v", b.Pos)
	}
	if b.DX != 3 && b.DX != -3 {
		t.Errorf("expected |dx| == 3, got %v", b.DX)
	}
	if b.DY != 3 {
		t.Errorf("expected dy == 3, got %v", b.DY)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Gameplay.Lives = 0

	_, err := New(cfg, 1)
	if !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestServeDirectionVaries(t *testing.T) {
	seen := map[float64]bool{}
	for seed := range int64(64) {
		g, err := New(config.DefaultBreakoutConfig(), seed)
		if err != nil {
			t.Fatal(err)
		}
		seen[g.Ball().DX] = true
	}
	if !seen[3] || !seen[-3] {
		t.Errorf("expected both serve directions across seeds, got %v", seen)
	}
}

func TestTopWallBounce(t *testing.T) {
	g := newTestGame(t)
	keepOnly(g, 0)
	g.ball = Ball{Pos: core.V(0, 288), DX: 3, DY: 3}

	res := g.Step()

	if g.ball.Pos.Y != 290 {
		t.Errorf("expected y clamped to 290, got %v", g.ball.Pos.Y)
	}
	if g.ball.DY != -3 {
		t.Errorf("expected dy flipped to -3, got %v", g.ball.DY)
	}
	if len(res.Events) != 1 || res.Events[0].Kind != EventWallBounce || res.Events[0].Wall != WallTop {
		t.Errorf("expected one top wall event, got %+v", res.Events)
	}
}

func TestTopWallBounceFromServe(t *testing.T) {
	g := newTestGame(t)
	keepOnly(g)
	g.alive = 1 // Keep the session running with no bricks in the way.
	g.ball = Ball{Pos: core.V(0, -100), DX: 3, DY: 3}

	for range 200 {
		res := g.Step()
		if res.Has(EventWallBounce) && g.ball.Pos.Y == 290 {
			if g.ball.DY >= 0 {
				t.Fatalf("expected dy negative after top bounce, got %v", g.ball.DY)
			}
			return
		}
	}
	t.Fatal("expected ball to reach the top wall")
}

func TestPaddleHitOncePerApproach(t *testing.T) {
	g := newTestGame(t)
	keepOnly(g, 0)
	g.ball = Ball{Pos: core.V(0, -245), DX: 1, DY: -1}

	hits := 0
	for range 20 {
		res := g.Step()
		if res.Has(EventPaddleHit) {
			hits++
		}
	}

	if hits != 1 {
		t.Errorf("expected exactly one paddle hit, got %d", hits)
	}
	if g.ball.DY <= 0 {
		t.Errorf("expected ball moving up after the hit, got dy=%v", g.ball.DY)
	}
}

func TestPaddleEnglish(t *testing.T) {
	g := newTestGame(t)
	keepOnly(g, 0)
	// After the move the ball sits 30 right of the paddle center.
	g.ball = Ball{Pos: core.V(29, -247), DX: 1, DY: -1}

	res := g.Step()

	if !res.Has(EventPaddleHit) {
		t.Fatalf("expected paddle hit, got %+v", res.Events)
	}
	if res.Events[0].Offset != 0.5 {
		t.Errorf("expected offset 0.5, got %v", res.Events[0].Offset)
	}
	// dx = 1 + 0.5*2 then ramped.
	if g.ball.DX <= 2 || g.ball.DX > 2.1 {
		t.Errorf("expected dx just above 2, got %v", g.ball.DX)
	}
}

func TestBottomBreachResets(t *testing.T) {
	g := newTestGame(t)
	g.Apply(core.ActionRight)
	g.ball = Ball{Pos: core.V(300, -299), DX: 3, DY: -3}

	res := g.Step()

	if !res.Has(EventLifeLost) {
		t.Fatalf("expected life lost, got %+v", res.Events)
	}
	if g.Lives() != 2 {
		t.Errorf("expected 2 lives, got %d", g.Lives())
	}
	if g.Phase() != PhasePlaying {
		t.Errorf("expected playing, got %v", g.Phase())
	}
	assertServed(t, g)
	if g.Paddle().Pos.X != 0 {
		t.Errorf("expected paddle recentered, got %v", g.Paddle().Pos.X)
	}
}

func TestThreeBreachesLose(t *testing.T) {
	g := newTestGame(t)

	for i := 1; i <= 3; i++ {
		g.ball = Ball{Pos: core.V(300, -299), DX: 3, DY: -3}
		res := g.Step()

		if i < 3 {
			if res.Phase != PhasePlaying || !res.Has(EventLifeLost) {
				t.Fatalf("breach %d: expected life lost while playing, got %v %+v", i, res.Phase, res.Events)
			}
			continue
		}
		if res.Phase != PhaseLost || !res.Has(EventLost) {
			t.Fatalf("breach 3: expected lost, got %v %+v", res.Phase, res.Events)
		}
	}

	if g.Lives() != 0 {
		t.Errorf("expected 0 lives, got %d", g.Lives())
	}

	// Terminal phases are final.
	before := g.Snapshot()
	res := g.Step()
	g.Apply(core.ActionLeft)
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("expected no state change after game over")
	}
	if res.Phase != PhaseLost || len(res.Events) != 0 {
		t.Errorf("expected a silent lost result, got %v %+v", res.Phase, res.Events)
	}
}

func TestBrickDestroyed(t *testing.T) {
	g := newTestGame(t)
	g.ball = Ball{Pos: core.V(-310, 158), DX: 1, DY: 3}

	res := g.Step()

	if !res.Has(EventBrickDestroyed) {
		t.Fatalf("expected brick hit, got %+v", res.Events)
	}
	if g.Score() != 10 || g.AliveBricks() != 49 {
		t.Errorf("expected score 10 and 49 bricks, got %d/%d", g.Score(), g.AliveBricks())
	}
	if g.bricks[0].Alive {
		t.Error("expected brick 0 destroyed")
	}
	if g.ball.DY >= 0 {
		t.Errorf("expected dy flipped negative, got %v", g.ball.DY)
	}
}

func TestOnlyFirstBrickPerFrame(t *testing.T) {
	g := newTestGame(t)
	// Between bricks 0 and 1, inside both tolerance boxes after the move.
	g.ball = Ball{Pos: core.V(-276, 177), DX: 1, DY: 3}

	res := g.Step()

	destroyed := 0
	for _, ev := range res.Events {
		if ev.Kind == EventBrickDestroyed {
			destroyed++
			if ev.Brick != 0 {
				t.Errorf("expected brick 0 first in scan order, got %d", ev.Brick)
			}
		}
	}
	if destroyed != 1 {
		t.Errorf("expected one brick destroyed, got %d", destroyed)
	}
	if !g.bricks[1].Alive {
		t.Error("expected brick 1 to survive")
	}
}

func TestDeadBrickIgnored(t *testing.T) {
	g := newTestGame(t)
	g.bricks[0].Alive = false
	g.alive--
	g.ball = Ball{Pos: core.V(-310, 175), DX: 0.6, DY: 3}

	res := g.Step()

	if res.Has(EventBrickDestroyed) {
		t.Errorf("expected no brick hit, got %+v", res.Events)
	}
	if g.Score() != 0 || g.AliveBricks() != 49 {
		t.Errorf("expected score 0 and 49 bricks, got %d/%d", g.Score(), g.AliveBricks())
	}
}

func TestLastBrickWinsImmediately(t *testing.T) {
	g := newTestGame(t)
	keepOnly(g, 0)
	g.ball = Ball{Pos: core.V(-310, 160), DX: 0.1, DY: 2}

	res := g.Step()

	if res.Phase != PhaseWon || !res.Has(EventWon) {
		t.Fatalf("expected won, got %v %+v", res.Phase, res.Events)
	}
	if g.Score() != 10 || g.AliveBricks() != 0 {
		t.Errorf("expected score 10 and no bricks, got %d/%d", g.Score(), g.AliveBricks())
	}
	// The minimum speed correction is skipped on the winning frame.
	if g.ball.DX >= g.cfg.Ball.MinSpeed {
		t.Errorf("expected dx below min speed, got %v", g.ball.DX)
	}
}

func TestMinSpeedEnforced(t *testing.T) {
	g := newTestGame(t)
	keepOnly(g, 0)
	g.ball = Ball{Pos: core.V(0, 0), DX: 0, DY: -0.2}

	g.Step()

	if g.ball.DX != 0.6 || g.ball.DY != -0.6 {
		t.Errorf("expected (0.6,-0.6), got (%v,%v)", g.ball.DX, g.ball.DY)
	}
}

func TestApplyClampsPaddle(t *testing.T) {
	g := newTestGame(t)

	for range 20 {
		g.Apply(core.ActionRight)
	}
	if x := g.Paddle().Pos.X; x != 350 {
		t.Errorf("expected paddle at right limit 350, got %v", x)
	}

	for range 40 {
		g.Apply(core.ActionLeft)
	}
	if x := g.Paddle().Pos.X; x != -350 {
		t.Errorf("expected paddle at left limit -350, got %v", x)
	}

	g.Apply(core.ActionQuit)
	g.Apply(core.ActionNone)
	if x := g.Paddle().Pos.X; x != -350 {
		t.Errorf("expected non-move actions ignored, got %v", x)
	}
}

// TestLongRunProperties plays random and autopilot input for many frames
// and checks the rules that hold on every frame.
func TestLongRunProperties(t *testing.T) {
	for seed := range int64(4) {
		g, err := New(config.DefaultBreakoutConfig(), seed)
		if err != nil {
			t.Fatal(err)
		}
		rng := rand.New(rand.NewPCG(uint64(seed), 7)) //#nosec G115 -- test seed
		limit := 350.0

		prevScore, prevLives := g.Score(), g.Lives()
		for frame := 0; frame < 20000 && !g.Phase().Terminal(); frame++ {
			if rng.IntN(4) == 0 {
				g.Apply(core.Action(1 + rng.IntN(2)))
			} else {
				for _, a := range (Autopilot{}).Commands(g) {
					g.Apply(a)
				}
			}
			if x := g.Paddle().Pos.X; x < -limit || x > limit {
				t.Fatalf("seed %d frame %d: paddle out of bounds at %v", seed, frame, x)
			}

			res := g.Step()

			if res.Score < prevScore {
				t.Fatalf("seed %d frame %d: score went down %d -> %d", seed, frame, prevScore, res.Score)
			}
			if res.Lives > prevLives {
				t.Fatalf("seed %d frame %d: lives went up %d -> %d", seed, frame, prevLives, res.Lives)
			}
			if want := 50 - res.Score/10; g.AliveBricks() != want {
				t.Fatalf("seed %d frame %d: expected %d bricks, got %d", seed, frame, want, g.AliveBricks())
			}
			if res.Has(EventLifeLost) {
				assertServed(t, g)
			}
			if x := g.Ball().Pos.X; x < -390 || x > 390 {
				t.Fatalf("seed %d frame %d: ball escaped side walls at %v", seed, frame, x)
			}
			prevScore, prevLives = res.Score, res.Lives
		}
	}
}

func TestDeterminism(t *testing.T) {
	play := func() Snapshot {
		g, err := New(config.DefaultBreakoutConfig(), 12345)
		if err != nil {
			t.Fatal(err)
		}
		for i := range 3000 {
			switch {
			case i%7 == 0:
				g.Apply(core.ActionLeft)
			case i%11 == 0:
				g.Apply(core.ActionRight)
			}
			g.Step()
		}
		return g.Snapshot()
	}

	snap1, snap2 := play(), play()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("expected identical hashes, got %d vs %d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Frame != snap2.Frame || snap1.Score != snap2.Score {
		t.Errorf("expected identical frame/score, got %d/%d vs %d/%d",
			snap1.Frame, snap1.Score, snap2.Frame, snap2.Score)
	}
}

func TestApplySnapshot(t *testing.T) {
	g1 := newTestGame(t)
	for range 500 {
		g1.Step()
	}
	snap := g1.Snapshot()

	g2, err := New(config.DefaultBreakoutConfig(), 99)
	if err != nil {
		t.Fatal(err)
	}
	if err := g2.ApplySnapshot(snap); err != nil {
		t.Fatalf("ApplySnapshot: %v", err)
	}
	restored := g2.Snapshot()
	if restored.Hash() != snap.Hash() {
		t.Fatal("expected restored snapshot to hash the same")
	}

	for range 500 {
		g1.Step()
		g2.Step()
	}
	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Hash() != s2.Hash() {
		t.Error("expected restored game to evolve identically")
	}

	snap.BrickData = snap.BrickData[:10]
	if err := g2.ApplySnapshot(snap); err == nil {
		t.Error("expected error for mismatched brick grid")
	}
}
