package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Autopilot keeps the paddle under the ball. It offsets the paddle so the
// paddle english pulls the horizontal speed back toward the serve speed,
// which stops long rallies from accelerating sideways without bound.
type Autopilot struct{}

// maxLead caps the paddle offset from the ball, in arena units.
const maxLead = 30

// Commands returns at most one paddle move per frame.
func (Autopilot) Commands(g *Game) []core.Action {
	cfg := g.Config()
	ball := g.Ball()
	paddle := g.Paddle()

	// Positive lead puts the paddle ahead of the ball, which slows dx on
	// contact; negative lead speeds it up.
	lead := core.ClampF((math.Abs(ball.DX)-cfg.Ball.Speed)*10, -maxLead, maxLead)
	target := ball.Pos.X + core.Sign(ball.DX)*lead

	diff := target - paddle.Pos.X
	switch {
	case diff > cfg.Paddle.Step/2:
		return []core.Action{core.ActionRight}
	case diff < -cfg.Paddle.Step/2:
		return []core.Action{core.ActionLeft}
	default:
		return nil
	}
}
