package breakout

import (
	"fmt"
	"math"
)

// Snapshot is the complete session state in plain values.
// Floats are kept as IEEE-754 bits so equal states hash equally.
type Snapshot struct {
	Frame uint64
	Phase Phase
	Score int
	Lives int

	BallX, BallY   uint64
	BallDX, BallDY uint64
	PaddleX        uint64

	// One entry per brick in scan order: 1 alive, 0 destroyed.
	BrickData []int

	// Serialized PCG state for the serve direction.
	RNGState []byte
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	bricks := make([]int, len(g.bricks))
	for i, b := range g.bricks {
		if b.Alive {
			bricks[i] = 1
		}
	}

	// PCG.MarshalBinary never fails.
	rng, _ := g.src.MarshalBinary()

	return Snapshot{
		Frame:     g.frame,
		Phase:     g.phase,
		Score:     g.score,
		Lives:     g.lives,
		BallX:     math.Float64bits(g.ball.Pos.X),
		BallY:     math.Float64bits(g.ball.Pos.Y),
		BallDX:    math.Float64bits(g.ball.DX),
		BallDY:    math.Float64bits(g.ball.DY),
		PaddleX:   math.Float64bits(g.paddle.Pos.X),
		BrickData: bricks,
		RNGState:  rng,
	}
}

// ApplySnapshot restores game state from a snapshot taken from a session
// with the same brick grid.
func (g *Game) ApplySnapshot(snap Snapshot) error {
	if len(snap.BrickData) != len(g.bricks) {
		return fmt.Errorf("breakout: snapshot has %d bricks, grid has %d", len(snap.BrickData), len(g.bricks))
	}
	if err := g.src.UnmarshalBinary(snap.RNGState); err != nil {
		return fmt.Errorf("breakout: restore rng: %w", err)
	}

	g.frame = snap.Frame
	g.phase = snap.Phase
	g.score = snap.Score
	g.lives = snap.Lives
	g.ball.Pos.X = math.Float64frombits(snap.BallX)
	g.ball.Pos.Y = math.Float64frombits(snap.BallY)
	g.ball.DX = math.Float64frombits(snap.BallDX)
	g.ball.DY = math.Float64frombits(snap.BallDY)
	g.paddle.Pos.X = math.Float64frombits(snap.PaddleX)

	g.alive = 0
	for i, v := range snap.BrickData {
		g.bricks[i].Alive = v == 1
		if v == 1 {
			g.alive++
		}
	}
	return nil
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + snap.BallX
	h = h*31 + snap.BallY
	h = h*31 + snap.BallDX
	h = h*31 + snap.BallDY
	h = h*31 + snap.PaddleX

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, b := range snap.RNGState {
		h = h*31 + uint64(b)
	}
	return h
}
