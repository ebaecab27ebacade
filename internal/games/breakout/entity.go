// Package breakout implements the Breakout simulation: a ball bouncing inside
// a fixed arena, a player paddle and a grid of bricks, stepped one frame at a
// time until every brick is gone or every life is lost.
package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Phase is the session state. Won and Lost are terminal.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseLost
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further frames will be simulated.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// Ball is the ball state in arena units. Velocity is per frame.
type Ball struct {
	Pos    core.Vec
	DX, DY float64
}

// Paddle is the player's paddle. Pos.Y never changes during a session.
type Paddle struct {
	Pos core.Vec
}

// Brick is one cell of the brick grid. Dead bricks stay in place, hidden.
type Brick struct {
	Pos   core.Vec
	Row   int
	Col   int
	Color core.Color
	Alive bool
}

// EventKind identifies something that happened during a frame.
type EventKind int

const (
	EventWallBounce EventKind = iota
	EventPaddleHit
	EventBrickDestroyed
	EventLifeLost
	EventWon
	EventLost
)

// String returns a short event name for logs.
func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "wall"
	case EventPaddleHit:
		return "paddle"
	case EventBrickDestroyed:
		return "brick"
	case EventLifeLost:
		return "life_lost"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Wall identifies which bound the ball bounced off.
type Wall int

const (
	WallNone Wall = iota
	WallLeft
	WallRight
	WallTop
)

// String returns the wall name.
func (w Wall) String() string {
	switch w {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	case WallTop:
		return "top"
	default:
		return "none"
	}
}

// Event is a single frame occurrence.
// Brick is the brick index for EventBrickDestroyed and -1 otherwise.
type Event struct {
	Kind   EventKind
	Wall   Wall
	Brick  int
	Offset float64 // Normalized hit offset for EventPaddleHit
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	Frame  uint64
	Phase  Phase
	Score  int
	Lives  int
	Events []Event
}

// Has reports whether an event of the given kind occurred this frame.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
