package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Move integrates one frame of motion.
func (b *Ball) Move() {
	b.Pos = b.Pos.Add(core.V(b.DX, b.DY))
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.DX = -b.DX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.DY = -b.DY
}

// Ramp adds a to both speed components in the direction of their sign.
// A zero component is pushed negative, so the ramp never stalls an axis.
func (b *Ball) Ramp(a float64) {
	if b.DX > 0 {
		b.DX += a
	} else {
		b.DX -= a
	}
	if b.DY > 0 {
		b.DY += a
	} else {
		b.DY -= a
	}
}

// EnforceMinSpeed raises |DX| and |DY| to at least floor, keeping their signs.
// A zero component becomes +floor.
func (b *Ball) EnforceMinSpeed(floor float64) {
	if math.Abs(b.DX) < floor {
		b.DX = floor * core.Sign(b.DX)
	}
	if math.Abs(b.DY) < floor {
		b.DY = floor * core.Sign(b.DY)
	}
}

// BounceSideWalls clamps the ball inside the side walls (inset by radius) and
// reverses DX when it crossed one. Returns the wall hit, or WallNone.
func BounceSideWalls(b *Ball, halfW, radius float64) Wall {
	if b.Pos.X > halfW-radius {
		b.Pos.X = halfW - radius
		b.BounceX()
		return WallRight
	}
	if b.Pos.X < -halfW+radius {
		b.Pos.X = -halfW + radius
		b.BounceX()
		return WallLeft
	}
	return WallNone
}

// BounceTopWall clamps the ball below the top wall (inset by radius) and
// reverses DY when it crossed it.
func BounceTopWall(b *Ball, halfH, radius float64) bool {
	if b.Pos.Y > halfH-radius {
		b.Pos.Y = halfH - radius
		b.BounceY()
		return true
	}
	return false
}

// BelowFloor reports whether the ball dropped past the bottom bound.
func BelowFloor(b Ball, halfH float64) bool {
	return b.Pos.Y < -halfH
}

// PaddleContact reports whether the ball should bounce off the paddle.
// The ball must be inside the vertical band, within reach of the paddle
// center, and descending. The descent check keeps one approach from
// triggering again while the ball still overlaps the paddle.
func PaddleContact(b Ball, p Paddle, band, reach float64) bool {
	if b.DY >= 0 {
		return false
	}
	zone := core.Box{Center: p.Pos, Half: core.V(reach, band)}
	return zone.Contains(b.Pos)
}

// DeflectOffPaddle applies the paddle bounce: english proportional to the hit
// offset, vertical reversal, then the speed ramp. Returns the hit offset,
// roughly in [-1, 1] but wider at the reach limit.
func DeflectOffPaddle(b *Ball, p Paddle, halfSpan, english, accel float64) float64 {
	offset := b.Pos.Sub(p.Pos).X / halfSpan
	b.DX += offset * english
	b.BounceY()
	b.Ramp(accel)
	return offset
}

// FindBrick returns the index of the first alive brick, in slice order, whose
// size box grown by tol on each side strictly contains pos; -1 if none.
func FindBrick(bricks []Brick, pos core.Vec, size core.Vec, tol float64) int {
	for i := range bricks {
		if !bricks[i].Alive {
			continue
		}
		box := core.NewBox(bricks[i].Pos, size.X, size.Y).Grow(tol, tol)
		if box.ContainsStrict(pos) {
			return i
		}
	}
	return -1
}
