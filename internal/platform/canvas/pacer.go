package canvas

import (
	"time"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// maxBurst bounds how many overdue frames one Advance may run.
const maxBurst = 4

// Pacer runs a Loop on the loop's own schedule for drivers whose update
// callback fires at a different rate. Instead of sleeping it remembers when
// the next frame is due, which also covers the pause after a lost life.
type Pacer struct {
	loop  *breakout.Loop
	clock breakout.Clock
	next  time.Time
	last  breakout.StepResult
}

// NewPacer creates a pacer for loop. A nil clock means the wall clock.
func NewPacer(loop *breakout.Loop, clock breakout.Clock) *Pacer {
	if clock == nil {
		clock = breakout.SystemClock{}
	}
	return &Pacer{
		loop:  loop,
		clock: clock,
		last:  breakout.StepResult{Phase: loop.Game().Phase()},
	}
}

// Advance runs every frame that is due and returns how many ran. Once the
// game reaches a terminal phase no more frames run. A driver that falls far
// behind skips the backlog instead of replaying it.
func (p *Pacer) Advance() int {
	now := p.clock.Now()
	if p.next.IsZero() {
		p.next = now
	}

	n := 0
	for n < maxBurst && !p.last.Phase.Terminal() && !now.Before(p.next) {
		p.last = p.loop.Frame()
		p.next = p.next.Add(p.loop.Delay(p.last))
		n++
	}
	if n == maxBurst && now.After(p.next) {
		p.next = now.Add(p.loop.Delay(p.last))
	}
	return n
}

// Last returns the result of the most recent frame.
func (p *Pacer) Last() breakout.StepResult {
	return p.last
}
