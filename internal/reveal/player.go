package reveal

import (
	"context"
	"time"

	"github.com/f3rmion/journal/internal/journal"
)

// Player drives a Sequencer in real time for callers without an event loop,
// such as the non-interactive reflect command.
type Player struct {
	seq *Sequencer
}

// NewPlayer creates a player for seq.
func NewPlayer(seq *Sequencer) *Player {
	return &Player{seq: seq}
}

// Play reveals r, calling render after every visible change. It returns
// when the cycle is done or ctx is cancelled. The player's timer is always
// stopped before Play returns.
func (p *Player) Play(ctx context.Context, r journal.Reflection, render func(State)) error {
	gen, delay := p.seq.Start(r)
	render(p.seq.State())

	timer := time.NewTimer(delay)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			p.seq.Cancel()
			return ctx.Err()
		case <-timer.C:
		}

		next, more := p.seq.Advance(gen)
		render(p.seq.State())
		if !more {
			return nil
		}
		timer.Reset(next)
	}
}

// Skip reveals r at once and renders the final state a single time.
func (p *Player) Skip(r journal.Reflection, render func(State)) {
	p.seq.Start(r)
	p.seq.Finish()
	render(p.seq.State())
}
