package siege

import (
	"context"

	"github.com/ogrinko/bastion/internal/core"
)

// Defender consumes input actions and moves the barrier. It loops on a
// blocking key read that is interrupted when the attack side ends the
// battle, so the controller never stays parked on input after shutdown.
type Defender struct {
	state *State
	keys  *core.Keys
	name  string
}

// NewDefender creates the defense controller.
func NewDefender(st *State, keys *core.Keys, name string) *Defender {
	return &Defender{state: st, keys: keys, name: name}
}

// Run processes input until the battle ends. Quit ends the battle from the
// defense side and drains whatever input is still buffered before
// returning, so stale presses never leak into the closing prompt.
func (d *Defender) Run(ctx context.Context) error {
	for {
		action, ok := d.keys.Next(d.state.Done())
		if !ok {
			// Battle ended on the attack side while we were blocked.
			break
		}

		switch action {
		case core.ActionQuit:
			d.state.EndBattle(CauseDefenderQuit)
			d.drain()
		case core.ActionLeft:
			d.state.MoveBarrier(-1)
		case core.ActionRight:
			d.state.MoveBarrier(1)
		}

		if d.state.GameOver() || ctx.Err() != nil {
			break
		}
	}

	d.state.Announce("The " + d.name + " defense has ended.")
	return nil
}

// drain consumes buffered input without blocking.
func (d *Defender) drain() {
	for {
		if _, ok := d.keys.TryNext(); !ok {
			return
		}
	}
}
