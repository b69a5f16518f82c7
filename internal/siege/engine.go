package siege

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ogrinko/bastion/internal/config"
	"github.com/ogrinko/bastion/internal/core"
	"github.com/ogrinko/bastion/internal/scenario"
)

// instructions is the banner shown on the top row for the whole battle.
const instructions = "Enter 'q' to quit at end of attack, or control-C"

// closingPrompt is shown after both controllers finish.
const closingPrompt = "hit enter to close..."

// BattleResult summarizes a finished battle for persistence and display.
type BattleResult struct {
	DefenderName string
	AttackerName string
	Outcome      Cause
	Projectiles  int
	CityMass     int
	Duration     time.Duration
}

// Engine orchestrates one battle: it owns the shared state and the two
// controllers and runs them to completion.
type Engine struct {
	state    *State
	keys     *core.Keys
	defender *Defender
	attacker *Attacker
	sc       *scenario.Scenario
}

// New validates the field geometry and assembles a battle engine.
// The returned error is fatal and precedes any rendering.
func New(sc *scenario.Scenario, cfg config.BattleConfig, keys *core.Keys, width, height int, seed int64) (*Engine, error) {
	// The field must fit the tallest structure, the barrier row, one row
	// of clearance, and the two banner rows.
	if height-core.Max(FloorHeight, sc.Tallest)-2-1-2 < 0 {
		return nil, fmt.Errorf("siege: terminal height (%d) shorter than layout", height)
	}
	if width < cfg.Barrier.Width {
		return nil, fmt.Errorf("siege: terminal width (%d) narrower than the barrier", width)
	}

	st := NewState(width, height, sc.Layout, sc.Tallest, cfg.Barrier.Width)
	return &Engine{
		state:    st,
		keys:     keys,
		defender: NewDefender(st, keys, sc.DefenderName),
		attacker: NewAttacker(st, sc.AttackerName, sc.Budget, cfg, seed),
		sc:       sc,
	}, nil
}

// State exposes the shared battle state for the platform layer.
func (e *Engine) State() *State {
	return e.state
}

// Attacker exposes the attack controller, mainly for its launch counters.
func (e *Engine) Attacker() *Attacker {
	return e.attacker
}

// Run plays the battle to completion: initial render, both controllers
// concurrently, then the closing prompt. It blocks until the user
// acknowledges the prompt or the context is canceled.
func (e *Engine) Run(ctx context.Context) (BattleResult, error) {
	started := time.Now()

	e.state.InitField()
	e.state.AnnounceAt(instructions, 0)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return e.defender.Run(gctx) })
	g.Go(func() error { return e.attacker.Run(gctx) })
	if err := g.Wait(); err != nil {
		return BattleResult{}, err
	}

	e.state.Announce(closingPrompt)
	e.awaitConfirm(ctx)

	return BattleResult{
		DefenderName: e.sc.DefenderName,
		AttackerName: e.sc.AttackerName,
		Outcome:      e.state.Cause(),
		Projectiles:  e.attacker.Spawned(),
		CityMass:     e.state.CityMass(),
		Duration:     time.Since(started),
	}, nil
}

// awaitConfirm blocks until the confirm key arrives or ctx is canceled.
func (e *Engine) awaitConfirm(ctx context.Context) {
	for {
		action, ok := e.keys.Next(ctx.Done())
		if !ok || action == core.ActionConfirm {
			return
		}
	}
}
