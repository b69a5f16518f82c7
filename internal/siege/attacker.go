package siege

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ogrinko/bastion/internal/config"
	"github.com/ogrinko/bastion/internal/core"
)

// unlimitedBudget is the sentinel for a budget-free attack. It is never
// decremented to zero.
const unlimitedBudget = -1

// Attacker launches projectiles in bounded batches. Each batch is spawned
// slot by slot with randomized pauses and then joined in full before the
// next one, so at most one batch of projectile actors is ever live.
type Attacker struct {
	state *State
	name  string

	// budget is the remaining projectile count, or unlimitedBudget.
	budget int

	batchCap    int
	maxDelay    time.Duration
	spawnFactor int

	rng  *rand.Rand
	seed int64

	spawned atomic.Int64
	live    atomic.Int64
	peak    atomic.Int64
}

// NewAttacker creates the attack controller. Budget 0 from the scenario
// means unlimited. The rng derived from seed is owned by the controller
// goroutine; each projectile gets its own derived source.
func NewAttacker(st *State, name string, budget int, cfg config.BattleConfig, seed int64) *Attacker {
	if budget == 0 {
		budget = unlimitedBudget
	}
	return &Attacker{
		state:       st,
		name:        name,
		budget:      budget,
		batchCap:    cfg.Attack.BatchCap,
		maxDelay:    time.Duration(cfg.Pacing.MaxDelayMs) * time.Millisecond,
		spawnFactor: cfg.Pacing.SpawnDelayFactor,
		rng:         rand.New(rand.NewSource(seed)),
		seed:        seed,
	}
}

// BatchSize returns the number of projectiles launched per batch: a
// function of field width, capped to keep rendering responsive.
func (a *Attacker) BatchSize() int {
	return core.Min(a.batchCap, core.Max(1, a.state.Width()/4))
}

// Spawned returns the total number of projectiles launched so far.
func (a *Attacker) Spawned() int {
	return int(a.spawned.Load())
}

// PeakLive returns the high-water mark of concurrently live projectiles.
func (a *Attacker) PeakLive() int {
	return int(a.peak.Load())
}

// Run drives the attack until the budget is spent or the battle ends.
// A batch in progress always runs to completion: an externally-set
// game-over stops spawning at batch granularity, not mid-flight.
func (a *Attacker) Run(ctx context.Context) error {
	batch := a.BatchSize()
	if batch <= 0 {
		// Degenerate field; end the battle instead of crashing it.
		a.state.Announce("The " + a.name + " attack could not be mounted.")
		a.state.EndBattle(CauseAborted)
	}

	for !a.state.GameOver() {
		var wg sync.WaitGroup
		for i := 0; i < batch; i++ {
			if !a.pause(ctx) {
				a.state.EndBattle(CauseAborted)
				break
			}

			col := a.rng.Intn(a.state.Width())
			p := NewProjectile(col, a.projectileRand(), a.maxDelay)

			a.spawned.Add(1)
			a.noteLaunch()
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer a.live.Add(-1)
				p.Run(a.state)
			}()

			if a.budget != unlimitedBudget {
				a.budget--
				if a.budget == 0 {
					a.state.EndBattle(CauseBudgetSpent)
					break
				}
			}
			if a.state.GameOver() {
				break
			}
		}
		wg.Wait()
	}

	a.state.Announce("The " + a.name + " attack has ended.")
	return nil
}

// pause sleeps the randomized inter-launch delay. Returns false if the
// context was canceled while waiting.
func (a *Attacker) pause(ctx context.Context) bool {
	capMs := a.spawnFactor * int(a.maxDelay/time.Millisecond)
	if capMs <= 0 {
		return ctx.Err() == nil
	}
	d := time.Duration(a.rng.Intn(capMs)) * time.Millisecond
	select {
	case <-time.After(d):
		return true
	case <-ctx.Done():
		return false
	}
}

// projectileRand derives a private random source for one projectile, so
// sibling actors never contend on a shared generator.
func (a *Attacker) projectileRand() *rand.Rand {
	return rand.New(rand.NewSource(a.seed + a.spawned.Load() + 1))
}

// noteLaunch tracks the live-projectile high-water mark.
func (a *Attacker) noteLaunch() {
	l := a.live.Add(1)
	for {
		cur := a.peak.Load()
		if l <= cur || a.peak.CompareAndSwap(cur, l) {
			return
		}
	}
}
