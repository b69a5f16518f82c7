package siege

import (
	"context"
	"testing"
	"time"

	"github.com/ogrinko/bastion/internal/config"
)

// fastConfig returns a config with all delays zeroed for deterministic,
// instant battles.
func fastConfig() config.BattleConfig {
	cfg := config.DefaultBattleConfig()
	cfg.Pacing.MaxDelayMs = 0
	cfg.Pacing.SpawnDelayFactor = 0
	return cfg
}

func TestBatchSize(t *testing.T) {
	cfg := fastConfig()

	cases := []struct {
		width int
		want  int
	}{
		{100, 8}, // capped
		{20, 5},  // width / 4
		{2, 1},   // never below one
	}
	for _, tc := range cases {
		st := newTestState(tc.width, 24, nil, 1)
		a := NewAttacker(st, "the horde", 10, cfg, 1)
		if got := a.BatchSize(); got != tc.want {
			t.Errorf("BatchSize() at width %d = %d, expected %d", tc.width, got, tc.want)
		}
	}
}

func TestAttackerSpendsExactBudget(t *testing.T) {
	st := newTestState(20, 20, []int{3, 3, 3, 2, 2}, 5)
	st.InitField()

	// Budget 7 across batches of 5: one full batch, then a partial one.
	a := NewAttacker(st, "the horde", 7, fastConfig(), 42)
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if got := a.Spawned(); got != 7 {
		t.Errorf("Spawned() = %d, expected exactly the budget 7", got)
	}
	if !st.GameOver() {
		t.Error("GameOver() = false after the budget was spent")
	}
	if got := st.Cause(); got != CauseBudgetSpent {
		t.Errorf("Cause() = %q, expected %q", got, CauseBudgetSpent)
	}
}

func TestAttackerPeakBoundedByBatch(t *testing.T) {
	st := newTestState(20, 20, []int{3, 3, 3, 2, 2}, 5)
	st.InitField()

	a := NewAttacker(st, "the horde", 20, fastConfig(), 7)
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if got := a.PeakLive(); got > a.BatchSize() {
		t.Errorf("PeakLive() = %d, exceeds batch size %d", got, a.BatchSize())
	}
}

func TestAttackerStopsOnExternalGameOver(t *testing.T) {
	st := newTestState(20, 20, nil, 5)
	st.InitField()

	// Unlimited budget: only an external end stops the attack.
	a := NewAttacker(st, "the horde", 0, fastConfig(), 3)

	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()

	time.Sleep(20 * time.Millisecond)
	st.EndBattle(CauseDefenderQuit)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() failed: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("attacker still running after the battle ended")
	}

	if got := st.Cause(); got != CauseDefenderQuit {
		t.Errorf("Cause() = %q, expected %q", got, CauseDefenderQuit)
	}
	if a.Spawned() == 0 {
		t.Error("unlimited attacker spawned nothing")
	}
}

func TestAttackerAbortsOnCanceledContext(t *testing.T) {
	st := newTestState(20, 20, nil, 5)
	st.InitField()

	// A non-zero delay forces the pause path to observe the context.
	cfg := fastConfig()
	cfg.Pacing.MaxDelayMs = 50
	cfg.Pacing.SpawnDelayFactor = 3

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := NewAttacker(st, "the horde", 10, cfg, 1)
	if err := a.Run(ctx); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if got := st.Cause(); got != CauseAborted {
		t.Errorf("Cause() = %q, expected %q", got, CauseAborted)
	}
}
