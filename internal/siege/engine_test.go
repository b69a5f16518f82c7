package siege

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ogrinko/bastion/internal/core"
	"github.com/ogrinko/bastion/internal/scenario"
)

func testScenario(budget int) *scenario.Scenario {
	return &scenario.Scenario{
		DefenderName: "Gondor",
		AttackerName: "Mordor",
		Budget:       budget,
		Layout:       []int{3, 3, 3, 2, 2},
		Tallest:      3,
	}
}

// runBattle drives an engine to completion, feeding the confirm key until
// the closing prompt is acknowledged.
func runBattle(t *testing.T, e *Engine, keys *core.Keys) BattleResult {
	t.Helper()

	type outcome struct {
		result BattleResult
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		r, err := e.Run(context.Background())
		done <- outcome{r, err}
	}()

	deadline := time.After(10 * time.Second)
	for {
		select {
		case o := <-done:
			if o.err != nil {
				t.Fatalf("Run() failed: %v", o.err)
			}
			return o.result
		case <-time.After(10 * time.Millisecond):
			keys.Push(core.ActionConfirm)
		case <-deadline:
			t.Fatal("battle never finished")
		}
	}
}

func TestNewRejectsShortTerminal(t *testing.T) {
	keys := core.NewKeys()
	sc := testScenario(5)
	sc.Layout = []int{10}
	sc.Tallest = 10

	// 10 rows of structure, plus clearance and banners, need 15 rows.
	if _, err := New(sc, fastConfig(), keys, 80, 14, 1); err == nil {
		t.Error("New() accepted a terminal too short for the layout")
	}
	if _, err := New(sc, fastConfig(), keys, 80, 15, 1); err != nil {
		t.Errorf("New() rejected a tall enough terminal: %v", err)
	}
}

func TestNewRejectsNarrowTerminal(t *testing.T) {
	keys := core.NewKeys()
	if _, err := New(testScenario(5), fastConfig(), keys, 3, 24, 1); err == nil {
		t.Error("New() accepted a terminal narrower than the barrier")
	}
}

func TestEngineBudgetBattle(t *testing.T) {
	keys := core.NewKeys()
	e, err := New(testScenario(6), fastConfig(), keys, 40, 24, 42)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	result := runBattle(t, e, keys)

	if result.Outcome != CauseBudgetSpent {
		t.Errorf("Outcome = %q, expected %q", result.Outcome, CauseBudgetSpent)
	}
	if result.Projectiles != 6 {
		t.Errorf("Projectiles = %d, expected the full budget 6", result.Projectiles)
	}
	if result.DefenderName != "Gondor" || result.AttackerName != "Mordor" {
		t.Errorf("names = (%q, %q)", result.DefenderName, result.AttackerName)
	}
	if result.CityMass > 13 {
		t.Errorf("CityMass = %d, exceeds the initial mass 13", result.CityMass)
	}

	// Both end messages and the closing prompt made it to the field.
	screen := e.State().Snapshot().String()
	for _, want := range []string{
		"The Mordor attack has ended.",
		"The Gondor defense has ended.",
		"hit enter to close...",
	} {
		if !strings.Contains(screen, want) {
			t.Errorf("field is missing %q", want)
		}
	}
}

func TestEngineDefenderQuit(t *testing.T) {
	keys := core.NewKeys()
	// Unlimited budget: only the defender can end this battle.
	e, err := New(testScenario(0), fastConfig(), keys, 40, 24, 7)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	keys.Push(core.ActionQuit)
	result := runBattle(t, e, keys)

	if result.Outcome != CauseDefenderQuit {
		t.Errorf("Outcome = %q, expected %q", result.Outcome, CauseDefenderQuit)
	}
}

func TestEngineShowsBanner(t *testing.T) {
	keys := core.NewKeys()
	e, err := New(testScenario(3), fastConfig(), keys, 60, 24, 1)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	runBattle(t, e, keys)

	if got := e.State().Snapshot().Row(0); !strings.Contains(got, "Enter 'q' to quit") {
		t.Errorf("row 0 = %q, expected the instruction banner", got)
	}
}
