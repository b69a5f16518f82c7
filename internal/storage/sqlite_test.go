package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndRecentBattles(t *testing.T) {
	store := openTestStore(t)

	records := []BattleRecord{
		{Defender: "Gondor", Attacker: "Mordor", Outcome: "budget spent", Projectiles: 30, CityMass: 42, DurationSecs: 18},
		{Defender: "Minas Tirith", Attacker: "Angmar", Outcome: "defender quit", Projectiles: 12, CityMass: 55, DurationSecs: 9},
		{Defender: "Helm's Deep", Attacker: "Isengard", Outcome: "budget spent", Projectiles: 100, CityMass: 7, DurationSecs: 60},
	}
	for _, rec := range records {
		id, err := store.SaveBattle(rec)
		if err != nil {
			t.Fatalf("SaveBattle(%q) failed: %v", rec.Defender, err)
		}
		if id <= 0 {
			t.Errorf("SaveBattle(%q) returned id %d, want > 0", rec.Defender, id)
		}
	}

	got, err := store.RecentBattles(10)
	if err != nil {
		t.Fatalf("RecentBattles() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("RecentBattles() returned %d records, want 3", len(got))
	}
	// Newest first
	if got[0].Defender != "Helm's Deep" {
		t.Errorf("newest record defender = %q, want %q", got[0].Defender, "Helm's Deep")
	}
	if got[0].Projectiles != 100 || got[0].CityMass != 7 {
		t.Errorf("record fields = (%d, %d), want (100, 7)", got[0].Projectiles, got[0].CityMass)
	}
}

func TestRecentBattlesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		_, err := store.SaveBattle(BattleRecord{
			Defender: "d", Attacker: "a", Outcome: "budget spent",
		})
		if err != nil {
			t.Fatalf("SaveBattle() failed: %v", err)
		}
	}

	got, err := store.RecentBattles(2)
	if err != nil {
		t.Fatalf("RecentBattles() failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("RecentBattles(2) returned %d records, want 2", len(got))
	}
}

func TestTopDefenses(t *testing.T) {
	store := openTestStore(t)

	masses := []int{10, 99, 50}
	for _, m := range masses {
		_, err := store.SaveBattle(BattleRecord{
			Defender: "d", Attacker: "a", Outcome: "budget spent", CityMass: m,
		})
		if err != nil {
			t.Fatalf("SaveBattle() failed: %v", err)
		}
	}

	got, err := store.TopDefenses(10)
	if err != nil {
		t.Fatalf("TopDefenses() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("TopDefenses() returned %d records, want 3", len(got))
	}
	if got[0].CityMass != 99 || got[1].CityMass != 50 || got[2].CityMass != 10 {
		t.Errorf("TopDefenses() order = %d, %d, %d, want 99, 50, 10",
			got[0].CityMass, got[1].CityMass, got[2].CityMass)
	}
}

func TestGetStats(t *testing.T) {
	store := openTestStore(t)

	st, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() on empty store failed: %v", err)
	}
	if st.Battles != 0 || st.TotalProjectiles != 0 || st.BestCityMass != 0 {
		t.Errorf("empty stats = %+v, want zeroes", st)
	}

	store.SaveBattle(BattleRecord{Defender: "d", Attacker: "a", Outcome: "budget spent", Projectiles: 10, CityMass: 5})
	store.SaveBattle(BattleRecord{Defender: "d", Attacker: "a", Outcome: "defender quit", Projectiles: 20, CityMass: 15})

	st, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if st.Battles != 2 {
		t.Errorf("Battles = %d, want 2", st.Battles)
	}
	if st.TotalProjectiles != 30 {
		t.Errorf("TotalProjectiles = %d, want 30", st.TotalProjectiles)
	}
	if st.BestCityMass != 15 {
		t.Errorf("BestCityMass = %d, want 15", st.BestCityMass)
	}
}
