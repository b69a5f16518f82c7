// Package storage provides SQLite-based persistence for battle history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for battle persistence.
type Store struct {
	db *sql.DB
}

// BattleRecord is one finished battle.
type BattleRecord struct {
	ID           int64
	Defender     string
	Attacker     string
	Outcome      string
	Projectiles  int
	CityMass     int
	DurationSecs int
	CreatedAt    time.Time
}

// Stats contains aggregated battle statistics.
type Stats struct {
	Battles          int
	TotalProjectiles int64
	BestCityMass     int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS battles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			defender TEXT NOT NULL,
			attacker TEXT NOT NULL,
			outcome TEXT NOT NULL,
			projectiles INTEGER NOT NULL,
			city_mass INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_battles_recent ON battles(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_battles_city ON battles(city_mass DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveBattle records a finished battle.
// Returns the ID of the inserted record.
func (s *Store) SaveBattle(rec BattleRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO battles (defender, attacker, outcome, projectiles, city_mass, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Defender, rec.Attacker, rec.Outcome, rec.Projectiles, rec.CityMass, rec.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save battle: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentBattles retrieves the most recent battles, newest first.
func (s *Store) RecentBattles(limit int) ([]BattleRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, defender, attacker, outcome, projectiles, city_mass, duration_secs, created_at
		 FROM battles
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query battles: %w", err)
	}
	defer rows.Close()

	return scanBattles(rows)
}

// TopDefenses retrieves the battles with the most surviving city,
// best first.
func (s *Store) TopDefenses(limit int) ([]BattleRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, defender, attacker, outcome, projectiles, city_mass, duration_secs, created_at
		 FROM battles
		 ORDER BY city_mass DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query battles: %w", err)
	}
	defer rows.Close()

	return scanBattles(rows)
}

// GetStats retrieves aggregated statistics over all recorded battles.
func (s *Store) GetStats() (Stats, error) {
	var st Stats
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(projectiles), 0), COALESCE(MAX(city_mass), 0) FROM battles`,
	).Scan(&st.Battles, &st.TotalProjectiles, &st.BestCityMass)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	return st, nil
}

// scanBattles reads battle rows, tolerating both time.Time and string
// datetime representations from the driver.
func scanBattles(rows *sql.Rows) ([]BattleRecord, error) {
	var records []BattleRecord
	for rows.Next() {
		var rec BattleRecord
		var createdAt any
		if err := rows.Scan(
			&rec.ID, &rec.Defender, &rec.Attacker, &rec.Outcome,
			&rec.Projectiles, &rec.CityMass, &rec.DurationSecs, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		switch v := createdAt.(type) {
		case time.Time:
			rec.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				rec.CreatedAt = parsed
			}
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}
