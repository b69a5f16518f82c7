// Package config provides YAML-based tuning and difficulty presets for
// battle pacing.
package config

// BattleConfig contains the tunable parameters of a battle.
// The scenario file decides who fights and over what city; this decides
// how fast it all happens.
type BattleConfig struct {
	Pacing  PacingConfig  `yaml:"pacing"`
	Barrier BarrierConfig `yaml:"barrier"`
	Attack  AttackConfig  `yaml:"attack"`
}

// PacingConfig defines the timing of the simulation.
type PacingConfig struct {
	// MaxDelayMs caps the randomized per-row descent delay of a projectile.
	// Each projectile sleeps a uniform random duration in [0, MaxDelayMs)
	// milliseconds before advancing one row.
	MaxDelayMs int `yaml:"max_delay_ms"`

	// SpawnDelayFactor scales the attacker's pause between launches:
	// the attacker sleeps up to SpawnDelayFactor * MaxDelayMs per slot.
	SpawnDelayFactor int `yaml:"spawn_delay_factor"`
}

// BarrierConfig defines the defender's interceptor.
type BarrierConfig struct {
	// Width is the barrier size in cells.
	Width int `yaml:"width"`
}

// AttackConfig defines the attacker's batching behavior.
type AttackConfig struct {
	// BatchCap bounds concurrent in-flight projectiles regardless of
	// field width.
	BatchCap int `yaml:"batch_cap"`
}

// Normalize replaces zero or negative fields with their defaults so a
// partial YAML file still yields a playable configuration.
func (c *BattleConfig) Normalize() {
	def := DefaultBattleConfig()
	if c.Pacing.MaxDelayMs <= 0 {
		c.Pacing.MaxDelayMs = def.Pacing.MaxDelayMs
	}
	if c.Pacing.SpawnDelayFactor <= 0 {
		c.Pacing.SpawnDelayFactor = def.Pacing.SpawnDelayFactor
	}
	if c.Barrier.Width <= 0 {
		c.Barrier.Width = def.Barrier.Width
	}
	if c.Attack.BatchCap <= 0 {
		c.Attack.BatchCap = def.Attack.BatchCap
	}
}

// DifficultyPreset represents a named pacing level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset adjusts pacing for a difficulty preset.
// Slower projectiles are easier to intercept.
func ApplyPreset(cfg *BattleConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Pacing.MaxDelayMs = 450
	case DifficultyHard:
		cfg.Pacing.MaxDelayMs = 150
	case DifficultyNormal:
		cfg.Pacing.MaxDelayMs = 300
	}
}
