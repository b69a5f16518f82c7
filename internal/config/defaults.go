package config

import (
	_ "embed"
)

//go:embed defaults/battle.yaml
var defaultBattleYAML []byte

// DefaultBattleConfig returns the default battle configuration.
func DefaultBattleConfig() BattleConfig {
	return BattleConfig{
		Pacing: PacingConfig{
			MaxDelayMs:       300,
			SpawnDelayFactor: 3,
		},
		Barrier: BarrierConfig{
			Width: 5,
		},
		Attack: AttackConfig{
			BatchCap: 8,
		},
	}
}
