package config

import (
	_ "embed"
)

//go:embed defaults/trailcut.yaml
var defaultTrailcutYAML []byte

// DefaultTrailcutConfig returns the default game configuration.
func DefaultTrailcutConfig() TrailcutConfig {
	return TrailcutConfig{
		Grid: GridConfig{
			Width:  60,
			Height: 22,
			Border: 1,
		},
		Player: PlayerConfig{
			Speed: 1.0,
		},
		Enemies: EnemyConfig{
			Speed:        0.5,
			Count:        1,
			LevelScaling: 0.05,
		},
		Gameplay: GameplayConfig{
			Lives:         3,
			WinPercent:    75,
			CellPoints:    1,
			EnemyBonus:    100,
			AnnounceTicks: 90, // ~1.5 seconds at 60 FPS
		},
	}
}
