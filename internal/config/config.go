// Package config provides YAML-based game configuration loading and
// difficulty presets for the trailcut arcade.
package config

// TrailcutConfig contains all tunable parameters for the game.
type TrailcutConfig struct {
	Grid     GridConfig     `yaml:"grid"`
	Player   PlayerConfig   `yaml:"player"`
	Enemies  EnemyConfig    `yaml:"enemies"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// GridConfig defines the play field dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Border int `yaml:"border"` // Border thickness in cells, pre-seeded as captured
}

// PlayerConfig defines cursor movement parameters.
type PlayerConfig struct {
	Speed float64 `yaml:"speed"` // Cells advanced per simulation tick
}

// EnemyConfig defines enemy parameters. Enemies move once every two
// simulation ticks; Speed is cells per enemy move.
type EnemyConfig struct {
	Speed        float64 `yaml:"speed"`
	Count        int     `yaml:"count"`          // Enemies at game start
	LevelScaling float64 `yaml:"level_scaling"`  // Speed added per level beyond the first
}

// GameplayConfig defines scoring and progression rules.
type GameplayConfig struct {
	Lives         int `yaml:"lives"`
	WinPercent    int `yaml:"win_percent"`    // Captured percentage that completes a level
	CellPoints    int `yaml:"cell_points"`    // Score per captured cell
	EnemyBonus    int `yaml:"enemy_bonus"`    // Score per enemy walled in
	AnnounceTicks int `yaml:"announce_ticks"` // Duration of the level-complete banner
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset modifies the config based on a difficulty preset.
// "fixed" disables per-level enemy speed scaling but leaves the rest of
// the config untouched.
func ApplyPreset(cfg *TrailcutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Enemies.Speed = 0.4
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Enemies.Speed = 0.65
		cfg.Gameplay.WinPercent = 80
	case DifficultyFixed:
		cfg.Enemies.LevelScaling = 0
	}
}

// sanitize clamps nonsensical values back into playable ranges so a
// hand-edited config can never produce a degenerate simulation.
func sanitize(cfg *TrailcutConfig) {
	if cfg.Grid.Border < 1 {
		cfg.Grid.Border = 1
	}
	// Minimal playable size: border on each side plus a few void cells
	if cfg.Grid.Width < 2*cfg.Grid.Border+4 {
		cfg.Grid.Width = 2*cfg.Grid.Border + 4
	}
	if cfg.Grid.Height < 2*cfg.Grid.Border+4 {
		cfg.Grid.Height = 2*cfg.Grid.Border + 4
	}
	if cfg.Player.Speed <= 0 {
		cfg.Player.Speed = 1.0
	}
	if cfg.Enemies.Speed <= 0 {
		cfg.Enemies.Speed = 0.5
	}
	if cfg.Enemies.Count < 1 {
		cfg.Enemies.Count = 1
	}
	if cfg.Gameplay.Lives < 1 {
		cfg.Gameplay.Lives = 3
	}
	if cfg.Gameplay.WinPercent < 1 || cfg.Gameplay.WinPercent > 100 {
		cfg.Gameplay.WinPercent = 75
	}
	if cfg.Gameplay.AnnounceTicks < 1 {
		cfg.Gameplay.AnnounceTicks = 90
	}
}
