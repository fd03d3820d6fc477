package trailcut

// GameStateType represents the current driver state.
type GameStateType string

const (
	StatePlaying       GameStateType = "playing"
	StateLevelAnnounce GameStateType = "level_announce"
	StateDead          GameStateType = "dead"
	StatePaused        GameStateType = "paused"
	StatePausedSmall   GameStateType = "paused_small_window"
)

// EnemyPosition is a read-only enemy location.
type EnemyPosition struct {
	X, Y float64
}

// Snapshot captures the complete observable game state for determinism
// testing, replay, and the rendering collaborator.
type Snapshot struct {
	Tick    uint64
	Variant string
	State   GameStateType

	Score   int
	Level   int
	Lives   int
	Percent int

	PlayerX int
	PlayerY int
	Mode    Mode

	Enemies []EnemyPosition
}

// Snapshot returns the current game snapshot. The grid itself is
// exposed separately through CellAt.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.dead:
		state = StateDead
	case g.announceTicks > 0:
		state = StateLevelAnnounce
	case g.paused:
		state = StatePaused
	}

	enemies := make([]EnemyPosition, len(g.enemies))
	for i := range g.enemies {
		enemies[i] = EnemyPosition{X: g.enemies[i].X, Y: g.enemies[i].Y}
	}

	return Snapshot{
		Tick:    g.tick,
		Variant: g.ID(),
		State:   state,
		Score:   g.score,
		Level:   g.level,
		Lives:   g.lives,
		Percent: g.PercentCaptured(),
		PlayerX: g.player.CellX(),
		PlayerY: g.player.CellY(),
		Mode:    g.player.Mode,
		Enemies: enemies,
	}
}
