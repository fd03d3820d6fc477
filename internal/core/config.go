package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind identifies a gameplay event emitted during a tick.
type EventKind int

const (
	// EventEnemyDestroyed fires when a completed capture walls an enemy in.
	EventEnemyDestroyed EventKind = iota
	// EventPlayerDied fires when the player loses a life.
	EventPlayerDied
)

// Event is a gameplay occurrence exposed to the effects/audio collaborator.
// X and Y are grid cell coordinates, not screen coordinates.
type Event struct {
	Kind EventKind
	X, Y int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Events contains only this tick's occurrences; the slice is reused
// across ticks and must be consumed before the next Step call.
type StepResult struct {
	State  GameState
	Events []Event
}
