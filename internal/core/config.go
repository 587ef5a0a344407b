package core

// RuntimeConfig contains the frontend-supplied settings for a session.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState summarizes the game for the platform layer.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the current life has ended
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Final is the state after the update and before any restart; it
	// holds the closing score of a life that ended this tick.
	Final GameState

	// Ended is true on the tick the game transitioned to game over.
	Ended bool
	// Restarted is true on the tick a restart was performed.
	Restarted bool
}
