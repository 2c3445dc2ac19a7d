package core

import "time"

// DefaultTickPeriod is the reference time between simulation ticks.
const DefaultTickPeriod = 150 * time.Millisecond

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	TickPeriod time.Duration // Time between simulation ticks
	Seed       int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickPeriod: DefaultTickPeriod,
		Seed:       0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Won      bool // Whether the game ended by filling the playfield
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Moved bool // Whether the snake advanced this tick
	Ate   bool // Whether food was consumed this tick
}
