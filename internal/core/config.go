package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in surface units (terminal columns or pixels)
	ScreenH  int   // Screen height in surface units (terminal rows or pixels)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// RowAspect is the height of one surface unit relative to its width.
	// Terminal cells are roughly twice as tall as wide; pixels are square.
	// Zero lets the game pick its configured default.
	RowAspect float64

	// HUDHeight is the number of surface units reserved at the top for the HUD.
	// Zero lets the game pick its default.
	HUDHeight int
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
	Score    int           // Current score
	GameOver bool          // Whether the game has ended
	Won      bool          // Whether the game ended in a win
	Paused   bool          // Whether the game is paused
	Elapsed  time.Duration // Play time of the current round
	Variant  string        // Game variant label used for result storage (e.g. "small/easy")
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
}
