package core

// RuntimeConfig contains configuration passed to games at initialization.
// ScreenW/ScreenH describe the host surface (terminal cells or window pixels);
// games keep their own world dimensions and project onto it.
type RuntimeConfig struct {
	ScreenW  int   // Host surface width
	ScreenH  int   // Host surface height
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
	Level    int  // Current level or wave
	GameOver bool // Whether the last run has ended
	Paused   bool // Whether the simulation is frozen
	Quit     bool // Whether the game asked the host to exit
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
