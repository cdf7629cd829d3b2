package core

// RuntimeConfig contains configuration passed to a session at reset.
// Sessions use this to lay out the screen and to seed the brush.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for reproducible brush strokes
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// SessionState represents the current state of a sandbox session.
type SessionState struct {
	Tick    uint64 // Completed simulation ticks
	Paused  bool   // Whether the simulation is paused
	Stopped bool   // Whether the session ended (quit or aborted on a fault)
}

// StepResult is returned by Session.Step() after each frame.
type StepResult struct {
	State SessionState
	Moves int // Cells moved by the simulation this frame
}
