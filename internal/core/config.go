package core

// RuntimeConfig contains configuration passed to a game at initialization.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second (default 60)
	Seed     uint64 // World seed; 0 means use current time in platform layer
	Resume   bool   // Restore the save slot when one exists
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Resume:   true,
	}
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	Tick   uint64 // Tick counter after the step
	Felled int    // Trees chopped this step
	Gained int    // Resources awarded for them
	Built  bool   // A bridge was laid this step
	Saved  bool   // A save record was written during this step
	Err    error  // Save failure, reported but never fatal
}
