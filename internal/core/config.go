package core

// RuntimeConfig contains settings passed to scenes at construction.
type RuntimeConfig struct {
	WorldW   float64 // World width in world units
	WorldH   float64 // World height in world units
	TickRate int     // Simulation steps per second (default 60)
	Seed     int64   // RNG seed for deterministic simulation
}

// DefaultConfig returns a RuntimeConfig with the standard 1024x768 world.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		WorldW:   1024,
		WorldH:   768,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Bounds returns the world area.
func (c RuntimeConfig) Bounds() Bounds {
	return Bounds{W: c.WorldW, H: c.WorldH}
}

// GameState is a scene's status, read by frontends after each frame.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the scene has ended
	Paused   bool // Whether the simulation is paused
}
