package core

// RuntimeConfig contains configuration passed to the front end at start.
type RuntimeConfig struct {
	ScreenW    int // Screen width in characters
	ScreenH    int // Screen height in characters
	TickRate   int // Simulation ticks per second (default 60)
	HoldFrames int // Frames a key counts as held after its last repeat
	HUD        int // Initial HUD mode: 0 off, 1 counters, 2 inventory
	ViewW      int // Tiles shown horizontally
	ViewH      int // Tiles shown vertically
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		HoldFrames: 8,
		HUD:        1,
		ViewW:      21,
		ViewH:      15,
	}
}
