package core

// RuntimeConfig contains the host parameters a front-end runs with.
type RuntimeConfig struct {
	ScreenW  int   // Surface width in cells or pixels
	ScreenH  int   // Surface height in cells or pixels
	TickRate int   // Driver ticks per second (default 60)
	Seed     int64 // RNG seed for reproducible play
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
