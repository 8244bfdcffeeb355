package parameter

import "time"

// Driver & Render Timing
const (
	// TickInterval is the simulation step cadence
	TickInterval = 50 * time.Millisecond

	// FrameUpdateInterval is the terminal redraw interval (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond

	// PausedSleepMultiplier stretches the driver sleep while paused to save CPU
	PausedSleepMultiplier = 2
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "nanoswarm.log"
	MaxLogSize  = 10 * 1024 * 1024
)
