package parameter

import "time"

// Game Loop & Engine Timing
const (
	// GameUpdateInterval is the fixed simulation tick (~60 Hz)
	GameUpdateInterval = 16 * time.Millisecond

	// MaxDeltaTime caps a single tick's elapsed time after host stalls
	MaxDeltaTime = 250 * time.Millisecond
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 2048

	// EventBufferMask is the bitmask for fast modulo operations (2048 - 1)
	EventBufferMask = 2047
)

// Screen, world units are pixels with origin at center and Y up
const (
	ScreenWidth  = 640
	ScreenHeight = 480
)

// Game phase
const (
	// GameOverGrace is the delay between player loss and the GameOver phase
	GameOverGrace = 1500 * time.Millisecond
)
