package engine

import (
	"time"

	"github.com/lixenwraith/void-raider/vmath"
)

// Input is the host's per-tick sample of player intent
type Input struct {
	// Dt is the elapsed time since the previous tick
	Dt time.Duration

	// Cursor is the pointer position in world coordinates
	Cursor vmath.Vec2

	FirePrimary   bool
	FireSecondary bool
	Muted         bool

	// Viewport is the visible world size, zero keeps the previous value
	Viewport vmath.Vec2

	// TogglePause flips Running and Paused, ignored in GameOver
	TogglePause bool

	// Restart starts a new match, honored only in GameOver
	Restart bool
}
