package component

import (
	"github.com/lixenwraith/void-raider/vmath"
)

// Cooldowns holds the player's fire timers in seconds, ready at zero or below
type Cooldowns struct {
	Primary float64
	Special float64
}

// Tick decrements both timers
func (c *Cooldowns) Tick(dt float64) {
	c.Primary -= dt
	c.Special -= dt
}

// PlayerComponent marks the player ship and owns its per-match state
type PlayerComponent struct {
	Cooldowns Cooldowns

	// RegenCarry accumulates fractional health regen between ticks
	RegenCarry float64

	// LastPosition is the position at the start of the previous tick
	LastPosition vmath.Vec2
}
