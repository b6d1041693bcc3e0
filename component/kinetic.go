package component

import (
	"github.com/lixenwraith/void-raider/vmath"
)

// KineticComponent carries linear velocity in px/s
type KineticComponent struct {
	Velocity vmath.Vec2
}
