package component

import (
	"github.com/lixenwraith/void-raider/vmath"
)

// TransformComponent places an entity in world space
type TransformComponent struct {
	Position vmath.Vec2
	Rotation float64    // Radians, counter-clockwise
	Scale    vmath.Vec2 // World size of the visual
}
