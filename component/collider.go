package component

import (
	"github.com/lixenwraith/void-raider/vmath"
)

// ColliderComponent is an axis-aligned box centered on the transform position
type ColliderComponent struct {
	Half vmath.Vec2
}

// Box returns the collider positioned at p
func (c ColliderComponent) Box(p vmath.Vec2) vmath.AABB {
	return vmath.AABB{Center: p, Half: c.Half}
}
