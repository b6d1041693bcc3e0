package component

import (
	"github.com/lixenwraith/void-raider/core"
	"github.com/lixenwraith/void-raider/visual"
)

// VisualComponent ties an entity to its renderer-side visual
type VisualComponent struct {
	Role  visual.Role
	Shape visual.Shape
	Color core.Color
}
