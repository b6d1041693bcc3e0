package component

import (
	"github.com/lixenwraith/void-raider/core"
	"github.com/lixenwraith/void-raider/visual"
	"github.com/lixenwraith/void-raider/vmath"
)

// TrailComponent keeps recent positions, oldest first
type TrailComponent struct {
	Points    []vmath.Vec2
	MaxLength int
	Color     core.Color

	// Segments are regenerated every tick from Points
	Segments []visual.Segment
}

// Push appends p and evicts the oldest point beyond MaxLength
func (t *TrailComponent) Push(p vmath.Vec2) {
	t.Points = append(t.Points, p)
	if over := len(t.Points) - t.MaxLength; over > 0 {
		t.Points = append(t.Points[:0], t.Points[over:]...)
	}
}
