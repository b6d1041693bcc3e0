package visual

import (
	"math"

	"github.com/lixenwraith/void-raider/vmath"
)

// Shape is the logical mesh archetype the renderer instantiates
type Shape uint8

const (
	ShapeQuad Shape = iota
	ShapeTriangle
	ShapeDiamond
	ShapeArrow
	ShapeHexagon
	ShapeCount
)

var shapeNames = [ShapeCount]string{"quad", "triangle", "diamond", "arrow", "hexagon"}

func (s Shape) String() string {
	if s >= ShapeCount {
		return "unknown"
	}
	return shapeNames[s]
}

// Unit-space outlines, roughly within [-0.5, 0.5] and scaled by the instance
var (
	quadVertices = []vmath.Vec2{
		{X: -0.5, Y: -0.5}, {X: 0.5, Y: -0.5}, {X: 0.5, Y: 0.5}, {X: -0.5, Y: 0.5},
	}
	triangleVertices = []vmath.Vec2{
		{X: 0, Y: 0.5}, {X: -0.5, Y: -0.5}, {X: 0.5, Y: -0.5},
	}
	diamondVertices = []vmath.Vec2{
		{X: 0, Y: 0.6}, {X: -0.4, Y: 0}, {X: 0, Y: -0.6}, {X: 0.4, Y: 0},
	}
	// Arrow head followed by shaft corners
	arrowVertices = []vmath.Vec2{
		{X: 0, Y: 0.6}, {X: -0.4, Y: 0.1}, {X: 0.4, Y: 0.1},
		{X: -0.15, Y: 0.1}, {X: 0.15, Y: 0.1}, {X: -0.15, Y: -0.6}, {X: 0.15, Y: -0.6},
	}
	hexagonVertices = buildHexagon(0.5)
)

func buildHexagon(radius float64) []vmath.Vec2 {
	verts := make([]vmath.Vec2, 0, 7)
	verts = append(verts, vmath.Vec2{})
	for i := 0; i < 6; i++ {
		a := float64(i) * math.Pi / 3
		verts = append(verts, vmath.V2(radius*math.Cos(a), radius*math.Sin(a)))
	}
	return verts
}

// Vertices returns a copy of the unit-space outline for the shape
func (s Shape) Vertices() []vmath.Vec2 {
	var src []vmath.Vec2
	switch s {
	case ShapeTriangle:
		src = triangleVertices
	case ShapeDiamond:
		src = diamondVertices
	case ShapeArrow:
		src = arrowVertices
	case ShapeHexagon:
		src = hexagonVertices
	default:
		src = quadVertices
	}
	out := make([]vmath.Vec2, len(src))
	copy(out, src)
	return out
}
