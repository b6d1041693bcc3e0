package visual

import (
	"math"

	"github.com/lixenwraith/void-raider/core"
	"github.com/lixenwraith/void-raider/vmath"
)

// Ship hull choices in seed order with their base width in units
var hullChoices = [4]struct {
	shape Shape
	width float64
}{
	{ShapeTriangle, 1.0},
	{ShapeDiamond, 0.8},
	{ShapeArrow, 0.8},
	{ShapeHexagon, 1.0},
}

const (
	shipHeightUnits = 1.2
	wingPairs       = 4
	wingSeedMask    = 0xA5A5A5A5
)

// Ship is a procedurally generated composite visual in unit space
// Parts are owned by the root entity and positioned relative to it
type Ship struct {
	Hull        Shape
	Parts       []Part
	WidthUnits  float64
	HeightUnits float64
}

// BuildShip generates a deterministic ship for seed tinted with base
// Width units grow with the widest wing so the collider covers the silhouette
func BuildShip(seed uint64, base core.Color) Ship {
	rng := vmath.NewFastRand(seed)
	hull := hullChoices[rng.Intn(len(hullChoices))]

	ship := Ship{
		Hull:        hull.shape,
		HeightUnits: shipHeightUnits,
		Parts:       make([]Part, 0, 1+2*wingPairs+3),
	}
	ship.Parts = append(ship.Parts, Part{Shape: hull.shape, Size: vmath.V2(1, 1), Color: base})

	wingRng := vmath.NewFastRand(seed ^ wingSeedMask)
	wingColor := base.Scale(0.8)
	maxWing := 0.0
	for i := 0; i < wingPairs; i++ {
		fi := float64(i)
		y := 0.15 - 0.1*fi
		w := 0.15 + wingRng.Range(0.05, 0.18)*(1-fi*0.18)
		h := 0.05 + wingRng.Range(0.02, 0.06)
		maxWing = math.Max(maxWing, w)

		size := vmath.V2(2*w, 2*h)
		ship.Parts = append(ship.Parts,
			Part{Shape: ShapeQuad, Offset: vmath.V2(-0.25-w, y), Size: size, Color: wingColor},
			Part{Shape: ShapeQuad, Offset: vmath.V2(0.25+w, y), Size: size, Color: wingColor},
		)
	}

	ship.Parts = append(ship.Parts,
		// Cockpit
		Part{Shape: ShapeQuad, Offset: vmath.V2(0, 0.12), Size: vmath.V2(0.14, 0.12), Color: core.Color{R: 0.6, G: 1.6, B: 2.0, A: 1}},
		// Accent stripe
		Part{Shape: ShapeQuad, Offset: vmath.V2(0, -0.05), Size: vmath.V2(0.8, 0.02), Color: core.Color{R: 2.0, G: 1.4, B: 0.5, A: 0.6}},
		// Antenna
		Part{Shape: ShapeQuad, Offset: vmath.V2(0, 0.3), Size: vmath.V2(0.02, 0.16), Color: base.Scale(1.2)},
	)

	ship.WidthUnits = math.Max(hull.width, 0.5+4*maxWing)
	return ship
}

// HalfExtents returns the collision half-extents for the ship scaled to size
func (s Ship) HalfExtents(size vmath.Vec2) vmath.Vec2 {
	return vmath.V2(s.WidthUnits*size.X/2, s.HeightUnits*size.Y/2)
}
