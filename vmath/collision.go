package vmath

import "math"

// AABB is an axis-aligned box described by center and half-extents
type AABB struct {
	Center Vec2
	Half   Vec2
}

// Overlaps reports whether two boxes intersect once each side is padded
// Padding expands the sum of half-extents per axis; contact exactly at the
// boundary is not an overlap
func Overlaps(a, b AABB, pad Vec2) bool {
	dx := math.Abs(a.Center.X - b.Center.X)
	dy := math.Abs(a.Center.Y - b.Center.Y)
	return dx < a.Half.X+b.Half.X+pad.X && dy < a.Half.Y+b.Half.Y+pad.Y
}

// TravelPad returns the per-axis padding for an object moving at vel over dt
func TravelPad(vel Vec2, dt float64) Vec2 {
	return Vec2{math.Abs(vel.X) * dt, math.Abs(vel.Y) * dt}
}

// Contains reports whether p lies within the box expanded by margin
func (b AABB) Contains(p Vec2, margin float64) bool {
	return math.Abs(p.X-b.Center.X) <= b.Half.X+margin && math.Abs(p.Y-b.Center.Y) <= b.Half.Y+margin
}
