package vmath

import (
	"math"
)

// Epsilon floors denominators in normalization and distance divisions
const Epsilon = 1e-6

// Vec2 is a float64 2D vector in world pixels, origin at screen center, Y up
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Dist returns the distance between two points floored at min
// Used where the result is a divisor
func V2Dist(a, b Vec2, floor float64) float64 {
	return math.Max(V2Mag(V2Sub(a, b)), floor)
}

// V2Normalize returns unit vector with the magnitude floored at Epsilon
// Zero input yields zero output rather than NaN
func V2Normalize(v Vec2) Vec2 {
	inv := 1.0 / math.Max(V2Mag(v), Epsilon)
	return Vec2{v.X * inv, v.Y * inv}
}

// V2FromAngle returns the unit vector for angle in radians
func V2FromAngle(angle float64) Vec2 {
	return Vec2{math.Cos(angle), math.Sin(angle)}
}

// V2Angle returns atan2 of the vector
func V2Angle(v Vec2) float64 {
	return math.Atan2(v.Y, v.X)
}

// V2MoveToward steps from toward target by at most maxStep, snapping once within snap
func V2MoveToward(from, target Vec2, maxStep, snap float64) Vec2 {
	delta := V2Sub(target, from)
	dist := V2Mag(delta)
	if dist <= snap || dist <= maxStep {
		return target
	}
	return V2Add(from, V2Scale(delta, maxStep/math.Max(dist, Epsilon)))
}

// Clamp restricts v to [lo, hi]; if lo > hi the midpoint is returned
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
