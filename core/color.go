package core

import "math"

// Color is a linear float RGBA color, channels may exceed 1 for emissive values
type Color struct {
	R, G, B, A float64
}

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}

	ColorTransparent = Color{}
	ColorWhite       = Color{1, 1, 1, 1}
)

// NewColor builds an opaque color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Scale multiplies the color channels, alpha is preserved
func (c Color) Scale(k float64) Color {
	return Color{R: c.R * k, G: c.G * k, B: c.B * k, A: c.A}
}

// WithAlpha returns the color with alpha replaced
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Lerp interpolates every channel including alpha, t is clamped to [0,1]
func (c Color) Lerp(to Color, t float64) Color {
	t = math.Max(0, math.Min(1, t))
	return Color{
		R: c.R + (to.R-c.R)*t,
		G: c.G + (to.G-c.G)*t,
		B: c.B + (to.B-c.B)*t,
		A: c.A + (to.A-c.A)*t,
	}
}

// RGB quantizes to 8-bit with alpha premultiplied, emissive overflow saturates
func (c Color) RGB() RGB {
	a := math.Max(0, math.Min(1, c.A))
	q := func(v float64) uint8 {
		v = math.Max(0, math.Min(1, v*a))
		return uint8(v*255 + 0.5)
	}
	return RGB{R: q(c.R), G: q(c.G), B: q(c.B)}
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Add performs additive blend with clamping (light accumulation)
func (c RGB) Add(src RGB) RGB {
	return RGB{
		R: uint8(min(int(c.R)+int(src.R), 255)),
		G: uint8(min(int(c.G)+int(src.G), 255)),
		B: uint8(min(int(c.B)+int(src.B), 255)),
	}
}
