package parameter

// Engine flame
const (
	FlameInterval = 0.12
	FlameGlowBase = 0.7
	FlameGlowAmp  = 0.3
	FlameGlowFreq = 6.0
)

// Starfield
const (
	StarCount     = 180
	StarSeed      = 42
	StarSpeedMin  = 0.15
	StarSpeedMax  = 0.5
	StarBlueEvery = 6
)

// Screen-edge vignette overlay
const (
	VignetteBorder = 40.0
	VignetteAlpha  = 0.18
)
