package component

import (
	"github.com/lixenwraith/void-raider/core"
)

// FlashComponent is a brief impact highlight
type FlashComponent struct {
	Remaining float64
	Duration  float64
	Color     core.Color
}

// VignetteComponent is a full-screen damage tint fading over its duration
type VignetteComponent struct {
	Remaining float64
	Duration  float64
	Intensity float64
}

// EngineFlameComponent pulses the engine glow of its owner ship
type EngineFlameComponent struct {
	Owner   core.Entity
	Timer   float64
	Elapsed float64
	Glow    float64
	Width   float64
}

// StarComponent is a background star scrolling downward
type StarComponent struct {
	Speed float64 // px per tick
}

// BorderComponent marks a static screen-edge overlay
type BorderComponent struct{}
