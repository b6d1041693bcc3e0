package event

import (
	"github.com/lixenwraith/void-raider/component"
	"github.com/lixenwraith/void-raider/core"
	"github.com/lixenwraith/void-raider/vmath"
)

// SoundRequestPayload carries an audio trigger
type SoundRequestPayload struct {
	Request core.SoundRequest
}

// ShakeRequestPayload sets the camera shake, stronger requests win
type ShakeRequestPayload struct {
	Intensity float64
	Frames    int
}

// EnemyDestroyedPayload describes a kill
type EnemyDestroyedPayload struct {
	Entity   core.Entity
	Kind     component.EnemyKind
	Points   int
	Position vmath.Vec2
	Rammed   bool
}

// PlayerDamagedPayload describes damage dealt to the player
type PlayerDamagedPayload struct {
	Amount    int
	Remaining int
}

// WaveAdvancedPayload describes a wave transition
type WaveAdvancedPayload struct {
	Wave int
}

// SystemCommandPayload toggles a system
type SystemCommandPayload struct {
	SystemName string
	Enabled    bool
}
