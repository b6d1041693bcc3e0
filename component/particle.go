package component

import (
	"github.com/lixenwraith/void-raider/core"
)

// ParticleComponent is a short-lived cosmetic with damped velocity
type ParticleComponent struct {
	Life  float64
	Total float64
	Start core.Color
	End   core.Color
	Spin  float64 // Radians per second
	Size  float64 // Base scale before lifetime fade
}

// Progress returns 0 at birth and 1 at expiry
func (p ParticleComponent) Progress() float64 {
	if p.Total <= 0 {
		return 1
	}
	k := 1 - p.Life/p.Total
	return min(max(k, 0), 1)
}
