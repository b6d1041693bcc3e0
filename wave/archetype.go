package wave

import (
	"math"

	"github.com/lixenwraith/void-raider/component"
	"github.com/lixenwraith/void-raider/core"
	"github.com/lixenwraith/void-raider/vmath"
)

// Archetype is a named enemy stat preset, declaration order is spawn order
type Archetype uint8

const (
	Scout Archetype = iota
	Heavy
	Bomber
	Drone
	ArchetypeCount
)

var archetypeNames = [ArchetypeCount]string{"scout", "heavy", "bomber", "drone"}

func (a Archetype) String() string {
	if a >= ArchetypeCount {
		return "unknown"
	}
	return archetypeNames[a]
}

// Stats is the static preset of an archetype
type Stats struct {
	HP int

	// SpeedMin and SpeedMax bound the spawn speed in px/s
	SpeedMin, SpeedMax float64

	Size vmath.Vec2
	Kind component.EnemyKind

	// PatternMin and PatternMax bound the initial movement pattern, inclusive
	PatternMin, PatternMax component.MovementPattern

	Firing component.FiringPattern
	Color  core.Color
}

var archetypeStats = [ArchetypeCount]Stats{
	Scout: {
		HP: 3, SpeedMin: 100, SpeedMax: 140,
		Size: vmath.V2(16, 16), Kind: component.KindBasic,
		PatternMin: component.MoveSineSlow, PatternMax: component.MoveSineFast,
		Firing: component.SingleFire(),
		Color:  core.NewColor(0.3, 1, 0.3),
	},
	Heavy: {
		HP: 12, SpeedMin: 50, SpeedMax: 80,
		Size: vmath.V2(24, 24), Kind: component.KindBasic,
		PatternMin: component.MoveDown, PatternMax: component.MoveRight,
		Firing: component.BurstFire(3, 0.1),
		Color:  core.NewColor(0.8, 0.3, 0.3),
	},
	Bomber: {
		HP: 6, SpeedMin: 70, SpeedMax: 100,
		Size: vmath.V2(20, 18), Kind: component.KindSpecial,
		PatternMin: component.MoveSineSlow, PatternMax: component.MoveSineFast,
		Firing: component.SpreadFire(5, math.Pi/3),
		Color:  core.NewColor(0.9, 0.6, 0.2),
	},
	Drone: {
		HP: 4, SpeedMin: 90, SpeedMax: 130,
		Size: vmath.V2(14, 14), Kind: component.KindBasic,
		PatternMin: component.MoveHoming, PatternMax: component.MoveHoming,
		Firing: component.AimedFire(),
		Color:  core.NewColor(0.5, 0.5, 1),
	},
}

// Stats returns the preset for the archetype
func (a Archetype) Stats() Stats {
	if a >= ArchetypeCount {
		return archetypeStats[Scout]
	}
	return archetypeStats[a]
}
