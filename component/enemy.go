package component

import (
	"math"

	"github.com/lixenwraith/void-raider/vmath"
)

// EnemyKind selects scoring and whether the enemy fires
type EnemyKind uint8

const (
	KindBasic EnemyKind = iota
	KindMeteor
	KindSpecial
)

func (k EnemyKind) String() string {
	switch k {
	case KindBasic:
		return "basic"
	case KindMeteor:
		return "meteor"
	case KindSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// MovementPattern is the closed set of enemy kinematic behaviors
type MovementPattern uint8

const (
	MoveDown MovementPattern = iota
	MoveUp
	MoveLeft
	MoveRight
	MoveSineSlow    // Descend with small lateral wobble
	MoveSineSide    // Drift right with vertical wobble
	MoveSineFast    // Fast descent with wide lateral wobble
	MoveHoming      // Diagonal drift toward the player
	MoveOrbit       // Circle a slowly descending center
	MoveDash        // Approach, retreat, cooldown drift
	MoveFormation   // Anchor descent with lateral sine
	MoveWave        // Anchor descent with absolute vertical offset
	MoveOrbitAnchor // Orbit a descending anchor
	MovePatternCount
)

// DashState is the sub-state of MoveDash
type DashState uint8

const (
	DashApproach DashState = iota
	DashRetreat
	DashCooldown
)

// OrbitState is the scratch state of MoveOrbit
type OrbitState struct {
	Center vmath.Vec2
	Radius float64
	Angle  float64
}

// DashStateData is the scratch state of MoveDash
type DashStateData struct {
	State    DashState
	Timer    float64
	Cooldown float64
}

// FormationState is the scratch state of formation patterns
type FormationState struct {
	Anchor vmath.Vec2
	Offset vmath.Vec2
}

// MovementState is the tagged movement variant with its per-pattern state
type MovementState struct {
	Pattern MovementPattern

	// Phase accumulates sine arguments
	Phase float64

	// Distance is the ticks remaining before the pattern is re-rolled
	Distance int

	Orbit     OrbitState
	Dash      DashStateData
	Formation FormationState
}

// FireKind selects the enemy firing pattern
type FireKind uint8

const (
	FireSingle FireKind = iota
	FireSpread
	FireAimed
	FireBurst
)

// FiringPattern describes an enemy volley
type FiringPattern struct {
	Kind  FireKind
	Count int     // Bolts for Spread and Burst
	Angle float64 // Fan width in radians for Spread
	Delay float64 // Burst spacing in seconds
}

func SingleFire() FiringPattern { return FiringPattern{Kind: FireSingle} }
func AimedFire() FiringPattern  { return FiringPattern{Kind: FireAimed} }

func SpreadFire(n int, angle float64) FiringPattern {
	return FiringPattern{Kind: FireSpread, Count: n, Angle: angle}
}

func BurstFire(n int, delay float64) FiringPattern {
	return FiringPattern{Kind: FireBurst, Count: n, Delay: delay}
}

// SpreadAngles returns the launch angles of a spread volley centered on straight down
func (f FiringPattern) SpreadAngles() []float64 {
	n := max(f.Count, 1)
	half := f.Angle / 2
	step := 0.0
	if n > 1 {
		step = f.Angle / float64(n-1)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = -math.Pi/2 - half + step*float64(i)
	}
	return out
}

// EnemyComponent holds enemy behavior state
type EnemyComponent struct {
	Archetype uint8
	Kind      EnemyKind

	// Speed is a multiplier of the base movement rate
	Speed float64

	Movement MovementState
	Firing   FiringPattern

	// ShootCooldown counts ticks until the next volley
	ShootCooldown int
}
