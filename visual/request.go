package visual

import (
	"github.com/lixenwraith/void-raider/core"
	"github.com/lixenwraith/void-raider/vmath"
)

// Role tells the renderer what a visual entity represents
type Role uint8

const (
	RoleShip Role = iota
	RoleBullet
	RoleLaser
	RoleParticle
	RoleFlame
	RoleFlash
	RoleTint
	RoleVignette
	RoleStar
)

// Part is one sub-shape of a composite visual, in the parent's unit space
type Part struct {
	Shape  Shape
	Offset vmath.Vec2
	Size   vmath.Vec2
	Color  core.Color
}

// SpawnRequest asks the renderer to instantiate a visual for an entity
// Composite visuals carry their sub-shapes in Parts and are created and
// destroyed as one group
type SpawnRequest struct {
	Entity   core.Entity
	Parent   core.Entity
	Role     Role
	Shape    Shape
	Position vmath.Vec2
	Rotation float64
	Scale    vmath.Vec2
	Color    core.Color
	Parts    []Part
}

// Instance is the per-frame transform of a live visual entity
type Instance struct {
	Entity   core.Entity
	Role     Role
	Shape    Shape
	Position vmath.Vec2
	Rotation float64
	Scale    vmath.Vec2
	Color    core.Color
}

// Segment is one fading piece of a trail, regenerated each tick
type Segment struct {
	Position vmath.Vec2
	Scale    float64
	Color    core.Color
}

// Sink receives visual lifecycle requests from the simulation
type Sink interface {
	Spawn(req SpawnRequest)
	Despawn(e core.Entity)
}

// NopSink discards all requests
type NopSink struct{}

func (NopSink) Spawn(SpawnRequest)  {}
func (NopSink) Despawn(core.Entity) {}
