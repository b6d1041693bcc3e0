package system

import (
	"github.com/lixenwraith/void-raider/component"
	"github.com/lixenwraith/void-raider/core"
	"github.com/lixenwraith/void-raider/engine"
	"github.com/lixenwraith/void-raider/event"
	"github.com/lixenwraith/void-raider/parameter"
	"github.com/lixenwraith/void-raider/vmath"
)

// BulletSystem moves projectiles, emits missile trails and expires lifetimes
// Missiles leave through the padded viewport bounds; lasers pin to the player's x,
// rise on their own and expire by lifetime only
type BulletSystem struct {
	world *engine.World

	enabled bool
}

// NewBulletSystem creates a new bullet system
func NewBulletSystem(world *engine.World) engine.System {
	s := &BulletSystem{world: world}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *BulletSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *BulletSystem) Name() string {
	return "bullet"
}

// Priority returns the system's priority
func (s *BulletSystem) Priority() int {
	return parameter.PriorityBullet
}

// EventTypes returns the event types BulletSystem handles
func (s *BulletSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSystemCommand,
		event.EventGameReset,
	}
}

// HandleEvent processes bullet-related events
func (s *BulletSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventSystemCommand:
		applySystemCommand(ev, s.Name(), &s.enabled)
	}
}

// Update advances all bullets by one tick
func (s *BulletSystem) Update() {
	if !s.enabled {
		return
	}

	w := s.world
	dt := w.Resources.Time.Dt

	playerX, hasPlayer := 0.0, false
	if pe, ok := w.PlayerEntity(); ok {
		if pt, ok := w.Components.Transform.GetComponent(pe); ok {
			playerX, hasPlayer = pt.Position.X, true
		}
	}

	bounds := vmath.AABB{Half: w.Resources.Config.HalfViewport()}
	var dead []core.Entity

	for _, e := range w.Components.Bullet.GetAllEntities() {
		b, ok := w.Components.Bullet.GetComponent(e)
		if !ok {
			continue
		}
		tr, ok := w.Components.Transform.GetComponent(e)
		if !ok {
			continue
		}
		kin, _ := w.Components.Kinetic.GetComponent(e)

		if b.Laser {
			if hasPlayer {
				tr.Position.X = playerX
			}
			tr.Position.Y += kin.Velocity.Y * dt
			w.Components.Transform.SetComponent(e, tr)
			continue
		}

		tr.Position = vmath.V2Add(tr.Position, vmath.V2Scale(kin.Velocity, dt))

		if b.TrailInterval > 0 {
			b.TrailElapsed += dt
			if b.TrailElapsed >= b.TrailInterval {
				b.TrailElapsed -= b.TrailInterval
				color := colorEnemyTrail
				if b.Friendly {
					color = colorFriendlyTrail
				}
				emitBurst(w, tr.Position, color, 1,
					parameter.MissileTrailSpeedMin, parameter.MissileTrailSpeedMax,
					parameter.MissileTrailSizeMin, parameter.MissileTrailSizeMax)
			}
			w.Components.Bullet.SetComponent(e, b)
		}

		if !bounds.Contains(tr.Position, parameter.BulletBoundsMargin) {
			dead = append(dead, e)
			continue
		}
		w.Components.Transform.SetComponent(e, tr)
	}
	w.DestroyBatch(dead)

	// Lifetimes
	dead = dead[:0]
	for _, e := range w.Components.Lifetime.GetAllEntities() {
		expired := false
		w.Components.Lifetime.Mutate(e, func(lt *component.LifetimeComponent) {
			lt.Remaining -= dt
			expired = lt.Remaining <= 0
		})
		if expired {
			dead = append(dead, e)
		}
	}
	w.DestroyBatch(dead)
}
