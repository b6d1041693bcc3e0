package system

import (
	"github.com/lixenwraith/void-raider/component"
	"github.com/lixenwraith/void-raider/core"
	"github.com/lixenwraith/void-raider/engine"
	"github.com/lixenwraith/void-raider/event"
	"github.com/lixenwraith/void-raider/parameter"
	"github.com/lixenwraith/void-raider/vmath"
)

// bulletSnap is a bullet's state captured before resolution
type bulletSnap struct {
	entity   core.Entity
	box      vmath.AABB
	pad      vmath.Vec2
	damage   int
	friendly bool
}

// CollisionSystem resolves bullet and ramming contacts against a bullet snapshot
//
// Passes, in order:
//  1. friendly bullets vs enemies, padded by travel, first hit only
//  2. enemy ships vs player ship, unpadded, reciprocal damage
//  3. enemy bullets vs player, padded by travel
type CollisionSystem struct {
	world *engine.World

	bullets        []bulletSnap
	removedBullets map[core.Entity]struct{}
	removedEnemies map[core.Entity]struct{}

	enabled bool
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(world *engine.World) engine.System {
	s := &CollisionSystem{
		world:          world,
		removedBullets: make(map[core.Entity]struct{}),
		removedEnemies: make(map[core.Entity]struct{}),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *CollisionSystem) Init() {
	s.bullets = s.bullets[:0]
	clear(s.removedBullets)
	clear(s.removedEnemies)
	s.enabled = true
}

// Name returns system's name
func (s *CollisionSystem) Name() string {
	return "collision"
}

// Priority returns the system's priority
func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

// EventTypes returns the event types CollisionSystem handles
func (s *CollisionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSystemCommand,
		event.EventGameReset,
	}
}

// HandleEvent processes collision-related events
func (s *CollisionSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventSystemCommand:
		applySystemCommand(ev, s.Name(), &s.enabled)
	}
}

// Update runs the three resolution passes
func (s *CollisionSystem) Update() {
	if !s.enabled {
		return
	}

	s.snapshot()
	clear(s.removedBullets)
	clear(s.removedEnemies)

	s.friendlyVsEnemies()

	pe, ok := s.world.PlayerEntity()
	if !ok {
		return
	}
	playerBox, ok := s.box(pe)
	if !ok {
		return
	}
	if !s.ramming(pe, playerBox) {
		return
	}
	s.enemyBulletsVsPlayer(pe, playerBox)
}

// snapshot captures every bullet's box and travel padding for this tick
func (s *CollisionSystem) snapshot() {
	w := s.world
	dt := w.Resources.Time.Dt
	s.bullets = s.bullets[:0]
	for _, e := range w.Components.Bullet.GetAllEntities() {
		b, ok := w.Components.Bullet.GetComponent(e)
		if !ok {
			continue
		}
		box, ok := s.box(e)
		if !ok {
			continue
		}
		kin, _ := w.Components.Kinetic.GetComponent(e)
		s.bullets = append(s.bullets, bulletSnap{
			entity:   e,
			box:      box,
			pad:      vmath.TravelPad(kin.Velocity, dt),
			damage:   b.Damage,
			friendly: b.Friendly,
		})
	}
}

func (s *CollisionSystem) box(e core.Entity) (vmath.AABB, bool) {
	tr, ok := s.world.Components.Transform.GetComponent(e)
	if !ok {
		return vmath.AABB{}, false
	}
	col, ok := s.world.Components.Collider.GetComponent(e)
	if !ok {
		return vmath.AABB{}, false
	}
	return col.Box(tr.Position), true
}

func (s *CollisionSystem) friendlyVsEnemies() {
	w := s.world
	enemies := w.Components.Enemy.GetAllEntities()

	for _, b := range s.bullets {
		if !b.friendly {
			continue
		}
		for _, ee := range enemies {
			if _, gone := s.removedEnemies[ee]; gone {
				continue
			}
			ebox, ok := s.box(ee)
			if !ok || !vmath.Overlaps(b.box, ebox, b.pad) {
				continue
			}

			enemy, _ := w.Components.Enemy.GetComponent(ee)
			dead := false
			w.Components.Health.Mutate(ee, func(h *component.HealthComponent) {
				dead = h.Damage(b.damage)
			})
			w.DestroyEntity(b.entity)
			s.removedBullets[b.entity] = struct{}{}

			if dead {
				s.removedEnemies[ee] = struct{}{}
				killEnemy(w, ee, enemy.Kind, ebox.Center, false)
			} else {
				emitImpactBurst(w, b.box.Center, true)
			}
			break
		}
	}
}

// ramming applies reciprocal contact damage, false if the player died
func (s *CollisionSystem) ramming(pe core.Entity, playerBox vmath.AABB) bool {
	w := s.world
	damage := 0

	for _, ee := range w.Components.Enemy.GetAllEntities() {
		if _, gone := s.removedEnemies[ee]; gone {
			continue
		}
		ebox, ok := s.box(ee)
		if !ok || !vmath.Overlaps(playerBox, ebox, vmath.Vec2{}) {
			continue
		}

		enemy, _ := w.Components.Enemy.GetComponent(ee)
		dead := false
		w.Components.Health.Mutate(ee, func(h *component.HealthComponent) {
			dead = h.Damage(parameter.RamEnemyDamage)
		})
		damage += parameter.RamPlayerDamage

		mid := vmath.V2Scale(vmath.V2Add(playerBox.Center, ebox.Center), 0.5)
		emitBurst(w, mid, colorRam, parameter.RamBurstCount,
			parameter.RamBurstSpeedMin, parameter.RamBurstSpeedMax, parameter.RamBurstSizeMin, parameter.RamBurstSizeMax)
		requestShake(w, parameter.ShakeRam, parameter.ShakeRamFrames)
		requestSound(w, core.SoundRequest{Type: core.SoundHit})

		if dead {
			s.removedEnemies[ee] = struct{}{}
			killEnemy(w, ee, enemy.Kind, ebox.Center, true)
		}
	}

	if damage == 0 {
		return true
	}
	return s.damagePlayer(pe, damage)
}

func (s *CollisionSystem) enemyBulletsVsPlayer(pe core.Entity, playerBox vmath.AABB) {
	w := s.world
	for _, b := range s.bullets {
		if b.friendly {
			continue
		}
		if _, gone := s.removedBullets[b.entity]; gone {
			continue
		}
		if !vmath.Overlaps(b.box, playerBox, b.pad) {
			continue
		}

		requestShake(w, parameter.ShakeHit, parameter.ShakeHitFrames)
		emitImpactBurst(w, playerBox.Center, false)
		w.DestroyEntity(b.entity)
		s.removedBullets[b.entity] = struct{}{}
		requestSound(w, core.SoundRequest{Type: core.SoundHit})
		spawnDamageTint(w)

		if !s.damagePlayer(pe, b.damage) {
			return
		}
	}
}

// damagePlayer applies damage and removes the player at zero, false if the player died
func (s *CollisionSystem) damagePlayer(pe core.Entity, amount int) bool {
	w := s.world
	dead := false
	remaining := 0
	w.Components.Health.Mutate(pe, func(h *component.HealthComponent) {
		dead = h.Damage(amount)
		remaining = h.Current
	})
	w.PushEvent(event.EventPlayerDamaged, &event.PlayerDamagedPayload{Amount: amount, Remaining: remaining})

	if !dead {
		return true
	}
	w.DestroyEntity(pe)
	w.PushEvent(event.EventPlayerDestroyed, nil)
	w.Resources.Log.Info().Int("score", w.Resources.State.Score).Msg("player destroyed")
	return false
}
