package system

import (
	"math"

	"github.com/lixenwraith/void-raider/component"
	"github.com/lixenwraith/void-raider/core"
	"github.com/lixenwraith/void-raider/engine"
	"github.com/lixenwraith/void-raider/event"
	"github.com/lixenwraith/void-raider/parameter"
	"github.com/lixenwraith/void-raider/visual"
	"github.com/lixenwraith/void-raider/vmath"
)

var (
	colorPlayerShip  = core.NewColor(0.2, 0.5, 0.9)
	colorPlayerTrail = core.NewColor(0.3, 0.6, 1.5)
	colorFlameBase   = core.Color{R: 1.8, G: 0.9, B: 0.4, A: 0.9}
)

// PlayerSystem moves the ship toward the cursor, regenerates resources and fires
type PlayerSystem struct {
	world *engine.World

	enabled bool
}

// NewPlayerSystem creates the player system and spawns the ship
func NewPlayerSystem(world *engine.World) engine.System {
	s := &PlayerSystem{world: world}
	s.Init()
	return s
}

// Init spawns the player if none exists
func (s *PlayerSystem) Init() {
	s.enabled = true
	if _, ok := s.world.PlayerEntity(); !ok {
		SpawnPlayer(s.world)
	}
}

// Name returns system's name
func (s *PlayerSystem) Name() string {
	return "player"
}

// Priority returns the system's priority
func (s *PlayerSystem) Priority() int {
	return parameter.PriorityPlayer
}

// EventTypes returns the event types PlayerSystem handles
func (s *PlayerSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSystemCommand,
		event.EventGameReset,
	}
}

// HandleEvent processes player-related events
func (s *PlayerSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventSystemCommand:
		applySystemCommand(ev, s.Name(), &s.enabled)
	}
}

// SpawnPlayer creates the player ship at its start position with full health and charge
func SpawnPlayer(w *engine.World) core.Entity {
	e := w.CreateEntity()
	pos := vmath.V2(0, parameter.PlayerSpawnY)
	size := vmath.V2(parameter.PlayerSize, parameter.PlayerSize)
	ship := visual.BuildShip(parameter.PlayerShipSeed, colorPlayerShip)

	w.Components.Transform.SetComponent(e, component.TransformComponent{Position: pos, Scale: size})
	w.Components.Collider.SetComponent(e, component.ColliderComponent{Half: ship.HalfExtents(size)})
	w.Components.Health.SetComponent(e, component.HealthComponent{
		Current: parameter.PlayerMaxHealth,
		Max:     parameter.PlayerMaxHealth,
	})
	w.Components.Charge.SetComponent(e, component.ChargeComponent{
		Current: parameter.PlayerMaxCharge,
		Max:     parameter.PlayerMaxCharge,
	})
	w.Components.Player.SetComponent(e, component.PlayerComponent{LastPosition: pos})
	w.Components.Trail.SetComponent(e, component.TrailComponent{
		MaxLength: parameter.PlayerTrailLength,
		Color:     colorPlayerTrail,
	})
	w.AttachVisual(e, visual.SpawnRequest{
		Role:     visual.RoleShip,
		Shape:    ship.Hull,
		Position: pos,
		Scale:    size,
		Color:    colorPlayerShip,
		Parts:    ship.Parts,
	})

	spawnEngineFlame(w, e, pos, size)
	w.Resources.Log.Debug().Uint64("entity", uint64(e)).Msg("player spawned")
	return e
}

func spawnEngineFlame(w *engine.World, owner core.Entity, ownerPos, ownerSize vmath.Vec2) core.Entity {
	e := w.CreateEntity()
	pos := flamePosition(ownerPos, ownerSize)
	scale := vmath.V2(2*parameter.FlameHalfW*parameter.FlameWidth, 2*parameter.FlameHalfH*parameter.FlameWidth)

	w.Components.Transform.SetComponent(e, component.TransformComponent{Position: pos, Scale: scale})
	w.Components.Flame.SetComponent(e, component.EngineFlameComponent{
		Owner: owner,
		Glow:  1,
		Width: parameter.FlameWidth,
	})
	w.AttachVisual(e, visual.SpawnRequest{
		Parent:   owner,
		Role:     visual.RoleFlame,
		Shape:    visual.ShapeQuad,
		Position: pos,
		Scale:    scale,
		Color:    colorFlameBase,
	})
	return e
}

func flamePosition(ownerPos, ownerSize vmath.Vec2) vmath.Vec2 {
	return vmath.V2(ownerPos.X, ownerPos.Y-parameter.FlameOffsetY*ownerSize.Y/2)
}

// Update runs one tick of player control
func (s *PlayerSystem) Update() {
	if !s.enabled {
		return
	}

	w := s.world
	pe, ok := w.PlayerEntity()
	if !ok {
		return
	}

	dt := w.Resources.Time.Dt
	tr, _ := w.Components.Transform.GetComponent(pe)
	col, _ := w.Components.Collider.GetComponent(pe)
	hp, _ := w.Components.Health.GetComponent(pe)
	charge, _ := w.Components.Charge.GetComponent(pe)
	pc, _ := w.Components.Player.GetComponent(pe)

	pc.Cooldowns.Tick(dt)

	// Movement: capped speed toward cursor, then stay inside the viewport
	prev := tr.Position
	pos := vmath.V2MoveToward(prev, w.Resources.Input.Cursor, parameter.PlayerSpeed*dt, parameter.PlayerSnapRadius)
	half := w.Resources.Config.HalfViewport()
	pos.X = vmath.Clamp(pos.X, -half.X+col.Half.X, half.X-col.Half.X)
	pos.Y = vmath.Clamp(pos.Y, -half.Y+col.Half.Y, half.Y-col.Half.Y)
	tr.Position = pos

	// Resources: charge first, health only regenerates at full charge
	charge.Add(parameter.ChargeRefillRate * dt)
	if charge.Full() && hp.Current < hp.Max {
		pc.RegenCarry += parameter.HealthRegenRate * dt
		whole := math.Floor(pc.RegenCarry)
		pc.RegenCarry -= whole
		hp.Heal(int(whole))
	} else {
		pc.RegenCarry = 0
	}

	s.emitSparks(prev, pos, dt, charge.Fraction())
	pc.LastPosition = prev

	input := w.Resources.Input
	if input.FirePrimary && pc.Cooldowns.Primary <= 0 && charge.Current >= parameter.PrimaryCost {
		pc.Cooldowns.Primary = parameter.PrimaryCooldown
		charge.Current -= parameter.PrimaryCost
		if w.Resources.State.Score >= parameter.LaserScoreThreshold {
			s.fireLaser(pos)
		} else {
			s.fireMissile(pos)
		}
	}

	if input.FireSecondary && pc.Cooldowns.Special <= 0 {
		s.fireSpecial(pos, &charge, &pc.Cooldowns)
	}

	w.Components.Transform.SetComponent(pe, tr)
	w.Components.Health.SetComponent(pe, hp)
	w.Components.Charge.SetComponent(pe, charge)
	w.Components.Player.SetComponent(pe, pc)
}

// emitSparks trails sparks behind a fast-moving ship, tinted by charge
func (s *PlayerSystem) emitSparks(prev, pos vmath.Vec2, dt, chargeFrac float64) {
	speed := vmath.V2Dist(prev, pos, 0) / max(dt, 1e-3)
	if speed <= parameter.PlayerSparkSpeed {
		return
	}
	f := vmath.Clamp(chargeFrac, 0, 1)
	color := core.NewColor(0.3+0.5*f, 0.6+0.3*f, 1.2)
	emitBurst(s.world, pos, color, parameter.SparkCount,
		parameter.SparkSpeedMin, parameter.SparkSpeedMax, parameter.SparkSizeMin, parameter.SparkSizeMax)
}

func (s *PlayerSystem) fireMissile(pos vmath.Vec2) {
	w := s.world
	spawnMissile(w, vmath.V2(pos.X, pos.Y+parameter.MissileSpawnOffsetY), vmath.V2(0, parameter.MissileSpeed), true, parameter.MissileDamage)

	level := vmath.Clamp(float64(w.Resources.State.Score), 0, parameter.ShootPitchScoreCap)
	jitter := w.Resources.Rand.Signed() * parameter.ShootPitchJitter
	requestSound(w, core.SoundRequest{
		Type:  core.SoundShoot,
		Pitch: 1 + level*parameter.ShootPitchPerScore + jitter,
	})
}

func (s *PlayerSystem) fireLaser(pos vmath.Vec2) {
	w := s.world
	e := w.CreateEntity()
	at := vmath.V2(pos.X, pos.Y+parameter.LaserSpawnOffsetY)
	size := vmath.V2(parameter.LaserWidth, parameter.LaserHeight)

	w.Components.Transform.SetComponent(e, component.TransformComponent{Position: at, Scale: size})
	w.Components.Kinetic.SetComponent(e, component.KineticComponent{Velocity: vmath.V2(0, parameter.LaserRiseSpeed)})
	w.Components.Collider.SetComponent(e, component.ColliderComponent{Half: vmath.V2Scale(size, 0.5)})
	w.Components.Bullet.SetComponent(e, component.BulletComponent{
		Friendly: true,
		Damage:   parameter.LaserDamage,
		Laser:    true,
	})
	w.Components.Lifetime.SetComponent(e, component.LifetimeComponent{Remaining: parameter.LaserLifetime})
	w.AttachVisual(e, visual.SpawnRequest{
		Role:     visual.RoleLaser,
		Shape:    visual.ShapeQuad,
		Position: at,
		Scale:    size,
		Color:    colorLaser,
	})

	emitBurst(w, at, colorMuzzle, parameter.LaserMuzzleParticles,
		parameter.MuzzleSpeedMin, parameter.MuzzleSpeedMax, parameter.MuzzleSizeMin, parameter.MuzzleSizeMax)

	level := vmath.Clamp(float64(w.Resources.State.Score), 0, parameter.LaserSweepScoreCap)
	requestSound(w, core.SoundRequest{
		Type:      core.SoundLaserSweep,
		FreqStart: parameter.LaserSweepStartFreq,
		FreqEnd:   min(parameter.LaserSweepBaseFreq+level*parameter.LaserSweepPerScore, parameter.LaserSweepMaxFreq),
		Duration:  parameter.LaserSweepDurationSec,
	})
}

// fireSpecial launches a circular spray, the full tier needs max charge and spends all of it
func (s *PlayerSystem) fireSpecial(pos vmath.Vec2, charge *component.ChargeComponent, cd *component.Cooldowns) {
	w := s.world
	switch {
	case charge.Full():
		cd.Special = parameter.SpecialMaxCooldown
		charge.Current = 0
		s.ring(pos, parameter.SpecialMaxBullets, parameter.SpecialMaxSpeed)
		requestShake(w, parameter.SpecialMaxShake, parameter.SpecialMaxShakeFr)
	case charge.Current >= parameter.SpecialMinCharge:
		cd.Special = parameter.SpecialMinCooldown
		charge.Current -= parameter.SpecialMinCost
		s.ring(pos, parameter.SpecialMinBullets, parameter.SpecialMinSpeed)
	default:
		return
	}
	requestSound(w, core.SoundRequest{Type: core.SoundSpecial})
}

// ring spawns n friendly missiles evenly around a full circle
func (s *PlayerSystem) ring(pos vmath.Vec2, n int, speed float64) {
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		vel := vmath.V2Scale(vmath.V2FromAngle(step*float64(i)), speed)
		spawnMissile(s.world, pos, vel, true, parameter.SpecialBulletDamage)
	}
}
