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

// Shared spawn helpers used by gameplay systems
// All helpers run on the simulation thread with the update lock held

var (
	colorFriendlyBullet = core.NewColor(0.9, 0.9, 0.9)
	colorEnemyBullet    = core.NewColor(1, 0.4, 0.4)
	colorFriendlyTrail  = core.NewColor(1, 1, 1)
	colorEnemyTrail     = core.NewColor(1, 0.3, 0.3)
	colorFriendlyImpact = core.NewColor(0.5, 0.9, 1)
	colorEnemyImpact    = core.NewColor(1, 0.3, 0.3)
	colorDestructCore   = core.NewColor(1, 0.6, 0.2)
	colorDestructSpark  = core.NewColor(1, 0.9, 0.3)
	colorRam            = core.NewColor(1, 0.5, 0.2)
	colorLaser          = core.NewColor(0, 1, 1)
	colorMuzzle         = core.NewColor(0.6, 1, 1)
	colorFlash          = core.Color{R: 3, G: 3, B: 3, A: 1}
	colorFade           = core.Color{R: 0.2, A: 0}
)

// particleSpec is one particle's initial state
type particleSpec struct {
	pos   vmath.Vec2
	vel   vmath.Vec2
	life  float64
	size  float64
	spin  float64
	start core.Color
	end   core.Color
}

// burstSpec describes a radial particle burst
type burstSpec struct {
	count              int
	speedMin, speedMax float64
	sizeMin, sizeMax   float64
	lifeMin, lifeMax   float64
	spin               float64
	start              core.Color
	end                core.Color
}

func spawnParticle(w *engine.World, p particleSpec) core.Entity {
	e := w.CreateEntity()
	w.Components.Transform.SetComponent(e, component.TransformComponent{
		Position: p.pos,
		Scale:    vmath.V2(p.size, p.size),
	})
	w.Components.Kinetic.SetComponent(e, component.KineticComponent{Velocity: p.vel})
	w.Components.Particle.SetComponent(e, component.ParticleComponent{
		Life:  p.life,
		Total: p.life,
		Start: p.start,
		End:   p.end,
		Spin:  p.spin,
		Size:  p.size,
	})
	w.AttachVisual(e, visual.SpawnRequest{
		Role:     visual.RoleParticle,
		Shape:    visual.ShapeQuad,
		Position: p.pos,
		Scale:    vmath.V2(p.size, p.size),
		Color:    p.start.WithAlpha(parameter.ParticleAlpha),
	})
	return e
}

// emitBurstSpec spawns count particles flying outward at random angles
func emitBurstSpec(w *engine.World, pos vmath.Vec2, b burstSpec) {
	rng := w.Resources.Rand
	for i := 0; i < b.count; i++ {
		vel := vmath.V2Scale(vmath.V2FromAngle(rng.Angle()), rng.Range(b.speedMin, b.speedMax))
		spawnParticle(w, particleSpec{
			pos:   pos,
			vel:   vel,
			life:  rng.Range(b.lifeMin, b.lifeMax),
			size:  rng.Range(b.sizeMin, b.sizeMax),
			spin:  rng.Signed() * b.spin,
			start: b.start,
			end:   b.end,
		})
	}
}

// emitBurst is the generic cosmetic burst used by trails, muzzles and sparks
func emitBurst(w *engine.World, pos vmath.Vec2, color core.Color, count int, speedMin, speedMax, sizeMin, sizeMax float64) {
	emitBurstSpec(w, pos, burstSpec{
		count:    count,
		speedMin: speedMin,
		speedMax: speedMax,
		sizeMin:  sizeMin,
		sizeMax:  sizeMax,
		lifeMin:  parameter.BurstLifeMin,
		lifeMax:  parameter.BurstLifeMax,
		spin:     parameter.BurstSpin,
		start:    color.Scale(parameter.BurstIntensity),
		end:      core.ColorTransparent,
	})
}

// emitDestructionBurst spawns the large core burst plus fast sparks of an enemy kill
func emitDestructionBurst(w *engine.World, pos vmath.Vec2) {
	emitBurstSpec(w, pos, burstSpec{
		count:    parameter.DestructCoreCount,
		speedMin: parameter.DestructCoreSpeedMin,
		speedMax: parameter.DestructCoreSpeedMax,
		sizeMin:  parameter.DestructCoreSizeMin,
		sizeMax:  parameter.DestructCoreSizeMax,
		lifeMin:  parameter.DestructCoreLifeMin,
		lifeMax:  parameter.DestructCoreLifeMax,
		spin:     parameter.DestructCoreSpin,
		start:    colorDestructCore.Scale(1.5),
		end:      colorFade,
	})
	emitBurstSpec(w, pos, burstSpec{
		count:    parameter.DestructSparkCount,
		speedMin: parameter.DestructSparkSpeedMin,
		speedMax: parameter.DestructSparkSpeedMax,
		sizeMin:  parameter.DestructSparkSizeMin,
		sizeMax:  parameter.DestructSparkSizeMax,
		lifeMin:  parameter.DestructSparkLifeMin,
		lifeMax:  parameter.DestructSparkLifeMax,
		spin:     parameter.DestructSparkSpin,
		start:    colorDestructSpark.Scale(1.8),
		end:      core.ColorTransparent,
	})
}

// emitImpactBurst spawns the small hit burst and a white flash
func emitImpactBurst(w *engine.World, pos vmath.Vec2, friendly bool) {
	base := colorEnemyImpact
	if friendly {
		base = colorFriendlyImpact
	}
	emitBurstSpec(w, pos, burstSpec{
		count:    parameter.ImpactCount,
		speedMin: parameter.ImpactSpeedMin,
		speedMax: parameter.ImpactSpeedMax,
		sizeMin:  parameter.ImpactSizeMin,
		sizeMax:  parameter.ImpactSizeMax,
		lifeMin:  parameter.ImpactLifeMin,
		lifeMax:  parameter.ImpactLifeMax,
		spin:     10,
		start:    base.Scale(1.3),
		end:      core.ColorTransparent,
	})
	spawnFlash(w, pos)
}

func spawnFlash(w *engine.World, pos vmath.Vec2) core.Entity {
	e := w.CreateEntity()
	w.Components.Transform.SetComponent(e, component.TransformComponent{
		Position: pos,
		Scale:    vmath.V2(0.12, 0.12),
	})
	w.Components.Flash.SetComponent(e, component.FlashComponent{
		Remaining: parameter.FlashDuration,
		Duration:  parameter.FlashDuration,
		Color:     colorFlash,
	})
	w.AttachVisual(e, visual.SpawnRequest{
		Role:     visual.RoleFlash,
		Shape:    visual.ShapeQuad,
		Position: pos,
		Scale:    vmath.V2(0.12, 0.12),
		Color:    colorFlash,
	})
	return e
}

// spawnDamageTint covers the viewport with a fading red overlay
func spawnDamageTint(w *engine.World) core.Entity {
	e := w.CreateEntity()
	scale := vmath.V2Scale(w.Resources.Config.Viewport, 1.2)
	color := core.Color{R: 1, A: parameter.VignetteIntensity}
	w.Components.Transform.SetComponent(e, component.TransformComponent{Scale: scale})
	w.Components.Vignette.SetComponent(e, component.VignetteComponent{
		Remaining: parameter.VignetteDuration,
		Duration:  parameter.VignetteDuration,
		Intensity: parameter.VignetteIntensity,
	})
	w.AttachVisual(e, visual.SpawnRequest{
		Role:  visual.RoleTint,
		Shape: visual.ShapeQuad,
		Scale: scale,
		Color: color,
	})
	return e
}

// spawnMissile creates a non-laser bullet oriented along its velocity
func spawnMissile(w *engine.World, pos, vel vmath.Vec2, friendly bool, damage int) core.Entity {
	e := w.CreateEntity()
	shape, color := visual.ShapeDiamond, colorEnemyBullet
	if friendly {
		shape, color = visual.ShapeArrow, colorFriendlyBullet
	}
	size := vmath.V2(parameter.BulletWidth, parameter.BulletHeight)
	rot := vmath.V2Angle(vel) - math.Pi/2

	w.Components.Transform.SetComponent(e, component.TransformComponent{
		Position: pos,
		Rotation: rot,
		Scale:    size,
	})
	w.Components.Kinetic.SetComponent(e, component.KineticComponent{Velocity: vel})
	w.Components.Collider.SetComponent(e, component.ColliderComponent{Half: vmath.V2Scale(size, 0.5)})
	w.Components.Bullet.SetComponent(e, component.BulletComponent{
		Friendly:      friendly,
		Damage:        damage,
		TrailInterval: parameter.MissileTrailInterval,
	})
	w.AttachVisual(e, visual.SpawnRequest{
		Role:     visual.RoleBullet,
		Shape:    shape,
		Position: pos,
		Rotation: rot,
		Scale:    size,
		Color:    color,
	})
	return e
}

// killEnemy removes a dead enemy and applies its score, shake, burst and sound
func killEnemy(w *engine.World, e core.Entity, kind component.EnemyKind, pos vmath.Vec2, rammed bool) {
	points := pointsFor(kind)
	state := w.Resources.State
	state.Score += points
	state.Kills++

	if kind == component.KindSpecial {
		requestShake(w, parameter.ShakeSpecial, parameter.ShakeSpecialFrames)
	} else {
		requestShake(w, parameter.ShakeKill, parameter.ShakeKillFrames)
	}
	emitDestructionBurst(w, pos)
	w.DestroyEntity(e)
	requestSound(w, core.SoundRequest{Type: core.SoundExplosion})

	w.PushEvent(event.EventEnemyDestroyed, &event.EnemyDestroyedPayload{
		Entity:   e,
		Kind:     kind,
		Points:   points,
		Position: pos,
		Rammed:   rammed,
	})
}

func pointsFor(kind component.EnemyKind) int {
	switch kind {
	case component.KindMeteor:
		return parameter.PointsMeteor
	case component.KindSpecial:
		return parameter.PointsSpecial
	default:
		return parameter.PointsBasic
	}
}

func requestSound(w *engine.World, req core.SoundRequest) {
	w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Request: req})
}

func requestShake(w *engine.World, intensity float64, frames int) {
	w.PushEvent(event.EventShakeRequest, &event.ShakeRequestPayload{Intensity: intensity, Frames: frames})
}

// applySystemCommand updates enabled when the command targets name
func applySystemCommand(ev event.GameEvent, name string, enabled *bool) {
	if p, ok := ev.Payload.(*event.SystemCommandPayload); ok && p.SystemName == name {
		*enabled = p.Enabled
	}
}
