package system

import (
	"math"

	"github.com/lixenwraith/void-raider/component"
	"github.com/lixenwraith/void-raider/core"
	"github.com/lixenwraith/void-raider/engine"
	"github.com/lixenwraith/void-raider/event"
	"github.com/lixenwraith/void-raider/parameter"
	"github.com/lixenwraith/void-raider/vmath"
)

// EnemySystem runs the enemy movement state machine, culling and firing
type EnemySystem struct {
	world *engine.World

	enabled bool
}

// NewEnemySystem creates a new enemy system
func NewEnemySystem(world *engine.World) engine.System {
	s := &EnemySystem{world: world}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *EnemySystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *EnemySystem) Name() string {
	return "enemy"
}

// Priority returns the system's priority
func (s *EnemySystem) Priority() int {
	return parameter.PriorityEnemy
}

// EventTypes returns the event types EnemySystem handles
func (s *EnemySystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSystemCommand,
		event.EventGameReset,
	}
}

// HandleEvent processes enemy-related events
func (s *EnemySystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventSystemCommand:
		applySystemCommand(ev, s.Name(), &s.enabled)
	}
}

// Update moves, fires and culls every enemy
func (s *EnemySystem) Update() {
	if !s.enabled {
		return
	}

	w := s.world
	var target *vmath.Vec2
	if pe, ok := w.PlayerEntity(); ok {
		if pt, ok := w.Components.Transform.GetComponent(pe); ok {
			p := pt.Position
			target = &p
		}
	}

	half := w.Resources.Config.HalfViewport()
	var culled []core.Entity

	for _, e := range w.Components.Enemy.GetAllEntities() {
		enemy, ok := w.Components.Enemy.GetComponent(e)
		if !ok {
			continue
		}
		tr, ok := w.Components.Transform.GetComponent(e)
		if !ok {
			continue
		}
		col, _ := w.Components.Collider.GetComponent(e)

		s.move(&tr.Position, &enemy, target)
		s.advancePattern(&enemy.Movement)
		edgeOverride(tr.Position, half, &enemy.Movement)

		if enemy.Kind != component.KindMeteor {
			if enemy.ShootCooldown <= 0 {
				rng := w.Resources.Rand
				enemy.ShootCooldown = parameter.EnemyShootMin + rng.Intn(parameter.EnemyShootMax-parameter.EnemyShootMin)
				muzzle := vmath.V2(tr.Position.X, tr.Position.Y-col.Half.Y-parameter.EnemyMuzzleOffset)
				s.fire(muzzle, enemy.Firing, target)
			} else {
				enemy.ShootCooldown--
			}
		}

		if outOfPlay(tr.Position, half) {
			culled = append(culled, e)
			continue
		}

		w.Components.Transform.SetComponent(e, tr)
		w.Components.Enemy.SetComponent(e, enemy)
	}

	w.DestroyBatch(culled)
}

// move applies one tick of the current pattern
// Rates are scaled by dt, phase steps are per tick
func (s *EnemySystem) move(pos *vmath.Vec2, e *component.EnemyComponent, target *vmath.Vec2) {
	dt := s.world.Resources.Time.Dt
	m := &e.Movement
	rate := parameter.EnemyBaseRate * e.Speed * dt

	switch m.Pattern {
	case component.MoveDown:
		pos.Y -= rate
	case component.MoveUp:
		pos.Y += rate
	case component.MoveLeft:
		pos.X -= rate
	case component.MoveRight:
		pos.X += rate

	case component.MoveSineSlow:
		pos.Y -= parameter.SineSlowRate * e.Speed * dt
		m.Phase += parameter.SineSlowStep
		pos.X += math.Sin(m.Phase) * parameter.SineSlowAmp
	case component.MoveSineSide:
		pos.X += parameter.SineSlowRate * e.Speed * dt
		m.Phase += parameter.SineSlowStep
		pos.Y += math.Sin(m.Phase) * parameter.SineSlowAmp
	case component.MoveSineFast:
		pos.Y -= parameter.SineFastRate * e.Speed * dt
		m.Phase += parameter.SineFastStep
		pos.X += math.Sin(m.Phase) * parameter.SineFastAmp

	case component.MoveHoming:
		if target == nil {
			return
		}
		ang := vmath.V2Angle(vmath.V2Sub(*target, *pos))
		*pos = vmath.V2Add(*pos, vmath.V2Scale(vmath.V2FromAngle(ang), parameter.HomingRate*rate))
		pos.X += math.Cos(ang+math.Pi/2) * parameter.HomingDrift

	case component.MoveOrbit:
		o := &m.Orbit
		o.Angle += parameter.OrbitAngular * e.Speed * dt
		pos.X = o.Center.X + o.Radius*math.Cos(o.Angle)
		pos.Y = o.Center.Y + o.Radius*math.Sin(o.Angle)
		o.Center.Y -= parameter.OrbitDescent * e.Speed * dt

	case component.MoveDash:
		s.dash(pos, e, target)

	case component.MoveFormation:
		f := &m.Formation
		f.Anchor.Y -= parameter.FormationDescent * e.Speed * dt
		f.Anchor.X += math.Sin(m.Phase) * parameter.FormationAmp
		m.Phase += parameter.FormationStep
		*pos = vmath.V2Add(f.Anchor, f.Offset)
	case component.MoveWave:
		f := &m.Formation
		f.Anchor.Y -= parameter.WaveDescent * e.Speed * dt
		wobble := math.Sin(m.Phase) * parameter.WaveAmp
		m.Phase += parameter.WaveStep
		pos.X = f.Anchor.X + f.Offset.X + wobble
		pos.Y = f.Anchor.Y + math.Abs(f.Offset.Y)
	case component.MoveOrbitAnchor:
		f := &m.Formation
		f.Anchor.Y -= parameter.AnchorDescent * e.Speed * dt
		m.Phase += parameter.AnchorAngular * dt
		a := m.Phase + f.Offset.X/parameter.AnchorOffsetDiv
		pos.X = f.Anchor.X + parameter.AnchorRadius*math.Cos(a)
		pos.Y = f.Anchor.Y + parameter.AnchorRadius*math.Sin(a)

	case component.MovePatternCount:
		// Not a pattern
	}
}

// dash runs the approach, retreat and cooldown drift sub-states
// Without a player the enemy falls straight down
func (s *EnemySystem) dash(pos *vmath.Vec2, e *component.EnemyComponent, target *vmath.Vec2) {
	dt := s.world.Resources.Time.Dt
	d := &e.Movement.Dash
	rate := parameter.EnemyBaseRate * e.Speed * dt

	if target == nil {
		pos.Y -= rate
		return
	}

	delta := vmath.V2Sub(*target, *pos)
	dist := vmath.V2Dist(*target, *pos, parameter.DashDistanceFloor)
	dir := vmath.V2Scale(delta, 1/dist)

	switch d.State {
	case component.DashApproach:
		*pos = vmath.V2Add(*pos, vmath.V2Scale(dir, rate*parameter.DashApproachMult))
		d.Timer += dt
		if d.Timer >= parameter.DashApproachTime {
			d.State = component.DashRetreat
			d.Timer = 0
		}
	case component.DashRetreat:
		*pos = vmath.V2Sub(*pos, vmath.V2Scale(dir, rate*parameter.DashRetreatMult))
		d.Timer += dt
		if d.Timer >= parameter.DashRetreatTime {
			d.State = component.DashCooldown
			d.Timer = 0
			d.Cooldown = s.world.Resources.Rand.Range(parameter.DashCooldownMin, parameter.DashCooldownMax)
		}
	case component.DashCooldown:
		e.Movement.Phase += parameter.DashDriftStep
		pos.X += math.Sin(e.Movement.Phase) * parameter.DashDriftAmp
		pos.Y -= parameter.DashDriftDescent * e.Speed * dt
		d.Timer += dt
		if d.Timer >= d.Cooldown {
			d.State = component.DashApproach
			d.Timer = 0
		}
	}
}

// advancePattern counts down the distance and re-rolls the pattern at zero
func (s *EnemySystem) advancePattern(m *component.MovementState) {
	if m.Distance > 0 {
		m.Distance--
		return
	}
	rng := s.world.Resources.Rand
	m.Distance = rollDistance(rng)
	m.Pattern = component.MovementPattern(rng.Intn(parameter.MovementPatternCount))
	m.Phase = 0
}

// edgeOverride points the enemy back inward when it nears a viewport edge
// Later checks win, so horizontal overrides take precedence in corners
func edgeOverride(pos, half vmath.Vec2, m *component.MovementState) {
	override := func(p component.MovementPattern) {
		m.Pattern = p
		m.Distance = parameter.EdgeOverrideDistance
	}
	if pos.Y > half.Y-parameter.EdgeMargin {
		override(component.MoveDown)
	}
	if pos.Y < -half.Y+parameter.EdgeMargin {
		override(component.MoveUp)
	}
	if pos.X > half.X-parameter.EdgeMargin {
		override(component.MoveLeft)
	}
	if pos.X < -half.X+parameter.EdgeMargin {
		override(component.MoveRight)
	}
}

// outOfPlay reports whether an enemy drifted past the bottom or sides, the top never culls
func outOfPlay(pos, half vmath.Vec2) bool {
	return pos.Y < -half.Y-parameter.EnemyRemovalMargin ||
		pos.X < -half.X-parameter.EnemyRemovalMargin ||
		pos.X > half.X+parameter.EnemyRemovalMargin
}

// fire spawns one volley from muzzle
func (s *EnemySystem) fire(muzzle vmath.Vec2, f component.FiringPattern, target *vmath.Vec2) {
	w := s.world
	down := vmath.V2(0, -parameter.EnemyBulletSpeed)

	switch f.Kind {
	case component.FireSingle:
		spawnMissile(w, vmath.V2(muzzle.X-parameter.EnemySingleOffsetX, muzzle.Y), down, false, parameter.EnemyBulletDamage)
		spawnMissile(w, vmath.V2(muzzle.X+parameter.EnemySingleOffsetX, muzzle.Y), down, false, parameter.EnemyBulletDamage)
	case component.FireSpread:
		for _, a := range f.SpreadAngles() {
			spawnMissile(w, muzzle, vmath.V2Scale(vmath.V2FromAngle(a), parameter.EnemyBulletSpeed), false, parameter.EnemyBulletDamage)
		}
	case component.FireAimed:
		vel := down
		if target != nil {
			ang := vmath.V2Angle(vmath.V2Sub(*target, muzzle))
			vel = vmath.V2Scale(vmath.V2FromAngle(ang), parameter.EnemyBulletSpeed)
		}
		spawnMissile(w, muzzle, vel, false, parameter.EnemyBulletDamage)
	case component.FireBurst:
		n := max(f.Count, 1)
		for i := 0; i < n; i++ {
			dx := (float64(i) - float64(n)/2) * parameter.EnemyBurstSpacing
			spawnMissile(w, vmath.V2(muzzle.X+dx, muzzle.Y), down, false, parameter.EnemyBulletDamage)
		}
	}
}
