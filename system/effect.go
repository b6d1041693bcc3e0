package system

import (
	"github.com/lixenwraith/void-raider/component"
	"github.com/lixenwraith/void-raider/core"
	"github.com/lixenwraith/void-raider/engine"
	"github.com/lixenwraith/void-raider/event"
	"github.com/lixenwraith/void-raider/parameter"
	"github.com/lixenwraith/void-raider/visual"
	"github.com/lixenwraith/void-raider/vmath"
)

// EffectSystem decays cosmetic entities and drives the camera shake
// Particles, flashes and damage tints are removed when their timers run out
type EffectSystem struct {
	world *engine.World

	enabled bool
}

// NewEffectSystem creates a new effect system
func NewEffectSystem(world *engine.World) engine.System {
	s := &EffectSystem{world: world}
	s.Init()
	return s
}

// Init spawns the static edge overlays
func (s *EffectSystem) Init() {
	s.enabled = true
	if s.world.Components.Border.CountEntities() == 0 {
		s.spawnBorders()
	}
}

// Name returns system's name
func (s *EffectSystem) Name() string {
	return "effect"
}

// Priority returns the system's priority
func (s *EffectSystem) Priority() int {
	return parameter.PriorityEffect
}

// EventTypes returns the event types EffectSystem handles
func (s *EffectSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventShakeRequest,
		event.EventSystemCommand,
		event.EventGameReset,
	}
}

// HandleEvent processes effect-related events
func (s *EffectSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventSystemCommand:
		applySystemCommand(ev, s.Name(), &s.enabled)
	case event.EventShakeRequest:
		if p, ok := ev.Payload.(*event.ShakeRequestPayload); ok {
			s.world.Resources.Camera.Pulse(p.Intensity, p.Frames)
		}
	}
}

// Update advances all cosmetic timers by one tick
func (s *EffectSystem) Update() {
	if !s.enabled {
		return
	}
	dt := s.world.Resources.Time.Dt
	s.updateParticles(dt)
	s.updateFlashes(dt)
	s.updateVignettes(dt)
	s.updateShake()
}

// updateParticles integrates damped velocity, spin, scale fade and color lerp
func (s *EffectSystem) updateParticles(dt float64) {
	w := s.world
	var dead []core.Entity

	for _, e := range w.Components.Particle.GetAllEntities() {
		p, ok := w.Components.Particle.GetComponent(e)
		if !ok {
			continue
		}
		p.Life -= dt
		if p.Life <= 0 {
			dead = append(dead, e)
			continue
		}

		tr, _ := w.Components.Transform.GetComponent(e)
		kin, _ := w.Components.Kinetic.GetComponent(e)

		tr.Position = vmath.V2Add(tr.Position, vmath.V2Scale(kin.Velocity, dt))
		kin.Velocity = vmath.V2Scale(kin.Velocity, parameter.ParticleDamping)
		tr.Rotation += p.Spin * dt

		k := p.Progress()
		scale := p.Size * max(1-k*parameter.ParticleScaleFade, parameter.ParticleMinScale)
		tr.Scale = vmath.V2(scale, scale)
		color := p.Start.Lerp(p.End, k).WithAlpha((1 - k) * parameter.ParticleAlpha)

		w.Components.Particle.SetComponent(e, p)
		w.Components.Transform.SetComponent(e, tr)
		w.Components.Kinetic.SetComponent(e, kin)
		w.Components.Visual.Mutate(e, func(v *component.VisualComponent) {
			v.Color = color
		})
	}
	w.DestroyBatch(dead)
}

func (s *EffectSystem) updateFlashes(dt float64) {
	w := s.world
	var dead []core.Entity

	for _, e := range w.Components.Flash.GetAllEntities() {
		f, ok := w.Components.Flash.GetComponent(e)
		if !ok {
			continue
		}
		f.Remaining -= dt
		if f.Remaining <= 0 {
			dead = append(dead, e)
			continue
		}
		alpha := f.Remaining / f.Duration
		w.Components.Flash.SetComponent(e, f)
		w.Components.Visual.Mutate(e, func(v *component.VisualComponent) {
			v.Color = f.Color.Scale(alpha).WithAlpha(alpha)
		})
	}
	w.DestroyBatch(dead)
}

func (s *EffectSystem) updateVignettes(dt float64) {
	w := s.world
	var dead []core.Entity

	for _, e := range w.Components.Vignette.GetAllEntities() {
		v, ok := w.Components.Vignette.GetComponent(e)
		if !ok {
			continue
		}
		v.Remaining -= dt
		if v.Remaining <= 0 {
			dead = append(dead, e)
			continue
		}
		alpha := v.Intensity * v.Remaining / v.Duration
		w.Components.Vignette.SetComponent(e, v)
		w.Components.Visual.Mutate(e, func(vis *component.VisualComponent) {
			vis.Color = core.Color{R: 1, A: alpha}
		})
	}
	w.DestroyBatch(dead)
}

// updateShake jitters the camera offset while frames remain
func (s *EffectSystem) updateShake() {
	cam := s.world.Resources.Camera
	if cam.Frames <= 0 {
		cam.Reset()
		return
	}
	rng := s.world.Resources.Rand
	cam.Offset = vmath.V2(rng.Signed()*cam.Intensity/2, rng.Signed()*cam.Intensity/2)
	cam.Frames--
}

// spawnBorders places four translucent strips along the viewport edges
func (s *EffectSystem) spawnBorders() {
	w := s.world
	half := w.Resources.Config.HalfViewport()
	b := parameter.VignetteBorder
	color := core.Color{A: parameter.VignetteAlpha}

	strips := [4]struct{ pos, scale vmath.Vec2 }{
		{vmath.V2(0, half.Y-b/2), vmath.V2(2*half.X, b)},
		{vmath.V2(0, -half.Y+b/2), vmath.V2(2*half.X, b)},
		{vmath.V2(-half.X+b/2, 0), vmath.V2(b, 2*half.Y)},
		{vmath.V2(half.X-b/2, 0), vmath.V2(b, 2*half.Y)},
	}
	for _, st := range strips {
		e := w.CreateEntity()
		w.Components.Transform.SetComponent(e, component.TransformComponent{Position: st.pos, Scale: st.scale})
		w.Components.Border.SetComponent(e, component.BorderComponent{})
		w.AttachVisual(e, visual.SpawnRequest{
			Role:     visual.RoleVignette,
			Shape:    visual.ShapeQuad,
			Position: st.pos,
			Scale:    st.scale,
			Color:    color,
		})
	}
}
