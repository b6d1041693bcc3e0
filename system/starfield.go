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

var (
	colorStar     = core.Color{R: 0.8, G: 0.8, B: 0.9, A: 0.6}
	colorStarBlue = core.Color{R: 0.5, G: 0.7, B: 1.2, A: 0.7}
)

// StarfieldSystem scrolls a seeded background starfield, wrapping stars to the top
type StarfieldSystem struct {
	world *engine.World

	enabled bool
}

// NewStarfieldSystem creates a new starfield system
func NewStarfieldSystem(world *engine.World) engine.System {
	s := &StarfieldSystem{world: world}
	s.Init()
	return s
}

// Init seeds the starfield if it is empty
func (s *StarfieldSystem) Init() {
	s.enabled = true
	if s.world.Components.Star.CountEntities() == 0 {
		s.spawnStars()
	}
}

// Name returns system's name
func (s *StarfieldSystem) Name() string {
	return "starfield"
}

// Priority returns the system's priority
func (s *StarfieldSystem) Priority() int {
	return parameter.PriorityStarfield
}

// EventTypes returns the event types StarfieldSystem handles
func (s *StarfieldSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSystemCommand,
		event.EventGameReset,
	}
}

// HandleEvent processes starfield-related events
func (s *StarfieldSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventSystemCommand:
		applySystemCommand(ev, s.Name(), &s.enabled)
	}
}

// spawnStars uses its own fixed seed so the sky is identical every match
func (s *StarfieldSystem) spawnStars() {
	w := s.world
	rng := vmath.NewFastRand(parameter.StarSeed)
	half := w.Resources.Config.HalfViewport()

	for i := 0; i < parameter.StarCount; i++ {
		pos := vmath.V2(rng.Range(-half.X, half.X), rng.Range(-half.Y, half.Y))
		speed := rng.Range(parameter.StarSpeedMin, parameter.StarSpeedMax)
		color := colorStar
		if i%parameter.StarBlueEvery == 0 {
			color = colorStarBlue
		}

		e := w.CreateEntity()
		w.Components.Transform.SetComponent(e, component.TransformComponent{Position: pos, Scale: vmath.V2(1, 1)})
		w.Components.Star.SetComponent(e, component.StarComponent{Speed: speed})
		w.AttachVisual(e, visual.SpawnRequest{
			Role:     visual.RoleStar,
			Shape:    visual.ShapeQuad,
			Position: pos,
			Scale:    vmath.V2(1, 1),
			Color:    color,
		})
	}
}

// Update moves every star down by its per-tick speed
func (s *StarfieldSystem) Update() {
	if !s.enabled {
		return
	}

	w := s.world
	half := w.Resources.Config.HalfViewport()
	for _, e := range w.Components.Star.GetAllEntities() {
		star, ok := w.Components.Star.GetComponent(e)
		if !ok {
			continue
		}
		w.Components.Transform.Mutate(e, func(tr *component.TransformComponent) {
			tr.Position.Y -= star.Speed
			if tr.Position.Y < -half.Y {
				tr.Position.Y = half.Y
			}
		})
	}
}
