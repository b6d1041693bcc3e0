package system

import (
	"math"

	"github.com/lixenwraith/void-raider/component"
	"github.com/lixenwraith/void-raider/core"
	"github.com/lixenwraith/void-raider/engine"
	"github.com/lixenwraith/void-raider/event"
	"github.com/lixenwraith/void-raider/parameter"
)

// FlameSystem keeps engine glows under their ships and pulses them
type FlameSystem struct {
	world *engine.World

	enabled bool
}

// NewFlameSystem creates a new flame system
func NewFlameSystem(world *engine.World) engine.System {
	s := &FlameSystem{world: world}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *FlameSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *FlameSystem) Name() string {
	return "flame"
}

// Priority returns the system's priority
func (s *FlameSystem) Priority() int {
	return parameter.PriorityFlame
}

// EventTypes returns the event types FlameSystem handles
func (s *FlameSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSystemCommand,
		event.EventGameReset,
	}
}

// HandleEvent processes flame-related events
func (s *FlameSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventSystemCommand:
		applySystemCommand(ev, s.Name(), &s.enabled)
	}
}

// Update follows owners and refreshes the glow on each pulse interval
// A flame whose owner is gone is removed with it
func (s *FlameSystem) Update() {
	if !s.enabled {
		return
	}

	w := s.world
	dt := w.Resources.Time.Dt
	elapsed := w.Resources.Time.Elapsed
	var orphans []core.Entity

	for _, e := range w.Components.Flame.GetAllEntities() {
		f, ok := w.Components.Flame.GetComponent(e)
		if !ok {
			continue
		}
		owner, ok := w.Components.Transform.GetComponent(f.Owner)
		if !ok {
			orphans = append(orphans, e)
			continue
		}

		w.Components.Transform.Mutate(e, func(tr *component.TransformComponent) {
			tr.Position = flamePosition(owner.Position, owner.Scale)
		})

		f.Elapsed += dt
		f.Timer += dt
		if f.Timer >= parameter.FlameInterval {
			f.Timer -= parameter.FlameInterval
			f.Glow = parameter.FlameGlowBase + parameter.FlameGlowAmp*math.Sin(elapsed*parameter.FlameGlowFreq)
			color := core.Color{
				R: colorFlameBase.R * f.Glow,
				G: colorFlameBase.G * f.Glow,
				B: colorFlameBase.B * f.Glow,
				A: colorFlameBase.A,
			}
			w.Components.Visual.Mutate(e, func(v *component.VisualComponent) {
				v.Color = color
			})
		}
		w.Components.Flame.SetComponent(e, f)
	}
	w.DestroyBatch(orphans)
}
