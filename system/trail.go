package system

import (
	"github.com/lixenwraith/void-raider/component"
	"github.com/lixenwraith/void-raider/engine"
	"github.com/lixenwraith/void-raider/event"
	"github.com/lixenwraith/void-raider/parameter"
	"github.com/lixenwraith/void-raider/visual"
	"github.com/lixenwraith/void-raider/vmath"
)

// minSegmentLength skips degenerate segments of a stationary trail
const minSegmentLength = 0.1

// TrailSystem records ship positions and rebuilds gradient segments each tick
type TrailSystem struct {
	world *engine.World

	enabled bool
}

// NewTrailSystem creates a new trail system
func NewTrailSystem(world *engine.World) engine.System {
	s := &TrailSystem{world: world}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *TrailSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *TrailSystem) Name() string {
	return "trail"
}

// Priority returns the system's priority
func (s *TrailSystem) Priority() int {
	return parameter.PriorityTrail
}

// EventTypes returns the event types TrailSystem handles
func (s *TrailSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSystemCommand,
		event.EventGameReset,
	}
}

// HandleEvent processes trail-related events
func (s *TrailSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventSystemCommand:
		applySystemCommand(ev, s.Name(), &s.enabled)
	}
}

// Update appends current positions and regenerates segments
func (s *TrailSystem) Update() {
	if !s.enabled {
		return
	}

	w := s.world
	for _, e := range w.Components.Trail.GetAllEntities() {
		tr, ok := w.Components.Transform.GetComponent(e)
		if !ok {
			continue
		}
		w.Components.Trail.Mutate(e, func(t *component.TrailComponent) {
			t.Push(tr.Position)
			t.Segments = buildSegments(t, t.Segments[:0])
		})
	}
}

// buildSegments fades from the oldest point to the newest
func buildSegments(t *component.TrailComponent, out []visual.Segment) []visual.Segment {
	n := len(t.Points)
	for i := 0; i+1 < n; i++ {
		start, end := t.Points[i], t.Points[i+1]
		if vmath.V2Dist(start, end, 0) <= minSegmentLength {
			continue
		}
		p := float64(i) / float64(n)
		gain := parameter.TrailScaleBase + p*parameter.TrailScaleGain
		out = append(out, visual.Segment{
			Position: vmath.V2Scale(vmath.V2Add(start, end), 0.5),
			Scale:    gain,
			Color:    t.Color.Scale(gain).WithAlpha(p * parameter.TrailAlpha),
		})
	}
	return out
}
