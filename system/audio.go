package system

import (
	"sync/atomic"

	"github.com/lixenwraith/void-raider/engine"
	"github.com/lixenwraith/void-raider/event"
	"github.com/lixenwraith/void-raider/parameter"
)

// AudioSystem forwards sound requests to the audio player
// Requests are fire-and-forget; while muted or without a player they are discarded
type AudioSystem struct {
	world *engine.World

	statRequested *atomic.Int64
	statRejected  *atomic.Int64

	enabled bool
}

// NewAudioSystem creates a new audio system
func NewAudioSystem(world *engine.World) engine.System {
	s := &AudioSystem{world: world}
	s.statRequested = world.Resources.Status.Ints.Get("audio.requested")
	s.statRejected = world.Resources.Status.Ints.Get("audio.rejected")
	s.Init()
	return s
}

// Init resets session state for new game
func (s *AudioSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *AudioSystem) Name() string {
	return "audio"
}

// Priority returns the system's priority
func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSoundRequest,
		event.EventSystemCommand,
		event.EventGameReset,
	}
}

// HandleEvent plays requested sounds
func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
		return
	case event.EventSystemCommand:
		applySystemCommand(ev, s.Name(), &s.enabled)
		return
	}

	if !s.enabled {
		return
	}

	p, ok := ev.Payload.(*event.SoundRequestPayload)
	if !ok {
		return
	}
	s.statRequested.Add(1)

	res := s.world.Resources
	player := res.Audio.Player
	if player == nil || res.State.Muted {
		return
	}
	if !player.Play(p.Request) {
		s.statRejected.Add(1)
	}
}

// Update is a no-op, delivery happens during event dispatch
func (s *AudioSystem) Update() {}
