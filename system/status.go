package system

import (
	"github.com/lixenwraith/void-raider/engine"
	"github.com/lixenwraith/void-raider/event"
	"github.com/lixenwraith/void-raider/parameter"
	"github.com/lixenwraith/void-raider/status"
)

// StatusSystem publishes HUD values to the status board and records gameplay metrics
type StatusSystem struct {
	world *engine.World
	board *status.Board

	enabled bool
}

// NewStatusSystem creates a new status system
func NewStatusSystem(world *engine.World) engine.System {
	s := &StatusSystem{
		world: world,
		board: status.NewBoard(world.Resources.Status),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *StatusSystem) Init() {
	s.enabled = true
	s.publish()
}

// Name returns system's name
func (s *StatusSystem) Name() string {
	return "status"
}

// Priority returns the system's priority
func (s *StatusSystem) Priority() int {
	return parameter.PriorityStatus
}

// Board returns the lock-free HUD board
func (s *StatusSystem) Board() *status.Board {
	return s.board
}

// EventTypes returns the event types StatusSystem handles
func (s *StatusSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEnemyDestroyed,
		event.EventWaveAdvanced,
		event.EventPlayerDestroyed,
		event.EventGameOver,
		event.EventSystemCommand,
		event.EventGameReset,
	}
}

// HandleEvent records metrics for gameplay milestones
func (s *StatusSystem) HandleEvent(ev event.GameEvent) {
	metrics := s.world.Resources.Metrics

	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventSystemCommand:
		applySystemCommand(ev, s.Name(), &s.enabled)
	case event.EventEnemyDestroyed:
		if p, ok := ev.Payload.(*event.EnemyDestroyedPayload); ok {
			metrics.EnemyDestroyed(p.Kind.String())
		}
	case event.EventWaveAdvanced:
		if p, ok := ev.Payload.(*event.WaveAdvancedPayload); ok {
			metrics.WaveAdvanced(p.Wave)
		}
	case event.EventPlayerDestroyed:
		metrics.PlayerDied()
	case event.EventGameOver:
		s.publish()
	}
}

// Update publishes the current HUD values
func (s *StatusSystem) Update() {
	if !s.enabled {
		return
	}
	s.publish()
}

func (s *StatusSystem) publish() {
	w := s.world
	res := w.Resources
	b := s.board

	b.Score.Store(int64(res.State.Score))
	b.Wave.Store(int64(res.State.Wave))
	b.Kills.Store(int64(res.State.Kills))
	b.Enemies.Store(int64(w.Components.Enemy.CountEntities()))
	b.Muted.Store(res.State.Muted)
	b.Phase.Store(res.State.Phase.String())
	b.Frame.Store(res.Time.FrameNumber)

	pe, ok := w.PlayerEntity()
	b.Alive.Store(ok)
	if !ok {
		b.Health.Store(0)
		b.Charge.Set(0)
		return
	}
	if hp, ok := w.Components.Health.GetComponent(pe); ok {
		b.Health.Store(int64(hp.Current))
		b.HealthMax.Store(int64(hp.Max))
	}
	if ch, ok := w.Components.Charge.GetComponent(pe); ok {
		b.Charge.Set(ch.Current)
		b.ChargeMax.Set(ch.Max)
	}
}
