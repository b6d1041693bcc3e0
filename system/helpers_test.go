package system

import (
	"sync"
	"time"

	"github.com/lixenwraith/void-raider/component"
	"github.com/lixenwraith/void-raider/core"
	"github.com/lixenwraith/void-raider/engine"
	"github.com/lixenwraith/void-raider/event"
	"github.com/lixenwraith/void-raider/visual"
	"github.com/lixenwraith/void-raider/vmath"
)

const testTick = 16 * time.Millisecond

// fakeAudio records every accepted request
type fakeAudio struct {
	mu     sync.Mutex
	played []core.SoundRequest
	muted  bool
}

func (a *fakeAudio) Play(req core.SoundRequest) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.played = append(a.played, req)
	return true
}

func (a *fakeAudio) SetMuted(muted bool) {
	a.mu.Lock()
	a.muted = muted
	a.mu.Unlock()
}

func (a *fakeAudio) IsMuted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.muted
}

func (a *fakeAudio) IsRunning() bool { return true }

func (a *fakeAudio) count(t core.SoundType) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for _, r := range a.played {
		if r.Type == t {
			n++
		}
	}
	return n
}

// eventLog captures routed events for assertions
type eventLog struct {
	events []event.GameEvent
}

func (l *eventLog) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEnemyDestroyed,
		event.EventPlayerDamaged,
		event.EventPlayerDestroyed,
		event.EventWaveAdvanced,
		event.EventGameOver,
		event.EventGameReset,
	}
}

func (l *eventLog) HandleEvent(ev event.GameEvent) {
	l.events = append(l.events, ev)
}

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, ev := range l.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// harness is a full game with every gameplay system installed
type harness struct {
	game   *engine.Game
	world  *engine.World
	rec    *visual.Recorder
	audio  *fakeAudio
	events *eventLog
}

var allSystems = []func(*engine.World) engine.System{
	NewPlayerSystem,
	NewSpawnSystem,
	NewEnemySystem,
	NewBulletSystem,
	NewCollisionSystem,
	NewEffectSystem,
	NewTrailSystem,
	NewFlameSystem,
	NewStarfieldSystem,
	NewAudioSystem,
	NewStatusSystem,
}

// newHarness builds a game; the named systems are disabled for isolation
func newHarness(disabled ...string) *harness {
	h := &harness{
		rec:    visual.NewRecorder(),
		audio:  &fakeAudio{},
		events: &eventLog{},
	}
	h.game = engine.NewGame(engine.Options{
		Seed:  7,
		Sink:  h.rec,
		Audio: h.audio,
	})
	h.world = h.game.World()
	for _, ctor := range allSystems {
		h.game.AddSystem(ctor(h.world))
	}
	h.game.Subscribe(h.events)
	for _, name := range disabled {
		h.game.SetSystemEnabled(name, false)
	}
	return h
}

// player returns the player entity, zero if absent
func (h *harness) player() core.Entity {
	e, _ := h.world.PlayerEntity()
	return e
}

func (h *harness) playerPos() vmath.Vec2 {
	tr, _ := h.world.Components.Transform.GetComponent(h.player())
	return tr.Position
}

// hold is an input that keeps the ship where it is
func (h *harness) hold() engine.Input {
	return engine.Input{Dt: testTick, Cursor: h.playerPos()}
}

func (h *harness) tick(in engine.Input) {
	if in.Dt == 0 {
		in.Dt = testTick
	}
	h.game.Tick(in)
}

// placeEnemy spawns a stationary, non-firing enemy
func (h *harness) placeEnemy(pos vmath.Vec2, hp int) core.Entity {
	w := h.world
	e := w.CreateEntity()
	w.Components.Transform.SetComponent(e, component.TransformComponent{Position: pos, Scale: vmath.V2(16, 16)})
	w.Components.Collider.SetComponent(e, component.ColliderComponent{Half: vmath.V2(8, 8)})
	w.Components.Health.SetComponent(e, component.HealthComponent{Current: hp, Max: hp})
	w.Components.Enemy.SetComponent(e, component.EnemyComponent{
		Kind:          component.KindBasic,
		Speed:         1,
		Movement:      component.MovementState{Pattern: component.MoveDown, Distance: 50},
		Firing:        component.SingleFire(),
		ShootCooldown: 1000,
	})
	w.AttachVisual(e, visual.SpawnRequest{Role: visual.RoleShip, Shape: visual.ShapeQuad, Position: pos})
	return e
}
