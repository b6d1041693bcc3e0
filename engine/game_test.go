package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/void-raider/component"
	"github.com/lixenwraith/void-raider/core"
	"github.com/lixenwraith/void-raider/event"
	"github.com/lixenwraith/void-raider/parameter"
	"github.com/lixenwraith/void-raider/status"
	"github.com/lixenwraith/void-raider/vmath"
)

// shipSystem keeps a player entity around and counts updates
type shipSystem struct {
	w       *World
	updates int
	resets  int
}

func (s *shipSystem) Init() {
	if _, ok := s.w.PlayerEntity(); !ok {
		e := s.w.CreateEntity()
		s.w.Components.Transform.SetComponent(e, component.TransformComponent{})
		s.w.Components.Player.SetComponent(e, component.PlayerComponent{})
	}
}
func (s *shipSystem) Priority() int { return parameter.PriorityPlayer }
func (s *shipSystem) Update()       { s.updates++ }

func (s *shipSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *shipSystem) HandleEvent(ev event.GameEvent) {
	s.resets++
	s.Init()
}

type fakePlayer struct {
	muted bool
}

func (p *fakePlayer) Play(core.SoundRequest) bool { return true }
func (p *fakePlayer) SetMuted(m bool)             { p.muted = m }
func (p *fakePlayer) IsMuted() bool               { return p.muted }
func (p *fakePlayer) IsRunning() bool             { return true }

func newShipGame(opts Options) (*Game, *shipSystem) {
	g := NewGame(opts)
	s := &shipSystem{w: g.World()}
	s.Init()
	g.AddSystem(s)
	return g, s
}

func TestNewGameOptions(t *testing.T) {
	g := NewGame(Options{Seed: 9, Viewport: vmath.V2(800, 600)})
	res := g.World().Resources
	assert.Equal(t, uint64(9), res.Config.Seed)
	assert.Equal(t, vmath.V2(800, 600), res.Config.Viewport)
	assert.NotEmpty(t, res.Config.Waves)
	assert.False(t, res.Config.BurstSpawn)
	assert.Equal(t, core.PhaseRunning, g.Phase())
}

func TestPauseToggle(t *testing.T) {
	g, s := newShipGame(Options{})

	g.Tick(Input{Dt: 16 * time.Millisecond})
	require.Equal(t, 1, s.updates)

	g.Tick(Input{Dt: 16 * time.Millisecond, TogglePause: true})
	assert.Equal(t, core.PhasePaused, g.Phase())
	assert.Equal(t, 1, s.updates, "pausing tick does not simulate")

	g.Tick(Input{Dt: 16 * time.Millisecond})
	assert.Equal(t, 1, s.updates)
	assert.Equal(t, int64(1), g.World().FrameNumber())

	g.Tick(Input{Dt: 16 * time.Millisecond, TogglePause: true})
	assert.Equal(t, core.PhaseRunning, g.Phase())
	g.Tick(Input{Dt: 16 * time.Millisecond})
	assert.Equal(t, 2, s.updates)
}

func TestDeltaClamp(t *testing.T) {
	g, _ := newShipGame(Options{})
	g.Tick(Input{Dt: 5 * time.Second})
	assert.Equal(t, parameter.MaxDeltaTime, g.World().Resources.Time.DeltaTime)

	g.Tick(Input{Dt: -time.Second})
	assert.Zero(t, g.World().Resources.Time.DeltaTime)
}

func TestGraceTimerToGameOver(t *testing.T) {
	g, _ := newShipGame(Options{})
	w := g.World()

	pe, ok := w.PlayerEntity()
	require.True(t, ok)
	w.DestroyEntity(pe)

	step := 100 * time.Millisecond
	ticks := int(parameter.GameOverGrace / step)
	for i := 0; i < ticks-1; i++ {
		g.Tick(Input{Dt: step})
	}
	assert.Equal(t, core.PhaseRunning, g.Phase())

	g.Tick(Input{Dt: step})
	assert.Equal(t, core.PhaseGameOver, g.Phase())
	assert.False(t, g.HUD().PlayerAlive)
}

func TestGraceTimerCancelledOnRespawn(t *testing.T) {
	g, s := newShipGame(Options{})
	w := g.World()

	pe, _ := w.PlayerEntity()
	w.DestroyEntity(pe)
	g.Tick(Input{Dt: time.Second / 4})
	g.Tick(Input{Dt: time.Second / 4})

	s.Init()
	g.Tick(Input{Dt: time.Second / 4})

	pe, _ = w.PlayerEntity()
	w.DestroyEntity(pe)
	for i := 0; i < 5; i++ {
		g.Tick(Input{Dt: time.Second / 4})
	}
	assert.Equal(t, core.PhaseRunning, g.Phase(), "timer restarted from zero")
}

func TestRestartNewMatch(t *testing.T) {
	p := &fakePlayer{}
	g, s := newShipGame(Options{Seed: 3, Audio: p})
	w := g.World()
	first := g.MatchID()

	g.Tick(Input{Dt: 16 * time.Millisecond, Muted: true})
	w.Resources.State.Score = 120
	pe, _ := w.PlayerEntity()
	w.DestroyEntity(pe)
	for i := 0; i < 10; i++ {
		g.Tick(Input{Dt: parameter.MaxDeltaTime, Muted: true})
	}
	require.Equal(t, core.PhaseGameOver, g.Phase())

	// Restart is honored only from GameOver via input
	g.Tick(Input{Dt: 16 * time.Millisecond, Muted: true, Restart: true})
	assert.Equal(t, core.PhaseRunning, g.Phase())
	assert.NotEqual(t, first, g.MatchID())
	assert.Zero(t, w.Resources.State.Score)
	assert.True(t, w.Resources.State.Muted, "mute survives restart")
	assert.Zero(t, w.FrameNumber())
	assert.Equal(t, 1, s.resets)

	_, ok := w.PlayerEntity()
	assert.True(t, ok)

	board := status.NewBoard(w.Resources.Status)
	assert.Equal(t, g.MatchID().String(), board.Match.Load())
}

// TestMatchIDConcurrentRestart reads the match id from another goroutine while matches restart
func TestMatchIDConcurrentRestart(t *testing.T) {
	g, _ := newShipGame(Options{Seed: 5})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			g.Restart()
		}
	}()

	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		seen[g.MatchID().String()] = struct{}{}
	}
	wg.Wait()

	last := g.MatchID()
	assert.NotEmpty(t, seen)
	assert.Equal(t, last.String(), status.NewBoard(g.World().Resources.Status).Match.Load())
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	g, _ := newShipGame(Options{})
	first := g.MatchID()
	g.Tick(Input{Dt: 16 * time.Millisecond, Restart: true})
	assert.Equal(t, first, g.MatchID())
}

func TestMuteForwardedToPlayer(t *testing.T) {
	p := &fakePlayer{}
	g, _ := newShipGame(Options{Audio: p})

	g.Tick(Input{Dt: 16 * time.Millisecond, Muted: true})
	assert.True(t, p.muted)
	assert.True(t, g.HUD().Muted)

	// Mute is applied even while paused
	g.Tick(Input{Dt: 16 * time.Millisecond, Muted: true, TogglePause: true})
	g.Tick(Input{Dt: 16 * time.Millisecond, Muted: false})
	assert.False(t, p.muted)
}

func TestViewportFollowsInput(t *testing.T) {
	g, _ := newShipGame(Options{})
	g.Tick(Input{Dt: 16 * time.Millisecond, Viewport: vmath.V2(1024, 768)})
	assert.Equal(t, vmath.V2(512, 384), g.World().Resources.Config.HalfViewport())

	g.Tick(Input{Dt: 16 * time.Millisecond})
	assert.Equal(t, vmath.V2(1024, 768), g.World().Resources.Config.Viewport)
}
