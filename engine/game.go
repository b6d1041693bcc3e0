package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/void-raider/core"
	"github.com/lixenwraith/void-raider/event"
	"github.com/lixenwraith/void-raider/parameter"
	"github.com/lixenwraith/void-raider/status"
	"github.com/lixenwraith/void-raider/visual"
	"github.com/lixenwraith/void-raider/vmath"
	"github.com/lixenwraith/void-raider/wave"
)

// dispatchRounds bounds chained event delivery within one tick
const dispatchRounds = 4

// Options configures a new Game
type Options struct {
	Seed     uint64
	Viewport vmath.Vec2
	Sink     visual.Sink
	Audio    AudioPlayer
	Logger   zerolog.Logger
	Metrics  *MetricsResource

	// Waves replaces the default wave table when non-empty
	Waves      []wave.Config
	BurstSpawn bool
}

// Game owns the world, the tick order and the phase machine
//
// Tick order per Running frame:
//  1. systems in priority order (control, projectiles, collision, cosmetics, bookkeeping)
//  2. event dispatch, including audio delivery
//  3. game-over grace check
type Game struct {
	world  *World
	router *event.Router

	baseLog  zerolog.Logger
	matchID  uuid.UUID
	seed     uint64
	restarts uint64

	// Grace timer runs while the player is missing
	graceActive  bool
	graceElapsed time.Duration
}

// NewGame creates a game with an empty world, systems are added with AddSystem
func NewGame(opts Options) *Game {
	w := NewWorld()
	res := &w.Resources

	if opts.Sink != nil {
		res.Visual.Sink = opts.Sink
	}
	if opts.Audio != nil {
		res.Audio.Player = opts.Audio
		res.State.Muted = opts.Audio.IsMuted()
	}
	if opts.Metrics != nil {
		res.Metrics = opts.Metrics
	}
	if opts.Viewport.X > 0 && opts.Viewport.Y > 0 {
		res.Config.Viewport = opts.Viewport
	}
	if opts.Seed != 0 {
		res.Config.Seed = opts.Seed
	}
	if len(opts.Waves) > 0 {
		res.Config.Waves = opts.Waves
	}
	res.Config.BurstSpawn = opts.BurstSpawn
	*res.Rand = *vmath.NewFastRand(res.Config.Seed)

	g := &Game{
		world:   w,
		router:  event.NewRouter(w.EventQueue()),
		baseLog: opts.Logger,
		seed:    res.Config.Seed,
	}
	g.newMatch()
	return g
}

// World returns the game's world, for system construction and tests
func (g *Game) World() *World {
	return g.world
}

// AddSystem adds a system and registers it for its events
func (g *Game) AddSystem(s System) {
	g.world.AddSystem(s)
	if h, ok := s.(event.Handler); ok {
		g.router.Register(h)
	}
}

// Subscribe registers a non-system event handler, such as a host-side listener
func (g *Game) Subscribe(h event.Handler) {
	g.world.RunSafe(func() {
		g.router.Register(h)
	})
}

// SetSystemEnabled toggles a named system, delivered on the next dispatch
func (g *Game) SetSystemEnabled(name string, enabled bool) {
	g.world.RunSafe(func() {
		g.world.PushEvent(event.EventSystemCommand, &event.SystemCommandPayload{
			SystemName: name,
			Enabled:    enabled,
		})
		g.router.DispatchAll(dispatchRounds)
	})
}

// Phase returns the current phase
func (g *Game) Phase() core.GamePhase {
	var p core.GamePhase
	g.world.RunSafe(func() {
		p = g.world.Resources.State.Phase
	})
	return p
}

// MatchID returns the identifier of the current match
func (g *Game) MatchID() uuid.UUID {
	var id uuid.UUID
	g.world.RunSafe(func() {
		id = g.matchID
	})
	return id
}

// HUD returns the current HUD values
func (g *Game) HUD() HUD {
	var h HUD
	g.world.RunSafe(func() {
		h = g.hudLocked()
	})
	return h
}

// Frame returns a render snapshot
func (g *Game) Frame() Frame {
	var f Frame
	g.world.RunSafe(func() {
		f = g.frameLocked()
	})
	return f
}

// Tick applies input and advances the simulation by one frame
// Paused skips simulation entirely, GameOver waits for Restart
func (g *Game) Tick(in Input) {
	g.world.RunSafe(func() {
		g.tickLocked(in)
	})
}

// Restart discards all entities and starts a new match regardless of phase
func (g *Game) Restart() {
	g.world.RunSafe(g.restartLocked)
}

func (g *Game) tickLocked(in Input) {
	res := &g.world.Resources
	state := res.State

	if in.Muted != state.Muted {
		state.Muted = in.Muted
		if res.Audio.Player != nil {
			res.Audio.Player.SetMuted(in.Muted)
		}
	}
	if in.Viewport.X > 0 && in.Viewport.Y > 0 {
		res.Config.Viewport = in.Viewport
	}

	switch state.Phase {
	case core.PhaseGameOver:
		if in.Restart {
			g.restartLocked()
		}
		return
	case core.PhasePaused:
		if in.TogglePause {
			state.Phase = core.PhaseRunning
			res.Log.Debug().Msg("resumed")
		}
		return
	case core.PhaseRunning:
		if in.TogglePause {
			state.Phase = core.PhasePaused
			res.Log.Debug().Msg("paused")
			return
		}
	}

	dt := min(max(in.Dt, 0), parameter.MaxDeltaTime)
	res.Time.Update(dt)
	*res.Input = InputResource{
		Cursor:        in.Cursor,
		FirePrimary:   in.FirePrimary,
		FireSecondary: in.FireSecondary,
	}

	g.world.UpdateLocked()
	g.router.DispatchAll(dispatchRounds)
	if lost := g.world.EventQueue().TakeOverwritten(); lost > 0 {
		res.Log.Warn().Uint64("lost", lost).Msg("event queue overflow")
	}
	g.checkGameOver(dt)
}

// checkGameOver runs the grace timer while the player is missing
// The timer is dropped as soon as a player exists again
func (g *Game) checkGameOver(dt time.Duration) {
	if _, ok := g.world.PlayerEntity(); ok {
		g.graceActive = false
		g.graceElapsed = 0
		return
	}

	if !g.graceActive {
		g.graceActive = true
		g.graceElapsed = 0
	}
	g.graceElapsed += dt
	if g.graceElapsed < parameter.GameOverGrace {
		return
	}

	res := &g.world.Resources
	res.State.Phase = core.PhaseGameOver
	g.graceActive = false
	g.graceElapsed = 0
	res.Log.Info().
		Int("score", res.State.Score).
		Int("wave", res.State.Wave).
		Int("kills", res.State.Kills).
		Msg("game over")
	g.world.PushEvent(event.EventGameOver, nil)
	g.router.DispatchAll(dispatchRounds)
}

func (g *Game) restartLocked() {
	w := g.world
	res := &w.Resources

	w.Clear()
	w.EventQueue().Clear()

	muted := res.State.Muted
	*res.State = GameStateResource{Muted: muted, Phase: core.PhaseRunning}
	*res.Time = TimeResource{}
	res.Camera.Reset()

	g.restarts++
	*res.Rand = *vmath.NewFastRand(g.seed + g.restarts)
	g.graceActive = false
	g.graceElapsed = 0
	g.newMatch()
	res.Metrics.Restarts.Add(backgroundCtx, 1)

	w.PushEvent(event.EventGameReset, nil)
	g.router.DispatchAll(dispatchRounds)
}

func (g *Game) newMatch() {
	g.matchID = uuid.New()
	g.world.Resources.Log = g.baseLog.With().Str("match", g.matchID.String()).Logger()
	g.world.Resources.Status.Strings.Get(status.KeyMatch).Store(g.matchID.String())
	g.world.Resources.Log.Info().Uint64("seed", g.seed+g.restarts).Msg("match started")
}
