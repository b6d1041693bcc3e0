package system

import (
	"github.com/lixenwraith/void-raider/component"
	"github.com/lixenwraith/void-raider/core"
	"github.com/lixenwraith/void-raider/engine"
	"github.com/lixenwraith/void-raider/event"
	"github.com/lixenwraith/void-raider/parameter"
	"github.com/lixenwraith/void-raider/visual"
	"github.com/lixenwraith/void-raider/vmath"
	"github.com/lixenwraith/void-raider/wave"
)

// SpawnSystem drives the wave schedule and instantiates enemies
type SpawnSystem struct {
	world   *engine.World
	manager *wave.Manager

	enabled bool
}

// NewSpawnSystem creates a spawn system over the configured wave table
func NewSpawnSystem(world *engine.World) engine.System {
	cfg := world.Resources.Config
	s := &SpawnSystem{
		world:   world,
		manager: wave.NewManager(cfg.Waves, cfg.BurstSpawn),
	}
	s.Init()
	return s
}

// Init resets the schedule to wave 0
func (s *SpawnSystem) Init() {
	s.manager.Reset()
	s.world.Resources.State.Wave = 0
	s.enabled = true
}

// Name returns system's name
func (s *SpawnSystem) Name() string {
	return "spawn"
}

// Priority returns the system's priority
func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

// Manager exposes the wave state for inspection
func (s *SpawnSystem) Manager() *wave.Manager {
	return s.manager
}

// EventTypes returns the event types SpawnSystem handles
func (s *SpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSystemCommand,
		event.EventGameReset,
	}
}

// HandleEvent processes spawn-related events
func (s *SpawnSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventSystemCommand:
		applySystemCommand(ev, s.Name(), &s.enabled)
	}
}

// Update advances the wave schedule and spawns due enemies
func (s *SpawnSystem) Update() {
	if !s.enabled {
		return
	}

	w := s.world
	state := w.Resources.State
	alive := w.Components.Enemy.CountEntities()

	spawns, advanced := s.manager.Update(w.Resources.Time.Dt, state.Score, alive)
	if advanced {
		state.Wave = s.manager.Current
		w.Resources.Log.Info().
			Int("wave", state.Wave).
			Int("score", state.Score).
			Msg("wave advanced")
		w.PushEvent(event.EventWaveAdvanced, &event.WaveAdvancedPayload{Wave: state.Wave})
	}

	for _, a := range spawns {
		SpawnEnemy(w, a, s.spawnPosition())
	}
}

// spawnPosition picks a random point in the band near the top of the screen
func (s *SpawnSystem) spawnPosition() vmath.Vec2 {
	rng := s.world.Resources.Rand
	half := s.world.Resources.Config.HalfViewport()
	x := rng.Range(-half.X+parameter.SpawnMarginX, half.X-parameter.SpawnMarginX)
	y := rng.Range(parameter.SpawnMinY, parameter.SpawnMaxY)
	return vmath.V2(x, y)
}

// SpawnEnemy instantiates an archetype at pos with a seeded ship visual
func SpawnEnemy(w *engine.World, a wave.Archetype, pos vmath.Vec2) core.Entity {
	rng := w.Resources.Rand
	stats := a.Stats()

	span := int(stats.PatternMax-stats.PatternMin) + 1
	pattern := stats.PatternMin + component.MovementPattern(rng.Intn(span))

	e := w.CreateEntity()
	ship := visual.BuildShip(rng.Next(), stats.Color)

	w.Components.Transform.SetComponent(e, component.TransformComponent{Position: pos, Scale: stats.Size})
	w.Components.Collider.SetComponent(e, component.ColliderComponent{Half: ship.HalfExtents(stats.Size)})
	w.Components.Health.SetComponent(e, component.HealthComponent{Current: stats.HP, Max: stats.HP})
	w.Components.Enemy.SetComponent(e, component.EnemyComponent{
		Archetype: uint8(a),
		Kind:      stats.Kind,
		Speed:     rng.Range(stats.SpeedMin, stats.SpeedMax) / 100,
		Movement: component.MovementState{
			Pattern:  pattern,
			Phase:    rng.Angle(),
			Distance: rollDistance(rng),
			Orbit: component.OrbitState{
				Center: pos,
				Radius: rng.Range(parameter.OrbitRadiusMin, parameter.OrbitRadiusMax),
				Angle:  rng.Angle(),
			},
			Formation: component.FormationState{
				Anchor: pos,
				Offset: vmath.V2(
					rng.Range(-parameter.FormationOffsetX, parameter.FormationOffsetX),
					rng.Range(-parameter.FormationOffsetY, parameter.FormationOffsetY),
				),
			},
		},
		Firing:        stats.Firing,
		ShootCooldown: parameter.EnemyShootInitMin + rng.Intn(parameter.EnemyShootInitMax-parameter.EnemyShootInitMin),
	})
	w.Components.Trail.SetComponent(e, component.TrailComponent{
		MaxLength: parameter.EnemyTrailLength,
		Color:     enemyTrailColor(stats.Kind),
	})
	w.AttachVisual(e, visual.SpawnRequest{
		Role:     visual.RoleShip,
		Shape:    ship.Hull,
		Position: pos,
		Scale:    stats.Size,
		Color:    stats.Color,
		Parts:    ship.Parts,
	})

	w.Resources.Log.Debug().
		Str("archetype", a.String()).
		Float64("x", pos.X).
		Float64("y", pos.Y).
		Msg("enemy spawned")
	return e
}

func enemyTrailColor(kind component.EnemyKind) core.Color {
	switch kind {
	case component.KindMeteor:
		return core.NewColor(0.8, 0.6, 0.4)
	case component.KindSpecial:
		return core.NewColor(0.8, 0.5, 0.8)
	default:
		return core.NewColor(1.2, 0.3, 0.3)
	}
}

func rollDistance(rng *vmath.FastRand) int {
	return parameter.MoveDistanceMin + rng.Intn(parameter.MoveDistanceMax-parameter.MoveDistanceMin)
}
