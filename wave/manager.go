package wave

import (
	"github.com/lixenwraith/void-raider/parameter"
)

// Manager is the mutable wave schedule state
// Not safe for concurrent use, owned by the spawn system
type Manager struct {
	waves []Config
	burst bool

	Current int // Wave index, >= len(waves) means the table is exhausted
	Spawned int // Enemies spawned in the current wave
	Alive   int // Live enemies as of the last update
	Timer   float64
}

// NewManager creates a manager at wave 0
// With burst enabled the spawns per elapsed interval grow with the wave index
func NewManager(waves []Config, burst bool) *Manager {
	table := make([]Config, len(waves))
	copy(table, waves)
	return &Manager{waves: table, burst: burst}
}

// Reset returns to wave 0
func (m *Manager) Reset() {
	m.Current = 0
	m.Spawned = 0
	m.Alive = 0
	m.Timer = 0
}

// Waves returns the number of configured waves
func (m *Manager) Waves() int {
	return len(m.waves)
}

// Exhausted reports whether no more enemies will ever spawn
func (m *Manager) Exhausted() bool {
	return m.Current >= len(m.waves)
}

// Active returns the current wave config
func (m *Manager) Active() (Config, bool) {
	if m.Exhausted() {
		return Config{}, false
	}
	return m.waves[m.Current], true
}

// BurstSize returns how many enemies spawn when the interval elapses
func (m *Manager) BurstSize() int {
	if !m.burst {
		return 1
	}
	return min(m.Current+1, parameter.BurstMax)
}

// Update advances the schedule by dt and returns the archetypes to spawn this tick
// advanced is true if the wave index moved forward
func (m *Manager) Update(dt float64, score, alive int) (spawns []Archetype, advanced bool) {
	m.Alive = alive
	if m.Exhausted() {
		return nil, false
	}

	next := m.Current + 1
	if alive == 0 && m.Spawned > 0 && next < len(m.waves) && score >= m.waves[next].ScoreThreshold {
		m.Current = next
		m.Spawned = 0
		m.Timer = 0
		advanced = true
	}

	cfg := m.waves[m.Current]
	total := cfg.Total()
	if m.Spawned >= total {
		return nil, advanced
	}

	m.Timer += dt
	if m.Timer < cfg.SpawnInterval {
		return nil, advanced
	}
	m.Timer = 0

	for n := m.BurstSize(); n > 0 && m.Spawned < total; n-- {
		a, ok := m.nextArchetype(cfg)
		if !ok {
			break
		}
		spawns = append(spawns, a)
		m.Spawned++
	}
	return spawns, advanced
}

// nextArchetype returns the first archetype not yet fully spawned
func (m *Manager) nextArchetype(cfg Config) (Archetype, bool) {
	counts := cfg.SpawnedBy(m.Spawned)
	for a := Scout; a < ArchetypeCount; a++ {
		if counts[a] < cfg.Count(a) {
			return a, true
		}
	}
	return 0, false
}

// SpawnedBy returns the per-archetype spawn counts of the current wave
func (m *Manager) SpawnedBy() [ArchetypeCount]int {
	cfg, ok := m.Active()
	if !ok {
		return [ArchetypeCount]int{}
	}
	return cfg.SpawnedBy(m.Spawned)
}
