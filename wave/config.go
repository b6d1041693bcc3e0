package wave

import (
	"errors"
	"fmt"
)

// ErrInvalidWave is returned for a wave table entry that can never complete
var ErrInvalidWave = errors.New("invalid wave config")

// Config is one scheduled batch of enemies
type Config struct {
	Scouts  int `mapstructure:"scouts"`
	Heavies int `mapstructure:"heavies"`
	Bombers int `mapstructure:"bombers"`
	Drones  int `mapstructure:"drones"`

	// SpawnInterval is seconds between spawn bursts
	SpawnInterval float64 `mapstructure:"interval"`

	// ScoreThreshold is the score required to unlock this wave
	ScoreThreshold int `mapstructure:"threshold"`
}

// Count returns the configured count for archetype a
func (c Config) Count(a Archetype) int {
	switch a {
	case Scout:
		return c.Scouts
	case Heavy:
		return c.Heavies
	case Bomber:
		return c.Bombers
	case Drone:
		return c.Drones
	default:
		return 0
	}
}

// Total returns the number of enemies in the wave
func (c Config) Total() int {
	return c.Scouts + c.Heavies + c.Bombers + c.Drones
}

// SpawnedBy splits a wave's spawned count into per-archetype counts
// Archetypes fill in declaration order, each saturating at its configured count
func (c Config) SpawnedBy(spawned int) [ArchetypeCount]int {
	var out [ArchetypeCount]int
	rest := max(spawned, 0)
	for a := Scout; a < ArchetypeCount; a++ {
		n := min(rest, c.Count(a))
		out[a] = n
		rest -= n
	}
	return out
}

// Validate checks a wave table
func Validate(waves []Config) error {
	for i, w := range waves {
		if w.Scouts < 0 || w.Heavies < 0 || w.Bombers < 0 || w.Drones < 0 {
			return fmt.Errorf("%w: wave %d has a negative count", ErrInvalidWave, i)
		}
		if w.Total() > 0 && w.SpawnInterval <= 0 {
			return fmt.Errorf("%w: wave %d has non-positive interval %v", ErrInvalidWave, i, w.SpawnInterval)
		}
		if i > 0 && w.ScoreThreshold < waves[i-1].ScoreThreshold {
			return fmt.Errorf("%w: wave %d threshold %d below previous", ErrInvalidWave, i, w.ScoreThreshold)
		}
	}
	return nil
}

// DefaultTable returns the built-in seven-wave schedule
func DefaultTable() []Config {
	return []Config{
		{Scouts: 8, Heavies: 1, Bombers: 0, Drones: 1, SpawnInterval: 0.80, ScoreThreshold: 0},
		{Scouts: 12, Heavies: 2, Bombers: 1, Drones: 1, SpawnInterval: 0.60, ScoreThreshold: 50},
		{Scouts: 16, Heavies: 3, Bombers: 2, Drones: 2, SpawnInterval: 0.50, ScoreThreshold: 150},
		{Scouts: 20, Heavies: 4, Bombers: 3, Drones: 3, SpawnInterval: 0.45, ScoreThreshold: 300},
		{Scouts: 24, Heavies: 5, Bombers: 4, Drones: 4, SpawnInterval: 0.40, ScoreThreshold: 500},
		{Scouts: 28, Heavies: 6, Bombers: 5, Drones: 5, SpawnInterval: 0.35, ScoreThreshold: 750},
		{Scouts: 32, Heavies: 8, Bombers: 6, Drones: 6, SpawnInterval: 0.30, ScoreThreshold: 1000},
	}
}
