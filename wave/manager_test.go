package wave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestManagerScoutOnlyWaveCaps(t *testing.T) {
	m := NewManager([]Config{{Scouts: 8, SpawnInterval: 0.8}}, false)

	var spawned []Archetype
	for i := 0; i < 8; i++ {
		s, _ := m.Update(0.8, 0, len(spawned))
		spawned = append(spawned, s...)
	}
	require.Len(t, spawned, 8)
	assert.Equal(t, 8, m.Spawned)
	for _, a := range spawned {
		assert.Equal(t, Scout, a)
	}

	// Additional time never spawns more
	for i := 0; i < 50; i++ {
		s, adv := m.Update(1.0, 0, 8)
		assert.Empty(t, s)
		assert.False(t, adv)
	}
	assert.Equal(t, 8, m.Spawned)
}

func TestManagerAdvanceGatedByScore(t *testing.T) {
	m := NewManager([]Config{
		{Scouts: 1, SpawnInterval: 0.5},
		{Scouts: 2, SpawnInterval: 0.5, ScoreThreshold: 50},
	}, false)

	s, _ := m.Update(0.5, 0, 0)
	require.Len(t, s, 1)

	// All dead, score below threshold
	for i := 0; i < 10; i++ {
		_, adv := m.Update(0.1, 49, 0)
		assert.False(t, adv)
	}
	assert.Equal(t, 0, m.Current)

	// Enemies alive, score met
	_, adv := m.Update(0.1, 60, 1)
	assert.False(t, adv)

	_, adv = m.Update(0.1, 50, 0)
	assert.True(t, adv)
	assert.Equal(t, 1, m.Current)
	assert.Equal(t, 0, m.Spawned)

	// Exactly one wave per call, and no advance without a spawn in the new wave
	_, adv = m.Update(0.01, 1000, 0)
	assert.False(t, adv)
	assert.Equal(t, 1, m.Current)
}

func TestManagerNoAdvancePastLastWave(t *testing.T) {
	m := NewManager([]Config{{Scouts: 1, SpawnInterval: 0.1}}, false)
	m.Update(0.1, 0, 0)
	_, adv := m.Update(0.1, 1_000_000, 0)
	assert.False(t, adv)
	assert.False(t, m.Exhausted())
}

func TestManagerExhaustedIsInert(t *testing.T) {
	m := NewManager(nil, true)
	assert.True(t, m.Exhausted())
	s, adv := m.Update(10, 10, 0)
	assert.Empty(t, s)
	assert.False(t, adv)
}

func TestManagerArchetypeOrder(t *testing.T) {
	m := NewManager([]Config{{Scouts: 2, Heavies: 1, Bombers: 0, Drones: 2, SpawnInterval: 0.1}}, false)
	var got []Archetype
	for i := 0; i < 10; i++ {
		s, _ := m.Update(0.1, 0, 1)
		got = append(got, s...)
	}
	assert.Equal(t, []Archetype{Scout, Scout, Heavy, Drone, Drone}, got)
}

func TestManagerBurstSize(t *testing.T) {
	table := []Config{
		{Scouts: 3, SpawnInterval: 1},
		{Scouts: 4, SpawnInterval: 1},
		{Scouts: 4, SpawnInterval: 1},
		{Scouts: 4, SpawnInterval: 1},
	}
	m := NewManager(table, true)
	for wave, want := range []int{1, 2, 3, 3} {
		m.Current = wave
		m.Spawned = 0
		m.Timer = 0
		s, _ := m.Update(1, 0, 1)
		assert.Len(t, s, want, "wave %d", wave)
	}

	// Burst never overshoots the wave total
	m.Current, m.Spawned, m.Timer = 3, 3, 0
	s, _ := m.Update(1, 0, 1)
	assert.Len(t, s, 1)
}

func TestManagerNeverExceedsCounts(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := Config{
			Scouts:        rapid.IntRange(0, 10).Draw(t, "scouts"),
			Heavies:       rapid.IntRange(0, 10).Draw(t, "heavies"),
			Bombers:       rapid.IntRange(0, 10).Draw(t, "bombers"),
			Drones:        rapid.IntRange(0, 10).Draw(t, "drones"),
			SpawnInterval: rapid.Float64Range(0.05, 1).Draw(t, "interval"),
		}
		m := NewManager([]Config{cfg}, rapid.Bool().Draw(t, "burst"))

		var per [ArchetypeCount]int
		steps := rapid.IntRange(1, 200).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			dt := rapid.Float64Range(0, 2).Draw(t, "dt")
			spawns, _ := m.Update(dt, 0, 1)
			for _, a := range spawns {
				per[a]++
			}
			for a := Scout; a < ArchetypeCount; a++ {
				if per[a] > cfg.Count(a) {
					t.Fatalf("%v spawned %d > configured %d", a, per[a], cfg.Count(a))
				}
			}
			if per != m.SpawnedBy() {
				t.Fatalf("derived counts %v != observed %v", m.SpawnedBy(), per)
			}
		}
	})
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(DefaultTable()))
	assert.ErrorIs(t, Validate([]Config{{Scouts: 1}}), ErrInvalidWave)
	assert.ErrorIs(t, Validate([]Config{{Scouts: -1, SpawnInterval: 1}}), ErrInvalidWave)
	assert.ErrorIs(t, Validate([]Config{
		{Scouts: 1, SpawnInterval: 1, ScoreThreshold: 10},
		{Scouts: 1, SpawnInterval: 1, ScoreThreshold: 5},
	}), ErrInvalidWave)
}

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()
	require.Len(t, table, 7)
	assert.Equal(t, Config{Scouts: 8, Heavies: 1, Drones: 1, SpawnInterval: 0.8}, table[0])
	assert.Equal(t, 1000, table[6].ScoreThreshold)
}
