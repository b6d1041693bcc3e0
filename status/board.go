package status

import "sync/atomic"

// Metric keys published by the game
const (
	KeyScore     = "game.score"
	KeyWave      = "game.wave"
	KeyKills     = "game.kills"
	KeyEnemies   = "game.enemies"
	KeyHealth    = "player.health"
	KeyHealthMax = "player.health_max"
	KeyCharge    = "player.charge"
	KeyChargeMax = "player.charge_max"
	KeyAlive     = "player.alive"
	KeyPhase     = "game.phase"
	KeyMatch     = "game.match"
	KeyMuted     = "audio.muted"
	KeyFrame     = "engine.frame"
)

// Board is a typed view over the registry for HUD values
// Written by the simulation thread, readable lock-free from any goroutine
type Board struct {
	Score     *atomic.Int64
	Wave      *atomic.Int64
	Kills     *atomic.Int64
	Enemies   *atomic.Int64
	Health    *atomic.Int64
	HealthMax *atomic.Int64
	Charge    *AtomicFloat
	ChargeMax *AtomicFloat
	Alive     *atomic.Bool
	Muted     *atomic.Bool
	Phase     *AtomicString
	Match     *AtomicString
	Frame     *atomic.Int64
}

// NewBoard caches metric pointers from r
func NewBoard(r *Registry) *Board {
	return &Board{
		Score:     r.Ints.Get(KeyScore),
		Wave:      r.Ints.Get(KeyWave),
		Kills:     r.Ints.Get(KeyKills),
		Enemies:   r.Ints.Get(KeyEnemies),
		Health:    r.Ints.Get(KeyHealth),
		HealthMax: r.Ints.Get(KeyHealthMax),
		Charge:    r.Floats.Get(KeyCharge),
		ChargeMax: r.Floats.Get(KeyChargeMax),
		Alive:     r.Bools.Get(KeyAlive),
		Muted:     r.Bools.Get(KeyMuted),
		Phase:     r.Strings.Get(KeyPhase),
		Match:     r.Strings.Get(KeyMatch),
		Frame:     r.Ints.Get(KeyFrame),
	}
}
