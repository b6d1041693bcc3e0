package event

// EventType represents the type of game event
type EventType int

const (
	// EventSoundRequest requests audio playback
	// Trigger: Player, Collision | Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest EventType = iota

	// EventShakeRequest pulses the camera shake
	// Trigger: Player, Collision | Consumer: EffectSystem | Payload: *ShakeRequestPayload
	EventShakeRequest

	// EventEnemyDestroyed reports a kill after scoring
	// Trigger: Collision | Consumer: StatusSystem | Payload: *EnemyDestroyedPayload
	EventEnemyDestroyed

	// EventPlayerDamaged reports damage taken by the player
	// Trigger: Collision | Consumer: StatusSystem | Payload: *PlayerDamagedPayload
	EventPlayerDamaged

	// EventPlayerDestroyed reports the player's removal
	// Trigger: Collision | Consumer: Game | Payload: nil
	EventPlayerDestroyed

	// EventWaveAdvanced reports a wave transition
	// Trigger: Spawn | Consumer: StatusSystem | Payload: *WaveAdvancedPayload
	EventWaveAdvanced

	// EventGameOver reports the GameOver phase transition
	// Trigger: Game | Consumer: StatusSystem | Payload: nil
	EventGameOver

	// EventGameReset resets all systems for a new match
	// Trigger: Game restart | Consumer: all systems | Payload: nil
	EventGameReset

	// EventSystemCommand enables or disables a system by name
	// Trigger: Game | Consumer: all systems | Payload: *SystemCommandPayload
	EventSystemCommand
)

var eventNames = map[EventType]string{
	EventSoundRequest:    "sound_request",
	EventShakeRequest:    "shake_request",
	EventEnemyDestroyed:  "enemy_destroyed",
	EventPlayerDamaged:   "player_damaged",
	EventPlayerDestroyed: "player_destroyed",
	EventWaveAdvanced:    "wave_advanced",
	EventGameOver:        "game_over",
	EventGameReset:       "game_reset",
	EventSystemCommand:   "system_command",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a queued event stamped with the frame that emitted it
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
