package parameter

import "time"

// Audio engine
const (
	AudioSampleRate = 44100

	// AudioQueueSize is the playback channel capacity, overflow is dropped
	AudioQueueSize = 32

	// AudioBufferDuration sizes the device buffer
	AudioBufferDuration = 100 * time.Millisecond

	AudioMasterVolume = 1.0
)

// Sound parameterizations, durations in seconds
const (
	ShootFreq     = 800.0
	ShootDuration = 0.08
	ShootVolume   = 0.25
	ShootDecay    = 60.0

	HitDuration = 0.07
	HitVolume   = 0.2
	HitDecay    = 20.0

	ExplosionDuration = 0.25
	ExplosionVolume   = 0.28
	ExplosionDecay    = 8.0

	SpecialDuration = 0.35
	SpecialVolume   = 0.18
	SpecialDecay    = 4.0

	LaserVolume = 0.22

	ToneFreq     = 440.0
	ToneDuration = 0.1
	ToneVolume   = 0.2
	ToneDecay    = 60.0
)

// SpecialChord is the four-voice special sound, per-voice volume SpecialVolume/(i+1)
var SpecialChord = [4]float64{220, 330, 440, 660}
