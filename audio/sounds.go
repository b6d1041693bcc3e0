package audio

import (
	"github.com/lixenwraith/void-raider/core"
	"github.com/lixenwraith/void-raider/parameter"
	"github.com/lixenwraith/void-raider/vmath"
)

// Synthesize renders a gameplay sound request into a buffer
// Unknown types produce an empty buffer
func Synthesize(req core.SoundRequest, rate int, rng *vmath.FastRand) PCM {
	switch req.Type {
	case core.SoundShoot:
		pitch := req.Pitch
		if pitch == 0 {
			pitch = 1
		}
		return Tone(parameter.ShootFreq*pitch, parameter.ShootDuration, parameter.ShootVolume, parameter.ShootDecay, WaveSquare, rate)

	case core.SoundHit:
		return Noise(parameter.HitDuration, parameter.HitVolume, parameter.HitDecay, rate, rng)

	case core.SoundExplosion:
		return Noise(parameter.ExplosionDuration, parameter.ExplosionVolume, parameter.ExplosionDecay, rate, rng)

	case core.SoundSpecial:
		voices := make([]PCM, len(parameter.SpecialChord))
		for i, f := range parameter.SpecialChord {
			voices[i] = Tone(f, parameter.SpecialDuration, parameter.SpecialVolume/float64(i+1), parameter.SpecialDecay, WaveSine, rate)
		}
		return Mix(voices...)

	case core.SoundLaserSweep:
		dur := req.Duration
		if dur <= 0 {
			dur = parameter.LaserSweepDurationSec
		}
		return Glissando(req.FreqStart, req.FreqEnd, dur, parameter.LaserVolume, rate)

	case core.SoundTone:
		freq, dur := req.Frequency, req.Duration
		if freq <= 0 {
			freq = parameter.ToneFreq
		}
		if dur <= 0 {
			dur = parameter.ToneDuration
		}
		return Tone(freq, dur, parameter.ToneVolume, parameter.ToneDecay, WaveSine, rate)
	}
	return PCM{Rate: rate}
}
