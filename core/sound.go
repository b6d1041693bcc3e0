package core

// SoundType represents the gameplay sound triggers
type SoundType int

const (
	SoundShoot      SoundType = iota // Missile launch blip, pitch scales with score
	SoundHit                         // Short noise burst on damage
	SoundExplosion                   // Longer noise burst on kill
	SoundSpecial                     // Four-voice chord for special fire
	SoundLaserSweep                  // Rising glissando for beam fire
	SoundTone                        // Generic decaying sine
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	SoundShoot:      "shoot",
	SoundHit:        "hit",
	SoundExplosion:  "explosion",
	SoundSpecial:    "special",
	SoundLaserSweep: "laser_sweep",
	SoundTone:       "tone",
}

func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// SoundRequest is a fire-and-forget audio trigger with its numeric parameters
// Unused parameters are ignored by the synthesizer for that type
type SoundRequest struct {
	Type SoundType

	// Pitch multiplies the base frequency of SoundShoot, 0 is treated as 1
	Pitch float64

	// FreqStart and FreqEnd bound the SoundLaserSweep glissando
	FreqStart float64
	FreqEnd   float64

	// Frequency and Duration parameterize SoundTone
	Frequency float64
	Duration  float64
}
