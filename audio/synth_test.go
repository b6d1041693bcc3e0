package audio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/lixenwraith/void-raider/core"
	"github.com/lixenwraith/void-raider/parameter"
	"github.com/lixenwraith/void-raider/vmath"
)

const testRate = 8000

// TestToneEnvelope checks every square sample sits on vol·exp(-d·i/rate)
func TestToneEnvelope(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		freq := rapid.Float64Range(50, 2000).Draw(t, "freq")
		vol := rapid.Float64Range(0.01, 1).Draw(t, "vol")
		decay := rapid.Float64Range(0, 100).Draw(t, "decay")

		pcm := Tone(freq, 0.05, vol, decay, WaveSquare, testRate)
		if pcm.Len() != sampleCount(0.05, testRate) {
			t.Fatalf("length %d", pcm.Len())
		}
		for i, s := range pcm.Samples {
			want := vol * math.Exp(-decay*float64(i)/testRate)
			if math.Abs(math.Abs(s)-want) > 1e-9 {
				t.Fatalf("sample %d: |%v| != %v", i, s, want)
			}
		}
	})
}

// TestToneNoDecayIsConstant keeps the envelope flat when decay is zero
func TestToneNoDecayIsConstant(t *testing.T) {
	pcm := Tone(440, 0.02, 0.5, 0, WaveSquare, testRate)
	require.NotZero(t, pcm.Len())
	for _, s := range pcm.Samples {
		assert.Equal(t, 0.5, math.Abs(s))
	}

	sine := Tone(440, 0.02, 0.5, 0, WaveSine, testRate)
	for i, s := range sine.Samples {
		assert.InDelta(t, 0.5*math.Sin(2*math.Pi*440*float64(i)/testRate), s, 1e-9)
	}
}

func TestZeroDurationIsEmpty(t *testing.T) {
	assert.Zero(t, Tone(440, 0, 1, 0, WaveSine, testRate).Len())
	assert.Zero(t, Glissando(100, 200, -1, 1, testRate).Len())
	assert.Zero(t, Noise(0, 1, 1, testRate, vmath.NewFastRand(1)).Len())
}

// TestGlissandoFadesToZero ends the sweep silent and never exceeds the volume
func TestGlissandoFadesToZero(t *testing.T) {
	pcm := Glissando(500, 2200, 0.18, 0.22, testRate)
	require.Equal(t, sampleCount(0.18, testRate), pcm.Len())
	assert.Equal(t, 0.0, pcm.Samples[pcm.Len()-1])
	for i, s := range pcm.Samples {
		limit := 0.22 * (1 - float64(i)/float64(pcm.Len()-1))
		assert.LessOrEqual(t, math.Abs(s), limit+1e-12)
	}
}

// TestNoiseInRange stays inside the decaying envelope
func TestNoiseInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64Min(1).Draw(t, "seed")
		decay := rapid.Float64Range(0, 50).Draw(t, "decay")
		pcm := Noise(0.03, 0.3, decay, testRate, vmath.NewFastRand(seed))
		for i, s := range pcm.Samples {
			if math.Abs(s) > 0.3*envelope(decay, i, testRate)+1e-12 {
				t.Fatalf("sample %d out of envelope: %v", i, s)
			}
		}
	})
}

// TestMixClamps sums voices and clips to unit range
func TestMixClamps(t *testing.T) {
	a := PCM{Rate: testRate, Samples: []float64{0.6, -0.6, 0.2}}
	b := PCM{Rate: testRate, Samples: []float64{0.6, -0.6}}
	m := Mix(a, b)
	assert.Equal(t, testRate, m.Rate)
	assert.Equal(t, []float64{1, -1, 0.2}, m.Samples)

	assert.Zero(t, Mix().Len())
}

func TestSpecialChordStaysInRange(t *testing.T) {
	pcm := Synthesize(core.SoundRequest{Type: core.SoundSpecial}, testRate, vmath.NewFastRand(1))
	require.Equal(t, sampleCount(parameter.SpecialDuration, testRate), pcm.Len())
	for _, s := range pcm.Samples {
		assert.LessOrEqual(t, math.Abs(s), 1.0)
	}
}

// TestSynthesizeLengths maps each request type onto its duration
func TestSynthesizeLengths(t *testing.T) {
	rng := vmath.NewFastRand(3)
	cases := []struct {
		req  core.SoundRequest
		want float64
	}{
		{core.SoundRequest{Type: core.SoundShoot, Pitch: 1.2}, parameter.ShootDuration},
		{core.SoundRequest{Type: core.SoundShoot}, parameter.ShootDuration},
		{core.SoundRequest{Type: core.SoundHit}, parameter.HitDuration},
		{core.SoundRequest{Type: core.SoundExplosion}, parameter.ExplosionDuration},
		{core.SoundRequest{Type: core.SoundLaserSweep, FreqStart: 500, FreqEnd: 1200, Duration: 0.18}, 0.18},
		{core.SoundRequest{Type: core.SoundTone}, parameter.ToneDuration},
		{core.SoundRequest{Type: core.SoundTone, Frequency: 660, Duration: 0.3}, 0.3},
	}
	for _, tc := range cases {
		t.Run(tc.req.Type.String(), func(t *testing.T) {
			pcm := Synthesize(tc.req, testRate, rng)
			assert.Equal(t, sampleCount(tc.want, testRate), pcm.Len())
			assert.Equal(t, testRate, pcm.Rate)
		})
	}

	assert.Zero(t, Synthesize(core.SoundRequest{Type: core.SoundTypeCount}, testRate, rng).Len())
}

// TestStreamerDuplicatesChannels feeds mono samples to both stereo channels
func TestStreamerDuplicatesChannels(t *testing.T) {
	pcm := PCM{Rate: testRate, Samples: []float64{0.1, 0.2, 0.3}}
	s := pcm.Streamer()

	buf := make([][2]float64, 2)
	n, ok := s.Stream(buf)
	assert.Equal(t, 2, n)
	assert.True(t, ok)
	assert.Equal(t, [2]float64{0.2, 0.2}, buf[1])

	n, ok = s.Stream(buf)
	assert.Equal(t, 1, n)
	assert.True(t, ok)
	assert.Equal(t, [2]float64{0.3, 0.3}, buf[0])

	n, ok = s.Stream(buf)
	assert.Zero(t, n)
	assert.False(t, ok)
	assert.NoError(t, s.Err())
}

func TestNewVolume(t *testing.T) {
	pcm := PCM{Rate: testRate, Samples: []float64{0.8}}
	buf := make([][2]float64, 1)

	half := newVolume(pcm.Streamer(), 0.5)
	half.Stream(buf)
	assert.InDelta(t, 0.4, buf[0][0], 1e-9)

	silent := newVolume(pcm.Streamer(), 0)
	silent.Stream(buf)
	assert.Zero(t, buf[0][0])
}
