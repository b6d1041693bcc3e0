package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/void-raider/vmath"
)

// Waveform selects the oscillator shape of a tone
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
)

// PCM is a mono buffer of samples in [-1, 1] at Rate samples per second
type PCM struct {
	Rate    int
	Samples []float64
}

// Len returns the sample count
func (p PCM) Len() int { return len(p.Samples) }

// Duration returns the playback length
func (p PCM) Duration() time.Duration {
	if p.Rate <= 0 {
		return 0
	}
	return time.Duration(len(p.Samples)) * time.Second / time.Duration(p.Rate)
}

// sampleCount converts seconds to a whole number of samples
func sampleCount(seconds float64, rate int) int {
	if seconds <= 0 || rate <= 0 {
		return 0
	}
	return int(seconds * float64(rate))
}

// envelope returns the exponential decay gain at sample i, decay <= 0 is constant
func envelope(decay float64, i, rate int) float64 {
	if decay <= 0 {
		return 1
	}
	return math.Exp(-decay * float64(i) / float64(rate))
}

// Tone samples a fixed-frequency oscillator shaped by exp(-decay·t)
func Tone(freq, seconds, volume, decay float64, wave Waveform, rate int) PCM {
	n := sampleCount(seconds, rate)
	buf := make([]float64, n)
	step := 2 * math.Pi * freq / float64(rate)

	for i := 0; i < n; i++ {
		s := math.Sin(step * float64(i))
		if wave == WaveSquare {
			if s >= 0 {
				s = 1
			} else {
				s = -1
			}
		}
		buf[i] = s * volume * envelope(decay, i, rate)
	}
	return PCM{Rate: rate, Samples: buf}
}

// Glissando sweeps a sine linearly from startFreq to endFreq
// Phase is accumulated per sample so the sweep stays continuous; the gain fades linearly to zero
func Glissando(startFreq, endFreq, seconds, volume float64, rate int) PCM {
	n := sampleCount(seconds, rate)
	buf := make([]float64, n)
	if n == 0 {
		return PCM{Rate: rate, Samples: buf}
	}

	last := float64(n - 1)
	if last == 0 {
		last = 1
	}
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / last
		freq := startFreq + (endFreq-startFreq)*t
		buf[i] = math.Sin(phase) * volume * (1 - t)
		phase += 2 * math.Pi * freq / float64(rate)
		if phase > 2*math.Pi {
			phase -= 2 * math.Pi
		}
	}
	return PCM{Rate: rate, Samples: buf}
}

// Noise fills uniform random samples in [-1, 1) shaped by exp(-decay·t)
func Noise(seconds, volume, decay float64, rate int, rng *vmath.FastRand) PCM {
	n := sampleCount(seconds, rate)
	buf := make([]float64, n)
	for i := 0; i < n; i++ {
		buf[i] = rng.Signed() * volume * envelope(decay, i, rate)
	}
	return PCM{Rate: rate, Samples: buf}
}

// Mix sums buffers sample-wise and hard-clamps to [-1, 1]
// The result is as long as the longest input and takes the first input's rate
func Mix(parts ...PCM) PCM {
	if len(parts) == 0 {
		return PCM{}
	}

	n := 0
	for _, p := range parts {
		n = max(n, len(p.Samples))
	}
	buf := make([]float64, n)
	for _, p := range parts {
		for i, s := range p.Samples {
			buf[i] += s
		}
	}
	for i := range buf {
		buf[i] = vmath.Clamp(buf[i], -1, 1)
	}
	return PCM{Rate: parts[0].Rate, Samples: buf}
}

// Streamer adapts the buffer to a stereo beep stream
func (p PCM) Streamer() beep.Streamer {
	return &pcmStreamer{samples: p.Samples}
}

type pcmStreamer struct {
	samples []float64
	pos     int
}

func (s *pcmStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= len(s.samples) {
			return i, i > 0
		}
		v := s.samples[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *pcmStreamer) Err() error { return nil }

// newVolume wraps a streamer with a linear gain, 0 or below is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
