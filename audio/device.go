package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Device is an audio output, owned by a single goroutine once opened
type Device interface {
	Open(sampleRate int, buffer time.Duration) error
	Play(pcm PCM, volume float64) error
	Close() error
}

// SpeakerDevice plays through the system output using beep's speaker
// Overlapping sounds are mixed by the speaker
type SpeakerDevice struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	opened bool
}

// NewSpeakerDevice creates an unopened speaker device
func NewSpeakerDevice() *SpeakerDevice {
	return &SpeakerDevice{}
}

func (d *SpeakerDevice) Open(sampleRate int, buffer time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.opened {
		return nil
	}
	rate := beep.SampleRate(sampleRate)
	if err := speaker.Init(rate, rate.N(buffer)); err != nil {
		return fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}
	d.rate = rate
	d.opened = true
	return nil
}

func (d *SpeakerDevice) Play(pcm PCM, volume float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.opened {
		return ErrDeviceUnavailable
	}
	var s beep.Streamer = pcm.Streamer()
	if r := beep.SampleRate(pcm.Rate); r > 0 && r != d.rate {
		s = beep.Resample(3, r, d.rate, s)
	}
	speaker.Play(newVolume(s, volume))
	return nil
}

func (d *SpeakerDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.opened {
		return nil
	}
	speaker.Clear()
	speaker.Close()
	d.opened = false
	return nil
}
