package audio

import (
	"time"

	"github.com/lixenwraith/void-raider/parameter"
)

// Config holds engine settings
type Config struct {
	Enabled      bool
	Muted        bool
	SampleRate   int
	QueueSize    int
	Buffer       time.Duration
	MasterVolume float64
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		QueueSize:    parameter.AudioQueueSize,
		Buffer:       parameter.AudioBufferDuration,
		MasterVolume: parameter.AudioMasterVolume,
	}
}

// normalized fills zero fields from the defaults and clamps the volume
func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.SampleRate <= 0 {
		c.SampleRate = d.SampleRate
	}
	if c.QueueSize <= 0 {
		c.QueueSize = d.QueueSize
	}
	if c.Buffer <= 0 {
		c.Buffer = d.Buffer
	}
	c.MasterVolume = min(max(c.MasterVolume, 0), 1)
	return c
}
