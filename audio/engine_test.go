package audio

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/lixenwraith/void-raider/core"
)

// fakeDevice records buffers, optionally blocking playback until released
type fakeDevice struct {
	mu      sync.Mutex
	played  []PCM
	volumes []float64
	openErr error
	gate    chan struct{}
	opened  bool
	closed  bool
}

func (d *fakeDevice) Open(int, time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.openErr != nil {
		return d.openErr
	}
	d.opened = true
	return nil
}

func (d *fakeDevice) Play(pcm PCM, volume float64) error {
	if d.gate != nil {
		<-d.gate
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.played = append(d.played, pcm)
	d.volumes = append(d.volumes, volume)
	return nil
}

func (d *fakeDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}

func (d *fakeDevice) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.played)
}

func newTestEngine(t *testing.T, cfg Config, dev Device) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, EngineOptions{
		Device: dev,
		Logger: zerolog.Nop(),
		Meter:  noop.NewMeterProvider().Meter("test"),
		Seed:   1,
	})
	require.NoError(t, err)
	t.Cleanup(e.Stop)
	return e
}

func tone(seconds float64) core.SoundRequest {
	return core.SoundRequest{Type: core.SoundTone, Frequency: 440, Duration: seconds}
}

// TestEnginePlaysInOrder delivers buffers to the device in request order
func TestEnginePlaysInOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleRate = 1000
	cfg.MasterVolume = 0.7
	dev := &fakeDevice{}
	e := newTestEngine(t, cfg, dev)
	require.NoError(t, e.Start())
	assert.True(t, e.IsRunning())
	assert.False(t, e.IsSilent())

	for i := 1; i <= 5; i++ {
		require.True(t, e.Play(tone(float64(i)/100)))
	}
	require.Eventually(t, func() bool { return dev.count() == 5 }, time.Second, time.Millisecond)

	dev.mu.Lock()
	for i, pcm := range dev.played {
		assert.Equal(t, (i+1)*10, pcm.Len())
		assert.Equal(t, 0.7, dev.volumes[i])
	}
	dev.mu.Unlock()
	assert.Equal(t, uint64(5), e.Stats().Played)

	e.Stop()
	assert.False(t, e.IsRunning())
	assert.True(t, dev.closed)
	assert.False(t, e.Play(tone(0.01)), "stopped engine rejects requests")

	e.Stop()
}

// TestEngineDropsOnFullQueue never blocks the caller when the worker stalls
func TestEngineDropsOnFullQueue(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleRate = 1000
	cfg.QueueSize = 2
	dev := &fakeDevice{gate: make(chan struct{})}
	e := newTestEngine(t, cfg, dev)
	require.NoError(t, e.Start())

	accepted := 0
	start := time.Now()
	for i := 0; i < 10; i++ {
		if e.Play(tone(0.01)) {
			accepted++
		}
	}
	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.LessOrEqual(t, accepted, 3)
	assert.GreaterOrEqual(t, accepted, 2)
	assert.Equal(t, uint64(10-accepted), e.Stats().Dropped)

	close(dev.gate)
	require.Eventually(t, func() bool { return dev.count() == accepted }, time.Second, time.Millisecond)
}

// TestEngineSilentWhenDeviceMissing accepts and discards everything
func TestEngineSilentWhenDeviceMissing(t *testing.T) {
	dev := &fakeDevice{openErr: ErrDeviceUnavailable}
	e := newTestEngine(t, DefaultConfig(), dev)
	require.NoError(t, e.Start())

	assert.True(t, e.IsRunning())
	assert.True(t, e.IsSilent())
	for i := 0; i < 4; i++ {
		assert.True(t, e.Play(core.SoundRequest{Type: core.SoundExplosion}))
	}
	assert.Zero(t, dev.count())
	assert.Equal(t, Stats{Discarded: 4}, e.Stats())

	e.Stop()
	assert.False(t, dev.closed, "an unopened device is never closed")
}

func TestEngineDisabledRunsSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	dev := &fakeDevice{}
	e := newTestEngine(t, cfg, dev)
	require.NoError(t, e.Start())
	assert.True(t, e.IsSilent())
	assert.False(t, dev.opened)
}

func TestEngineDoubleStart(t *testing.T) {
	e := newTestEngine(t, DefaultConfig(), &fakeDevice{})
	require.NoError(t, e.Start())
	err := e.Start()
	assert.True(t, errors.Is(err, ErrEngineRunning))
}

// TestEngineMuteDiscards accepts requests without reaching the device
func TestEngineMuteDiscards(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Muted = true
	dev := &fakeDevice{}
	e := newTestEngine(t, cfg, dev)
	require.NoError(t, e.Start())
	assert.True(t, e.IsMuted())

	assert.True(t, e.Play(tone(0.01)))
	assert.Equal(t, uint64(1), e.Stats().Discarded)

	e.SetMuted(false)
	assert.True(t, e.Play(tone(0.01)))
	require.Eventually(t, func() bool { return dev.count() == 1 }, time.Second, time.Millisecond)
}

func TestConfigNormalized(t *testing.T) {
	c := Config{MasterVolume: 3}.normalized()
	d := DefaultConfig()
	assert.Equal(t, d.SampleRate, c.SampleRate)
	assert.Equal(t, d.QueueSize, c.QueueSize)
	assert.Equal(t, d.Buffer, c.Buffer)
	assert.Equal(t, 1.0, c.MasterVolume)
	assert.False(t, c.Enabled)
}
