package audio

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/void-raider/core"
	"github.com/lixenwraith/void-raider/vmath"
)

const instrumentationName = "github.com/lixenwraith/void-raider/audio"

var (
	ErrDeviceUnavailable = errors.New("audio device unavailable")
	ErrEngineRunning     = errors.New("audio engine already running")
)

// Stats is a snapshot of engine counters
type Stats struct {
	Played    uint64 // Buffers handed to the device
	Dropped   uint64 // Rejected because the queue was full
	Discarded uint64 // Accepted while muted or silent, or failed at the device
}

type engineMetrics struct {
	played    metric.Int64Counter
	dropped   metric.Int64Counter
	discarded metric.Int64Counter
}

func newEngineMetrics(meter metric.Meter) (*engineMetrics, error) {
	m := &engineMetrics{}
	var err error

	if m.played, err = meter.Int64Counter(
		"audio.sounds.played",
		metric.WithDescription("Sound buffers sent to the output device"),
	); err != nil {
		return nil, fmt.Errorf("creating played counter: %w", err)
	}
	if m.dropped, err = meter.Int64Counter(
		"audio.sounds.dropped",
		metric.WithDescription("Sound requests dropped on a full queue"),
	); err != nil {
		return nil, fmt.Errorf("creating dropped counter: %w", err)
	}
	if m.discarded, err = meter.Int64Counter(
		"audio.sounds.discarded",
		metric.WithDescription("Sound requests accepted without playback"),
	); err != nil {
		return nil, fmt.Errorf("creating discarded counter: %w", err)
	}
	return m, nil
}

// Engine synthesizes sound requests and plays them on a dedicated worker
// Play never blocks; the worker is the only goroutine touching the device
type Engine struct {
	cfg     Config
	device  Device
	log     zerolog.Logger
	metrics *engineMetrics

	queue chan PCM
	stop  chan struct{}
	done  chan struct{}

	rngMu sync.Mutex
	rng   *vmath.FastRand

	running atomic.Bool
	muted   atomic.Bool
	silent  atomic.Bool

	played    atomic.Uint64
	dropped   atomic.Uint64
	discarded atomic.Uint64
}

// EngineOptions carries the collaborators of an engine, zero fields get defaults
type EngineOptions struct {
	Device Device
	Logger zerolog.Logger
	Meter  metric.Meter
	Seed   uint64
}

// NewEngine creates a stopped engine
func NewEngine(cfg Config, opts EngineOptions) (*Engine, error) {
	cfg = cfg.normalized()

	if opts.Device == nil {
		opts.Device = NewSpeakerDevice()
	}
	if opts.Meter == nil {
		opts.Meter = otel.Meter(instrumentationName)
	}
	m, err := newEngineMetrics(opts.Meter)
	if err != nil {
		return nil, fmt.Errorf("audio metrics: %w", err)
	}

	e := &Engine{
		cfg:     cfg,
		device:  opts.Device,
		log:     opts.Logger.With().Str("component", "audio").Logger(),
		metrics: m,
		queue:   make(chan PCM, cfg.QueueSize),
		rng:     vmath.NewFastRand(opts.Seed),
	}
	e.muted.Store(cfg.Muted)
	return e, nil
}

// Start opens the device and launches the worker
// A device that fails to open leaves the engine running in silent mode
func (e *Engine) Start() error {
	if !e.running.CompareAndSwap(false, true) {
		return ErrEngineRunning
	}

	if !e.cfg.Enabled {
		e.silent.Store(true)
		e.log.Info().Msg("audio disabled, running silent")
		return nil
	}

	if err := e.device.Open(e.cfg.SampleRate, e.cfg.Buffer); err != nil {
		e.silent.Store(true)
		e.log.Warn().Err(err).Msg("audio device unavailable, running silent")
		return nil
	}

	e.silent.Store(false)
	e.stop = make(chan struct{})
	e.done = make(chan struct{})
	core.Go(e.worker)

	e.log.Debug().Int("rate", e.cfg.SampleRate).Int("queue", e.cfg.QueueSize).Msg("audio started")
	return nil
}

func (e *Engine) worker() {
	defer close(e.done)
	for {
		select {
		case <-e.stop:
			return
		case pcm := <-e.queue:
			if err := e.device.Play(pcm, e.cfg.MasterVolume); err != nil {
				e.count(&e.discarded, e.metrics.discarded)
				e.log.Debug().Err(err).Msg("playback failed")
				continue
			}
			e.count(&e.played, e.metrics.played)
		}
	}
}

// Stop halts the worker and closes the device, safe to call repeatedly
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}
	if e.silent.Load() {
		return
	}

	close(e.stop)
	<-e.done
	if err := e.device.Close(); err != nil {
		e.log.Warn().Err(err).Msg("closing audio device")
	}
	e.drain()
}

// drain discards buffers left in the queue after the worker exits
func (e *Engine) drain() {
	for {
		select {
		case <-e.queue:
			e.count(&e.discarded, e.metrics.discarded)
		default:
			return
		}
	}
}

// Play synthesizes req and queues it for playback
// Returns false when the engine is stopped or the queue is full
func (e *Engine) Play(req core.SoundRequest) bool {
	if !e.running.Load() {
		return false
	}
	if e.muted.Load() || e.silent.Load() {
		e.count(&e.discarded, e.metrics.discarded)
		return true
	}

	e.rngMu.Lock()
	pcm := Synthesize(req, e.cfg.SampleRate, e.rng)
	e.rngMu.Unlock()

	select {
	case e.queue <- pcm:
		return true
	default:
		e.count(&e.dropped, e.metrics.dropped)
		return false
	}
}

func (e *Engine) count(n *atomic.Uint64, c metric.Int64Counter) {
	n.Add(1)
	c.Add(context.Background(), 1)
}

// SetMuted toggles discarding of new requests
func (e *Engine) SetMuted(muted bool) { e.muted.Store(muted) }

func (e *Engine) IsMuted() bool { return e.muted.Load() }

// IsRunning reports whether Start succeeded, silent mode included
func (e *Engine) IsRunning() bool { return e.running.Load() }

// IsSilent reports whether requests are being discarded for lack of a device
func (e *Engine) IsSilent() bool { return e.silent.Load() }

// Stats returns the current counters
func (e *Engine) Stats() Stats {
	return Stats{
		Played:    e.played.Load(),
		Dropped:   e.dropped.Load(),
		Discarded: e.discarded.Load(),
	}
}
