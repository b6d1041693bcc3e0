package engine

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/void-raider/core"
	"github.com/lixenwraith/void-raider/parameter"
	"github.com/lixenwraith/void-raider/status"
	"github.com/lixenwraith/void-raider/visual"
	"github.com/lixenwraith/void-raider/vmath"
	"github.com/lixenwraith/void-raider/wave"
)

// Resource holds singleton game resources, accessed via World.Resources
type Resource struct {
	Time   *TimeResource
	Config *ConfigResource
	State  *GameStateResource
	Input  *InputResource
	Camera *CameraResource

	// Outbound collaborators
	Visual *VisualResource
	Audio  *AudioResource

	// Telemetry
	Status  *status.Registry
	Metrics *MetricsResource
	Log     zerolog.Logger

	// Rand is the simulation's random source, reseeded on restart
	Rand *vmath.FastRand
}

func newResource() Resource {
	return Resource{
		Time:    &TimeResource{},
		Config:  newConfigResource(),
		State:   &GameStateResource{},
		Input:   &InputResource{},
		Camera:  &CameraResource{},
		Visual:  &VisualResource{Sink: visual.NopSink{}},
		Audio:   &AudioResource{},
		Status:  status.NewRegistry(),
		Metrics: newMetricsResource(),
		Log:     zerolog.Nop(),
		Rand:    vmath.NewFastRand(1),
	}
}

// TimeResource wraps time data for systems
// Updated by Game at the start of every Running tick
type TimeResource struct {
	// DeltaTime is the clamped duration of this tick
	DeltaTime time.Duration

	// Dt is DeltaTime in seconds
	Dt float64

	// Elapsed is simulation seconds since match start
	Elapsed float64

	// FrameNumber counts Running ticks since match start
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
func (tr *TimeResource) Update(dt time.Duration) {
	tr.DeltaTime = dt
	tr.Dt = dt.Seconds()
	tr.Elapsed += tr.Dt
	tr.FrameNumber++
}

// ConfigResource holds match configuration and the current viewport
type ConfigResource struct {
	// Viewport is the visible world size in pixels, centered on the origin
	Viewport vmath.Vec2
	Seed     uint64

	// Waves is the spawn schedule, BurstSpawn scales spawns per interval with the wave index
	Waves      []wave.Config
	BurstSpawn bool
}

func newConfigResource() *ConfigResource {
	return &ConfigResource{
		Viewport:   vmath.V2(parameter.ScreenWidth, parameter.ScreenHeight),
		Seed:       1,
		Waves:      wave.DefaultTable(),
		BurstSpawn: true,
	}
}

// HalfViewport returns half the viewport size
func (c *ConfigResource) HalfViewport() vmath.Vec2 {
	return vmath.V2Scale(c.Viewport, 0.5)
}

// GameStateResource is the match-level mutable state
type GameStateResource struct {
	Score int
	Wave  int
	Kills int
	Muted bool
	Phase core.GamePhase
}

// InputResource is the sampled control input for the current tick
type InputResource struct {
	Cursor        vmath.Vec2
	FirePrimary   bool
	FireSecondary bool
}

// CameraResource holds the screen shake pulse
type CameraResource struct {
	Intensity float64
	Frames    int
	Offset    vmath.Vec2
}

// Pulse starts a shake, a weaker pulse never cuts a stronger or longer one short
func (c *CameraResource) Pulse(intensity float64, frames int) {
	c.Intensity = max(c.Intensity, intensity)
	c.Frames = max(c.Frames, frames)
}

// Reset stops all shake
func (c *CameraResource) Reset() {
	*c = CameraResource{}
}

// VisualResource routes spawn requests to the renderer
type VisualResource struct {
	Sink visual.Sink
}

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(req core.SoundRequest) bool
	SetMuted(muted bool)
	IsMuted() bool
	IsRunning() bool
}

// AudioResource bridges the audio engine into the world, Player may be nil
type AudioResource struct {
	Player AudioPlayer
}
