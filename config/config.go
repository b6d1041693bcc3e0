package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/void-raider/audio"
	"github.com/lixenwraith/void-raider/parameter"
	"github.com/lixenwraith/void-raider/vmath"
	"github.com/lixenwraith/void-raider/wave"
)

// EnvPrefix namespaces environment overrides, e.g. VOID_RAIDER_AUDIO_MUTED
const EnvPrefix = "VOID_RAIDER"

const defaultTickRate = 60

// ScreenConfig is the world viewport in pixels
type ScreenConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// SpawnConfig tunes the spawn system
type SpawnConfig struct {
	Burst bool `mapstructure:"burst"`
}

// AudioConfig holds sound output settings
type AudioConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	Muted        bool    `mapstructure:"muted"`
	SampleRate   int     `mapstructure:"sampleRate"`
	QueueSize    int     `mapstructure:"queueSize"`
	BufferMillis int     `mapstructure:"bufferMillis"`
	MasterVolume float64 `mapstructure:"masterVolume"`
}

// Config is the complete host configuration
type Config struct {
	LogLevel string `mapstructure:"logLevel"`
	LogsDir  string `mapstructure:"logsDir"`

	// Seed 0 lets the host pick a time-based seed
	Seed     uint64 `mapstructure:"seed"`
	TickRate int    `mapstructure:"tickRate"`

	Screen ScreenConfig  `mapstructure:"screen"`
	Spawn  SpawnConfig   `mapstructure:"spawn"`
	Audio  AudioConfig   `mapstructure:"audio"`
	Waves  []wave.Config `mapstructure:"waves"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logsDir", "./logs")
	v.SetDefault("seed", 0)
	v.SetDefault("tickRate", defaultTickRate)

	v.SetDefault("screen.width", parameter.ScreenWidth)
	v.SetDefault("screen.height", parameter.ScreenHeight)

	v.SetDefault("spawn.burst", true)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.muted", false)
	v.SetDefault("audio.sampleRate", parameter.AudioSampleRate)
	v.SetDefault("audio.queueSize", parameter.AudioQueueSize)
	v.SetDefault("audio.bufferMillis", parameter.AudioBufferDuration.Milliseconds())
	v.SetDefault("audio.masterVolume", parameter.AudioMasterVolume)
}

// Load reads configuration from an optional file and the environment
// An empty path uses defaults and environment only
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if len(cfg.Waves) == 0 {
		cfg.Waves = wave.DefaultTable()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges that would break the simulation
func (c *Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("tickRate must be positive, got %d", c.TickRate)
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if err := wave.Validate(c.Waves); err != nil {
		return fmt.Errorf("config waves: %w", err)
	}
	return nil
}

// TickInterval is the fixed simulation step
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Viewport returns the screen size as a world vector
func (c *Config) Viewport() vmath.Vec2 {
	return vmath.V2(float64(c.Screen.Width), float64(c.Screen.Height))
}

// AudioEngineConfig maps the audio section onto engine settings
func (c *Config) AudioEngineConfig() audio.Config {
	return audio.Config{
		Enabled:      c.Audio.Enabled,
		Muted:        c.Audio.Muted,
		SampleRate:   c.Audio.SampleRate,
		QueueSize:    c.Audio.QueueSize,
		Buffer:       time.Duration(c.Audio.BufferMillis) * time.Millisecond,
		MasterVolume: c.Audio.MasterVolume,
	}
}
