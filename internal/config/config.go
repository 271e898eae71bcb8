// Package config handles generator configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/Faultbox/ridgeline/internal/noise"
)

// Validation errors.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config holds all generator settings.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Noise   NoiseConfig   `yaml:"noise"`
	Track   TrackConfig   `yaml:"track"`
	Road    RoadConfig    `yaml:"road"`
	Mesh    MeshConfig    `yaml:"mesh"`
	Logging LoggingConfig `yaml:"logging"`
}

// TerrainConfig holds the height grid settings.
type TerrainConfig struct {
	Size  int     `yaml:"size"`  // cells per side
	Scale float32 `yaml:"scale"` // world units per cell
	Seed  uint32  `yaml:"seed"`
}

// NoiseConfig holds the height function settings.
type NoiseConfig struct {
	Algorithm string         `yaml:"algorithm"` // simplex or perlin
	Detail    int            `yaml:"detail"`
	Octaves   []OctaveConfig `yaml:"octaves"`
}

// OctaveConfig is one noise layer.
type OctaveConfig struct {
	SeedOffset uint32  `yaml:"seed_offset"`
	Divisor    float64 `yaml:"divisor"`
	Amplitude  float64 `yaml:"amplitude"`
}

// TrackConfig holds the random walk settings.
type TrackConfig struct {
	Steps      int     `yaml:"steps"`
	StepLength float32 `yaml:"step_length"`
	// AutoStart begins the walk on the start line one unit inside the +Z
	// edge. When false StartX/StartZ are used.
	AutoStart       bool    `yaml:"auto_start"`
	StartX          float32 `yaml:"start_x"`
	StartZ          float32 `yaml:"start_z"`
	CheckpointEvery int     `yaml:"checkpoint_every"`
}

// RoadConfig holds carving settings.
type RoadConfig struct {
	Radius int `yaml:"radius"` // half-width in cells
}

// MeshConfig holds geometry settings.
type MeshConfig struct {
	SmoothNormals bool `yaml:"smooth_normals"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	octaves := noise.DefaultOctaves()
	oc := make([]OctaveConfig, len(octaves))
	for i, o := range octaves {
		oc[i] = OctaveConfig{SeedOffset: o.SeedOffset, Divisor: o.Divisor, Amplitude: o.Amplitude}
	}

	return &Config{
		Terrain: TerrainConfig{
			Size:  430,
			Scale: 1.0,
			Seed:  1,
		},
		Noise: NoiseConfig{
			Algorithm: string(noise.Simplex),
			Detail:    noise.DefaultDetail,
			Octaves:   oc,
		},
		Track: TrackConfig{
			Steps:           50,
			StepLength:      4,
			AutoStart:       true,
			CheckpointEvery: 5,
		},
		Road: RoadConfig{
			Radius: 3,
		},
		Mesh: MeshConfig{
			SmoothNormals: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// NoiseSettings converts the noise section for noise.NewField.
func (c *Config) NoiseSettings() noise.Settings {
	octaves := make([]noise.Octave, len(c.Noise.Octaves))
	for i, o := range c.Noise.Octaves {
		octaves[i] = noise.Octave{SeedOffset: o.SeedOffset, Divisor: o.Divisor, Amplitude: o.Amplitude}
	}
	return noise.Settings{
		Algorithm: noise.Algorithm(c.Noise.Algorithm),
		Detail:    c.Noise.Detail,
		Octaves:   octaves,
	}
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if c.Terrain.Size <= 0 {
		return fmt.Errorf("%w: terrain.size must be positive, got %d", ErrInvalidConfig, c.Terrain.Size)
	}
	if s := float64(c.Terrain.Scale); !(s > 0) || math.IsInf(s, 0) {
		return fmt.Errorf("%w: terrain.scale must be a finite positive number, got %v", ErrInvalidConfig, c.Terrain.Scale)
	}
	if err := c.NoiseSettings().Validate(); err != nil {
		return fmt.Errorf("%w: noise: %w", ErrInvalidConfig, err)
	}
	if c.Track.Steps < 0 {
		return fmt.Errorf("%w: track.steps must not be negative, got %d", ErrInvalidConfig, c.Track.Steps)
	}
	if l := float64(c.Track.StepLength); !(l > 0) || math.IsInf(l, 0) {
		return fmt.Errorf("%w: track.step_length must be a finite positive number, got %v", ErrInvalidConfig, c.Track.StepLength)
	}
	if c.Track.CheckpointEvery < 0 {
		return fmt.Errorf("%w: track.checkpoint_every must not be negative, got %d", ErrInvalidConfig, c.Track.CheckpointEvery)
	}
	if c.Road.Radius < 0 {
		return fmt.Errorf("%w: road.radius must not be negative, got %d", ErrInvalidConfig, c.Road.Radius)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	return nil
}
