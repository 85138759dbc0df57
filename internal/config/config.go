// Package config handles landscape configuration loading and management.
package config

import (
	"fmt"

	"golang.org/x/image/colornames"

	"github.com/Faultbox/fractal-landscape/internal/logger"
	"github.com/Faultbox/fractal-landscape/internal/terrain"
)

// Config holds all landscape settings.
type Config struct {
	Terrain  TerrainConfig  `yaml:"terrain"`
	Lighting LightingConfig `yaml:"lighting"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// TerrainConfig holds generation and meshing settings.
type TerrainConfig struct {
	Depth         int     `yaml:"depth"`
	Randomness    float64 `yaml:"randomness"`
	FootprintSize float64 `yaml:"footprint_size"`
	ReferenceSize float64 `yaml:"reference_size"`
	BaseHeight    float64 `yaml:"base_height"`
	MaxDepth      int     `yaml:"max_depth"`
	Seed          uint64  `yaml:"seed"` // 0 picks a new seed per generation
}

// LightingConfig describes the lights handed to the renderer with each terrain.
type LightingConfig struct {
	DirectionalColor string     `yaml:"directional_color"` // CSS color name
	Direction        [3]float64 `yaml:"direction"`
	AmbientColor     string     `yaml:"ambient_color"` // CSS color name
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			Depth:         terrain.DefaultDepth,
			Randomness:    terrain.DefaultRandomness,
			FootprintSize: terrain.DefaultFootprintSize,
			ReferenceSize: terrain.DefaultReferenceSize,
			BaseHeight:    0,
			MaxDepth:      10,
			Seed:          0,
		},
		Lighting: LightingConfig{
			DirectionalColor: "white",
			Direction:        [3]float64{-1, -1, -1},
			AmbientColor:     "gray",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Parameters returns the terrain parameters described by the config.
func (c TerrainConfig) Parameters() terrain.Parameters {
	return terrain.Parameters{
		Depth:         c.Depth,
		Randomness:    c.Randomness,
		FootprintSize: c.FootprintSize,
		ReferenceSize: c.ReferenceSize,
		BaseHeight:    c.BaseHeight,
		MaxDepth:      c.MaxDepth,
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if err := c.Terrain.Parameters().Validate(); err != nil {
		return fmt.Errorf("terrain: %w", err)
	}
	if _, ok := colornames.Map[c.Lighting.DirectionalColor]; !ok {
		return fmt.Errorf("lighting: unknown directional color %q", c.Lighting.DirectionalColor)
	}
	if _, ok := colornames.Map[c.Lighting.AmbientColor]; !ok {
		return fmt.Errorf("lighting: unknown ambient color %q", c.Lighting.AmbientColor)
	}
	if c.Lighting.Direction == [3]float64{} {
		return fmt.Errorf("lighting: direction must be non-zero")
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}
