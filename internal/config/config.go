// Package config holds the tool configuration: a JSON file provides the
// base settings and CLI flags override them.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	DefinitionPath string `json:"definition_path"` // species JSON, empty for built-in elephant
	TexturePath    string `json:"texture_path"`    // skin image, empty for procedural hide
	OutputDir      string `json:"output_dir"`

	// Render settings
	RenderSize  int     `json:"render_size"`
	Supersample int     `json:"supersample"`
	WebPQuality int     `json:"webp_quality"`
	Workers     int     `json:"workers"`
	CameraYaw   float64 `json:"camera_yaw_deg"`
	CameraPitch float64 `json:"camera_pitch_deg"`

	// Variant batch settings
	Seed     uint64 `json:"seed"`
	Variants int    `json:"variants"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Definition string
	Texture    string
	OutputDir  string
	Size       int
	Quality    int
	Workers    int
	Seed       uint64
	Variants   int
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve overlays CLI flags onto the config and fills remaining empty
// fields with defaults. Flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Definition != "" {
		c.DefinitionPath = flags.Definition
	}
	if flags.Texture != "" {
		c.TexturePath = flags.Texture
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Quality > 0 {
		c.WebPQuality = flags.Quality
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}
	if flags.Variants > 0 {
		c.Variants = flags.Variants
	}

	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if !filepath.IsAbs(c.OutputDir) {
		if wd, err := os.Getwd(); err == nil {
			c.OutputDir = filepath.Join(wd, c.OutputDir)
		}
	}

	if c.RenderSize <= 0 {
		c.RenderSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.WebPQuality <= 0 {
		c.WebPQuality = 90
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.CameraYaw == 0 {
		c.CameraYaw = 35
	}
	if c.CameraPitch == 0 {
		c.CameraPitch = 15
	}
	if c.Variants <= 0 {
		c.Variants = 1
	}
}
