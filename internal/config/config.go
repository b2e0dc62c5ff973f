// Package config loads and saves the yaml run configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"glowgrid/internal/engine"
	"glowgrid/internal/grid"
	"glowgrid/internal/mode"
	"glowgrid/internal/palette"
)

const (
	DefaultWidth  = 16
	DefaultHeight = 16
	DefaultFPS    = 60
	MaxDim        = 64
)

type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Layout string `yaml:"layout"`
	FPS    int    `yaml:"fps"`

	Mode    string `yaml:"mode"`
	Palette string `yaml:"palette"`
	Blend   string `yaml:"blend"`

	// TextRepeat is how many times plain input text scrolls by.
	TextRepeat int `yaml:"text_repeat"`
	// LifeReseedAfter is the Game of Life stagnation grace period in
	// generations; 0 disables reseeding.
	LifeReseedAfter int `yaml:"life_reseed_after"`

	// Intervals overrides per-mode frame intervals, in milliseconds.
	Intervals map[string]int `yaml:"intervals"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		Layout:          "serpentine",
		FPS:             DefaultFPS,
		Mode:            "rain",
		Palette:         "rainbow",
		Blend:           "linear",
		TextRepeat:      3,
		LifeReseedAfter: 8,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Width < 1 || c.Width > MaxDim || c.Height < 1 || c.Height > MaxDim {
		return fmt.Errorf("matrix size %dx%d out of range 1..%d", c.Width, c.Height, MaxDim)
	}
	if c.FPS < 1 || c.FPS > 120 {
		return fmt.Errorf("fps %d out of range 1..120", c.FPS)
	}
	if _, err := grid.ParseLayout(c.Layout); err != nil {
		return err
	}
	if _, err := palette.ByName(c.Palette); err != nil {
		return err
	}
	if c.Mode != "" && !validMode(c.Mode) {
		return fmt.Errorf("unknown mode: %s", c.Mode)
	}
	if _, err := palette.ParseBlend(c.Blend); err != nil {
		return err
	}
	if c.TextRepeat < 0 || c.TextRepeat > 255 {
		return fmt.Errorf("text_repeat %d out of range 0..255", c.TextRepeat)
	}
	if c.LifeReseedAfter < 0 {
		return fmt.Errorf("life_reseed_after must be >= 0")
	}
	return nil
}

func validMode(name string) bool {
	for _, n := range mode.NewRegistry().Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Grid builds the matrix geometry. Validate first.
func (c *Config) Grid() grid.Grid {
	layout, _ := grid.ParseLayout(c.Layout)
	return grid.New(c.Width, c.Height, layout)
}

// EngineOptions translates the file form into engine knobs. Validate first.
func (c *Config) EngineOptions() engine.Options {
	pal, _ := palette.ByName(c.Palette)
	blend, _ := palette.ParseBlend(c.Blend)

	var intervals map[string]time.Duration
	if len(c.Intervals) > 0 {
		intervals = make(map[string]time.Duration, len(c.Intervals))
		for name, ms := range c.Intervals {
			intervals[name] = time.Duration(ms) * time.Millisecond
		}
	}

	reseed := c.LifeReseedAfter
	if reseed == 0 {
		reseed = -1 // engine: negative disables
	}

	return engine.Options{
		Mode:            c.Mode,
		Palette:         pal,
		Blend:           blend,
		TextRepeat:      uint8(c.TextRepeat),
		LifeReseedAfter: reseed,
		Intervals:       intervals,
	}
}
