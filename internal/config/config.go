// Package config holds the theme and window settings. Everything has a
// compiled-in default; a TOML theme file is optional and only overrides
// what it names.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

type Config struct {
	Window Window `toml:"window"`
	Clock  Clock  `toml:"clock"`
	Colors Colors `toml:"colors"`
}

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type Clock struct {
	// Radius of the face in logical pixels, before display scaling.
	Radius float64 `toml:"radius"`
	// FPS overrides the variant's frame cadence when non-zero.
	FPS int `toml:"fps"`
}

// Colors are "r g b" strings with components in [0,1].
type Colors struct {
	Background string `toml:"background"`
	Face       string `toml:"face"`
	Markers    string `toml:"markers"`
	HourHand   string `toml:"hour_hand"`
	MinuteHand string `toml:"minute_hand"`
	SecondHand string `toml:"second_hand"`
	Hub        string `toml:"hub"`
}

// Default returns the built-in configuration: a 600x600 window, face
// radius 250, dark blue-gray background, gray hands and a red second hand.
func Default() Config {
	return Config{
		Window: Window{Width: 600, Height: 600, Title: "Analogue Clock"},
		Clock:  Clock{Radius: 250},
		Colors: Colors{
			Background: "0.1 0.1 0.2",
			Face:       "0.8 0.8 0.9",
			Markers:    "1 1 1",
			HourHand:   "0.3 0.3 0.3",
			MinuteHand: "0.3 0.3 0.3",
			SecondHand: "1 0.1 0.1",
			Hub:        "0.9 0.9 0.9",
		},
	}
}

// Load reads a theme file over the defaults. A missing path is not an
// error; a present but unparseable or invalid file is.
func Load(fs afero.Fs, path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Config{}, fmt.Errorf("read theme %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse theme %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("theme %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Clock.Radius <= 0 {
		return fmt.Errorf("clock radius %v must be positive", c.Clock.Radius)
	}
	if c.Clock.FPS < 0 {
		return fmt.Errorf("fps override %d must not be negative", c.Clock.FPS)
	}
	return nil
}

// ParseColor splits an "r g b" color string into float components.
// Malformed strings come back black rather than failing the frame.
func ParseColor(colorStr string) (float64, float64, float64) {
	parts := strings.Fields(colorStr)
	if len(parts) < 3 {
		return 0, 0, 0
	}
	red, _ := strconv.ParseFloat(parts[0], 64)
	green, _ := strconv.ParseFloat(parts[1], 64)
	blue, _ := strconv.ParseFloat(parts[2], 64)
	return red, green, blue
}
