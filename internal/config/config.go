package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the emulator settings. Every field has a default, a config
// file only needs the keys it changes.
type Config struct {
	// window scale of the game screen
	Scale int `yaml:"scale"`
	// show the CPU/PPU debug panel next to the game screen
	Debug bool `yaml:"debug"`
	// updates per second, 60 for NTSC
	TPS int `yaml:"tps"`
	// file to log a nestest-style line per instruction to, empty is off
	Trace string `yaml:"trace"`

	// Keys maps controller buttons (a, b, select, start, up, down, left,
	// right) to ebiten key names for player 1.
	Keys map[string]string `yaml:"keys"`

	Headless Headless `yaml:"headless"`
}

// Headless configures runs without a window.
type Headless struct {
	Frames     int    `yaml:"frames"`
	Screenshot string `yaml:"screenshot"`
	// screenshot scale factor
	Scale int `yaml:"scale"`
}

var Buttons = []string{"a", "b", "select", "start", "up", "down", "left", "right"}

func Default() Config {
	return Config{
		Scale: 2,
		Debug: false,
		TPS:   60,
		Keys: map[string]string{
			"a":      "X",
			"b":      "Z",
			"select": "Backspace",
			"start":  "Enter",
			"up":     "ArrowUp",
			"down":   "ArrowDown",
			"left":   "ArrowLeft",
			"right":  "ArrowRight",
		},
		Headless: Headless{
			Frames: 60,
			Scale:  1,
		},
	}
}

// Load reads a YAML config on top of the defaults. A missing file is not
// an error.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("couldn't open config: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("couldn't parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Scale < 1 || c.Scale > 8 {
		return fmt.Errorf("scale %d: must be between 1 and 8", c.Scale)
	}
	if c.TPS < 1 {
		return fmt.Errorf("tps %d: must be positive", c.TPS)
	}
	if c.Headless.Frames < 0 {
		return fmt.Errorf("headless frames %d: must not be negative", c.Headless.Frames)
	}
	if c.Headless.Scale < 1 || c.Headless.Scale > 8 {
		return fmt.Errorf("headless scale %d: must be between 1 and 8", c.Headless.Scale)
	}
	for button := range c.Keys {
		if !isButton(button) {
			return fmt.Errorf("keys: unknown button %q", button)
		}
	}
	return nil
}

func isButton(name string) bool {
	for _, b := range Buttons {
		if b == name {
			return true
		}
	}
	return false
}

// Save writes the config as YAML.
func (c Config) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("couldn't write config: %w", err)
	}
	return enc.Close()
}
