// Package config reads playback defaults from a YAML file.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/but80/harppedal/player"
	"github.com/but80/harppedal/serial"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// FileName is looked up under the user config directory.
const FileName = "harppedal/config.yaml"

// MaxOctaves is the longest glissando that fits in player.Range from any
// starting pitch.
const MaxOctaves = (player.Range - 12) / 12

type Config struct {
	Device     string `yaml:"device"`
	BaudRate   int    `yaml:"baudrate"`
	Velocity   int    `yaml:"velocity"`
	ArpeggioMs int    `yaml:"arpeggio_ms"`
	GlissMs    int    `yaml:"gliss_ms"`
	Octaves    int    `yaml:"octaves"`
	HoldMs     int    `yaml:"hold_ms"`
}

// Default discards output on the null device.
func Default() *Config {
	return &Config{
		Device:     "--",
		BaudRate:   serial.MIDIBaudRate,
		Velocity:   player.DefaultOptions.Velocity,
		ArpeggioMs: int(player.SlowDelay / time.Millisecond),
		GlissMs:    int(player.FastDelay / time.Millisecond),
		Octaves:    3,
		HoldMs:     1000,
	}
}

// Path returns the default location of the file.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.WithStack(err)
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads the file at Path.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads path over the defaults. A missing file is not an error.
func LoadFrom(path string) (*Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "in %s", path)
	}
	return c, nil
}

// Save writes c to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.WithStack(err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(os.WriteFile(path, data, 0644))
}

// String returns c in the file format.
func (c *Config) String() string {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err.Error()
	}
	return string(data)
}

func (c *Config) Validate() error {
	if !serial.IsValidBaudRate(c.BaudRate) {
		return errors.Errorf("baudrate %d is not one of %s", c.BaudRate, serial.BaudRateList())
	}
	if c.Velocity < 1 || 127 < c.Velocity {
		return errors.Errorf("velocity %d is out of 1..127", c.Velocity)
	}
	if c.ArpeggioMs <= 0 || c.GlissMs <= 0 || c.HoldMs < 0 {
		return errors.New("delays must be positive")
	}
	if c.Octaves < 1 || MaxOctaves < c.Octaves {
		return errors.Errorf("octaves %d is out of 1..%d", c.Octaves, MaxOctaves)
	}
	return nil
}

func (c *Config) PlayerOptions() player.Options {
	return player.Options{
		Velocity: c.Velocity,
		Slow:     time.Duration(c.ArpeggioMs) * time.Millisecond,
		Fast:     time.Duration(c.GlissMs) * time.Millisecond,
	}
}

func (c *Config) Hold() time.Duration {
	return time.Duration(c.HoldMs) * time.Millisecond
}
