package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/but80/harppedal/player"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFromMissing(t *testing.T) {
	c, err := LoadFrom(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if *c != *Default() {
		t.Errorf("got %+v", c)
	}
}

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "device: /dev/ttyUSB0\nvelocity: 80\ngliss_ms: 40\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.Device = "/dev/ttyUSB0"
	want.Velocity = 80
	want.GlissMs = 40
	if *c != *want {
		t.Errorf("got %+v, want %+v", c, want)
	}
	opts := c.PlayerOptions()
	if opts.Fast != 40*time.Millisecond || opts.Slow != player.SlowDelay || opts.Velocity != 80 {
		t.Errorf("player options %+v", opts)
	}
}

func TestLoadFromInvalid(t *testing.T) {
	tests := []string{
		"velocity: 200\n",
		"baudrate: 1234\n",
		"octaves: 0\n",
		"octaves: 4\n",
		"velocity: [\n",
	}
	for _, data := range tests {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFrom(path); err == nil {
			t.Errorf("%q accepted", data)
		}
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	c := Default()
	c.Octaves = 2
	if err := c.Save(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if *loaded != *c {
		t.Errorf("got %+v, want %+v", loaded, c)
	}
}
