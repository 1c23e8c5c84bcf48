package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v\nexpected %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadCustomPathOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
world:
  seed: 42
simulation:
  autosave_interval: 0
storage:
  backend: leveldb
  path: /tmp/riverwood.ldb
server:
  idle_timeout: 90s
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.World.Seed != 42 || cfg.Simulation.AutosaveInterval != 0 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Storage.Backend != "leveldb" || cfg.Server.IdleTimeout != 90*time.Second {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Unset keys keep their defaults.
	if cfg.Simulation.TickRate != 60 || cfg.Storage.Slot != "default" || cfg.Simulation.HarvestYield != 3 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing explicit config should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	_ = os.WriteFile(bad, []byte("simulation: [unclosed"), 0o644)
	if _, err := Load(bad); err == nil {
		t.Error("unparsable config should fail")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	_ = os.WriteFile(invalid, []byte("simulation:\n  tick_rate: 0\n"), 0o644)
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		valid  bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"memory without path", func(c *Config) { c.Storage.Backend = "memory"; c.Storage.Path = "" }, true},
		{"zero tick rate", func(c *Config) { c.Simulation.TickRate = 0 }, false},
		{"start off map", func(c *Config) { c.Player.StartX = 32 }, false},
		{"unknown backend", func(c *Config) { c.Storage.Backend = "redis" }, false},
		{"empty slot", func(c *Config) { c.Storage.Slot = "" }, false},
		{"sqlite without path", func(c *Config) { c.Storage.Path = "" }, false},
		{"negative timeout", func(c *Config) { c.Server.IdleTimeout = -time.Second }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(&c)
			err := c.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestSimOptions(t *testing.T) {
	c := Default()
	c.Simulation.AutosaveInterval = 120
	c.Simulation.HarvestYield = 5
	c.Player.StartX, c.Player.StartY = 3, 4

	opts := c.SimOptions()
	if opts.AutosaveInterval != 120 || opts.HarvestYield != 5 || opts.StartX != 3 || opts.StartY != 4 {
		t.Errorf("SimOptions() = %+v", opts)
	}
}
