// Package config provides YAML-based configuration loading for Riverwood.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/riverwood/internal/games/riverwood"
	"github.com/vovakirdan/riverwood/internal/world"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the complete application configuration.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Simulation SimulationConfig `yaml:"simulation"`
	Player     PlayerConfig     `yaml:"player"`
	Storage    StorageConfig    `yaml:"storage"`
	Server     ServerConfig     `yaml:"server"`
}

// WorldConfig controls map generation.
type WorldConfig struct {
	Seed uint64 `yaml:"seed"` // 0 = time based
}

// SimulationConfig controls the tick loop and game rules.
type SimulationConfig struct {
	TickRate         int    `yaml:"tick_rate"`
	AutosaveInterval uint64 `yaml:"autosave_interval"` // ticks, 0 disables
	HarvestYield     uint8  `yaml:"harvest_yield"`
}

// PlayerConfig sets where a fresh world starts the player.
type PlayerConfig struct {
	StartX uint8 `yaml:"start_x"`
	StartY uint8 `yaml:"start_y"`
}

// StorageConfig selects the save backend.
type StorageConfig struct {
	Backend string `yaml:"backend"` // sqlite, leveldb, memory
	Path    string `yaml:"path"`
	Slot    string `yaml:"slot"`
}

// ServerConfig controls the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

var backends = map[string]bool{"sqlite": true, "leveldb": true, "memory": true}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	if c.Simulation.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, c.Simulation.TickRate)
	}
	if !world.InBounds(int(c.Player.StartX), int(c.Player.StartY)) {
		return fmt.Errorf("%w: start position (%d,%d) is off the map", ErrInvalid, c.Player.StartX, c.Player.StartY)
	}
	if !backends[c.Storage.Backend] {
		return fmt.Errorf("%w: unknown storage backend %q", ErrInvalid, c.Storage.Backend)
	}
	if c.Storage.Slot == "" {
		return fmt.Errorf("%w: storage slot is empty", ErrInvalid)
	}
	if c.Storage.Backend != "memory" && c.Storage.Path == "" {
		return fmt.Errorf("%w: storage path is empty", ErrInvalid)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("%w: negative idle_timeout", ErrInvalid)
	}
	return nil
}

// SimOptions converts the simulation settings to game options.
func (c Config) SimOptions() riverwood.Options {
	return riverwood.Options{
		AutosaveInterval: c.Simulation.AutosaveInterval,
		HarvestYield:     c.Simulation.HarvestYield,
		StartX:           c.Player.StartX,
		StartY:           c.Player.StartY,
	}
}
