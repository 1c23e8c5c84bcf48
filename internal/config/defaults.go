package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/riverwood/internal/games/riverwood"
)

//go:embed defaults/riverwood.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration, used when no YAML is readable.
func Default() Config {
	return Config{
		Simulation: SimulationConfig{
			TickRate:         60,
			AutosaveInterval: riverwood.DefaultAutosaveInterval,
			HarvestYield:     riverwood.DefaultHarvestYield,
		},
		Storage: StorageConfig{
			Backend: "sqlite",
			Path:    "~/.riverwood/saves.db",
			Slot:    "default",
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
