// riverwood is a terminal exploration game: cross the river by chopping
// trees and building bridges. Worlds are saved per slot and resumed later.
//
// Usage:
//
//	riverwood play               - Play the default save slot
//	riverwood serve              - Host worlds over SSH
//	riverwood map                - Print a generated world
//	riverwood saves              - List save slots
//	riverwood saves browse       - Pick a save slot interactively
//	riverwood saves delete <slot>
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.riverwood/configs, ./configs)
//	--backend <name>    - Save backend: sqlite, leveldb, memory
//	--db <path>         - Save database path
//	--fps <rate>        - Tick rate
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/riverwood/internal/config"
	"github.com/vovakirdan/riverwood/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagBackend  string
	flagDBPath   string
	flagFPS      int
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "riverwood",
	Short: "Riverwood - chop trees and bridge the river in your terminal",
	Long: `Riverwood generates a 32x32 world split by a winding river.
Chop trees for planks, lay bridges across the water and explore.
Your world is saved on quit and every few seconds while playing.

Available commands:
  play     - Play a save slot (resumes it when present)
  serve    - Start SSH server for remote play
  map      - Print a generated world
  saves    - List, browse or delete save slots

Examples:
  riverwood play
  riverwood play --slot island --new --seed 42
  riverwood serve --ssh :2222
  riverwood map --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Save backend: sqlite, leveldb, memory")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to save database")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(savesCmd)
}

// loadConfig reads the config file and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagBackend != "" {
		cfg.Storage.Backend = flagBackend
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagFPS > 0 {
		cfg.Simulation.TickRate = flagFPS
	}
	return cfg, cfg.Validate()
}

// newLogger builds the logger used by a command.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openBackend opens the configured save backend.
func openBackend(cfg config.Config, logger *log.Logger) (storage.Backend, error) {
	backend, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		return nil, err
	}
	logger.Debug("storage opened", "backend", cfg.Storage.Backend, "path", cfg.Storage.Path)
	return backend, nil
}

// closeBackend closes backend and logs a failure.
func closeBackend(backend storage.Backend, logger *log.Logger) {
	if err := backend.Close(); err != nil {
		logger.Error("storage close failed", "error", err)
		return
	}
	logger.Debug("storage closed")
}
