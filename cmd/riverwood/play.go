package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/riverwood/internal/config"
	"github.com/vovakirdan/riverwood/internal/core"
	"github.com/vovakirdan/riverwood/internal/games/riverwood"
	"github.com/vovakirdan/riverwood/internal/platform/tui"
)

var (
	flagNew  bool
	flagSeed uint64
	flagSlot string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a save slot",
	Long: `Open the world stored in a save slot, or generate a new one.

Controls:
  Arrows/WASD   - Face and step one cell per press
  Space/E       - Chop every tree next to you (not diagonal)
  B/Enter       - Lay a bridge on the water you are facing
  Ctrl+S        - Save now
  ?             - Show all keys
  Q/Esc         - Save and quit

Logs are written to ~/.riverwood/riverwood.log while playing.

Examples:
  riverwood play
  riverwood play --slot island
  riverwood play --new --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNew, "new", false, "Start a new world even if the slot has a save")
	playCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "World seed for a new world (0 = config or time based)")
	playCmd.Flags().StringVar(&flagSlot, "slot", "", "Save slot name (default from config)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	slot := cfg.Storage.Slot
	if flagSlot != "" {
		slot = flagSlot
	}
	return playSlot(cfg, slot, !flagNew)
}

// playSlot runs the TUI on one save slot until the player quits.
func playSlot(cfg config.Config, slot string, resume bool) error {
	logFile, w := openLogFile()
	if logFile != nil {
		defer logFile.Close()
	}
	logger, err := newLogger(w, "riverwood")
	if err != nil {
		return err
	}

	backend, err := openBackend(cfg, logger)
	if err != nil {
		return fmt.Errorf("cannot open saves: %w", err)
	}
	defer closeBackend(backend, logger)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := cfg.World.Seed
	if flagSeed != 0 {
		seed = flagSeed
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Simulation.TickRate,
		Seed:     seed,
		Resume:   resume,
	}

	game := riverwood.New(riverwood.NewSlotStorage(backend, slot), cfg.SimOptions())
	return tui.Run(game, rc, slot, logger)
}

// openLogFile opens the play log. Logging is discarded when it cannot be opened,
// since stderr belongs to the terminal UI.
func openLogFile() (*os.File, io.Writer) {
	path := config.HomeFile("riverwood.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, io.Discard
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, io.Discard
	}
	return f, f
}
