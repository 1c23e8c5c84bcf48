package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/riverwood/internal/platform/tui"
	"github.com/vovakirdan/riverwood/internal/storage"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List save slots",
	Long: `List the save slots of the configured backend.

Examples:
  riverwood saves
  riverwood saves browse
  riverwood saves delete island
  riverwood saves --backend leveldb --db ./worlds.ldb`,
	Args: cobra.NoArgs,
	RunE: runSavesList,
}

var savesBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Pick a save slot interactively and play it",
	Args:  cobra.NoArgs,
	RunE:  runSavesBrowse,
}

var savesDeleteCmd = &cobra.Command{
	Use:   "delete <slot>",
	Short: "Delete a save slot",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavesDelete,
}

func init() {
	savesCmd.AddCommand(savesBrowseCmd)
	savesCmd.AddCommand(savesDeleteCmd)
}

func runSavesList(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "riverwood")
	if err != nil {
		return err
	}
	backend, err := openBackend(cfg, logger)
	if err != nil {
		return fmt.Errorf("cannot open saves: %w", err)
	}
	defer closeBackend(backend, logger)

	slots, err := backend.List()
	if err != nil {
		return err
	}

	fmt.Printf("Save slots (%s)\n\n", cfg.Storage.Backend)
	if len(slots) == 0 {
		fmt.Println("No saved worlds yet.")
		fmt.Println()
		fmt.Println("Run 'riverwood play' to start one.")
		return nil
	}

	maxSlotLen := 4 // "Slot" header
	for _, s := range slots {
		maxSlotLen = max(maxSlotLen, len(s.Slot))
	}

	fmt.Printf("  %-*s  %-8s  %-8s  %s\n", maxSlotLen, "Slot", "Size", "Saves", "Updated")
	fmt.Printf("  %-*s  %-8s  %-8s  %s\n", maxSlotLen, "----", "----", "-----", "-------")
	for _, s := range slots {
		fmt.Printf("  %-*s  %-8s  %-8s  %s\n", maxSlotLen, s.Slot,
			humanize.Bytes(uint64(s.Size)), humanize.Comma(s.Writes), humanize.Time(s.UpdatedAt))
	}
	return nil
}

func runSavesBrowse(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("saves browse needs a terminal, use 'riverwood saves' instead")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "riverwood")
	if err != nil {
		return err
	}
	backend, err := openBackend(cfg, logger)
	if err != nil {
		return fmt.Errorf("cannot open saves: %w", err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	slot, err := tui.RunSlots(backend, width, height)
	// playSlot opens the backend itself; LevelDB allows one holder at a time.
	closeBackend(backend, logger)
	if err != nil || slot == "" {
		return err
	}
	return playSlot(cfg, slot, true)
}

func runSavesDelete(_ *cobra.Command, args []string) error {
	slot := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "riverwood")
	if err != nil {
		return err
	}
	backend, err := openBackend(cfg, logger)
	if err != nil {
		return fmt.Errorf("cannot open saves: %w", err)
	}
	defer closeBackend(backend, logger)

	ok, err := backend.Has(slot)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("slot %q: %w", slot, storage.ErrNotFound)
	}
	if err := backend.Delete(slot); err != nil {
		return err
	}
	logger.Info("slot deleted", "slot", slot)
	return nil
}
